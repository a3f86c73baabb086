package eventcore

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Registration ---

func TestAddListener_Validation(t *testing.T) {
	s := newTestScene(t, Config{})
	tr := &trace{}
	a := s.ui(s.tree.Root(), "a")
	plain := s.tree.NewNode("plain")
	s.tree.Root().AddChild(plain)
	gone := s.ui(s.tree.Root(), "gone")
	gone.Dispose()

	tests := []struct {
		name string
		l    *Listener
		p    Priority
		ok   bool
	}{
		{"fixed", tr.mouse("x"), Fixed(-3), true},
		{"anchor", tr.mouse("x"), Anchor(a.ID), true},
		{"fixed zero", tr.mouse("x"), Fixed(0), false},
		{"anchor without ui", tr.mouse("x"), Anchor(plain.ID), false},
		{"anchor root", tr.mouse("x"), Anchor(s.tree.Root().ID), false},
		{"anchor invalid", tr.mouse("x"), Anchor(InvalidNode), false},
		{"anchor disposed", tr.mouse("x"), Anchor(gone.ID), false},
		{"touch without began", NewTouchListener(TouchCallbacks{}), Fixed(1), false},
		{"mouse without callbacks", NewMouseListener(MouseCallbacks{}), Fixed(1), false},
		{"custom without name", NewCustomListener("", func(*Event) {}), Fixed(1), false},
		{"custom without fn", NewCustomListener("n", nil), Fixed(1), false},
		{"nil", nil, Fixed(1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, s.m.AddListener(tt.l, tt.p))
			if tt.l != nil {
				assert.Equal(t, tt.ok, tt.l.Registered())
			}
		})
	}
}

func TestAddListener_Duplicate(t *testing.T) {
	s := newTestScene(t, Config{})
	tr := &trace{}
	l := tr.mouse("a")

	require.True(t, s.m.AddListener(l, Fixed(1)))
	assert.False(t, s.m.AddListener(l, Fixed(2)))
	assert.Equal(t, 1, l.FixedPriority(), "rejected add must not change priority")
	assert.Contains(t, s.logs.String(), ErrDuplicateRegistration.Error())

	s.m.DispatchEvent(mouseDown())
	assert.Equal(t, []string{"a"}, tr.calls)
}

func TestAddListener_PriorityAccessors(t *testing.T) {
	s := newTestScene(t, Config{})
	tr := &trace{}
	a := s.ui(s.tree.Root(), "a")

	fixed := tr.mouse("f")
	anchored := tr.mouse("a")
	require.True(t, s.m.AddListener(fixed, Fixed(-2)))
	require.True(t, s.m.AddListener(anchored, Anchor(a.ID)))

	assert.False(t, fixed.IsSceneGraph())
	assert.Equal(t, -2, fixed.FixedPriority())
	assert.Equal(t, InvalidNode, fixed.Node())
	assert.True(t, anchored.IsSceneGraph())
	assert.Equal(t, a.ID, anchored.Node())
	assert.Equal(t, []*Listener{anchored}, s.m.NodeListeners(a.ID))
	assert.True(t, Anchor(a.ID).IsAnchor())
	assert.False(t, Fixed(1).IsAnchor())
}

func TestRemoveListener_Idempotent(t *testing.T) {
	s := newTestScene(t, Config{})
	tr := &trace{}
	a := s.ui(s.tree.Root(), "a")
	l := tr.mouse("a")
	require.True(t, s.m.AddListener(l, Anchor(a.ID)))

	assert.True(t, s.m.RemoveListener(l))
	assert.False(t, s.m.RemoveListener(l))
	assert.False(t, s.m.RemoveListener(nil))
	assert.False(t, l.Registered())
	assert.Equal(t, InvalidNode, l.Node())
	assert.Empty(t, s.m.NodeListeners(a.ID))
	assert.False(t, s.m.HasEventListener(ListenerMouse))

	s.m.DispatchEvent(mouseDown())
	assert.Empty(t, tr.calls)

	// A removed listener can be registered again.
	require.True(t, s.m.AddListener(l, Fixed(5)))
	s.m.DispatchEvent(mouseDown())
	assert.Equal(t, []string{"a"}, tr.calls)
}

func TestSetPriority(t *testing.T) {
	s := newTestScene(t, Config{})
	tr := &trace{}
	a := s.ui(s.tree.Root(), "a")
	l1 := tr.mouse("l1")
	l2 := tr.mouse("l2")
	anchored := tr.mouse("anchored")
	require.True(t, s.m.AddListener(l1, Fixed(1)))
	require.True(t, s.m.AddListener(l2, Fixed(2)))
	require.True(t, s.m.AddListener(anchored, Anchor(a.ID)))

	s.m.DispatchEvent(mouseDown())
	assert.Equal(t, []string{"anchored", "l1", "l2"}, tr.calls)

	assert.True(t, s.m.SetPriority(l2, -1))
	assert.True(t, s.m.SetPriority(l1, 1), "same priority is accepted")
	assert.False(t, s.m.SetPriority(l1, 0))
	assert.False(t, s.m.SetPriority(anchored, 3))
	assert.False(t, s.m.SetPriority(tr.mouse("unregistered"), 3))

	tr.reset()
	s.m.DispatchEvent(mouseDown())
	assert.Equal(t, []string{"l2", "anchored", "l1"}, tr.calls)
}

// --- Bulk removal ---

func TestRemoveListenersForNode(t *testing.T) {
	s := newTestScene(t, Config{})
	tr := &trace{}
	a := s.ui(s.tree.Root(), "a")
	a1 := s.ui(a, "a1")
	b := s.ui(s.tree.Root(), "b")

	la := tr.mouse("a")
	la1 := tr.mouse("a1")
	lb := tr.mouse("b")
	custom := tr.custom("ping", "a-custom")
	for _, p := range []struct {
		l *Listener
		n *Node
	}{{la, a}, {la1, a1}, {lb, b}, {custom, a}} {
		require.True(t, s.m.AddListener(p.l, Anchor(p.n.ID)))
	}

	s.m.RemoveListenersForNode(a.ID, false)
	assert.False(t, la.Registered())
	assert.False(t, custom.Registered())
	assert.True(t, la1.Registered())

	s.m.DispatchEvent(mouseDown())
	assert.Equal(t, []string{"b", "a1"}, tr.calls)

	require.True(t, s.m.AddListener(la, Anchor(a.ID)))
	s.m.RemoveListenersForNode(a.ID, true)
	assert.False(t, la.Registered())
	assert.False(t, la1.Registered())
	assert.True(t, lb.Registered())
	assert.Equal(t, 1, s.m.ListenerCount(ListenerMouse))
	assert.Equal(t, 0, s.m.ListenerCount(ListenerCustom))
}

func TestRemoveListenersOfType(t *testing.T) {
	s := newTestScene(t, Config{})
	tr := &trace{}
	require.True(t, s.m.AddListener(tr.mouse("m1"), Fixed(1)))
	require.True(t, s.m.AddListener(tr.mouse("m2"), Fixed(-1)))
	require.True(t, s.m.AddListener(newTouchRecorder(tr, "t", claimAll).l, Fixed(1)))
	require.True(t, s.m.AddListener(tr.custom("a", "ca"), Fixed(1)))
	require.True(t, s.m.AddListener(tr.custom("b", "cb"), Fixed(1)))

	s.m.RemoveListenersOfType(ListenerMouse)
	assert.False(t, s.m.HasEventListener(ListenerMouse))
	assert.True(t, s.m.HasEventListener(ListenerTouch))

	s.m.RemoveListenersOfType(ListenerCustom)
	assert.False(t, s.m.HasEventListener(ListenerCustom))
	s.m.DispatchCustomEvent("a", nil)
	s.m.DispatchCustomEvent("b", nil)
	s.m.DispatchEvent(mouseDown())
	assert.Empty(t, tr.calls)

	s.m.RemoveListenersOfType(ListenerUnknown)
	assert.Contains(t, s.logs.String(), ErrUnknownEvent.Error())
	assert.True(t, s.m.HasEventListener(ListenerTouch))
}

func TestRemoveCustomListeners(t *testing.T) {
	s := newTestScene(t, Config{})
	tr := &trace{}
	require.True(t, s.m.AddListener(tr.custom("a", "a"), Fixed(1)))
	require.True(t, s.m.AddListener(tr.custom("b", "b"), Fixed(1)))

	s.m.RemoveCustomListeners("a")
	assert.Equal(t, 1, s.m.ListenerCount(ListenerCustom))

	s.m.DispatchCustomEvent("a", nil)
	s.m.DispatchCustomEvent("b", nil)
	assert.Equal(t, []string{"b"}, tr.calls)
}

func TestRemoveAllListeners(t *testing.T) {
	s := newTestScene(t, Config{})
	tr := &trace{}
	a := s.ui(s.tree.Root(), "a")
	anchored := tr.mouse("a")
	require.True(t, s.m.AddListener(anchored, Anchor(a.ID)))
	require.True(t, s.m.AddListener(tr.custom("c", "c"), Fixed(1)))
	require.True(t, s.m.AddListener(newTouchRecorder(tr, "t", claimAll).l, Fixed(1)))

	s.m.RemoveAllListeners()
	for _, kind := range []ListenerType{ListenerTouch, ListenerMouse, ListenerCustom} {
		assert.False(t, s.m.HasEventListener(kind), kind.String())
	}
	assert.False(t, anchored.Registered())
	assert.Empty(t, s.m.NodeListeners(a.ID))
}

// --- Pause / resume ---

func TestPauseResumeTarget(t *testing.T) {
	s := newTestScene(t, Config{})
	tr := &trace{}
	a := s.ui(s.tree.Root(), "a")
	a1 := s.ui(a, "a1")
	la := tr.mouse("a")
	la1 := tr.mouse("a1")
	require.True(t, s.m.AddListener(la, Anchor(a.ID)))
	require.True(t, s.m.AddListener(la1, Anchor(a1.ID)))

	s.m.PauseTarget(a.ID, false)
	assert.True(t, la.Paused())
	assert.False(t, la1.Paused())
	s.m.DispatchEvent(mouseDown())
	assert.Equal(t, []string{"a1"}, tr.calls)

	s.m.PauseTarget(a.ID, true)
	tr.reset()
	s.m.DispatchEvent(mouseDown())
	assert.Empty(t, tr.calls)

	s.m.ResumeTarget(a.ID, true)
	s.m.DispatchEvent(mouseDown())
	assert.Equal(t, []string{"a1", "a"}, tr.calls)
}

func TestResumeTargetForcesResort(t *testing.T) {
	// Hiding the Tree behind the bare interface drops its ActivationNotifier,
	// so only ResumeTarget can mark the order stale.
	tree := NewTree()
	m := NewManager(struct{ SceneGraph }{tree}, Config{Logger: slog.New(slog.DiscardHandler)})
	tr := &trace{}
	a := tree.NewUINode("a", UITransform{})
	b := tree.NewUINode("b", UITransform{})
	tree.Root().AddChild(a)
	tree.Root().AddChild(b)
	require.True(t, m.AddListener(tr.mouse("a"), Anchor(a.ID)))
	require.True(t, m.AddListener(tr.mouse("b"), Anchor(b.ID)))

	m.DispatchEvent(mouseDown())
	assert.Equal(t, []string{"b", "a"}, tr.calls)

	tree.Root().SetChildIndex(b, 0)
	tr.reset()
	m.DispatchEvent(mouseDown())
	assert.Equal(t, 0, m.stats.sorts, "reorder goes unnoticed without a notifier")
	assert.Equal(t, []string{"b", "a"}, tr.calls)

	m.ResumeTarget(a.ID, false)
	tr.reset()
	m.DispatchEvent(mouseDown())
	assert.Equal(t, 1, m.stats.sorts)
	assert.Equal(t, []string{"a", "b"}, tr.calls)

	m.DispatchEvent(mouseDown())
	assert.Equal(t, 0, m.stats.sorts)
}

func TestListenerEnabled(t *testing.T) {
	s := newTestScene(t, Config{})
	tr := &trace{}
	l := tr.mouse("a")
	require.True(t, s.m.AddListener(l, Fixed(1)))
	assert.True(t, l.Enabled())

	l.SetEnabled(false)
	s.m.DispatchEvent(mouseDown())
	assert.Empty(t, tr.calls)

	l.SetEnabled(true)
	s.m.DispatchEvent(mouseDown())
	assert.Equal(t, []string{"a"}, tr.calls)
}

func TestManagerEnabled(t *testing.T) {
	s := newTestScene(t, Config{Disabled: true})
	tr := &trace{}
	assert.False(t, s.m.Enabled())

	// Registry operations still work while disabled.
	require.True(t, s.m.AddListener(tr.mouse("a"), Fixed(1)))
	s.m.DispatchEvent(mouseDown())
	assert.Empty(t, tr.calls)

	s.m.SetEnabled(true)
	s.m.DispatchEvent(mouseDown())
	assert.Equal(t, []string{"a"}, tr.calls)
}

func TestListenerCount(t *testing.T) {
	s := newTestScene(t, Config{})
	tr := &trace{}
	assert.Equal(t, 0, s.m.ListenerCount(ListenerMouse))
	assert.False(t, s.m.HasEventListener(ListenerMouse))

	l := tr.mouse("a")
	require.True(t, s.m.AddListener(l, Fixed(1)))
	require.True(t, s.m.AddListener(tr.mouse("b"), Fixed(2)))
	assert.Equal(t, 2, s.m.ListenerCount(ListenerMouse))

	s.m.RemoveListener(l)
	assert.Equal(t, 1, s.m.ListenerCount(ListenerMouse))
	assert.True(t, s.m.HasEventListener(ListenerMouse))
}

func TestNewManager_NilGraph(t *testing.T) {
	m := NewManager(nil, Config{Logger: slog.New(slog.DiscardHandler)})
	tr := &trace{}
	require.True(t, m.AddListener(tr.mouse("f"), Fixed(1)))
	assert.False(t, m.AddListener(tr.mouse("a"), Anchor(1)))

	m.DispatchEvent(mouseDown())
	assert.Equal(t, []string{"f"}, tr.calls)
}
