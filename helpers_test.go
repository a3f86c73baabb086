package eventcore

import (
	"bytes"
	"log/slog"
	"testing"
)

// testScene is a tree plus a manager logging into a buffer.
type testScene struct {
	tree *Tree
	m    *Manager
	logs *bytes.Buffer
}

func newTestScene(t *testing.T, cfg Config) *testScene {
	t.Helper()
	logs := &bytes.Buffer{}
	cfg.Logger = slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tree := NewTree()
	return &testScene{tree: tree, m: NewManager(tree, cfg), logs: logs}
}

// ui creates an active UI node under parent.
func (s *testScene) ui(parent *Node, name string) *Node {
	n := s.tree.NewUINode(name, UITransform{})
	parent.AddChild(n)
	return n
}

// trace records callback invocations by tag.
type trace struct {
	calls []string
}

func (tr *trace) mouse(tag string) *Listener {
	return NewMouseListener(MouseCallbacks{
		OnMouseDown: func(e *Event) { tr.calls = append(tr.calls, tag) },
	})
}

func (tr *trace) mouseDo(tag string, fn func(e *Event)) *Listener {
	return NewMouseListener(MouseCallbacks{
		OnMouseDown: func(e *Event) {
			tr.calls = append(tr.calls, tag)
			fn(e)
		},
	})
}

func (tr *trace) custom(name, tag string) *Listener {
	return NewCustomListener(name, func(e *Event) { tr.calls = append(tr.calls, tag) })
}

func (tr *trace) reset() {
	tr.calls = nil
}

func mouseDown() *Event {
	return NewMouseEvent(EventMouseDown, 0, 0, MouseButtonLeft)
}

// touchRecorder is a touch listener that records every phase it receives.
type touchRecorder struct {
	tag    string
	claim  func(t *Touch) bool
	tr     *trace
	l      *Listener
	moved  []int
	ended  []int
	cancel []int
}

func newTouchRecorder(tr *trace, tag string, claim func(t *Touch) bool) *touchRecorder {
	r := &touchRecorder{tag: tag, claim: claim, tr: tr}
	r.l = NewTouchListener(TouchCallbacks{
		OnTouchBegan: func(t *Touch, e *Event) bool {
			tr.calls = append(tr.calls, tag)
			return r.claim(t)
		},
		OnTouchMoved:     func(t *Touch, e *Event) { r.moved = append(r.moved, t.ID) },
		OnTouchEnded:     func(t *Touch, e *Event) { r.ended = append(r.ended, t.ID) },
		OnTouchCancelled: func(t *Touch, e *Event) { r.cancel = append(r.cancel, t.ID) },
	})
	return r
}

func claimAll(*Touch) bool  { return true }
func claimNone(*Touch) bool { return false }

func touches(ids ...int) []*Touch {
	out := make([]*Touch, len(ids))
	for i, id := range ids {
		out[i] = &Touch{ID: id}
	}
	return out
}

func touchEvent(typ EventType, ids ...int) *Event {
	return NewTouchEvent(typ, touches(ids...)...)
}
