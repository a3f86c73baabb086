package eventcore

import "slices"

// --- Priority ---

// Priority selects how a listener is ordered: a fixed non-zero integer, or the
// position of an anchor node in the scene graph.
type Priority struct {
	fixed    int
	node     NodeID
	anchored bool
}

// Fixed returns a fixed priority. Lower values dispatch earlier; negative
// values run before scene-graph listeners, positive values after. Zero is
// rejected by AddListener.
func Fixed(p int) Priority {
	return Priority{fixed: p}
}

// Anchor returns a scene-graph priority derived from node's position. The
// node must carry a UITransform.
func Anchor(node NodeID) Priority {
	return Priority{node: node, anchored: true}
}

// IsAnchor reports whether the priority is scene-graph based.
func (p Priority) IsAnchor() bool {
	return p.anchored
}

// --- Callback sets ---

// TouchCallbacks is the callback set of a touch listener. OnTouchBegan is
// required; returning true claims the touch so that the listener receives the
// rest of the gesture.
type TouchCallbacks struct {
	OnTouchBegan     func(t *Touch, e *Event) bool
	OnTouchMoved     func(t *Touch, e *Event)
	OnTouchEnded     func(t *Touch, e *Event)
	OnTouchCancelled func(t *Touch, e *Event)
}

// MouseCallbacks is the callback set of a mouse listener. At least one
// callback must be set.
type MouseCallbacks struct {
	OnMouseDown  func(e *Event)
	OnMouseUp    func(e *Event)
	OnMouseMove  func(e *Event)
	OnMouseWheel func(e *Event)
}

// --- Listener ---

// listenerIDCounter is not atomic; managers are single-threaded.
var listenerIDCounter uint32

func nextListenerID() uint32 {
	listenerIDCounter++
	return listenerIDCounter
}

// Listener is one event subscription. It is a tagged variant: exactly one of
// the touch, mouse or custom callback sets is used, chosen by its type.
// Listeners are created by their owner and only mutated through a Manager.
type Listener struct {
	id   uint32
	kind ListenerType
	name string

	touch  TouchCallbacks
	mouse  MouseCallbacks
	custom func(e *Event)

	// SwallowTouches makes a claiming touch listener hide the touch from
	// listeners after it in the same pass.
	SwallowTouches bool

	// Priority mode
	fixedPriority int
	node          NodeID

	// Registry state
	registered bool
	paused     bool
	enabled    bool
	stored     bool // present in a partition
	seq        uint64

	// Touch claims (touch listeners only)
	claimed map[int]struct{}

	// Sort cache (scene-graph listeners only), refreshed each sort pass
	cameraPriority int
	path           []int
	valid          bool
}

func newListener(kind ListenerType) *Listener {
	return &Listener{id: nextListenerID(), kind: kind, enabled: true}
}

// NewTouchListener creates a touch listener.
func NewTouchListener(cb TouchCallbacks) *Listener {
	l := newListener(ListenerTouch)
	l.touch = cb
	return l
}

// NewMouseListener creates a mouse listener.
func NewMouseListener(cb MouseCallbacks) *Listener {
	l := newListener(ListenerMouse)
	l.mouse = cb
	return l
}

// NewCustomListener creates a listener for custom events dispatched under name.
func NewCustomListener(name string, fn func(e *Event)) *Listener {
	l := newListener(ListenerCustom)
	l.name = name
	l.custom = fn
	return l
}

// ID returns the listener's process-unique identifier.
func (l *Listener) ID() uint32 { return l.id }

// Type returns the listener's variant.
func (l *Listener) Type() ListenerType { return l.kind }

// Name returns the custom event name, or "" for touch and mouse listeners.
func (l *Listener) Name() string { return l.name }

// Enabled reports the owner-controlled enabled flag.
func (l *Listener) Enabled() bool { return l.enabled }

// SetEnabled toggles whether the listener receives events. Unlike pausing,
// this is controlled by the listener's owner, not the manager.
func (l *Listener) SetEnabled(enabled bool) { l.enabled = enabled }

// Paused reports whether the manager has paused this listener.
func (l *Listener) Paused() bool { return l.paused }

// Registered reports whether the listener is registered or pending registration.
func (l *Listener) Registered() bool { return l.registered }

// Node returns the anchor node, or InvalidNode for fixed-priority or removed listeners.
func (l *Listener) Node() NodeID { return l.node }

// FixedPriority returns the fixed priority, or 0 for scene-graph listeners.
func (l *Listener) FixedPriority() int { return l.fixedPriority }

// IsSceneGraph reports whether the listener is ordered by its anchor node.
func (l *Listener) IsSceneGraph() bool { return l.fixedPriority == 0 }

// Claims reports whether the listener currently owns the touch.
func (l *Listener) Claims(touchID int) bool {
	_, ok := l.claimed[touchID]
	return ok
}

// ClaimedTouches returns the IDs of the touches this listener owns, sorted.
func (l *Listener) ClaimedTouches() []int {
	if len(l.claimed) == 0 {
		return nil
	}
	ids := make([]int, 0, len(l.claimed))
	for id := range l.claimed {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// key returns the partition the listener belongs to.
func (l *Listener) key() listenerKey {
	return listenerKey{kind: l.kind, name: l.name}
}

// checkAvailable reports whether the listener carries the callbacks its
// variant requires.
func (l *Listener) checkAvailable() bool {
	switch l.kind {
	case ListenerTouch:
		return l.touch.OnTouchBegan != nil
	case ListenerMouse:
		m := l.mouse
		return m.OnMouseDown != nil || m.OnMouseUp != nil || m.OnMouseMove != nil || m.OnMouseWheel != nil
	case ListenerCustom:
		return l.name != "" && l.custom != nil
	default:
		return false
	}
}

func (l *Listener) addClaim(touchID int) {
	if l.claimed == nil {
		l.claimed = make(map[int]struct{})
	}
	l.claimed[touchID] = struct{}{}
}

func (l *Listener) dropClaim(touchID int) {
	delete(l.claimed, touchID)
}
