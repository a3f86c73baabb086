package eventcore

import (
	"log/slog"
	"slices"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Manager, every event delivered to a scene-graph listener is
// forwarded to the store.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// EntityResolver is implemented by scene graphs that map nodes to ECS
// entities. When the graph implements it, InteractionEvent.EntityID is set.
type EntityResolver interface {
	EntityOf(id NodeID) uint32
}

// InteractionEvent carries the data forwarded to an EntityStore.
type InteractionEvent struct {
	Type     EventType
	Name     string
	Node     NodeID
	EntityID uint32
	Listener uint32
	// Touch fields (valid for touch events)
	TouchID int
	Claimed bool
	// Position of the touch or cursor
	X, Y      float64
	Button    MouseButton
	Modifiers KeyModifiers
}

// Manager owns the listener registry and dispatches events to it. It is not
// safe for concurrent use; listeners may call any Manager method from inside
// a callback, and structural changes made there are applied once the
// outermost DispatchEvent returns.
type Manager struct {
	graph SceneGraph
	store EntityStore
	log   *slog.Logger
	debug bool

	enabled    bool
	multiTouch bool

	vectors       map[listenerKey]*listenerVector
	busy          map[listenerKey]int // partitions being iterated
	dirty         dirtyTracker
	nodeListeners map[NodeID][]*Listener
	pending       mutationLog
	claims        claimTracker

	depth int
	seq   uint64
	stats debugStats
}

// NewManager creates a manager reading node order from graph. A nil graph is
// allowed when only fixed-priority listeners are used. If graph implements
// ActivationNotifier, node changes are tracked automatically.
func NewManager(graph SceneGraph, cfg Config) *Manager {
	if graph == nil {
		graph = emptyGraph{}
	}
	m := &Manager{
		graph:         graph,
		log:           cfg.logger(),
		debug:         cfg.Debug,
		enabled:       !cfg.Disabled,
		multiTouch:    cfg.MultiTouch,
		vectors:       make(map[listenerKey]*listenerVector),
		busy:          make(map[listenerKey]int),
		dirty:         newDirtyTracker(),
		nodeListeners: make(map[NodeID][]*Listener),
		claims:        newClaimTracker(),
	}
	if n, ok := graph.(ActivationNotifier); ok {
		n.OnActivationChanged(m.MarkNodeDirty)
	}
	return m
}

// SetEnabled turns dispatching on or off. Registry operations keep working
// while disabled.
func (m *Manager) SetEnabled(enabled bool) {
	m.enabled = enabled
}

// Enabled reports whether DispatchEvent delivers events.
func (m *Manager) Enabled() bool {
	return m.enabled
}

// SetMultiTouch switches between single- and multi-touch claiming. Switching
// drops the current-touch slot; existing claims are kept.
func (m *Manager) SetMultiTouch(enabled bool) {
	m.multiTouch = enabled
	m.claims.clearCurrent()
}

// MultiTouch reports whether several touches may be claimed concurrently.
func (m *Manager) MultiTouch() bool {
	return m.multiTouch
}

// SetEntityStore sets the optional ECS bridge.
func (m *Manager) SetEntityStore(store EntityStore) {
	m.store = store
}

// Dispatching reports whether a DispatchEvent call is on the stack.
func (m *Manager) Dispatching() bool {
	return m.depth != 0
}

// --- Registration ---

// AddListener registers l with priority p. It returns false without changing
// anything if l is already registered, p is Fixed(0), p anchors to a node
// that does not exist or has no UITransform, or l lacks the callbacks its
// type requires. While dispatching, the listener is queued and becomes
// dispatchable once the outermost dispatch returns.
func (m *Manager) AddListener(l *Listener, p Priority) bool {
	if l == nil {
		return false
	}
	if l.registered {
		m.warn("add listener rejected", ErrDuplicateRegistration, l)
		return false
	}
	if !l.checkAvailable() {
		m.warn("add listener rejected", ErrUnavailable, l)
		return false
	}
	if p.anchored {
		if _, ok := m.graph.UITransform(p.node); !ok || !m.graph.Exists(p.node) {
			m.warn("add listener rejected: anchor has no UITransform", ErrInvalidPriority, l,
				slog.Uint64("node", uint64(p.node)))
			return false
		}
		l.fixedPriority = 0
		l.node = p.node
	} else {
		if p.fixed == 0 {
			m.warn("add listener rejected: fixed priority 0", ErrInvalidPriority, l)
			return false
		}
		l.fixedPriority = p.fixed
		l.node = InvalidNode
	}

	m.seq++
	l.seq = m.seq
	l.registered = true
	l.paused = false

	if m.Dispatching() {
		m.pending.add(l)
	} else {
		m.forceAdd(l)
	}
	return true
}

// forceAdd inserts l into its partition and marks the partition dirty.
func (m *Manager) forceAdd(l *Listener) {
	k := l.key()
	if l.stored {
		// Removed and re-added during one dispatch: drop the stale slot.
		if v := m.vectors[k]; v != nil {
			v.remove(l)
		}
	}
	v := m.vectors[k]
	if v == nil {
		v = &listenerVector{}
		m.vectors[k] = v
	}
	v.push(l)

	if !l.IsSceneGraph() {
		m.dirty.set(k, dirtyFixed)
		return
	}
	m.dirty.set(k, dirtySceneGraph)
	if l.node == InvalidNode || !m.graph.Exists(l.node) {
		m.warn("scene-graph listener registered without a live anchor", ErrMissingAnchor, l,
			slog.Uint64("node", uint64(l.node)))
		return
	}
	m.associate(l.node, l)
	if m.graph.ActiveInHierarchy(l.node) {
		m.ResumeTarget(l.node, false)
	}
}

// RemoveListener unregisters l. It returns false if l is not registered, so a
// second call is a no-op. The listener stops receiving events immediately;
// while dispatching, its slot is reclaimed when the outermost dispatch
// returns.
func (m *Manager) RemoveListener(l *Listener) bool {
	if l == nil || !l.registered {
		return false
	}
	if m.claims.currentListener == l {
		m.claims.clearCurrent()
	}
	l.paused = true
	l.registered = false
	if l.IsSceneGraph() {
		m.dissociate(l.node, l)
		l.node = InvalidNode
	}

	if m.pending.cancelAdd(l) {
		// Never reached a partition in this registration.
		if !l.stored {
			return true
		}
	}
	if !m.Dispatching() {
		if v := m.vectors[l.key()]; v != nil {
			v.remove(l)
		}
		m.claims.purge(l)
		return true
	}
	m.pending.remove(l)
	return true
}

// RemoveListenersForNode removes every listener anchored to node, and to its
// descendants when recursive is true. Pending registrations anchored to the
// node are cancelled so a node destroyed mid-dispatch cannot be revived.
// Call it before disposing the node; the subtree is read from the scene graph.
func (m *Manager) RemoveListenersForNode(node NodeID, recursive bool) {
	for _, l := range slices.Clone(m.nodeListeners[node]) {
		m.RemoveListener(l)
	}
	delete(m.nodeListeners, node)

	cancelled := m.pending.cancelAddsWhere(func(l *Listener) bool {
		return l.IsSceneGraph() && l.node == node
	})
	for _, l := range cancelled {
		l.node = InvalidNode
		l.registered = false
		l.paused = true
	}

	if recursive {
		for _, child := range m.graph.Children(node) {
			m.RemoveListenersForNode(child, true)
		}
	}
}

// RemoveListenersOfType removes every listener of the given type. For
// ListenerCustom every custom partition is removed.
func (m *Manager) RemoveListenersOfType(kind ListenerType) {
	switch kind {
	case ListenerTouch, ListenerMouse:
		m.removeVector(listenerKey{kind: kind})
	case ListenerCustom:
		for k := range m.vectors {
			if k.kind == ListenerCustom {
				m.removeVector(k)
			}
		}
		m.cancelPendingAdds(func(k listenerKey) bool { return k.kind == ListenerCustom })
	default:
		m.warn("remove listeners rejected", ErrUnknownEvent, nil, slog.String("type", kind.String()))
	}
}

// RemoveCustomListeners removes every custom listener registered under name.
func (m *Manager) RemoveCustomListeners(name string) {
	m.removeVector(listenerKey{kind: ListenerCustom, name: name})
}

// RemoveAllListeners removes every listener of every type.
func (m *Manager) RemoveAllListeners() {
	for k := range m.vectors {
		m.removeVector(k)
	}
	m.cancelPendingAdds(func(listenerKey) bool { return true })
}

// removeVector unregisters a whole partition. The partition itself is dropped
// now, or at flush time if it may be under iteration.
func (m *Manager) removeVector(k listenerKey) {
	if v := m.vectors[k]; v != nil {
		unregister := func(list []*Listener) {
			for _, l := range list {
				if !l.registered {
					continue
				}
				l.registered = false
				l.paused = true
				if l.IsSceneGraph() {
					m.dissociate(l.node, l)
					l.node = InvalidNode
				}
				if m.claims.currentListener == l {
					m.claims.clearCurrent()
				}
				if !m.Dispatching() {
					m.claims.purge(l)
				}
			}
		}
		unregister(v.sceneGraph)
		unregister(v.fixed)

		m.dirty.drop(k)
		if m.Dispatching() {
			v.removed = true
		} else {
			v.reset()
			delete(m.vectors, k)
		}
	}
	m.cancelPendingAdds(func(pk listenerKey) bool { return pk == k })
}

func (m *Manager) cancelPendingAdds(match func(listenerKey) bool) {
	cancelled := m.pending.cancelAddsWhere(func(l *Listener) bool {
		return match(l.key())
	})
	for _, l := range cancelled {
		l.registered = false
		l.paused = true
		if l.IsSceneGraph() {
			l.node = InvalidNode
		}
	}
}

// SetPriority changes the priority of a registered fixed-priority listener.
// Scene-graph listeners and a priority of 0 are rejected.
func (m *Manager) SetPriority(l *Listener, p int) bool {
	if l == nil || !l.registered {
		return false
	}
	if l.IsSceneGraph() {
		m.warn("set priority rejected: scene-graph listener", ErrInvalidPriority, l)
		return false
	}
	if p == 0 {
		m.warn("set priority rejected: fixed priority 0", ErrInvalidPriority, l)
		return false
	}
	if l.fixedPriority != p {
		l.fixedPriority = p
		m.dirty.set(l.key(), dirtyFixed)
	}
	return true
}

// HasEventListener reports whether any registered listener of the given type
// exists, including ones waiting to be inserted.
func (m *Manager) HasEventListener(kind ListenerType) bool {
	return m.ListenerCount(kind) > 0
}

// ListenerCount returns the number of registered listeners of the given type,
// including ones waiting to be inserted.
func (m *Manager) ListenerCount(kind ListenerType) int {
	count := 0
	for k, v := range m.vectors {
		if k.kind != kind {
			continue
		}
		for _, l := range v.fixed {
			if l.registered {
				count++
			}
		}
		for _, l := range v.sceneGraph {
			if l.registered {
				count++
			}
		}
	}
	for _, e := range m.pending.entries {
		if e.op == opAdd && e.l.kind == kind && e.l.registered && !e.l.stored {
			count++
		}
	}
	return count
}

// --- Node cascades ---

// NodeListeners returns the listeners anchored to node. The returned slice
// MUST NOT be mutated.
func (m *Manager) NodeListeners(node NodeID) []*Listener {
	return m.nodeListeners[node]
}

// PauseTarget pauses every listener anchored to node, and to its descendants
// when recursive is true.
func (m *Manager) PauseTarget(node NodeID, recursive bool) {
	for _, l := range m.nodeListeners[node] {
		l.paused = true
	}
	if recursive {
		for _, child := range m.graph.Children(node) {
			m.PauseTarget(child, true)
		}
	}
}

// ResumeTarget resumes every listener anchored to node, and to its
// descendants when recursive is true. The node's subtree is marked dirty so
// scene-graph order is recomputed on the next dispatch.
func (m *Manager) ResumeTarget(node NodeID, recursive bool) {
	for _, l := range m.nodeListeners[node] {
		l.paused = false
	}
	m.MarkNodeDirty(node)
	if recursive {
		for _, child := range m.graph.Children(node) {
			m.ResumeTarget(child, true)
		}
	}
}

// MarkNodeDirty records that the order of listeners anchored to node or its
// descendants may have changed. The change is applied once, at the start of
// the next outermost dispatch.
func (m *Manager) MarkNodeDirty(node NodeID) {
	for _, l := range m.nodeListeners[node] {
		m.dirty.markNode(l.key())
	}
	for _, child := range m.graph.Children(node) {
		m.MarkNodeDirty(child)
	}
}

// --- Node-listener index ---

func (m *Manager) associate(node NodeID, l *Listener) {
	m.nodeListeners[node] = append(m.nodeListeners[node], l)
}

func (m *Manager) dissociate(node NodeID, l *Listener) {
	list := m.nodeListeners[node]
	i := slices.Index(list, l)
	if i < 0 {
		return
	}
	list = slices.Delete(list, i, i+1)
	if len(list) == 0 {
		delete(m.nodeListeners, node)
		return
	}
	m.nodeListeners[node] = list
}

// --- Claims ---

// ClaimOwner returns the earliest claimant of the touch that still holds it.
// When that listener is removed, a listener sharing the touch takes over.
func (m *Manager) ClaimOwner(touchID int) (*Listener, bool) {
	return m.claims.owner(touchID)
}

// CurrentTouch returns the touch that owns the single-touch slot, or nil.
func (m *Manager) CurrentTouch() *Touch {
	return m.claims.current
}

// emptyGraph stands in when no scene graph is supplied.
type emptyGraph struct{}

func (emptyGraph) Exists(NodeID) bool                     { return false }
func (emptyGraph) Parent(NodeID) NodeID                   { return InvalidNode }
func (emptyGraph) Children(NodeID) []NodeID               { return nil }
func (emptyGraph) SiblingIndex(NodeID) int                { return 0 }
func (emptyGraph) ActiveInHierarchy(NodeID) bool          { return false }
func (emptyGraph) UITransform(NodeID) (UITransform, bool) { return UITransform{}, false }
