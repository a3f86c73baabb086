package eventcore

import (
	"log/slog"
	"time"
)

// DispatchEvent delivers e to the listeners of its type. Touch events are
// delivered once per touch in e.Touches. It is a no-op while the manager is
// disabled. DispatchEvent may be called from inside a listener; structural
// registry changes made during any dispatch are applied when the outermost
// call returns.
func (m *Manager) DispatchEvent(e *Event) {
	if !m.enabled {
		return
	}
	if e == nil {
		m.warn("dispatch dropped: nil event", ErrUnknownEvent, nil)
		return
	}

	outer := m.depth == 0
	var start time.Time
	if outer {
		m.dirty.foldNodes()
		m.stats = debugStats{}
		if m.debug {
			start = time.Now()
		}
	}
	m.depth++
	defer m.unwind(e, outer, start)

	switch kind := e.Type.ListenerType(); kind {
	case ListenerTouch:
		m.dispatchTouchEvent(e)
	case ListenerMouse, ListenerCustom:
		k := listenerKey{kind: kind}
		if kind == ListenerCustom {
			k.name = e.Name
		}
		m.sortIfIdle(k)
		if v := m.vectors[k]; v != nil {
			m.dispatchToListeners(k, v, func(l *Listener) bool {
				return m.onEventCallback(l, e)
			})
		}
	default:
		m.warn("dispatch dropped", ErrUnknownEvent, nil, slog.String("event", e.Type.String()))
	}
}

// DispatchCustomEvent dispatches a custom event carrying userData to the
// listeners registered under name.
func (m *Manager) DispatchCustomEvent(name string, userData any) {
	m.DispatchEvent(NewCustomEvent(name, userData))
}

// unwind pops one dispatch level. The outermost level applies the deferred
// mutations.
func (m *Manager) unwind(e *Event, outer bool, start time.Time) {
	m.depth--
	if !outer {
		return
	}
	if !m.debug {
		m.flush()
		return
	}
	m.stats.dispatchTime = time.Since(start)
	flushStart := time.Now()
	m.flush()
	m.stats.flushTime = time.Since(flushStart)
	m.debugLog(e, m.stats)
}

// sortIfIdle resorts partition k unless a dispatch is iterating it.
func (m *Manager) sortIfIdle(k listenerKey) {
	if m.busy[k] > 0 {
		return
	}
	if m.debug {
		start := time.Now()
		defer func() { m.stats.sortTime += time.Since(start) }()
	}
	m.sortListeners(k)
}

// dispatchToListeners walks partition v in dispatch order: fixed < 0, then
// scene-graph listeners, then fixed > 0. It stops as soon as fn returns true.
// Lists are captured up front so mutations made by callbacks never reorder
// the walk in progress.
func (m *Manager) dispatchToListeners(k listenerKey, v *listenerVector, fn func(*Listener) bool) {
	m.busy[k]++
	defer func() {
		if m.busy[k]--; m.busy[k] == 0 {
			delete(m.busy, k)
		}
	}()

	fixed := v.fixed
	sceneGraph := v.sceneGraph
	gt0 := min(v.gt0Index, len(fixed))

	for _, l := range fixed[:gt0] {
		if m.dispatchable(l) && fn(l) {
			return
		}
	}
	for _, l := range sceneGraph {
		if m.dispatchable(l) && fn(l) {
			return
		}
	}
	for _, l := range fixed[gt0:] {
		if m.dispatchable(l) && fn(l) {
			return
		}
	}
}

// dispatchable reports whether l may receive an event now. Scene-graph
// listeners additionally need a live, active anchor with a UITransform.
func (m *Manager) dispatchable(l *Listener) bool {
	if !l.registered || !l.enabled || l.paused {
		return false
	}
	if l.IsSceneGraph() {
		return m.anchorValid(l.node)
	}
	return true
}

// onEventCallback delivers a mouse or custom event to l. It reports whether
// propagation was stopped.
func (m *Manager) onEventCallback(l *Listener, e *Event) bool {
	e.CurrentTarget = l.node
	m.safeCall(l, func() {
		switch l.kind {
		case ListenerMouse:
			var fn func(*Event)
			switch e.Type {
			case EventMouseDown:
				fn = l.mouse.OnMouseDown
			case EventMouseUp:
				fn = l.mouse.OnMouseUp
			case EventMouseMove:
				fn = l.mouse.OnMouseMove
			case EventMouseWheel:
				fn = l.mouse.OnMouseWheel
			}
			if fn != nil {
				fn(e)
			}
		case ListenerCustom:
			l.custom(e)
		}
	})
	m.emitInteractionEvent(l, e, false)
	return e.IsStopped()
}

// emitInteractionEvent forwards a delivery to the entity store, if any.
// Only scene-graph listeners are forwarded.
func (m *Manager) emitInteractionEvent(l *Listener, e *Event, claimed bool) {
	if m.store == nil || l.node == InvalidNode {
		return
	}
	ev := InteractionEvent{
		Type:      e.Type,
		Name:      e.Name,
		Node:      l.node,
		Listener:  l.id,
		Claimed:   claimed,
		X:         e.X,
		Y:         e.Y,
		Button:    e.Button,
		Modifiers: e.Modifiers,
	}
	if r, ok := m.graph.(EntityResolver); ok {
		ev.EntityID = r.EntityOf(l.node)
	}
	if e.Touch != nil {
		ev.TouchID = e.Touch.ID
		ev.X = e.Touch.X
		ev.Y = e.Touch.Y
	}
	m.store.EmitEvent(ev)
}

// flush applies the deferred mutations. Unregistered listeners are swept from
// every partition first, then pending adds and removes are applied.
func (m *Manager) flush() {
	for k, v := range m.vectors {
		v.sweep(func(l *Listener) {
			m.claims.purge(l)
			m.pending.forgetRemove(l)
			m.stats.flushed++
		})
		if v.removed {
			v.reset()
			delete(m.vectors, k)
			continue
		}
		if v.empty() {
			delete(m.vectors, k)
		}
	}

	m.pending.apply(
		func(l *Listener) {
			if l.registered {
				m.forceAdd(l)
			}
		},
		func(l *Listener) {
			if l.registered || !l.stored {
				return
			}
			if v := m.vectors[l.key()]; v != nil {
				v.remove(l)
			}
			m.claims.purge(l)
			m.stats.flushed++
		},
	)
}
