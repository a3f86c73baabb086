package eventcore

import "slices"

// claimTracker records which listeners own which touches. owners maps a touch
// ID to its claimants in claim order; the per-listener sets on Listener are the
// authority for delivery. In single-touch mode current is the one touch that
// blocks new touch-starts until it ends.
type claimTracker struct {
	owners          map[int][]*Listener
	current         *Touch
	currentListener *Listener
}

func newClaimTracker() claimTracker {
	return claimTracker{owners: make(map[int][]*Listener)}
}

// owner returns the earliest remaining claimant of the touch.
func (c *claimTracker) owner(touchID int) (*Listener, bool) {
	list := c.owners[touchID]
	if len(list) == 0 {
		return nil, false
	}
	return list[0], true
}

// claim records that l owns t. In single-touch mode it also takes the
// current-touch slot, releasing a stale previous holder.
func (c *claimTracker) claim(t *Touch, l *Listener, single bool) {
	l.addClaim(t.ID)
	if !slices.Contains(c.owners[t.ID], l) {
		c.owners[t.ID] = append(c.owners[t.ID], l)
	}
	if !single {
		return
	}
	if c.current != nil && c.current.ID != t.ID && c.currentListener != nil {
		c.release(c.current.ID, c.currentListener)
	}
	c.current = t
	c.currentListener = l
}

// release drops l's claim on the touch.
func (c *claimTracker) release(touchID int, l *Listener) {
	l.dropClaim(touchID)
	c.dropOwner(touchID, l)
	if c.current != nil && c.current.ID == touchID && c.currentListener == l {
		c.clearCurrent()
	}
}

// purge drops every claim held by l. Shared touches pass to the next claimant.
func (c *claimTracker) purge(l *Listener) {
	for id := range l.claimed {
		c.dropOwner(id, l)
	}
	clear(l.claimed)
	if c.currentListener == l {
		c.clearCurrent()
	}
}

func (c *claimTracker) dropOwner(touchID int, l *Listener) {
	list := slices.DeleteFunc(c.owners[touchID], func(o *Listener) bool { return o == l })
	if len(list) == 0 {
		delete(c.owners, touchID)
		return
	}
	c.owners[touchID] = list
}

func (c *claimTracker) clearCurrent() {
	c.current = nil
	c.currentListener = nil
}

// dispatchTouchEvent runs one pass over the touch partition for each touch in
// e.Touches. e.Touches is replaced by a working copy for the duration of the
// dispatch so swallowing listeners can hide touches from later listeners; the
// caller's slice is restored afterwards. Nil touches are ignored.
func (m *Manager) dispatchTouchEvent(e *Event) {
	k := listenerKey{kind: ListenerTouch}
	m.sortIfIdle(k)
	v := m.vectors[k]
	if v == nil || len(e.Touches) == 0 {
		return
	}

	original := e.Touches
	e.Touches = slices.DeleteFunc(slices.Clone(original), func(t *Touch) bool { return t == nil })
	defer func() {
		e.Touches = original
		e.Touch = nil
	}()

	for _, t := range original {
		if t == nil {
			continue
		}
		e.Touch = t
		e.stopped = false
		m.dispatchToListeners(k, v, func(l *Listener) bool {
			return m.onTouchCallback(l, e)
		})
	}
}

// onTouchCallback offers e.Touch to l. It reports whether the pass over the
// current touch should end, which happens when propagation is stopped or a
// swallowing listener holds the touch.
func (m *Manager) onTouchCallback(l *Listener, e *Event) bool {
	t := e.Touch
	e.CurrentTarget = l.node
	claimed := false

	switch e.Type {
	case EventTouchStart:
		if m.touchBlocked() {
			return false
		}
		var began bool
		m.safeCall(l, func() {
			began = l.touch.OnTouchBegan(t, e)
		})
		// A listener paused or removed by its own callback cannot take the touch.
		if began && l.registered && !l.paused {
			m.claims.claim(t, l, !m.multiTouch)
			claimed = true
		}

	case EventTouchMove, EventTouchEnd, EventTouchCancel:
		if !l.Claims(t.ID) {
			return false
		}
		if !m.multiTouch && m.claims.current != nil && m.claims.current.ID != t.ID {
			return false
		}
		claimed = true
		var fn func(*Touch, *Event)
		switch e.Type {
		case EventTouchMove:
			fn = l.touch.OnTouchMoved
		case EventTouchEnd:
			fn = l.touch.OnTouchEnded
		default:
			fn = l.touch.OnTouchCancelled
		}
		if fn != nil {
			m.safeCall(l, func() { fn(t, e) })
		}
		if e.Type != EventTouchMove {
			m.claims.release(t.ID, l)
		}
	}

	m.emitInteractionEvent(l, e, claimed)

	if e.IsStopped() {
		return true
	}
	if claimed && l.registered && l.SwallowTouches {
		e.Touches = slices.DeleteFunc(e.Touches, func(o *Touch) bool {
			return o.ID == t.ID
		})
		return true
	}
	return false
}

// touchBlocked reports whether a touch-start must be refused because another
// touch holds the single-touch slot. A holder whose anchor has gone inactive
// or been destroyed no longer blocks; fixed-priority holders always do.
func (m *Manager) touchBlocked() bool {
	if m.multiTouch || m.claims.current == nil {
		return false
	}
	holder := m.claims.currentListener
	if holder == nil || !holder.IsSceneGraph() {
		return true
	}
	node := holder.node
	return node != InvalidNode && m.graph.Exists(node) && m.graph.ActiveInHierarchy(node)
}
