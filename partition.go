package eventcore

import "slices"

// listenerKey identifies a partition. Touch and mouse partitions have an
// empty name; custom partitions are keyed by event name.
type listenerKey struct {
	kind ListenerType
	name string
}

func (k listenerKey) String() string {
	if k.name == "" {
		return k.kind.String()
	}
	return k.kind.String() + ":" + k.name
}

// listenerVector holds the listeners of one partition. After a fixed resort,
// fixed[:gt0Index] have priority < 0 and fixed[gt0Index:] have priority > 0.
type listenerVector struct {
	fixed      []*Listener
	sceneGraph []*Listener
	gt0Index   int
	removed    bool // unregistered as a whole while dispatching; dropped at flush
}

func (v *listenerVector) size() int {
	return len(v.fixed) + len(v.sceneGraph)
}

func (v *listenerVector) empty() bool {
	return v.size() == 0
}

func (v *listenerVector) push(l *Listener) {
	if l.IsSceneGraph() {
		v.sceneGraph = append(v.sceneGraph, l)
	} else {
		v.fixed = append(v.fixed, l)
	}
	l.stored = true
}

// remove excises l from whichever list holds it. Reports whether it was found.
func (v *listenerVector) remove(l *Listener) bool {
	if i := slices.Index(v.sceneGraph, l); i >= 0 {
		v.sceneGraph = slices.Delete(v.sceneGraph, i, i+1)
		l.stored = false
		return true
	}
	if i := slices.Index(v.fixed, l); i >= 0 {
		v.fixed = slices.Delete(v.fixed, i, i+1)
		if i < v.gt0Index {
			v.gt0Index--
		}
		l.stored = false
		return true
	}
	return false
}

// sweep drops every listener whose registered flag went false and calls fn
// for each one dropped.
func (v *listenerVector) sweep(fn func(*Listener)) {
	v.sceneGraph = sweepList(v.sceneGraph, fn)

	// Keep gt0Index pointing at the first non-negative fixed listener.
	kept := v.fixed[:0]
	gt0 := 0
	for i, l := range v.fixed {
		if !l.registered {
			l.stored = false
			fn(l)
			continue
		}
		if i < v.gt0Index {
			gt0++
		}
		kept = append(kept, l)
	}
	clear(v.fixed[len(kept):])
	v.fixed = kept
	v.gt0Index = gt0
}

func sweepList(list []*Listener, fn func(*Listener)) []*Listener {
	kept := list[:0]
	for _, l := range list {
		if !l.registered {
			l.stored = false
			fn(l)
			continue
		}
		kept = append(kept, l)
	}
	clear(list[len(kept):])
	return kept
}

// reset marks every listener in the partition as no longer stored and empties it.
func (v *listenerVector) reset() {
	for _, l := range v.fixed {
		l.stored = false
	}
	for _, l := range v.sceneGraph {
		l.stored = false
	}
	v.fixed = nil
	v.sceneGraph = nil
	v.gt0Index = 0
}
