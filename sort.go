package eventcore

import (
	"cmp"
	"slices"
	"sort"
)

// sortListeners resorts partition k if its dirty bits are set.
func (m *Manager) sortListeners(k listenerKey) {
	flag := m.dirty.take(k)
	if flag == dirtyNone {
		return
	}
	v := m.vectors[k]
	if v == nil {
		return
	}
	if flag&dirtyFixed != 0 {
		sortFixed(v)
	}
	if flag&dirtySceneGraph != 0 {
		m.sortSceneGraph(v)
	}
	m.stats.sorts++
}

// sortFixed orders fixed listeners ascending by priority, ties by registration
// order, and recomputes gt0Index.
func sortFixed(v *listenerVector) {
	if len(v.fixed) == 0 {
		v.gt0Index = 0
		return
	}
	slices.SortFunc(v.fixed, compareFixed)
	v.gt0Index = sort.Search(len(v.fixed), func(i int) bool {
		return v.fixed[i].fixedPriority >= 0
	})
}

func compareFixed(a, b *Listener) int {
	if c := cmp.Compare(a.fixedPriority, b.fixedPriority); c != 0 {
		return c
	}
	return cmp.Compare(a.seq, b.seq)
}

// sortSceneGraph refreshes each listener's cached camera priority and anchor
// path, then orders the scene-graph listeners topmost first.
func (m *Manager) sortSceneGraph(v *listenerVector) {
	if len(v.sceneGraph) == 0 {
		return
	}
	for _, l := range v.sceneGraph {
		m.refreshSortCache(l)
	}
	slices.SortStableFunc(v.sceneGraph, compareSceneGraph)
}

// refreshSortCache records whether l's anchor can compete for events, its
// camera priority, and the sibling-index path from the root to the anchor.
func (m *Manager) refreshSortCache(l *Listener) {
	l.path = l.path[:0]
	l.valid = m.anchorValid(l.node)
	if !l.valid {
		l.cameraPriority = 0
		return
	}
	ui, _ := m.graph.UITransform(l.node)
	l.cameraPriority = ui.CameraPriority
	for id := l.node; id != InvalidNode; id = m.graph.Parent(id) {
		l.path = append(l.path, m.graph.SiblingIndex(id))
	}
	slices.Reverse(l.path)
}

// anchorValid reports whether a listener anchored to id may be dispatched:
// the node exists, is active in hierarchy and carries a UITransform.
func (m *Manager) anchorValid(id NodeID) bool {
	if id == InvalidNode || !m.graph.Exists(id) {
		return false
	}
	if !m.graph.ActiveInHierarchy(id) {
		return false
	}
	_, ok := m.graph.UITransform(id)
	return ok
}

// compareSceneGraph orders listeners so that the visually topmost anchor
// comes first. Invalid anchors sort last. Higher camera priority wins; then,
// at the first level where the anchor paths diverge, the higher sibling index
// wins; a descendant beats its ancestor.
func compareSceneGraph(a, b *Listener) int {
	switch {
	case !a.valid && !b.valid:
		return 0
	case !b.valid:
		return -1
	case !a.valid:
		return 1
	}
	if a.cameraPriority != b.cameraPriority {
		return cmp.Compare(b.cameraPriority, a.cameraPriority)
	}
	n := min(len(a.path), len(b.path))
	for i := 0; i < n; i++ {
		if a.path[i] != b.path[i] {
			return cmp.Compare(b.path[i], a.path[i])
		}
	}
	// One path is a prefix of the other: the deeper node is drawn later.
	return cmp.Compare(len(b.path), len(a.path))
}
