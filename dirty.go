package eventcore

// dirtyFlag records which orderings of a partition must be recomputed before
// the next dispatch.
type dirtyFlag uint8

const (
	dirtyNone       dirtyFlag = 0
	dirtyFixed      dirtyFlag = 1 << 0
	dirtySceneGraph dirtyFlag = 1 << 1
	dirtyAll                  = dirtyFixed | dirtySceneGraph
)

// dirtyTracker holds per-partition dirty bits plus the partitions touched by
// node changes since the last outer dispatch. Node changes are only folded
// into dirty bits once per outer dispatch.
type dirtyTracker struct {
	flags map[listenerKey]dirtyFlag
	nodes map[listenerKey]struct{}
}

func newDirtyTracker() dirtyTracker {
	return dirtyTracker{
		flags: make(map[listenerKey]dirtyFlag),
		nodes: make(map[listenerKey]struct{}),
	}
}

func (d *dirtyTracker) set(k listenerKey, f dirtyFlag) {
	d.flags[k] |= f
}

// take returns the partition's dirty bits and clears them.
func (d *dirtyTracker) take(k listenerKey) dirtyFlag {
	f := d.flags[k]
	delete(d.flags, k)
	return f
}

func (d *dirtyTracker) drop(k listenerKey) {
	delete(d.flags, k)
	delete(d.nodes, k)
}

// markNode records that the scene-graph order of partition k may have changed.
func (d *dirtyTracker) markNode(k listenerKey) {
	d.nodes[k] = struct{}{}
}

// foldNodes converts accumulated node dirt into scene-graph dirty bits.
func (d *dirtyTracker) foldNodes() {
	for k := range d.nodes {
		d.set(k, dirtySceneGraph)
		delete(d.nodes, k)
	}
}
