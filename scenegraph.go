package eventcore

//go:generate mockgen -destination=mock/mock_scenegraph.go -package=mockeventcore -source=scenegraph.go

// NodeID is the stable identity of a scene-graph node. Listeners store the ID,
// never the node itself.
type NodeID uint32

// InvalidNode is the zero NodeID. It never names a live node.
const InvalidNode NodeID = 0

// SceneGraph is the read-only view of the scene hierarchy the manager needs
// for ordering and for pause/resume cascades. The manager never mutates it.
type SceneGraph interface {
	// Exists reports whether id names a live node.
	Exists(id NodeID) bool
	// Parent returns the parent of id, or InvalidNode for a root.
	Parent(id NodeID) NodeID
	// Children returns the children of id in sibling order.
	Children(id NodeID) []NodeID
	// SiblingIndex returns the position of id among its parent's children.
	SiblingIndex(id NodeID) int
	// ActiveInHierarchy reports whether id and all of its ancestors are active.
	ActiveInHierarchy(id NodeID) bool
	// UITransform returns the node's UI capability marker, if it has one.
	UITransform(id NodeID) (UITransform, bool)
}

// ActivationNotifier is implemented by scene graphs that report activation
// and sibling order changes. NewManager subscribes to it so listener order is
// recomputed on the next dispatch.
type ActivationNotifier interface {
	OnActivationChanged(fn func(id NodeID))
}
