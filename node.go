package eventcore

// Tree is a minimal arena-backed scene graph. Nodes are addressed by stable
// NodeIDs so listeners never hold node pointers. It implements SceneGraph and
// ActivationNotifier.
type Tree struct {
	root   *Node
	nodes  map[NodeID]*Node
	nextID NodeID
	hooks  []func(NodeID)
}

// Node is a scene-graph element owned by a Tree.
type Node struct {
	// Identity
	ID   NodeID
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node
	tree     *Tree

	// Metadata
	UserData any
	EntityID uint32

	active   bool
	ui       *UITransform
	disposed bool
}

// NewTree creates a tree with an active root node. The root carries no
// UITransform, so listeners cannot be anchored to it.
func NewTree() *Tree {
	t := &Tree{nodes: make(map[NodeID]*Node)}
	t.root = t.NewNode("root")
	return t
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node {
	return t.root
}

// NewNode creates a detached, active node. Attach it with AddChild.
func (t *Tree) NewNode(name string) *Node {
	t.nextID++
	n := &Node{ID: t.nextID, Name: name, tree: t, active: true}
	t.nodes[n.ID] = n
	return n
}

// NewUINode creates a detached, active node carrying a UITransform.
func (t *Tree) NewUINode(name string, ui UITransform) *Node {
	n := t.NewNode(name)
	n.ui = &ui
	return n
}

// Node returns the live node with the given ID, or nil.
func (t *Tree) Node(id NodeID) *Node {
	return t.nodes[id]
}

// OnActivationChanged registers fn to be called with the ID of any node whose
// activation, UI capability or sibling order changes.
func (t *Tree) OnActivationChanged(fn func(id NodeID)) {
	t.hooks = append(t.hooks, fn)
}

func (t *Tree) notify(id NodeID) {
	for _, fn := range t.hooks {
		fn(id)
	}
}

// --- SceneGraph ---

// Exists reports whether id names a live node.
func (t *Tree) Exists(id NodeID) bool {
	return t.nodes[id] != nil
}

// Parent returns the parent of id, or InvalidNode.
func (t *Tree) Parent(id NodeID) NodeID {
	n := t.nodes[id]
	if n == nil || n.Parent == nil {
		return InvalidNode
	}
	return n.Parent.ID
}

// Children returns the IDs of id's children in sibling order.
func (t *Tree) Children(id NodeID) []NodeID {
	n := t.nodes[id]
	if n == nil || len(n.children) == 0 {
		return nil
	}
	ids := make([]NodeID, len(n.children))
	for i, c := range n.children {
		ids[i] = c.ID
	}
	return ids
}

// SiblingIndex returns the position of id among its siblings, or 0 for roots.
func (t *Tree) SiblingIndex(id NodeID) int {
	n := t.nodes[id]
	if n == nil || n.Parent == nil {
		return 0
	}
	return n.Parent.indexOf(n)
}

// ActiveInHierarchy reports whether id and every ancestor are active.
func (t *Tree) ActiveInHierarchy(id NodeID) bool {
	n := t.nodes[id]
	if n == nil {
		return false
	}
	return n.ActiveInHierarchy()
}

// UITransform returns the node's UI capability marker, if any.
func (t *Tree) UITransform(id NodeID) (UITransform, bool) {
	n := t.nodes[id]
	if n == nil || n.ui == nil {
		return UITransform{}, false
	}
	return *n.ui, true
}

// EntityOf returns the ECS entity bound to id, or 0.
func (t *Tree) EntityOf(id NodeID) uint32 {
	if n := t.nodes[id]; n != nil {
		return n.EntityID
	}
	return 0
}

// --- Node state ---

// Active reports the node's own active flag.
func (n *Node) Active() bool {
	return n.active
}

// ActiveInHierarchy reports whether the node and all of its ancestors are active.
func (n *Node) ActiveInHierarchy() bool {
	for p := n; p != nil; p = p.Parent {
		if !p.active {
			return false
		}
	}
	return true
}

// SetActive changes the node's active flag and notifies the tree's observers.
func (n *Node) SetActive(active bool) {
	if n.active == active {
		return
	}
	n.active = active
	n.tree.notify(n.ID)
}

// SetUITransform attaches a UI capability marker.
func (n *Node) SetUITransform(ui UITransform) {
	n.ui = &ui
	n.tree.notify(n.ID)
}

// ClearUITransform removes the UI capability marker. Listeners anchored here
// stay registered but are no longer dispatched.
func (n *Node) ClearUITransform() {
	if n.ui == nil {
		return
	}
	n.ui = nil
	n.tree.notify(n.ID)
}

// HitTest reports whether the world point (x, y) lies in the node's hit area.
// Nodes without a UITransform or HitArea are never hit.
func (n *Node) HitTest(x, y float64) bool {
	if n.ui == nil || n.ui.HitArea == nil {
		return false
	}
	return n.ui.HitArea.Contains(x, y)
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil, belongs to another tree, or is an ancestor of this
// node (cycle).
func (n *Node) AddChild(child *Node) {
	n.attach(child, -1)
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	n.attach(child, index)
}

// attach inserts child at index after detaching it; index < 0 appends.
func (n *Node) attach(child *Node, index int) {
	if child == nil {
		panic("eventcore: cannot add nil child")
	}
	if child.tree != n.tree {
		panic("eventcore: child belongs to a different tree")
	}
	if n.disposed || child.disposed {
		panic("eventcore: AddChild on disposed node")
	}
	if isAncestor(child, n) {
		panic("eventcore: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if index < 0 {
		index = len(n.children)
	}
	if index > len(n.children) {
		panic("eventcore: child index out of range")
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	n.tree.notify(n.ID)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("eventcore: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.tree.notify(n.ID)
	n.tree.notify(child.ID)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// SetChildIndex moves child to a new index among its siblings.
func (n *Node) SetChildIndex(child *Node, index int) {
	if child.Parent != n {
		panic("eventcore: child's parent is not this node")
	}
	if index < 0 || index >= len(n.children) {
		panic("eventcore: child index out of range")
	}
	oldIndex := n.indexOf(child)
	if oldIndex == index {
		return
	}
	// Shift elements to fill the gap and open the target slot.
	if oldIndex < index {
		copy(n.children[oldIndex:], n.children[oldIndex+1:index+1])
	} else {
		copy(n.children[index+1:], n.children[index:oldIndex])
	}
	n.children[index] = child
	n.tree.notify(n.ID)
}

// --- Disposal ---

// Dispose removes this node from its parent, drops it and all descendants
// from the tree, and invalidates their IDs. Callers should remove anchored
// listeners first with Manager.RemoveListenersForNode.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	delete(n.tree.nodes, n.ID)
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.ui = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

func (n *Node) indexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	i := n.indexOf(child)
	if i < 0 {
		return
	}
	copy(n.children[i:], n.children[i+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
}
