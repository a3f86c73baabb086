package eventcore

import (
	"slices"
	"testing"
)

// --- Constructor defaults ---

func TestNewTreeDefaults(t *testing.T) {
	tree := NewTree()
	root := tree.Root()
	if root == nil || root.ID == InvalidNode {
		t.Fatal("root should have a valid ID")
	}
	if !tree.Exists(root.ID) {
		t.Error("root should exist")
	}
	if _, ok := tree.UITransform(root.ID); ok {
		t.Error("root should not carry a UITransform")
	}
	if tree.Parent(root.ID) != InvalidNode {
		t.Error("root should have no parent")
	}
}

func TestNewUINodeDefaults(t *testing.T) {
	tree := NewTree()
	n := tree.NewUINode("btn", UITransform{CameraPriority: 2})
	if n.Name != "btn" {
		t.Errorf("Name = %q, want %q", n.Name, "btn")
	}
	if !n.Active() {
		t.Error("new nodes should be active")
	}
	ui, ok := tree.UITransform(n.ID)
	if !ok || ui.CameraPriority != 2 {
		t.Errorf("UITransform = %+v, %v", ui, ok)
	}
	if tree.Node(n.ID) != n {
		t.Error("Node lookup should return the node")
	}
}

func TestUniqueIDs(t *testing.T) {
	tree := NewTree()
	a := tree.NewNode("a")
	b := tree.NewNode("b")
	if a.ID == b.ID || a.ID == tree.Root().ID {
		t.Errorf("IDs should be unique: %d, %d, %d", tree.Root().ID, a.ID, b.ID)
	}
}

// --- AddChild ---

func TestAddChildBasic(t *testing.T) {
	tree := NewTree()
	parent := tree.NewNode("parent")
	child := tree.NewNode("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if tree.Parent(child.ID) != parent.ID {
		t.Error("tree.Parent should report parent")
	}
}

func TestAddChildReparent(t *testing.T) {
	tree := NewTree()
	p1 := tree.NewNode("p1")
	p2 := tree.NewNode("p2")
	child := tree.NewNode("child")

	p1.AddChild(child)
	p2.AddChild(child)
	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if child.Parent != p2 {
		t.Error("child.Parent should be p2")
	}
}

func TestAddChildSameParentMovesToEnd(t *testing.T) {
	tree := NewTree()
	parent := tree.NewNode("parent")
	a := tree.NewNode("a")
	b := tree.NewNode("b")
	parent.AddChild(a)
	parent.AddChild(b)

	parent.AddChild(a)
	if got := tree.Children(parent.ID); !slices.Equal(got, []NodeID{b.ID, a.ID}) {
		t.Errorf("children = %v, want [b a]", got)
	}
}

func TestAddChildCyclePanic(t *testing.T) {
	tree := NewTree()
	parent := tree.NewNode("parent")
	child := tree.NewNode("child")
	grandchild := tree.NewNode("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for cycle, got none")
		}
	}()
	grandchild.AddChild(parent)
}

func TestAddChildNilPanic(t *testing.T) {
	n := NewTree().NewNode("n")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil child, got none")
		}
	}()
	n.AddChild(nil)
}

func TestAddChildForeignTreePanic(t *testing.T) {
	a := NewTree().NewNode("a")
	b := NewTree().NewNode("b")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for foreign child, got none")
		}
	}()
	a.AddChild(b)
}

func TestAddChildAt(t *testing.T) {
	tree := NewTree()
	parent := tree.NewNode("parent")
	a := tree.NewNode("a")
	b := tree.NewNode("b")
	c := tree.NewNode("c")
	parent.AddChild(a)
	parent.AddChild(c)
	parent.AddChildAt(b, 1)

	if got := tree.Children(parent.ID); !slices.Equal(got, []NodeID{a.ID, b.ID, c.ID}) {
		t.Errorf("children = %v, want [a b c]", got)
	}
	if tree.SiblingIndex(c.ID) != 2 {
		t.Errorf("SiblingIndex(c) = %d, want 2", tree.SiblingIndex(c.ID))
	}
}

// --- RemoveChild ---

func TestRemoveChild(t *testing.T) {
	tree := NewTree()
	parent := tree.NewNode("parent")
	child := tree.NewNode("child")
	parent.AddChild(child)
	parent.RemoveChild(child)

	if parent.NumChildren() != 0 {
		t.Error("parent should have 0 children")
	}
	if child.Parent != nil {
		t.Error("child.Parent should be nil")
	}
}

func TestRemoveChildWrongParentPanic(t *testing.T) {
	tree := NewTree()
	p1 := tree.NewNode("p1")
	p2 := tree.NewNode("p2")
	child := tree.NewNode("child")
	p1.AddChild(child)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for wrong parent, got none")
		}
	}()
	p2.RemoveChild(child)
}

func TestRemoveFromParentNoOp(t *testing.T) {
	n := NewTree().NewNode("n")
	n.RemoveFromParent()
	if n.Parent != nil {
		t.Error("orphan should stay orphan")
	}
}

// --- SetChildIndex ---

func TestSetChildIndex(t *testing.T) {
	tree := NewTree()
	parent := tree.NewNode("parent")
	a := tree.NewNode("a")
	b := tree.NewNode("b")
	c := tree.NewNode("c")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	parent.SetChildIndex(a, 2)
	if got := tree.Children(parent.ID); !slices.Equal(got, []NodeID{b.ID, c.ID, a.ID}) {
		t.Errorf("children = %v, want [b c a]", got)
	}
	parent.SetChildIndex(a, 0)
	if got := tree.Children(parent.ID); !slices.Equal(got, []NodeID{a.ID, b.ID, c.ID}) {
		t.Errorf("children = %v, want [a b c]", got)
	}
}

func TestSetChildIndexOutOfRangePanic(t *testing.T) {
	tree := NewTree()
	parent := tree.NewNode("parent")
	a := tree.NewNode("a")
	parent.AddChild(a)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for out-of-range index, got none")
		}
	}()
	parent.SetChildIndex(a, 1)
}

// --- Activation ---

func TestActiveInHierarchy(t *testing.T) {
	tree := NewTree()
	parent := tree.NewNode("parent")
	child := tree.NewNode("child")
	tree.Root().AddChild(parent)
	parent.AddChild(child)

	if !tree.ActiveInHierarchy(child.ID) {
		t.Error("child should be active")
	}
	parent.SetActive(false)
	if tree.ActiveInHierarchy(child.ID) {
		t.Error("child of inactive parent should be inactive in hierarchy")
	}
	if !child.Active() {
		t.Error("child's own flag should be unchanged")
	}
	if tree.ActiveInHierarchy(InvalidNode) {
		t.Error("InvalidNode is never active")
	}
}

func TestTreeNotifiesObservers(t *testing.T) {
	tree := NewTree()
	a := tree.NewUINode("a", UITransform{})
	b := tree.NewNode("b")

	var got []NodeID
	tree.OnActivationChanged(func(id NodeID) { got = append(got, id) })

	tree.Root().AddChild(a)         // root
	a.SetActive(false)              // a
	a.SetActive(false)              // no change
	b.SetUITransform(UITransform{}) // b
	a.ClearUITransform()            // a
	a.ClearUITransform()            // no change
	tree.Root().RemoveChild(a)      // root, a

	want := []NodeID{tree.Root().ID, a.ID, b.ID, a.ID, tree.Root().ID, a.ID}
	if !slices.Equal(got, want) {
		t.Errorf("notifications = %v, want %v", got, want)
	}
}

// --- Dispose ---

func TestDispose(t *testing.T) {
	tree := NewTree()
	parent := tree.NewNode("parent")
	child := tree.NewNode("child")
	tree.Root().AddChild(parent)
	parent.AddChild(child)

	parent.Dispose()
	if !parent.IsDisposed() || !child.IsDisposed() {
		t.Error("parent and child should be disposed")
	}
	if tree.Exists(parent.ID) || tree.Exists(child.ID) {
		t.Error("disposed nodes should not exist")
	}
	if tree.Root().NumChildren() != 0 {
		t.Error("root should have no children")
	}
	if tree.Node(child.ID) != nil {
		t.Error("lookup of disposed node should return nil")
	}
}

func TestDisposeIdempotent(t *testing.T) {
	n := NewTree().NewNode("n")
	n.Dispose()
	n.Dispose()
	if !n.IsDisposed() {
		t.Error("node should be disposed")
	}
}

// --- HitTest ---

func TestNodeHitTest(t *testing.T) {
	tree := NewTree()
	n := tree.NewUINode("n", UITransform{HitArea: HitCircle{CenterX: 10, CenterY: 10, Radius: 5}})
	if !n.HitTest(12, 12) {
		t.Error("point inside circle should hit")
	}
	if n.HitTest(20, 20) {
		t.Error("point outside circle should miss")
	}
	if tree.NewUINode("bare", UITransform{}).HitTest(0, 0) {
		t.Error("node without hit area should never hit")
	}
	if tree.NewNode("plain").HitTest(0, 0) {
		t.Error("node without UITransform should never hit")
	}
}

func TestEntityOf(t *testing.T) {
	tree := NewTree()
	n := tree.NewNode("n")
	n.EntityID = 9
	if tree.EntityOf(n.ID) != 9 {
		t.Errorf("EntityOf = %d, want 9", tree.EntityOf(n.ID))
	}
	if tree.EntityOf(InvalidNode) != 0 {
		t.Error("EntityOf(InvalidNode) should be 0")
	}
}
