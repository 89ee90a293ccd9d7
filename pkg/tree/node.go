package tree

import "fmt"

const (
	// Unresolved marks a node whose size was never given explicitly.
	// [Reconcile] replaces it with the sum of the node's children.
	Unresolved int64 = -1

	// RootName is the label of the synthetic root created by [NewBuilder].
	RootName = "[root]"

	// RootMarker replaces the empty leading segment of an absolute path.
	RootMarker = "/"
)

// Rect is a rectangle in viewport units (terminal cells or pixels).
// The zero value is an empty rectangle that contains no point.
type Rect struct {
	Left, Top     int
	Width, Height int
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.Left + r.Width }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Top + r.Height }

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether (x, y) lies inside r. Both axes are half-open:
// left <= x < left+width and top <= y < top+height.
func (r Rect) Contains(x, y int) bool {
	return r.Left <= x && x < r.Right() && r.Top <= y && y < r.Bottom()
}

// Node is one entry in the size tree.
//
// Parent is a back-reference used for upward navigation only; a tree is
// owned top-down through Children. Children may be re-sorted, but the set
// of children is fixed once the tree has been built.
type Node struct {
	Name     string
	Size     int64 // Unresolved until reconciled
	Seq      int   // creation order across the whole tree
	Rect     Rect  // last rectangle assigned by a layout pass
	Children []*Node
	Parent   *Node

	byName map[string]*Node
}

func newNode(name string, size int64, seq int) *Node {
	return &Node{Name: name, Size: size, Seq: seq}
}

// Child returns the direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	return n.byName[name]
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Depth returns the number of parent links between n and its root.
func (n *Node) Depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// Path returns the names from the root down to n.
func (n *Node) Path() []string {
	var names []string
	for p := n; p != nil; p = p.Parent {
		names = append(names, p.Name)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return names
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	c := 1
	for _, child := range n.Children {
		c += child.Count()
	}
	return c
}

func (n *Node) String() string {
	return fmt.Sprintf("<Node: %s, %d, children=%d>", n.Name, n.Size, len(n.Children))
}

func (n *Node) insertChild(child *Node) {
	if n.byName == nil {
		n.byName = make(map[string]*Node)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
	n.byName[child.Name] = child
}

// Walk calls fn for n and every descendant in preorder, following the
// current sibling order. Returning false from fn skips that node's subtree.
func Walk(n *Node, fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		Walk(child, fn)
	}
}

// ClearRects resets the rectangle of n and all its descendants, so that
// bands skipped by the next layout pass cannot be hit-tested.
func ClearRects(n *Node) {
	n.Rect = Rect{}
	for _, child := range n.Children {
		ClearRects(child)
	}
}
