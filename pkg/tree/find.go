package tree

// Find returns the node whose last rectangle contains (x, y).
//
// n itself wins if its own rectangle contains the point; otherwise the
// children are searched in sibling order and the first match is
// returned. Find returns nil when nothing in the subtree contains the
// point.
func Find(n *Node, x, y int) *Node {
	if n.Rect.Contains(x, y) {
		return n
	}
	for _, child := range n.Children {
		if found := Find(child, x, y); found != nil {
			return found
		}
	}
	return nil
}
