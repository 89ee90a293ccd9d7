package tree

// Reconcile resolves every [Unresolved] size in the subtree rooted at n
// and returns n's final size.
//
// Children are reconciled first. An unresolved node takes the sum of its
// children (0 for a leaf). Explicit sizes are authoritative and are kept
// even when they disagree with the children's sum.
func Reconcile(n *Node) int64 {
	var sum int64
	for _, child := range n.Children {
		sum += Reconcile(child)
	}
	if n.Size < 0 {
		n.Size = sum
	}
	return n.Size
}
