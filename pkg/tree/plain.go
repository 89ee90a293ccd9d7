package tree

// Plain is the serialization shape of a tree: one object per node with
// its children in current sibling order. Children is never nil, so that
// encoders emit an empty list for leaves.
type Plain struct {
	Name     string  `json:"name"`
	Size     int64   `json:"size"`
	Children []Plain `json:"children"`
}

// ToPlain converts the subtree rooted at n.
func ToPlain(n *Node) Plain {
	p := Plain{
		Name:     n.Name,
		Size:     n.Size,
		Children: make([]Plain, len(n.Children)),
	}
	for i, child := range n.Children {
		p.Children[i] = ToPlain(child)
	}
	return p
}

// FromPlain rebuilds a tree from its plain form.
//
// Sizes are taken as explicit, so a dump reloads exactly as it was
// written; negative sizes are treated as unresolved and reconciled. Seq
// follows preorder and the root is used as given, never collapsed.
// Siblings sharing a name are merged the way repeated paths are merged
// by [Builder]: the later size wins.
func FromPlain(p Plain) *Node {
	seq := 0
	next := func(name string, size int64) *Node {
		n := newNode(name, size, seq)
		seq++
		return n
	}

	var merge func(parent *Node, p Plain)
	merge = func(parent *Node, p Plain) {
		child := parent.Child(p.Name)
		if child == nil {
			child = next(p.Name, p.Size)
			parent.insertChild(child)
		} else {
			child.Size = p.Size
		}
		for _, c := range p.Children {
			merge(child, c)
		}
	}

	root := next(p.Name, p.Size)
	for _, c := range p.Children {
		merge(root, c)
	}
	Reconcile(root)
	return root
}
