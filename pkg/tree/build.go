package tree

import "strings"

// Builder assembles a tree from (size, path) records.
//
// The builder owns the sequence counter used for [Node.Seq], so
// independent builders never share state. The zero value is not usable;
// call [NewBuilder]. A Builder is not safe for concurrent use.
type Builder struct {
	root *Node
	seq  int
	done *Node
}

// NewBuilder creates a builder holding only the synthetic root.
func NewBuilder() *Builder {
	b := &Builder{}
	b.root = b.node(RootName, Unresolved)
	return b
}

func (b *Builder) node(name string, size int64) *Node {
	n := newNode(name, size, b.seq)
	b.seq++
	return n
}

// Add records size for the node at the given path, creating every
// missing node along the way with an unresolved size. Repeated paths
// reuse the same node and the latest size wins. An empty path is ignored.
func (b *Builder) Add(size int64, segments []string) {
	if len(segments) == 0 {
		return
	}
	cur := b.root
	for _, seg := range segments {
		child := cur.Child(seg)
		if child == nil {
			child = b.node(seg, Unresolved)
			cur.insertChild(child)
		}
		cur = child
	}
	cur.Size = size
}

// Nodes returns the number of nodes created so far, including the
// synthetic root.
func (b *Builder) Nodes() int { return b.seq }

// Root finishes the build and returns the effective root.
//
// If the synthetic root has exactly one child, that child becomes the
// root and its parent link is cleared. The returned tree is reconciled.
// Root may be called more than once; the builder must not be fed more
// records afterwards.
func (b *Builder) Root() *Node {
	if b.done != nil {
		return b.done
	}
	top := b.root
	if len(top.Children) == 1 {
		top = top.Children[0]
		top.Parent = nil
	}
	Reconcile(top)
	b.done = top
	return top
}

// SplitPath splits path on sep and normalizes the segments.
//
// A leading separator yields [RootMarker] as the first segment; empty
// and "." segments are dropped. The result is empty when nothing is
// left, in which case the record should be discarded.
func SplitPath(path, sep string) []string {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, sep)
	if len(parts) > 0 && parts[0] == "" {
		parts[0] = RootMarker
	}
	out := parts[:0]
	for _, p := range parts {
		if p == "" || p == "." {
			continue
		}
		out = append(out, p)
	}
	return out
}
