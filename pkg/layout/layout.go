package layout

import (
	"math"

	"github.com/matzehuels/goxdu/pkg/tree"
)

// MinBandHeight is the smallest height that is still drawn.
// Bands of this height or less are suppressed.
const MinBandHeight = 1

// Viewport is the drawable area in viewport units.
type Viewport struct {
	Width, Height int
}

// Band is one rectangle drawn by a layout pass.
type Band struct {
	Node  *tree.Node
	Rect  tree.Rect
	Depth int // columns to the right of the focus node
}

// Compute lays out the subtree rooted at root inside vp.
//
// Rectangles in the subtree are invalidated first. The viewport width
// is divided into that many equal columns (integer division); root takes the
// first one and its descendants use the remaining columns-1. A column
// count below one is treated as one. The returned bands are in preorder.
func Compute(root *tree.Node, vp Viewport, columns int) []Band {
	tree.ClearRects(root)
	if columns < 1 {
		columns = 1
	}
	rect := tree.Rect{Left: 0, Top: 0, Width: vp.Width / columns, Height: vp.Height}

	l := &pass{}
	l.node(root, rect, columns-1, 0)
	return l.bands
}

// Node assigns rect to n and lays out its descendants in the columns to
// the right, using at most remaining further columns. It does not clear
// stale rectangles; use [Compute] for a full pass.
func Node(n *tree.Node, rect tree.Rect, remaining int) []Band {
	l := &pass{}
	l.node(n, rect, remaining, 0)
	return l.bands
}

type pass struct {
	bands []Band
}

func (l *pass) node(n *tree.Node, rect tree.Rect, remaining, depth int) {
	n.Rect = rect
	l.bands = append(l.bands, Band{Node: n, Rect: rect, Depth: depth})

	sub := tree.Rect{Left: rect.Right(), Top: rect.Top, Width: rect.Width, Height: rect.Height}
	l.children(n, sub, remaining, depth+1)
}

// children stacks n's children inside rect, which is the band directly
// to the right of n.
func (l *pass) children(n *tree.Node, rect tree.Rect, remaining, depth int) {
	if remaining <= 0 || len(n.Children) == 0 {
		return
	}

	var total int64
	for _, c := range n.Children {
		total += c.Size
	}
	if total == 0 {
		total = n.Size
	}
	if total <= 0 {
		return
	}

	top := rect.Top
	for _, c := range n.Children {
		h := min(bandHeight(c.Size, total, rect.Height), rect.Bottom()-top)
		if h <= MinBandHeight {
			continue
		}
		l.node(c, tree.Rect{Left: rect.Left, Top: top, Width: rect.Width, Height: h}, remaining-1, depth)
		top += h
	}
}

// bandHeight returns size/total of height, rounded half up.
func bandHeight(size, total int64, height int) int {
	return int(math.Floor(float64(size)/float64(total)*float64(height) + 0.5))
}
