// Package layout computes the cascaded band layout of a size tree.
//
// # Overview
//
// The focus node fills the leftmost column. Its children are stacked
// top to bottom in the column to its right, each receiving a share of
// the height proportional to its size; their children cascade one more
// column to the right, and so on until the column budget runs out:
//
//	+------+------+------+
//	|      | usr  | lib  |
//	|  /   |      +------+
//	|      |      | bin  |
//	|      +------+------+
//	|      | home | ...  |
//	+------+------+------+
//
// Every band records its rectangle on the node ([tree.Node].Rect) so
// that [tree.Find] can map a click back to a node, and [Compute] also
// returns the bands in paint order for renderers.
//
// # Rounding
//
// Heights are rounded half up. A band whose height would be one unit or
// less is skipped together with its whole subtree, and the next sibling
// takes its place. Bands never extend past the bottom of their parent.
package layout
