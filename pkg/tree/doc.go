// Package tree provides the size tree behind goxdu's cascade view.
//
// A tree is built from flat (size, path) records, such as the output of
// du(1), and then reconciled so that every directory without an explicit
// size carries the sum of its children.
//
// # Building
//
// [Builder] descends from a synthetic root one path segment at a time,
// reusing nodes for repeated segments:
//
//	b := tree.NewBuilder()
//	b.Add(20, []string{"/", "foo", "bar"})
//	b.Add(10, []string{"/", "foo", "baz"})
//	root := b.Root() // "/" (the synthetic root collapsed), size 30
//
// [Parse] does the same for a line-oriented reader, reporting malformed
// lines through [ParseOptions].OnSkip instead of failing.
//
// # Ordering
//
// Siblings can be re-sorted with [Sort] using one of six [Order] values.
// Every order has an opposite ([Order.Negate]), and ties always fall back
// to creation order, so sorting is idempotent.
//
// # Rectangles
//
// Each [Node] remembers the [Rect] it was last drawn in. The layout
// package writes these; [Find] reads them back to map a screen point to
// a node, and [ClearRects] invalidates them before a new pass.
package tree
