// Package view holds the interactive state of a cascade view.
//
// A [Controller] owns the overall root of a size tree, the node currently
// in focus, the sibling order, the column budget, and the viewport. Every
// command mutates that state and then repaints, so that [Controller.Frame]
// always reflects the latest layout and hit-testing always runs against
// fresh rectangles.
//
// The controller knows nothing about terminals or mouse events: the
// caller decodes raw input into [Point]s, digits and orders, and the
// controller turns them into state transitions.
//
//	c := view.New(root, view.Options{Order: tree.OrderSize})
//	c.Resize(120, 40)
//	c.Navigate(view.Point{X: 25, Y: 3}) // drill into the band under the cursor
//	for _, band := range c.Frame() {
//	    draw(band)
//	}
package view
