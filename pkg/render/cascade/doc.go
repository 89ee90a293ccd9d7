// Package cascade draws layout bands as a cascade view.
//
// A cascade view shows one tree level per column. The focus node fills
// the first column; every child is stacked to the right of its parent,
// with a height proportional to its size. The bands come from
// [layout.Compute] and already carry their rectangles, so the renderers
// here only paint.
//
// # Terminal
//
// [Canvas] turns bands into a block of text, one line per row of the
// viewport, with band colors chosen by depth. Sibling bands alternate
// between two shades of their depth's color so neighbours stay apart.
// Each band shows its label on its top row:
//
//	/ (350)   usr (300)  lib (180)
//	                     bin (120)
//	          home (50)  ann (50)
//
// # SVG
//
// [RenderSVG] writes the same picture as a static SVG document, one
// rectangle and one text element per band, in viewport units.
//
// [layout.Compute]: github.com/matzehuels/goxdu/pkg/layout.Compute
package cascade
