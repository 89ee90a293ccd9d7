// Package pkg provides the core libraries for goxdu disk usage visualization.
//
// # Overview
//
// goxdu turns du output, one "size path" record per line, into a size
// tree and draws it as a cascade: the focused directory fills the left
// column and every level below it gets the next column, with each child
// as tall as its share of its parent. The pkg directory is organized
// into four areas:
//
//  1. [tree] - Domain model (records, sizes, sibling orders, hit-testing)
//  2. [layout] and [view] - Cascade geometry and the navigation state machine
//  3. [render] and [io] - Output formats (terminal, SVG, PDF, PNG, DOT, JSON)
//  4. [pipeline] - Orchestration (load → layout → render)
//
// # Architecture
//
// The typical data flow through goxdu:
//
//	du records (or a JSON dump)
//	         ↓
//	    [tree] package (build, reconcile sizes, sort)
//	         ↓
//	    [layout] package (bands for a viewport and column budget)
//	         ↓
//	    [view] package (focus, hit-test, re-layout)   or   [render] packages
//	         ↓                                                ↓
//	    terminal cascade                          SVG/PDF/PNG/DOT/JSON output
//
// # Quick Start
//
// Parse records and lay out the tree:
//
//	import (
//	    "os"
//	    "github.com/matzehuels/goxdu/pkg/layout"
//	    "github.com/matzehuels/goxdu/pkg/render/cascade"
//	    "github.com/matzehuels/goxdu/pkg/tree"
//	)
//
//	// 1. Build the tree
//	root, _, _ := tree.Parse(os.Stdin, tree.ParseOptions{})
//
//	// 2. Sort siblings, largest first
//	tree.Sort(root, tree.OrderSize)
//
//	// 3. Compute layout
//	vp := layout.Viewport{Width: 800, Height: 600}
//	bands := layout.Compute(root, vp, 6)
//
//	// 4. Render to SVG
//	svg := cascade.RenderSVG(bands, vp, cascade.WithSizes())
//
// # Main Packages
//
// [tree] - Size tree built from (size, path) records. Sizes that were never
// given are the sum of the children; six sibling orders plus their
// negation; [tree.Find] maps a point to the node drawn there.
//
// [layout] - Cascade geometry. [layout.Compute] assigns every visible node
// a rectangle and returns them as bands.
//
// [view] - The interactive state machine: focus, order and column count,
// and the commands that change them.
//
// [render/cascade] - Terminal and SVG rendering of a band list.
//
// [render/nodelink] - Directed graph diagrams of the tree using Graphviz.
//
// [render] - Top-level utilities for format conversion (SVG to PDF/PNG).
//
// [io] - JSON dumps of a tree and their import.
//
// [pipeline] - Load, layout and render stages shared by the interactive
// view and the render command.
//
// [observability] - Hooks around the pipeline stages.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/tree/...               # Specific package
//	go test -run Example ./pkg/...       # Examples only
//
// [tree]: https://pkg.go.dev/github.com/matzehuels/goxdu/pkg/tree
// [layout]: https://pkg.go.dev/github.com/matzehuels/goxdu/pkg/layout
// [view]: https://pkg.go.dev/github.com/matzehuels/goxdu/pkg/view
// [render]: https://pkg.go.dev/github.com/matzehuels/goxdu/pkg/render
// [render/cascade]: https://pkg.go.dev/github.com/matzehuels/goxdu/pkg/render/cascade
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/goxdu/pkg/render/nodelink
// [io]: https://pkg.go.dev/github.com/matzehuels/goxdu/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/goxdu/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/goxdu/pkg/observability
package pkg
