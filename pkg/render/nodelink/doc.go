// Package nodelink renders size trees as traditional node-link diagrams.
//
// # Overview
//
// This package produces tree diagrams using Graphviz, where directories
// appear as boxes connected by arrows from parent to child. It is an
// alternative to the cascade view for sharing a listing as a picture.
//
// # Usage
//
// Convert a tree to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(root, nodelink.Options{MaxDepth: 2, Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - MaxDepth: levels below the root to include (default [DefaultMaxDepth])
//   - Detailed: when true, labels include the size and the share of the parent
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// The generated DOT uses left-to-right layout (rankdir=LR) with rounded
// box nodes, matching the cascade view's orientation.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
