// Package render provides output rendering for size trees.
//
// # Overview
//
// This package contains the renderers that turn a laid-out tree into
// something a person can look at. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Cascade views, in the terminal and as SVG (in [cascade] subpackage)
//   - Node-link diagrams (in [nodelink] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). These are used by both
// cascade and node-link renderers.
//
//	svg := cascade.RenderSVG(bands, vp)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// # Cascade Views
//
// The [cascade] subpackage draws the bands computed by the layout engine:
// one column per tree level, each child stacked in proportion to its size
// to the right of its parent. [cascade.Canvas] produces styled terminal
// text for the interactive view; [cascade.RenderSVG] writes the same
// picture as a static SVG.
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the tree as a traditional diagram
// using Graphviz. Directories appear as boxes connected by arrows.
//
//	dot := nodelink.ToDOT(root, nodelink.Options{MaxDepth: 3})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [cascade]: github.com/matzehuels/goxdu/pkg/render/cascade
// [nodelink]: github.com/matzehuels/goxdu/pkg/render/nodelink
package render
