package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/goxdu/pkg/tree"
)

// DefaultMaxDepth bounds the diagram when Options.MaxDepth is zero.
// Real listings have thousands of leaves, which Graphviz lays out poorly.
const DefaultMaxDepth = 3

// Options configures node-link diagram rendering.
type Options struct {
	// MaxDepth is the number of levels below the root to include.
	// Zero means DefaultMaxDepth; a negative value includes everything.
	MaxDepth int

	// Detailed adds each node's size and its share of the parent to the
	// label. When false, only the name is shown.
	Detailed bool
}

// ToDOT converts the subtree rooted at root to Graphviz DOT format.
// The resulting DOT string can be rendered with [RenderSVG] or any Graphviz tool.
//
// Nodes are identified by their sequence number, so repeated names in
// different directories stay distinct. Children are emitted in their
// current sibling order. Nodes whose children were cut off by MaxDepth
// are drawn with a dashed outline.
func ToDOT(root *tree.Node, opts Options) string {
	depth := opts.MaxDepth
	if depth == 0 {
		depth = DefaultMaxDepth
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	var edges []string
	var visit func(n *tree.Node, level int)
	visit = func(n *tree.Node, level int) {
		cut := depth >= 0 && level >= depth && !n.IsLeaf()
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeID(n), strings.Join(fmtAttrs(n, fmtLabel(n, opts.Detailed), cut), ", "))
		if cut {
			return
		}
		for _, c := range n.Children {
			edges = append(edges, fmt.Sprintf("  %s -> %s;\n", nodeID(n), nodeID(c)))
			visit(c, level+1)
		}
	}
	visit(root, 0)

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(n *tree.Node) string {
	return "n" + strconv.Itoa(n.Seq)
}

func fmtLabel(n *tree.Node, detailed bool) string {
	if !detailed {
		return n.Name
	}
	parts := []string{n.Name, strconv.FormatInt(n.Size, 10)}
	if p := n.Parent; p != nil && p.Size > 0 {
		parts = append(parts, fmt.Sprintf("%.1f%%", float64(n.Size)/float64(p.Size)*100))
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(n *tree.Node, label string, cut bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n.Parent == nil {
		attrs = append(attrs, "fillcolor=\"#5E81AC\"", "fontcolor=white")
	}
	if cut {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz' point-based svg header with one that
// scales to its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
