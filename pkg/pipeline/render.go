package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	xduerr "github.com/matzehuels/goxdu/pkg/errors"
	xduio "github.com/matzehuels/goxdu/pkg/io"
	"github.com/matzehuels/goxdu/pkg/layout"
	"github.com/matzehuels/goxdu/pkg/observability"
	"github.com/matzehuels/goxdu/pkg/render"
	"github.com/matzehuels/goxdu/pkg/render/cascade"
	"github.com/matzehuels/goxdu/pkg/render/nodelink"
	"github.com/matzehuels/goxdu/pkg/tree"
)

// Render generates output artifacts in the requested formats.
//
// svg, png and pdf draw bands as a cascade view. dot and nodelink draw
// the tree itself with Graphviz and ignore bands. json is the tree dump.
func Render(ctx context.Context, root *tree.Node, bands []layout.Band, opts Options) (map[string][]byte, error) {
	opts.SetLayoutDefaults()
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	var cascadeSVG []byte
	svg := func() []byte {
		if cascadeSVG == nil {
			cascadeSVG = renderCascade(root, bands, opts)
		}
		return cascadeSVG
	}

	for _, format := range opts.Formats {
		data, err := renderFormat(ctx, format, root, svg, opts)
		if err != nil {
			return nil, xduerr.Wrap(xduerr.ErrCodeInternal, err, "render %s", format)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, format string, root *tree.Node, svg func() []byte, opts Options) (data []byte, err error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, format)
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
	}()

	switch format {
	case FormatSVG:
		return svg(), nil
	case FormatPNG:
		return render.ToPNG(ctx, svg(), opts.Scale)
	case FormatPDF:
		return render.ToPDF(ctx, svg())
	case FormatDOT:
		return []byte(toDOT(root, opts)), nil
	case FormatNodelink:
		return nodelink.RenderSVG(ctx, toDOT(root, opts))
	case FormatJSON:
		var buf bytes.Buffer
		if err := xduio.WriteJSON(root, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func renderCascade(root *tree.Node, bands []layout.Band, opts Options) []byte {
	svgOpts := []cascade.SVGOption{cascade.WithTitle(root.Name)}
	if opts.ShowSizes {
		svgOpts = append(svgOpts, cascade.WithSizes())
	}
	return cascade.RenderSVG(bands, opts.Viewport(), svgOpts...)
}

func toDOT(root *tree.Node, opts Options) string {
	return nodelink.ToDOT(root, nodelink.Options{MaxDepth: opts.MaxDepth, Detailed: opts.Detailed})
}
