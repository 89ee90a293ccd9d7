package cascade

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/goxdu/pkg/layout"
)

const (
	svgFontSizeMax = 14.0
	svgFontSizeMin = 6.0
	svgPad         = 3.0
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	showSizes bool
	title     string
}

// WithSizes appends each node's size to its label.
func WithSizes() SVGOption { return func(r *svgRenderer) { r.showSizes = true } }

// WithTitle sets the document title.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// RenderSVG draws bands as an SVG document of vp's size. Bands too short
// for a readable label are drawn without one.
func RenderSVG(bands []layout.Band, vp layout.Viewport, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		vp.Width, vp.Height, vp.Width, vp.Height)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escapeXML(r.title))
	}
	fmt.Fprintf(&buf, `  <g font-family="sans-serif" fill="%s">`+"\n", Ink)

	for i, idx := range siblingIndexes(bands) {
		renderBand(&buf, bands[i], idx, r.showSizes)
	}

	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

func renderBand(buf *bytes.Buffer, b layout.Band, index int, showSize bool) {
	rc := b.Rect
	if rc.Empty() {
		return
	}
	fmt.Fprintf(buf, `    <rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		rc.Left, rc.Top, rc.Width, rc.Height, ShadeFor(b.Depth, index), Ink)

	size := min(svgFontSizeMax, float64(rc.Height)-2*svgPad)
	if size < svgFontSizeMin {
		return
	}
	weight := ""
	if b.Depth == 0 {
		weight = ` font-weight="bold"`
	}
	// A nested viewport clips labels wider than their band.
	fmt.Fprintf(buf, `    <svg x="%d" y="%d" width="%d" height="%d"><text x="%.1f" y="%.1f" font-size="%.1f"%s>%s</text></svg>`+"\n",
		rc.Left, rc.Top, rc.Width, rc.Height,
		svgPad, svgPad+size*0.8, size, weight,
		escapeXML(Label(b.Node, showSize)))
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
