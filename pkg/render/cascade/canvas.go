package cascade

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/goxdu/pkg/layout"
)

// Canvas rasterizes bands into terminal text.
type Canvas struct {
	// ShowSizes appends each node's size to its label.
	ShowSizes bool

	// Plain disables all styling. Bands are then told apart only by their
	// labels.
	Plain bool

	// Renderer creates the band styles. Nil uses lipgloss' default
	// renderer, which detects the color profile of stdout.
	Renderer *lipgloss.Renderer
}

// ellipsis marks a label cut to fit its band.
const ellipsis = "…"

// Render paints bands into vp and returns one line per viewport row,
// joined by newlines. Cells outside every band are blank. Bands are
// expected not to overlap, which holds for the output of
// [layout.Compute].
func (c Canvas) Render(bands []layout.Band, vp layout.Viewport) string {
	if vp.Width <= 0 || vp.Height <= 0 {
		return ""
	}

	styles := c.styles(bands)
	rows := make([]string, vp.Height)
	var line strings.Builder
	var hits []int
	for y := range vp.Height {
		hits = hits[:0]
		for i, b := range bands {
			if b.Rect.Width > 0 && b.Rect.Top <= y && y < b.Rect.Bottom() {
				hits = append(hits, i)
			}
		}
		slices.SortFunc(hits, func(i, j int) int { return bands[i].Rect.Left - bands[j].Rect.Left })

		line.Reset()
		x := 0
		for _, i := range hits {
			b := bands[i]
			if b.Rect.Left < x || b.Rect.Left >= vp.Width {
				continue
			}
			line.WriteString(strings.Repeat(" ", b.Rect.Left-x))
			w := min(b.Rect.Width, vp.Width-b.Rect.Left)

			text := ""
			if y == b.Rect.Top {
				text = runewidth.Truncate(" "+Label(b.Node, c.ShowSizes), w, ellipsis)
			}
			cell := runewidth.FillRight(text, w)
			if styles != nil {
				cell = styles[i].Render(cell)
			}
			line.WriteString(cell)
			x = b.Rect.Left + w
		}
		line.WriteString(strings.Repeat(" ", vp.Width-x))
		rows[y] = line.String()
	}
	return strings.Join(rows, "\n")
}

// styles returns one style per band, or nil for a plain canvas.
func (c Canvas) styles(bands []layout.Band) []lipgloss.Style {
	if c.Plain {
		return nil
	}
	r := c.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	out := make([]lipgloss.Style, len(bands))
	for i, idx := range siblingIndexes(bands) {
		b := bands[i]
		st := r.NewStyle().
			Background(lipgloss.Color(ShadeFor(b.Depth, idx))).
			Foreground(lipgloss.Color(Ink))
		if b.Depth == 0 {
			st = st.Bold(true)
		}
		out[i] = st
	}
	return out
}

// siblingIndexes numbers the bands of each column top to bottom.
func siblingIndexes(bands []layout.Band) []int {
	idx := make([]int, len(bands))
	next := map[int]int{}
	order := make([]int, len(bands))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(i, j int) int { return bands[i].Rect.Top - bands[j].Rect.Top })
	for _, i := range order {
		d := bands[i].Depth
		idx[i] = next[d]
		next[d]++
	}
	return idx
}
