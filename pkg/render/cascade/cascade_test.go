package cascade

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/matzehuels/goxdu/pkg/layout"
	"github.com/matzehuels/goxdu/pkg/tree"
)

func bandsFor(t *testing.T, input string, vp layout.Viewport, columns int) []layout.Band {
	t.Helper()
	root, _, err := tree.Parse(strings.NewReader(input), tree.ParseOptions{Separator: "/"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return layout.Compute(root, vp, columns)
}

func TestCanvasRenderPlain(t *testing.T) {
	vp := layout.Viewport{Width: 30, Height: 10}
	bands := bandsFor(t, "60 /usr\n40 /home\n", vp, 3)

	got := Canvas{Plain: true}.Render(bands, vp)

	blank := strings.Repeat(" ", 10)
	var want []string
	for y := range 10 {
		var col0, col1 string
		col0 = blank
		if y == 0 {
			col0 = fmt.Sprintf("%-10s", " /")
		}
		switch y {
		case 0:
			col1 = fmt.Sprintf("%-10s", " usr")
		case 6:
			col1 = fmt.Sprintf("%-10s", " home")
		default:
			col1 = blank
		}
		want = append(want, col0+col1+blank)
	}
	if got != strings.Join(want, "\n") {
		t.Errorf("Render() =\n%q\nwant\n%q", got, strings.Join(want, "\n"))
	}
}

func TestCanvasShowSizes(t *testing.T) {
	vp := layout.Viewport{Width: 30, Height: 10}
	bands := bandsFor(t, "60 /usr\n40 /home\n", vp, 3)

	got := Canvas{Plain: true, ShowSizes: true}.Render(bands, vp)
	lines := strings.Split(got, "\n")

	if want := fmt.Sprintf("%-10s%-10s%10s", " / (100)", " usr (60)", ""); lines[0] != want {
		t.Errorf("row 0 = %q, want %q", lines[0], want)
	}
	if want := fmt.Sprintf("%10s%-10s%10s", "", " home (40)", ""); lines[6] != want {
		t.Errorf("row 6 = %q, want %q", lines[6], want)
	}
}

func TestCanvasTruncatesLabels(t *testing.T) {
	vp := layout.Viewport{Width: 10, Height: 4}
	bands := bandsFor(t, "10 /longname\n", vp, 2)

	got := strings.Split(Canvas{Plain: true}.Render(bands, vp), "\n")[0]

	if want := " /    lon…"; got != want {
		t.Errorf("row 0 = %q, want %q", got, want)
	}
}

func TestCanvasLineGeometry(t *testing.T) {
	vp := layout.Viewport{Width: 47, Height: 13}
	bands := bandsFor(t, "5 /a/b\n3 /a/c\n9 /d\n1 /e\n", vp, 4)

	out := Canvas{Plain: true, ShowSizes: true}.Render(bands, vp)
	lines := strings.Split(out, "\n")

	if len(lines) != vp.Height {
		t.Fatalf("got %d lines, want %d", len(lines), vp.Height)
	}
	for i, l := range lines {
		if n := len([]rune(l)); n != vp.Width {
			t.Errorf("line %d has width %d, want %d: %q", i, n, vp.Width, l)
		}
	}
}

func TestCanvasEmptyViewport(t *testing.T) {
	bands := bandsFor(t, "1 /a\n", layout.Viewport{}, 2)
	if got := (Canvas{}).Render(bands, layout.Viewport{}); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}

func TestCanvasStyled(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	vp := layout.Viewport{Width: 20, Height: 4}
	bands := bandsFor(t, "1 /a\n1 /b\n", vp, 2)

	out := Canvas{Renderer: r}.Render(bands, vp)

	if !strings.Contains(out, "\x1b[") {
		t.Errorf("styled canvas should contain escape sequences: %q", out)
	}
	plain := Canvas{Plain: true}.Render(bands, vp)
	if strings.Contains(plain, "\x1b[") {
		t.Errorf("plain canvas should not contain escape sequences: %q", plain)
	}
}

func TestSiblingIndexes(t *testing.T) {
	vp := layout.Viewport{Width: 30, Height: 30}
	bands := bandsFor(t, "10 /a/x\n10 /a/y\n10 /b\n", vp, 3)

	got := map[string]int{}
	for i, idx := range siblingIndexes(bands) {
		got[bands[i].Node.Name] = idx
	}
	want := map[string]int{"/": 0, "a": 0, "b": 1, "x": 0, "y": 1}
	for name, w := range want {
		if got[name] != w {
			t.Errorf("index of %s = %d, want %d", name, got[name], w)
		}
	}
}

func TestShadeFor(t *testing.T) {
	if ShadeFor(0, 0) == ShadeFor(0, 1) {
		t.Error("neighbouring siblings should get different shades")
	}
	if ShadeFor(len(Palette), 0) != ShadeFor(0, 0) {
		t.Error("palette should wrap around by depth")
	}
	if ShadeFor(1, 2) != Palette[1] {
		t.Errorf("ShadeFor(1, 2) = %s, want base %s", ShadeFor(1, 2), Palette[1])
	}
}

func TestShadeForOddIsDarker(t *testing.T) {
	for depth := range Palette {
		base, err := colorful.Hex(ShadeFor(depth, 0))
		if err != nil {
			t.Fatalf("depth %d: base: %v", depth, err)
		}
		alt, err := colorful.Hex(ShadeFor(depth, 1))
		if err != nil {
			t.Fatalf("depth %d: alt %q: %v", depth, ShadeFor(depth, 1), err)
		}
		lb, _, _ := base.Lab()
		la, _, _ := alt.Lab()
		if la >= lb {
			t.Errorf("depth %d: alt lightness %.3f not below base %.3f", depth, la, lb)
		}
	}
}

func TestLabel(t *testing.T) {
	n := &tree.Node{Name: "usr", Size: 42}
	if got := Label(n, false); got != "usr" {
		t.Errorf("Label(false) = %q", got)
	}
	if got := Label(n, true); got != "usr (42)" {
		t.Errorf("Label(true) = %q", got)
	}
}

func TestRenderSVG(t *testing.T) {
	vp := layout.Viewport{Width: 300, Height: 200}
	bands := bandsFor(t, "60 /usr\n40 /r&d\n", vp, 3)

	svg := string(RenderSVG(bands, vp, WithSizes(), WithTitle("disk <usage>")))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 300 200"`) {
		t.Errorf("unexpected header: %.80s", svg)
	}
	if n := strings.Count(svg, "<rect "); n != len(bands) {
		t.Errorf("got %d rects, want %d", n, len(bands))
	}
	for _, want := range []string{"r&amp;d (40)", "usr (60)", "<title>disk &lt;usage&gt;</title>", `font-weight="bold"`} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("SVG should be closed")
	}
}

func TestRenderSVGSkipsUnreadableLabels(t *testing.T) {
	// 10 rows leave room for the rectangle but not for a label.
	vp := layout.Viewport{Width: 100, Height: 10}
	bands := bandsFor(t, "1 /a\n", vp, 2)

	svg := string(RenderSVG(bands, vp))

	if strings.Contains(svg, "<text") {
		t.Errorf("expected no labels in a 10-unit band:\n%s", svg)
	}
	if n := strings.Count(svg, "<rect "); n != 2 {
		t.Errorf("got %d rects, want 2", n)
	}
}
