package layout

import (
	"strings"
	"testing"

	"github.com/matzehuels/goxdu/pkg/tree"
)

func parse(t *testing.T, s string) *tree.Node {
	t.Helper()
	root, _, err := tree.Parse(strings.NewReader(s), tree.ParseOptions{Separator: "/"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return root
}

func TestComputeRootBand(t *testing.T) {
	root := parse(t, "10 /a\n")

	bands := Compute(root, Viewport{Width: 600, Height: 100}, 6)

	want := tree.Rect{Left: 0, Top: 0, Width: 100, Height: 100}
	if root.Rect != want {
		t.Errorf("root.Rect = %+v, want %+v", root.Rect, want)
	}
	if len(bands) == 0 || bands[0].Node != root || bands[0].Depth != 0 {
		t.Fatalf("first band should be the root at depth 0, got %+v", bands)
	}
}

func TestComputeProportionalHeights(t *testing.T) {
	root := parse(t, "75 /a\n25 /b\n")

	Compute(root, Viewport{Width: 40, Height: 100}, 4)

	a, b := root.Child("a"), root.Child("b")
	if want := (tree.Rect{Left: 10, Top: 0, Width: 10, Height: 75}); a.Rect != want {
		t.Errorf("a.Rect = %+v, want %+v", a.Rect, want)
	}
	if want := (tree.Rect{Left: 10, Top: 75, Width: 10, Height: 25}); b.Rect != want {
		t.Errorf("b.Rect = %+v, want %+v", b.Rect, want)
	}
}

func TestComputeRoundsHalfUp(t *testing.T) {
	// 1/8 of 20 is 2.5, which rounds to 3.
	root := parse(t, "1 /a\n7 /b\n")

	Compute(root, Viewport{Width: 20, Height: 20}, 2)

	if got := root.Child("a").Rect.Height; got != 3 {
		t.Errorf("a height = %d, want 3", got)
	}
	// 7/8 of 20 is 17.5 -> 18, clamped to the 17 rows that are left.
	if got := root.Child("b").Rect; got.Top != 3 || got.Height != 17 {
		t.Errorf("b = %+v, want top 3 height 17", got)
	}
}

func TestComputeSkipsThinBands(t *testing.T) {
	// c gets 1/100 of 50 rows, rounding to 1 (or less): suppressed.
	root := parse(t, "60 /a\n39 /b\n1 /c\n1 /c/deep\n")

	bands := Compute(root, Viewport{Width: 30, Height: 50}, 3)

	c := root.Child("c")
	if !c.Rect.Empty() {
		t.Errorf("c.Rect = %+v, want empty", c.Rect)
	}
	if !c.Child("deep").Rect.Empty() {
		t.Error("descendants of a skipped band should not be laid out")
	}
	for _, b := range bands {
		if b.Node == c {
			t.Error("skipped band should not be returned")
		}
	}
}

func TestComputeSkippedBandDoesNotAdvanceTop(t *testing.T) {
	root := parse(t, "1 /thin\n50 /a\n49 /b\n")

	Compute(root, Viewport{Width: 20, Height: 100}, 2)

	if got := root.Child("a").Rect.Top; got != 0 {
		t.Errorf("a.Rect.Top = %d, want 0 since thin was skipped", got)
	}
}

func TestComputeColumnBudget(t *testing.T) {
	root := parse(t, "8 /a/b/c/d\n")

	tests := []struct {
		columns int
		want    int
	}{
		{1, 1},
		{2, 2},
		{3, 3},
		{10, 5},
		{0, 1},
	}
	for _, tt := range tests {
		bands := Compute(root, Viewport{Width: 100, Height: 40}, tt.columns)
		if len(bands) != tt.want {
			t.Errorf("columns=%d: %d bands, want %d", tt.columns, len(bands), tt.want)
		}
		for _, b := range bands {
			if b.Depth >= max(tt.columns, 1) {
				t.Errorf("columns=%d: band %s at depth %d", tt.columns, b.Node.Name, b.Depth)
			}
		}
	}
}

func TestComputeEmptyTree(t *testing.T) {
	root := parse(t, "")

	bands := Compute(root, Viewport{Width: 80, Height: 24}, 6)

	if len(bands) != 1 || bands[0].Node != root {
		t.Errorf("bands = %+v, want only the root", bands)
	}
}

func TestComputeAllZeroSizes(t *testing.T) {
	root := parse(t, "0 /a\n0 /b\n")

	bands := Compute(root, Viewport{Width: 80, Height: 24}, 6)

	if len(bands) != 1 {
		t.Errorf("got %d bands, want only the root", len(bands))
	}
}

func TestComputeFallsBackToNodeSize(t *testing.T) {
	// Children sum to zero, so the node's own size is the denominator and
	// every child ends up with no height.
	b := tree.NewBuilder()
	b.Add(10, []string{"x"})
	b.Add(0, []string{"x", "empty"})
	b.Add(0, []string{"y"})
	root := b.Root()

	bands := Compute(root, Viewport{Width: 30, Height: 30}, 3)

	for _, band := range bands {
		if band.Node.Name == "empty" {
			t.Error("zero-size child should not be drawn")
		}
	}
}

func TestComputeInvalidatesStaleRects(t *testing.T) {
	root := parse(t, "50 /a\n50 /b\n")

	Compute(root, Viewport{Width: 20, Height: 100}, 2)
	if root.Child("b").Rect.Empty() {
		t.Fatal("b should be drawn at full height")
	}

	// At this height each child rounds to one row and is suppressed.
	Compute(root, Viewport{Width: 20, Height: 2}, 2)
	if !root.Child("b").Rect.Empty() {
		t.Errorf("b.Rect = %+v, want cleared", root.Child("b").Rect)
	}
}

func TestComputeContainment(t *testing.T) {
	root := parse(t, strings.Join([]string{
		"300 /usr/lib",
		"120 /usr/bin",
		"33 /usr/share/doc",
		"17 /usr/share/man",
		"250 /home/ann",
		"249 /home/bob",
		"5 /tmp",
		"3 /etc/x",
		"2 /etc/y",
	}, "\n"))

	for _, vp := range []Viewport{{80, 24}, {120, 41}, {640, 480}, {7, 5}} {
		for columns := 1; columns <= 10; columns++ {
			bands := Compute(root, vp, columns)
			checkContainment(t, root, vp, columns)
			drawn := map[*tree.Node]bool{}
			for _, b := range bands {
				drawn[b.Node] = true
				if b.Node.Rect != b.Rect {
					t.Errorf("band rect for %s differs from node rect", b.Node.Name)
				}
			}
			tree.Walk(root, func(n *tree.Node) bool {
				if !drawn[n] && !n.Rect.Empty() {
					t.Errorf("%s has a rect but was not drawn", n.Name)
				}
				return true
			})
		}
	}
}

func checkContainment(t *testing.T, n *tree.Node, vp Viewport, columns int) {
	t.Helper()
	if n.Rect.Empty() {
		return
	}
	var prevBottom = n.Rect.Top
	for _, c := range n.Children {
		if c.Rect.Empty() {
			continue
		}
		if c.Rect.Top < n.Rect.Top || c.Rect.Bottom() > n.Rect.Bottom() {
			t.Errorf("vp=%v columns=%d: %s %+v escapes parent %s %+v", vp, columns, c.Name, c.Rect, n.Name, n.Rect)
		}
		if c.Rect.Left != n.Rect.Right() || c.Rect.Width != n.Rect.Width {
			t.Errorf("vp=%v columns=%d: %s %+v not directly right of %s %+v", vp, columns, c.Name, c.Rect, n.Name, n.Rect)
		}
		if c.Rect.Top < prevBottom {
			t.Errorf("vp=%v columns=%d: %s overlaps its previous sibling", vp, columns, c.Name)
		}
		if c.Rect.Height <= MinBandHeight {
			t.Errorf("vp=%v columns=%d: %s drawn with height %d", vp, columns, c.Name, c.Rect.Height)
		}
		prevBottom = c.Rect.Bottom()
		checkContainment(t, c, vp, columns)
	}
}

func TestComputeHitTestConsistency(t *testing.T) {
	root := parse(t, "40 /a/x\n20 /a/y\n40 /b\n")
	Compute(root, Viewport{Width: 30, Height: 100}, 3)

	tree.Walk(root, func(n *tree.Node) bool {
		r := n.Rect
		if r.Empty() {
			return true
		}
		for y := r.Top; y < r.Bottom(); y++ {
			for x := r.Left; x < r.Right(); x++ {
				if got := tree.Find(root, x, y); got != n {
					t.Fatalf("Find(%d, %d) = %v, want %s", x, y, got, n.Name)
				}
			}
		}
		return true
	})

	if got := tree.Find(root, 35, 10); got != nil {
		t.Errorf("Find outside the layout = %v, want nil", got)
	}
}

func TestNodeDoesNotClear(t *testing.T) {
	root := parse(t, "1 /a\n1 /b\n")
	stale := tree.Rect{Left: 99, Top: 99, Width: 1, Height: 1}
	root.Child("a").Rect = stale

	Node(root, tree.Rect{Width: 10, Height: 10}, 0)

	if root.Child("a").Rect != stale {
		t.Error("Node with no remaining columns should leave children untouched")
	}
}

func TestBandHeight(t *testing.T) {
	tests := []struct {
		size, total int64
		height      int
		want        int
	}{
		{1, 2, 10, 5},
		{1, 4, 10, 3}, // 2.5 rounds up
		{1, 3, 10, 3}, // 3.33 rounds down
		{2, 3, 10, 7}, // 6.67 rounds up
		{0, 3, 10, 0},
		{3, 3, 10, 10},
	}
	for _, tt := range tests {
		if got := bandHeight(tt.size, tt.total, tt.height); got != tt.want {
			t.Errorf("bandHeight(%d, %d, %d) = %d, want %d", tt.size, tt.total, tt.height, got, tt.want)
		}
	}
}
