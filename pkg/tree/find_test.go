package tree

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{Left: 10, Top: 5, Width: 4, Height: 3}

	tests := []struct {
		x, y int
		want bool
	}{
		{10, 5, true},
		{13, 7, true},
		{14, 5, false}, // right edge is exclusive
		{10, 8, false}, // bottom edge is exclusive
		{9, 5, false},
		{10, 4, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	if (Rect{}).Contains(0, 0) {
		t.Error("zero Rect should contain nothing")
	}
}

func TestFind(t *testing.T) {
	root := parseString(t, "6 /a\n4 /b\n")
	a, b := root.Child("a"), root.Child("b")

	root.Rect = Rect{Left: 0, Top: 0, Width: 10, Height: 10}
	a.Rect = Rect{Left: 10, Top: 0, Width: 10, Height: 6}
	b.Rect = Rect{Left: 10, Top: 6, Width: 10, Height: 4}

	tests := []struct {
		name string
		x, y int
		want *Node
	}{
		{"own band", 3, 3, root},
		{"first child", 15, 2, a},
		{"second child", 15, 7, b},
		{"child boundary", 10, 6, b},
		{"outside", 25, 2, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Find(root, tt.x, tt.y); got != tt.want {
				t.Errorf("Find(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestFindIgnoresClearedRects(t *testing.T) {
	root := parseString(t, "6 /a\n4 /b\n")
	root.Child("a").Rect = Rect{Left: 0, Top: 0, Width: 5, Height: 5}

	ClearRects(root)

	if got := Find(root, 1, 1); got != nil {
		t.Errorf("Find() after ClearRects = %v, want nil", got)
	}
}
