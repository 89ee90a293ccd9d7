package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/goxdu/pkg/tree"
	"github.com/matzehuels/goxdu/pkg/view"
)

func parseTree(t *testing.T, input string) *tree.Node {
	t.Helper()
	root, _, err := tree.Parse(strings.NewReader(input), tree.ParseOptions{Separator: "/"})
	if err != nil {
		t.Fatal(err)
	}
	return root
}

// newTestModel returns a plain-text model sized to a 60x11 terminal: a
// 60x10 viewport of three 20-cell columns above the status line.
func newTestModel(t *testing.T) viewModel {
	t.Helper()
	root := parseTree(t, "40 /a/x\n20 /a/y\n40 /b\n")
	m := newViewModel(view.New(root, view.Options{Columns: 3}), "-", true)
	m.canvas.Plain = true
	return update(t, m, tea.WindowSizeMsg{Width: 60, Height: 11})
}

func update(t *testing.T, m viewModel, msg tea.Msg) viewModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(viewModel)
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewModelResize(t *testing.T) {
	m := newTestModel(t)
	vp := m.ctrl.Viewport()
	if vp.Width != 60 || vp.Height != 10 {
		t.Errorf("viewport = %dx%d, want 60x10", vp.Width, vp.Height)
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 0})
	if vp := m.ctrl.Viewport(); vp.Height != 0 {
		t.Errorf("viewport height = %d, want 0", vp.Height)
	}
}

func TestViewModelMouse(t *testing.T) {
	tests := []struct {
		name  string
		msgs  []tea.Msg
		focus string
	}{
		{"drill down", []tea.Msg{click(25, 1)}, "a"},
		{"drill down twice", []tea.Msg{click(25, 1), click(25, 1)}, "x"},
		{"drill up", []tea.Msg{click(25, 1), click(5, 5)}, "/"},
		{"click root", []tea.Msg{click(5, 5)}, "/"},
		{"release ignored", []tea.Msg{tea.MouseMsg{X: 25, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}}, "/"},
		{"right button ignored", []tea.Msg{tea.MouseMsg{X: 25, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}}, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			for _, msg := range tt.msgs {
				m = update(t, m, msg)
			}
			if got := m.ctrl.Focus().Name; got != tt.focus {
				t.Errorf("focus = %q, want %q", got, tt.focus)
			}
		})
	}
}

func TestViewModelOrderKeys(t *testing.T) {
	tests := []struct {
		keys []string
		want tree.Order
	}{
		{[]string{"n"}, tree.OrderSize},
		{[]string{"N"}, tree.OrderReverseSize},
		{[]string{"a"}, tree.OrderAlpha},
		{[]string{"A"}, tree.OrderReverseAlpha},
		{[]string{"l"}, tree.OrderLast},
		{[]string{"n", "f"}, tree.OrderFirst},
		{[]string{"r"}, tree.OrderLast},
		{[]string{"n", "r"}, tree.OrderReverseSize},
		{[]string{"a", "r", "r"}, tree.OrderAlpha},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.keys, ""), func(t *testing.T) {
			m := newTestModel(t)
			for _, k := range tt.keys {
				m = update(t, m, key(k))
			}
			if got := m.ctrl.Order(); got != tt.want {
				t.Errorf("order = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestViewModelColumnKeys(t *testing.T) {
	tests := []struct {
		key  string
		want int
	}{
		{"1", 1},
		{"5", 5},
		{"9", 9},
		{"0", 10},
		{"x", 3},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := update(t, newTestModel(t), key(tt.key))
			if got := m.ctrl.Columns(); got != tt.want {
				t.Errorf("columns = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestViewModelResetKey(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, click(25, 1))
	m = update(t, m, click(25, 1))
	m = update(t, m, key("/"))
	if got := m.ctrl.Focus(); got != m.ctrl.Root() {
		t.Errorf("focus = %q after reset, want root", got.Name)
	}
}

func TestViewModelToggleSizes(t *testing.T) {
	m := newTestModel(t)
	if !strings.HasPrefix(m.View(), " / (100)") {
		t.Fatalf("first row = %q, want sized root label", strings.SplitN(m.View(), "\n", 2)[0])
	}

	m = update(t, m, key("s"))
	if m.canvas.ShowSizes {
		t.Error("ShowSizes still set after s")
	}
	if first := strings.SplitN(m.View(), "\n", 2)[0]; strings.Contains(first, "(100)") {
		t.Errorf("first row = %q, want no sizes", first)
	}
}

func TestViewModelQuit(t *testing.T) {
	msgs := []tea.KeyMsg{
		key("q"),
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	}

	for _, msg := range msgs {
		t.Run(msg.String(), func(t *testing.T) {
			_, cmd := newTestModel(t).Update(msg)
			if cmd == nil {
				t.Fatal("expected a quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("command returned %T, want tea.QuitMsg", cmd())
			}
		})
	}
}

func TestViewModelView(t *testing.T) {
	m := newTestModel(t)
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 11 {
		t.Fatalf("View() has %d lines, want 11", len(lines))
	}

	status := lines[10]
	for _, want := range []string{"/ (100)", "order first", "columns 3"} {
		if !strings.Contains(status, want) {
			t.Errorf("status %q missing %q", status, want)
		}
	}

	m = update(t, m, click(25, 1))
	status = strings.Split(m.View(), "\n")[10]
	if !strings.Contains(status, "/a (60)") {
		t.Errorf("status %q missing focus /a (60)", status)
	}
}

func TestViewModelStatusFits(t *testing.T) {
	m := update(t, newTestModel(t), tea.WindowSizeMsg{Width: 12, Height: 1})
	view := m.View()
	if strings.Contains(view, "\n") {
		t.Fatalf("View() = %q, want only the status line", view)
	}
	if !strings.HasSuffix(view, "…") {
		t.Errorf("status %q was not truncated", view)
	}
}

func TestFocusPath(t *testing.T) {
	abs := parseTree(t, "40 /a/x\n")
	rel := parseTree(t, "1 foo/bar\n2 foo/baz\n")

	tests := []struct {
		name string
		node *tree.Node
		want string
	}{
		{"absolute root", abs, "/"},
		{"absolute leaf", abs.Child("a").Child("x"), "/a/x"},
		{"relative root", rel, "foo"},
		{"relative child", rel.Child("bar"), "foo/bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := focusPath(tt.node); got != tt.want {
				t.Errorf("focusPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
