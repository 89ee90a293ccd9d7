package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	xduerr "github.com/matzehuels/goxdu/pkg/errors"
	"github.com/matzehuels/goxdu/pkg/render/cascade"
	"github.com/matzehuels/goxdu/pkg/tree"
	"github.com/matzehuels/goxdu/pkg/view"
)

// orderKeys maps keys to the order they select.
var orderKeys = map[string]tree.Order{
	"f": tree.OrderFirst,
	"l": tree.OrderLast,
	"a": tree.OrderAlpha,
	"A": tree.OrderReverseAlpha,
	"n": tree.OrderSize,
	"N": tree.OrderReverseSize,
}

// =============================================================================
// viewModel - Interactive cascade view
// =============================================================================

// viewModel is the bubbletea model for the interactive view. It decodes
// terminal events into controller commands; all view state lives in the
// controller. The last screen row is a status line.
type viewModel struct {
	ctrl   *view.Controller
	canvas cascade.Canvas
	source string
	width  int
	notice string // last rejected command, cleared by the next input
}

func newViewModel(ctrl *view.Controller, source string, showSizes bool) viewModel {
	return viewModel{
		ctrl:   ctrl,
		canvas: cascade.Canvas{ShowSizes: showSizes},
		source: source,
	}
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.notice = ""
			m.ctrl.Navigate(view.Point{X: msg.X, Y: msg.Y})
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.ctrl.Resize(msg.Width, msg.Height-1)
	}
	return m, nil
}

func (m viewModel) handleKey(key string) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "/":
		m.ctrl.ResetToRoot()
	case "r":
		m.ctrl.ReverseOrder()
	case "s":
		m.canvas.ShowSizes = !m.canvas.ShowSizes
	default:
		if o, ok := orderKeys[key]; ok {
			m.ctrl.SetOrder(o)
		} else if n, ok := columnsKey(key); ok {
			if err := m.ctrl.SetColumns(n); err != nil {
				m.notice = xduerr.UserMessage(err)
			}
		}
	}
	return m, nil
}

// columnsKey decodes a digit key into a column count.
func columnsKey(key string) (int, bool) {
	r := []rune(key)
	if len(r) != 1 {
		return 0, false
	}
	return view.ColumnsForDigit(r[0])
}

func (m viewModel) View() string {
	var b strings.Builder
	if body := m.canvas.Render(m.ctrl.Frame(), m.ctrl.Viewport()); body != "" {
		b.WriteString(body)
		b.WriteString("\n")
	}
	b.WriteString(m.statusLine())
	return b.String()
}

// statusLine describes the focus and the view settings, cut to the
// terminal width.
func (m viewModel) statusLine() string {
	if m.notice != "" {
		return styleStatusError.Render(m.fit(" " + m.notice))
	}
	focus := m.ctrl.Focus()
	line := fmt.Sprintf(" %s  %s (%d)  order %s  columns %d  q quit",
		m.source, focusPath(focus), focus.Size, m.ctrl.Order(), m.ctrl.Columns())
	return styleStatusBar.Render(m.fit(line))
}

func (m viewModel) fit(s string) string {
	if m.width <= 0 {
		return s
	}
	return runewidth.Truncate(s, m.width, "…")
}

// focusPath joins the names from the root to n. A root named "/" is not
// doubled.
func focusPath(n *tree.Node) string {
	names := n.Path()
	if len(names) > 1 && names[0] == "/" {
		return "/" + strings.Join(names[1:], "/")
	}
	return strings.Join(names, "/")
}
