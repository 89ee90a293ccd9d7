package view

import (
	"io"

	"github.com/charmbracelet/log"

	xduerr "github.com/matzehuels/goxdu/pkg/errors"
	"github.com/matzehuels/goxdu/pkg/layout"
	"github.com/matzehuels/goxdu/pkg/tree"
)

// DefaultColumns is the number of columns shown when none is configured.
const DefaultColumns = 6

// Point is a position in viewport units.
type Point struct {
	X, Y int
}

// Options configures a [Controller].
type Options struct {
	Order    tree.Order      // initial sibling order, default tree.OrderFirst
	Columns  int             // visible columns, default DefaultColumns
	Viewport layout.Viewport // initial drawable area, default 0x0
	Logger   *log.Logger     // repaint diagnostics, default discards
}

// Controller is the state machine behind an interactive cascade view.
// It is not safe for concurrent use.
type Controller struct {
	root    *tree.Node
	focus   *tree.Node
	order   tree.Order
	columns int
	vp      layout.Viewport
	frame   []layout.Band
	logger  *log.Logger
}

// New creates a controller focused on root. The tree is sorted when
// opts.Order is not the order it was built in. An out-of-range column
// count falls back to [DefaultColumns].
func New(root *tree.Node, opts Options) *Controller {
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if xduerr.ValidateColumns(opts.Columns) != nil {
		opts.Columns = DefaultColumns
	}
	c := &Controller{
		root:    root,
		focus:   root,
		order:   opts.Order,
		columns: opts.Columns,
		vp:      opts.Viewport,
		logger:  opts.Logger,
	}
	if c.order != tree.DefaultOrder {
		tree.Sort(c.root, c.order)
	}
	c.Repaint()
	return c
}

// Root returns the overall root the controller was created with.
func (c *Controller) Root() *tree.Node { return c.root }

// Focus returns the node currently drawn in the first column.
func (c *Controller) Focus() *tree.Node { return c.focus }

// Order returns the current sibling order.
func (c *Controller) Order() tree.Order { return c.order }

// Columns returns the current column budget.
func (c *Controller) Columns() int { return c.columns }

// Viewport returns the current drawable area.
func (c *Controller) Viewport() layout.Viewport { return c.vp }

// Frame returns the bands of the last repaint in paint order.
// The slice is owned by the controller and replaced on every repaint.
func (c *Controller) Frame() []layout.Band { return c.frame }

// Navigate drills into the band under p.
//
// A point on a descendant of the focus makes it the new focus. A point on
// the focus itself moves focus to its parent, unless the focus is the
// overall root. A point outside every band changes nothing.
func (c *Controller) Navigate(p Point) {
	hit := tree.Find(c.focus, p.X, p.Y)
	switch {
	case hit == nil:
		return
	case hit != c.focus:
		c.logger.Debug("drill down", "node", hit.Name)
		c.focus = hit
	case c.focus.Parent != nil:
		c.logger.Debug("drill up", "node", c.focus.Parent.Name)
		c.focus = c.focus.Parent
	}
	c.Repaint()
}

// SetOrder sorts the whole tree, not just the focused subtree, so that
// moving back up shows the same order.
func (c *Controller) SetOrder(o tree.Order) {
	c.order = o
	tree.Sort(c.root, o)
	c.Repaint()
}

// ReverseOrder switches to the opposite of the current order.
func (c *Controller) ReverseOrder() {
	c.SetOrder(c.order.Negate())
}

// SetColumns changes the column budget. Values outside 1..10 are
// rejected and leave the controller unchanged.
func (c *Controller) SetColumns(n int) error {
	if err := xduerr.ValidateColumns(n); err != nil {
		return err
	}
	c.columns = n
	c.Repaint()
	return nil
}

// ColumnsForDigit maps a digit key to a column count: '1' through '9'
// are themselves and '0' is 10.
func ColumnsForDigit(d rune) (int, bool) {
	switch {
	case d == '0':
		return 10, true
	case d >= '1' && d <= '9':
		return int(d - '0'), true
	}
	return 0, false
}

// ResetToRoot moves focus back to the overall root.
func (c *Controller) ResetToRoot() {
	c.focus = c.root
	c.Repaint()
}

// Resize changes the viewport. Negative dimensions are stored as zero.
func (c *Controller) Resize(width, height int) {
	c.vp = layout.Viewport{Width: max(width, 0), Height: max(height, 0)}
	c.Repaint()
}

// Repaint discards the previous frame and lays out the focused subtree
// again.
func (c *Controller) Repaint() {
	c.frame = nil
	c.frame = layout.Compute(c.focus, c.vp, c.columns)
	c.logger.Debug("repaint",
		"focus", c.focus.Name,
		"bands", len(c.frame),
		"columns", c.columns,
		"order", c.order,
		"width", c.vp.Width,
		"height", c.vp.Height)
}
