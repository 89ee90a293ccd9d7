package tree

import (
	"cmp"
	"slices"
	"strings"

	xduerr "github.com/matzehuels/goxdu/pkg/errors"
)

// Order is a total ordering of siblings.
type Order int

const (
	// OrderFirst keeps creation order (the default).
	OrderFirst Order = iota
	// OrderLast is creation order reversed.
	OrderLast
	// OrderAlpha sorts by name, ascending.
	OrderAlpha
	// OrderReverseAlpha sorts by name, descending.
	OrderReverseAlpha
	// OrderSize sorts by size, largest first.
	OrderSize
	// OrderReverseSize sorts by size, smallest first.
	OrderReverseSize
)

// DefaultOrder is the order a freshly built tree is in.
const DefaultOrder = OrderFirst

var orderNames = map[Order]string{
	OrderFirst:        "first",
	OrderLast:         "last",
	OrderAlpha:        "alpha",
	OrderReverseAlpha: "ralpha",
	OrderSize:         "size",
	OrderReverseSize:  "rsize",
}

// Orders lists every order in declaration order.
var Orders = []Order{OrderFirst, OrderLast, OrderAlpha, OrderReverseAlpha, OrderSize, OrderReverseSize}

// String returns the command-line name of the order.
func (o Order) String() string {
	if s, ok := orderNames[o]; ok {
		return s
	}
	return "unknown"
}

// ParseOrder looks up an order by its command-line name.
func ParseOrder(s string) (Order, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, o := range Orders {
		if orderNames[o] == name {
			return o, nil
		}
	}
	return DefaultOrder, xduerr.New(xduerr.ErrCodeInvalidOrder,
		"unknown order %q (must be one of first, last, alpha, ralpha, size, rsize)", s)
}

// Negate returns the opposite order. Negate is self-inverse.
func (o Order) Negate() Order {
	switch o {
	case OrderFirst:
		return OrderLast
	case OrderLast:
		return OrderFirst
	case OrderAlpha:
		return OrderReverseAlpha
	case OrderReverseAlpha:
		return OrderAlpha
	case OrderSize:
		return OrderReverseSize
	case OrderReverseSize:
		return OrderSize
	}
	return o
}

// Descending reports whether the order sorts its key from high to low.
// Size ordering is descending by default ("largest first").
func (o Order) Descending() bool {
	return o == OrderLast || o == OrderReverseAlpha || o == OrderSize
}

// Compare orders a before b (negative), after b (positive), or equal.
// Ties on the key fall back to ascending Seq.
func (o Order) Compare(a, b *Node) int {
	var c int
	switch o {
	case OrderSize, OrderReverseSize:
		c = cmp.Compare(a.Size, b.Size)
	case OrderAlpha, OrderReverseAlpha:
		c = strings.Compare(a.Name, b.Name)
	default:
		c = cmp.Compare(a.Seq, b.Seq)
	}
	if o.Descending() {
		c = -c
	}
	if c != 0 {
		return c
	}
	return cmp.Compare(a.Seq, b.Seq)
}

// Sort re-orders the children of every node in the subtree rooted at n.
// Descendants are sorted before their parent's own child list.
func Sort(n *Node, o Order) {
	for _, child := range n.Children {
		Sort(child, o)
	}
	slices.SortStableFunc(n.Children, o.Compare)
}
