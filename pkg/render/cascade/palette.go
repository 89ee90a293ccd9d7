package cascade

import (
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/goxdu/pkg/tree"
)

// Palette is the base background color of each band depth, wrapping
// around for deeper levels.
var Palette = []string{
	"#5E81AC",
	"#8FBCBB",
	"#A3BE8C",
	"#EBCB8B",
	"#D08770",
	"#B48EAD",
}

// Ink is the label color drawn on top of every shade.
const Ink = "#2E3440"

// altDarken is how far odd siblings are blended toward black.
const altDarken = 0.15

var black = colorful.Color{}

// ShadeFor returns the background color for the index-th band at depth.
// Even siblings get the depth's base color and odd siblings a darker
// shade of it, so that neighbours stay apart.
func ShadeFor(depth, index int) string {
	base := Palette[depth%len(Palette)]
	if index%2 == 0 {
		return base
	}
	c, err := colorful.Hex(base)
	if err != nil {
		return base
	}
	return c.BlendLab(black, altDarken).Clamped().Hex()
}

// Label is the text shown for a node: its name, followed by its size in
// parentheses when showSize is set.
func Label(n *tree.Node, showSize bool) string {
	if !showSize {
		return n.Name
	}
	return n.Name + " (" + strconv.FormatInt(n.Size, 10) + ")"
}
