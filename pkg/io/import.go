package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/goxdu/pkg/tree"
)

// ErrEmptyName is returned for a node below the root without a name.
var ErrEmptyName = errors.New("node without name")

// node mirrors [tree.Plain] but tells a missing size apart from zero.
type node struct {
	Name     string  `json:"name"`
	Size     *int64  `json:"size"`
	Children []*node `json:"children"`
}

// ReadJSON decodes a JSON dump from r into a tree.
//
// Nodes without a size are resolved from their children. ReadJSON returns
// an error if the JSON is malformed, if there is trailing data after the
// root object, or if a node below the root has an empty name. Errors name
// the path of the offending node.
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*tree.Node, error) {
	p, err := ReadPlain(r)
	if err != nil {
		return nil, err
	}
	return tree.FromPlain(p), nil
}

// ReadPlain is like [ReadJSON] but returns the decoded structure without
// building a tree.
func ReadPlain(r io.Reader) (tree.Plain, error) {
	dec := json.NewDecoder(r)
	var root *node
	if err := dec.Decode(&root); err != nil {
		return tree.Plain{}, fmt.Errorf("decode: %w", err)
	}
	if root == nil {
		return tree.Plain{}, fmt.Errorf("decode: document is null")
	}
	if dec.More() {
		return tree.Plain{}, fmt.Errorf("decode: trailing data after tree")
	}
	return toPlain(root, nil)
}

func toPlain(n *node, path []string) (tree.Plain, error) {
	path = append(path, n.Name)
	if len(path) > 1 && n.Name == "" {
		return tree.Plain{}, fmt.Errorf("%s: %w", strings.Join(path[:len(path)-1], " > "), ErrEmptyName)
	}
	p := tree.Plain{
		Name:     n.Name,
		Size:     tree.Unresolved,
		Children: make([]tree.Plain, 0, len(n.Children)),
	}
	if n.Size != nil && *n.Size >= 0 {
		p.Size = *n.Size
	}
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		child, err := toPlain(c, path)
		if err != nil {
			return tree.Plain{}, err
		}
		p.Children = append(p.Children, child)
	}
	return p, nil
}

// ImportJSON reads a JSON dump at path and returns the decoded tree.
//
// ImportJSON returns the same validation errors as [ReadJSON]. The error
// wraps the underlying cause with the file path for context.
func ImportJSON(path string) (*tree.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	root, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}
