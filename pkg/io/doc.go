// Package io provides JSON import and export for size trees.
//
// # Overview
//
// A dump is the whole tree as nested objects, written in the current
// sibling order. The format is designed for:
//
//   - Handing a parsed listing to other tools
//   - Re-opening a listing without the original du output
//   - Round-trip preservation: dump, reload, and dump again identically
//
// # JSON Format
//
// Every node is an object with a name, a size and a list of children:
//
//	{
//	  "name": "/",
//	  "size": 350,
//	  "children": [
//	    {"name": "usr", "size": 300, "children": []},
//	    {"name": "home", "size": 50, "children": []}
//	  ]
//	}
//
// "children" is always an array, never null. Output is indented with two
// spaces and HTML escaping is disabled, so names containing <, > or & are
// written as they are.
//
// # Import
//
// Use [ImportJSON] to read a tree from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	root, err := io.ImportJSON("tree.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// On import "size" may be omitted, in which case the node takes the sum
// of its children, and "children" may be omitted or null for leaves.
// Every node below the root must have a non-empty name.
//
// # Export
//
// Use [ExportJSON] to write a tree to a file, or [WriteJSON] to write to
// any io.Writer:
//
//	err := io.ExportJSON(root, "tree.json")
package io
