// Package treeio provides JSON import and export for trees.
//
// The serialization format is a nested document mirroring the tree shape:
//
//	{
//	  "value": "+",
//	  "style": "blue@12",
//	  "children": [
//	    {"value": 1},
//	    {"value": 2, "style": "red@8"}
//	  ]
//	}
//
// "style" is the compact token parsed by [style.Parse] and defaults to
// blue@12 when omitted. "value" may be any JSON value. The format round
// trips: export → re-import produces an equal tree.
package treeio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/treesvg/pkg/errors"
	"github.com/matzehuels/treesvg/pkg/style"
	"github.com/matzehuels/treesvg/pkg/tree"
)

type nodeDoc struct {
	Value    any       `json:"value"`
	Style    string    `json:"style,omitempty"`
	Children []nodeDoc `json:"children,omitempty"`
}

// Read decodes a JSON tree document from r.
//
// Read returns ErrCodeInvalidFormat for malformed JSON and propagates style
// validation errors (format, color, size) for bad style tokens. The returned
// tree is independent of r; Read does not close r.
func Read(r io.Reader) (*tree.Node, error) {
	var doc nodeDoc
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode tree document")
	}
	return fromDoc(doc)
}

func fromDoc(doc nodeDoc) (*tree.Node, error) {
	n := tree.New(doc.Value)
	if doc.Style != "" {
		s, err := style.Parse(doc.Style)
		if err != nil {
			return nil, err
		}
		n.Style = s
	}
	for _, c := range doc.Children {
		child, err := fromDoc(c)
		if err != nil {
			return nil, err
		}
		if err := n.AddChild(child); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Write encodes the tree as an indented JSON document on w.
// Styles are written as their canonical tokens, so the output re-imports to
// an equal tree with [Read].
func Write(root *tree.Node, w io.Writer) error {
	if root == nil {
		return errors.New(errors.ErrCodeInvalidInput, "root node must not be nil")
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toDoc(root)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode tree document")
	}
	return nil
}

func toDoc(n *tree.Node) nodeDoc {
	doc := nodeDoc{Value: n.Value, Style: n.Style.String()}
	for _, c := range n.Children() {
		doc.Children = append(doc.Children, toDoc(c))
	}
	return doc
}

// Import reads a JSON tree file at path.
// The error wraps the underlying cause with the file path for context.
func Import(path string) (*tree.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}

// Export writes a tree to a JSON file at path, overwriting an existing file.
func Export(root *tree.Node, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return Write(root, f)
}
