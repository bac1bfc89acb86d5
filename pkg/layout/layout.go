// Package layout assigns canvas coordinates to every node of a tree.
//
// Two independent passes write the two axes: AssignY maps tree depth to the
// vertical axis and AssignX spreads siblings across horizontal slices of the
// canvas. Both must run before rendering; a skipped pass leaves that axis
// at zero. Apply runs both.
//
// The passes share one primitive, Lerp, and lean on a half-step padding of
// the source intervals so that no node ever lands exactly on a canvas edge
// and no interval ever collapses for a tree with at least one node.
package layout

import (
	"github.com/matzehuels/treesvg/pkg/errors"
	"github.com/matzehuels/treesvg/pkg/tree"
)

// Lerp maps x linearly from the interval [a, b] to [c, d]:
//
//	f(x) = (x-a)/(b-a) * (d-c) + c
//
// A collapsed interval (a == b or c == d) returns ErrCodeDegenerateInterval.
// The layout passes arrange their intervals so this is unreachable for any
// tree; seeing it surfaced means a caller broke a layout precondition.
func Lerp(x, a, b, c, d float64) (float64, error) {
	if a == b || c == d {
		return 0, errors.New(errors.ErrCodeDegenerateInterval,
			"intervals [%g, %g] and [%g, %g] must not be empty", a, b, c, d)
	}
	return (x-a)/(b-a)*(d-c) + c, nil
}

// Apply runs both layout passes over the tree, vertical then horizontal.
func Apply(root *tree.Node, width, height float64) error {
	if err := AssignY(root, height); err != nil {
		return err
	}
	return AssignX(root, width)
}

// AssignY writes the vertical coordinate of every node in the tree.
//
// A node at depth t in a tree of total depth T is placed at
// lerp(t, -0.5, T+0.5, 0, height). The half-step padding keeps the root off
// the top edge and the deepest leaves off the bottom edge. The total depth
// is computed once from the root and held constant for the whole recursion,
// so all nodes sharing a depth share a y, wherever they sit in the tree.
func AssignY(root *tree.Node, height float64) error {
	return assignY(root, height, 0, float64(root.Depth()))
}

func assignY(n *tree.Node, height float64, depth int, total float64) error {
	y, err := Lerp(float64(depth), -0.5, total+0.5, 0, height)
	if err != nil {
		return err
	}
	n.Y = y

	for _, c := range n.Children() {
		if err := assignY(c, height, depth+1, total); err != nil {
			return err
		}
	}
	return nil
}

// AssignX writes the horizontal coordinate of every node in the tree.
//
// A node at index i of a sibling group of n nodes, whose group owns a
// horizontal slice of width w starting at offset, is placed at
// offset + lerp(i, -0.5, n-0.5, 0, w). Each group's slice is then divided
// evenly among its members, and a node's children recurse into the member's
// sub-slice: width w/n, starting at offset + lerp(i-1, -1, n-1, 0, w).
// Sub-slices tile the parent slice exactly, so cousins never overlap.
func AssignX(root *tree.Node, width float64) error {
	return assignX(root, width, 0, 0, 1)
}

func assignX(n *tree.Node, width, offset float64, index, siblings int) error {
	x, err := Lerp(float64(index), -0.5, float64(siblings)-0.5, 0, width)
	if err != nil {
		return err
	}
	n.X = offset + x

	if n.IsLeaf() {
		return nil
	}

	childWidth := width / float64(siblings)
	shift, err := Lerp(float64(index)-1, -1, float64(siblings)-1, 0, width)
	if err != nil {
		return err
	}
	childOffset := offset + shift

	for i, c := range n.Children() {
		if err := assignX(c, childWidth, childOffset, i, len(n.Children())); err != nil {
			return err
		}
	}
	return nil
}
