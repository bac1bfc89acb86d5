// Package tree implements the rooted tree structure that treesvg lays out
// and renders.
//
// A Node carries an opaque display value, an ordered list of children, a
// style, and the planar coordinates computed by the layout passes. Child
// order is significant: it determines left-to-right placement. Every node
// has at most one parent; AddChild enforces the invariant and rejects a node
// that is already attached elsewhere, so trees can never silently alias
// subtrees or form cycles.
//
// Nodes are not safe for concurrent mutation. Layout and rendering are
// plain synchronous traversals with recursion depth bounded by tree depth.
package tree

import (
	"fmt"
	"strings"

	"github.com/matzehuels/treesvg/pkg/errors"
	"github.com/matzehuels/treesvg/pkg/style"
)

// Node is a single tree node.
//
// X and Y are the node's coordinates on the canvas. They start at zero and
// are written by the layout passes; rendering recomputes them on every call,
// so they always reflect the current tree shape.
type Node struct {
	Value any        // display payload, never interpreted by layout or rendering
	Style style.Spec // fill color and circle radius
	X, Y  float64    // canvas coordinates, written by pkg/layout

	children []*Node
	parent   *Node
}

// New creates a detached node with the default style.
func New(value any) *Node {
	return &Node{Value: value, Style: style.Default()}
}

// NewStyled creates a detached node with the given style token.
// The token is validated with [style.Parse].
func NewStyled(value any, token string) (*Node, error) {
	s, err := style.Parse(token)
	if err != nil {
		return nil, err
	}
	return &Node{Value: value, Style: s}, nil
}

// AddChild appends child to the node's ordered child list.
//
// The child must be a detached root: nil nodes, self-attachment and nodes
// that already have a parent are rejected with ErrCodeInvalidChild. This
// keeps every node single-parented, which rules out aliased subtrees and
// cycles by construction.
func (n *Node) AddChild(child *Node) error {
	if child == nil {
		return errors.New(errors.ErrCodeInvalidChild, "child must not be nil")
	}
	if child == n {
		return errors.New(errors.ErrCodeInvalidChild, "node cannot be its own child")
	}
	if child.parent != nil {
		return errors.New(errors.ErrCodeInvalidChild,
			"node %v is already attached to %v", child.Value, child.parent.Value)
	}
	child.parent = n
	n.children = append(n.children, child)
	return nil
}

// Children returns the node's children in insertion order.
// The returned slice is the node's own backing slice; treat it as read-only.
func (n *Node) Children() []*Node { return n.children }

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Depth returns the maximum number of edges from the node to any reachable
// leaf. A node without children has depth 0.
func (n *Node) Depth() int {
	depth := 0
	for _, c := range n.children {
		if d := c.Depth() + 1; d > depth {
			depth = d
		}
	}
	return depth
}

// Size returns the number of nodes in the subtree rooted at n, including n.
func (n *Node) Size() int {
	total := 1
	for _, c := range n.children {
		total += c.Size()
	}
	return total
}

// Walk calls fn for every node of the subtree in depth-first order, parents
// before children, siblings in insertion order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// String returns an indented one-line-per-node view of the subtree:
//
//	+
//	|- 1
//	|- 2
//	|- 3
func (n *Node) String() string {
	var b strings.Builder
	n.writeIndented(&b, 0)
	return strings.TrimRight(b.String(), "\n")
}

func (n *Node) writeIndented(b *strings.Builder, depth int) {
	if depth > 0 {
		b.WriteString(strings.Repeat("   ", depth-1))
		b.WriteString("|- ")
	}
	fmt.Fprintf(b, "%v\n", n.Value)
	for _, c := range n.children {
		c.writeIndented(b, depth+1)
	}
}
