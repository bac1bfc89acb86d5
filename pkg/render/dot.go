package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/treesvg/pkg/tree"
)

// ToDOT converts a tree to Graphviz DOT format for a node-link view.
// The resulting DOT string can be rendered with [DOTToSVG] or [DOTToPNG].
//
// Node identity in the DOT output is positional (n0, n1, ...) in depth-first
// order, so repeated display values never merge into a single vertex.
// Keyword and hex colors are passed through as fill colors; rgb() notations
// fall back to white since DOT has no equivalent literal.
func ToDOT(root *tree.Node) string {
	var buf bytes.Buffer
	buf.WriteString("digraph tree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=14];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	ids := map[*tree.Node]string{}
	next := 0
	root.Walk(func(n *tree.Node) {
		id := fmt.Sprintf("n%d", next)
		next++
		ids[n] = id
		fmt.Fprintf(&buf, "  %s [label=%q, fillcolor=%q];\n", id, fmt.Sprint(n.Value), dotColor(n))
	})

	buf.WriteString("\n")
	root.Walk(func(n *tree.Node) {
		for _, c := range n.Children() {
			fmt.Fprintf(&buf, "  %s -> %s;\n", ids[n], ids[c])
		}
	})

	buf.WriteString("}\n")
	return buf.String()
}

// dotColor maps the node's SVG color to a DOT-compatible fill color.
func dotColor(n *tree.Node) string {
	c := n.Style.Color()
	if strings.HasPrefix(strings.ToLower(c), "rgb(") {
		return "white"
	}
	return c
}

// DOTToSVG renders a DOT graph to SVG using Graphviz.
func DOTToSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// DOTToPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func DOTToPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := DOTToSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return ToPNG(svg, scale)
}
