// Package render turns a laid-out tree into image documents.
//
// The primary output is a self-contained SVG string produced by [SVG].
// Convenience converters produce PNG and PDF from that SVG (convert.go), and
// an alternative node-link view renders through Graphviz (dot.go).
//
// Rendering is pure: it lays the tree out on the requested canvas, walks it
// once, and returns the document. Persisting the result is the caller's
// responsibility. The gradient bookkeeping lives in a per-call accumulator,
// so concurrent renders of different trees do not interfere.
package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/matzehuels/treesvg/pkg/errors"
	"github.com/matzehuels/treesvg/pkg/layout"
	"github.com/matzehuels/treesvg/pkg/style"
	"github.com/matzehuels/treesvg/pkg/tree"
)

// Canvas dimension bounds in pixels.
const (
	DimensionMin = 10
	DimensionMax = 10000
)

// DefaultTitle is the document title used when none is configured.
const DefaultTitle = "Tree graphic created with treesvg"

const indentStep = "    "

// Option configures SVG rendering.
type Option func(*svgRenderer)

type svgRenderer struct {
	width    int
	height   int
	gradient bool
	border   bool
	title    string

	// emitted tracks gradient ids already defined during this render call.
	emitted map[string]bool
}

// WithSize sets the canvas width and height in pixels (default 400x400).
// Both must be in [DimensionMin, DimensionMax].
func WithSize(width, height int) Option {
	return func(r *svgRenderer) { r.width, r.height = width, height }
}

// WithoutGradient disables gradient edges; all edges are drawn flat black.
func WithoutGradient() Option {
	return func(r *svgRenderer) { r.gradient = false }
}

// WithoutBorder disables the border rectangle around the image.
func WithoutBorder() Option {
	return func(r *svgRenderer) { r.border = false }
}

// WithTitle sets the document title element.
func WithTitle(title string) Option {
	return func(r *svgRenderer) { r.title = title }
}

// SVG lays out the tree on the configured canvas and returns a complete SVG
// document.
//
// Per the guidance of the W3C SVG 1.1 (Second Edition) Recommendation,
// section 1.3, no DOCTYPE declaration is included.
//
// Returns ErrCodeInvalidDimension if the configured width or height is
// outside [DimensionMin, DimensionMax]. Either the full document is produced
// or an error is returned; there is no partial output.
func SVG(root *tree.Node, opts ...Option) (string, error) {
	if root == nil {
		return "", errors.New(errors.ErrCodeInvalidInput, "root node must not be nil")
	}

	r := svgRenderer{
		width:    400,
		height:   400,
		gradient: true,
		border:   true,
		title:    DefaultTitle,
		emitted:  map[string]bool{},
	}
	for _, opt := range opts {
		opt(&r)
	}

	if r.width < DimensionMin || r.width > DimensionMax ||
		r.height < DimensionMin || r.height > DimensionMax {
		return "", errors.New(errors.ErrCodeInvalidDimension,
			"width and height must be integers in [%d, %d], got %dx%d",
			DimensionMin, DimensionMax, r.width, r.height)
	}

	if err := layout.Apply(root, float64(r.width), float64(r.height)); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<?xml version=\"1.0\" encoding=\"utf-8\" standalone=\"no\"?>\n\n")
	fmt.Fprintf(&buf, "<svg width=\"%d\" height=\"%d\" version=\"1.1\" xmlns=\"http://www.w3.org/2000/svg\">\n\n",
		r.width, r.height)

	buf.WriteString(indentStep + "<!-- image title -->\n")
	fmt.Fprintf(&buf, "%s<title>%s</title>\n\n", indentStep, r.title)

	if r.gradient {
		r.writeGradientDefs(&buf, root)
	}

	if r.border {
		buf.WriteString(indentStep + "<!-- image border -->\n")
		fmt.Fprintf(&buf, "%s<rect x=\"0\" y=\"0\" width=\"%d\" height=\"%d\" style=\"stroke: #000000; fill: none;\"/>\n\n",
			indentStep, r.width, r.height)
	}

	r.writeNodes(&buf, root, indentStep)

	buf.WriteString("</svg>\n")
	return buf.String(), nil
}

// gradientID builds the definition id for an edge between two styles.
// Both the defs pass and the edge pass use this rule, so every reference
// resolves to an emitted definition.
func gradientID(parent, child style.Spec) string {
	return fmt.Sprintf("grad_%s_%s", parent.ColorID(), child.ColorID())
}

// writeGradientDefs emits one linearGradient definition per distinct
// parent/child color pair in the tree. Same-color edges need no gradient.
// The emitted set is shared across the whole traversal: a pair already
// defined for an earlier edge is never defined again.
func (r *svgRenderer) writeGradientDefs(buf *bytes.Buffer, root *tree.Node) {
	var defs bytes.Buffer
	root.Walk(func(n *tree.Node) {
		for _, c := range n.Children() {
			if n.Style.Color() == c.Style.Color() {
				continue
			}
			id := gradientID(n.Style, c.Style)
			if r.emitted[id] {
				continue
			}
			r.emitted[id] = true
			fmt.Fprintf(&defs, "        <linearGradient id=\"%s\" x1=\"0%%\" x2=\"0%%\" y1=\"0%%\" y2=\"100%%\">\n", id)
			fmt.Fprintf(&defs, "           <stop offset=\"0%%\" stop-color=\"%s\"/>\n", n.Style.Color())
			fmt.Fprintf(&defs, "           <stop offset=\"100%%\" stop-color=\"%s\"/>\n", c.Style.Color())
			defs.WriteString("        </linearGradient>\n")
		}
	})

	buf.WriteString(indentStep + "<defs>\n")
	buf.WriteString("        <!-- linear gradient definitions -->\n")
	buf.Write(defs.Bytes())
	buf.WriteString(indentStep + "</defs>\n\n")
}

// writeNodes emits the node and edge elements depth-first. Edges are drawn
// before the circle they terminate at, so circles paint over line ends.
func (r *svgRenderer) writeNodes(buf *bytes.Buffer, n *tree.Node, indent string) {
	fmt.Fprintf(buf, "%s<!-- Node %v -->\n", indent, n.Value)

	for _, c := range n.Children() {
		fmt.Fprintf(buf, "%s<line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" stroke=\"%s\" stroke-width=\"2\"/> <!-- edge to node %v -->\n",
			indent, coord(n.X), coord(n.Y), coord(c.X), coord(c.Y), r.edgeColor(n, c), c.Value)
	}

	fmt.Fprintf(buf, "%s<circle cx=\"%s\" cy=\"%s\" r=\"%d\" fill=\"%s\"/>\n\n",
		indent, coord(n.X), coord(n.Y), n.Style.Size(), n.Style.Color())

	for _, c := range n.Children() {
		r.writeNodes(buf, c, indent+indentStep)
	}
}

// edgeColor picks the stroke for the edge from n to child c: flat black when
// gradients are off, the shared color when both ends match, otherwise a
// reference to the gradient defined for the pair.
func (r *svgRenderer) edgeColor(n, c *tree.Node) string {
	if !r.gradient {
		return "black"
	}
	if n.Style.Color() == c.Style.Color() {
		return n.Style.Color()
	}
	return fmt.Sprintf("url(#%s)", gradientID(n.Style, c.Style))
}

// coord formats a coordinate with minimal digits.
func coord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
