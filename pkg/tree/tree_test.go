package tree

import (
	"testing"

	"github.com/matzehuels/treesvg/pkg/errors"
)

// buildTree constructs the tree used by several tests:
//
//	+
//	|- 1
//	|- 2
//	|  |- a
//	|  |- b
//	|- 3
func buildTree(t *testing.T) (*Node, *Node) {
	t.Helper()

	root := New("+")
	two := New(2)
	for _, child := range []*Node{New(1), two, New(3)} {
		if err := root.AddChild(child); err != nil {
			t.Fatalf("AddChild: %v", err)
		}
	}
	for _, child := range []*Node{New("a"), New("b")} {
		if err := two.AddChild(child); err != nil {
			t.Fatalf("AddChild: %v", err)
		}
	}
	return root, two
}

func TestAddChildOrder(t *testing.T) {
	root, _ := buildTree(t)

	kids := root.Children()
	if len(kids) != 3 {
		t.Fatalf("len(Children()) = %d, want 3", len(kids))
	}
	want := []any{1, 2, 3}
	for i, k := range kids {
		if k.Value != want[i] {
			t.Errorf("child %d = %v, want %v", i, k.Value, want[i])
		}
	}
}

func TestAddChildRejections(t *testing.T) {
	root, two := buildTree(t)
	other := New("other")

	tests := []struct {
		name   string
		parent *Node
		child  *Node
	}{
		{name: "nil child", parent: root, child: nil},
		{name: "self", parent: root, child: root},
		{name: "already attached", parent: other, child: two},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parent.AddChild(tt.child)
			if !errors.Is(err, errors.ErrCodeInvalidChild) {
				t.Errorf("AddChild() = %v, want INVALID_CHILD", err)
			}
		})
	}
}

func TestDepth(t *testing.T) {
	root, two := buildTree(t)

	if got := New("leaf").Depth(); got != 0 {
		t.Errorf("leaf Depth() = %d, want 0", got)
	}
	if got := two.Depth(); got != 1 {
		t.Errorf("subtree Depth() = %d, want 1", got)
	}
	if got := root.Depth(); got != 2 {
		t.Errorf("root Depth() = %d, want 2", got)
	}
}

func TestIsLeaf(t *testing.T) {
	root, two := buildTree(t)

	if root.IsLeaf() {
		t.Error("root should not be a leaf")
	}
	if !two.Children()[0].IsLeaf() {
		t.Error("terminal node should be a leaf")
	}
}

func TestSize(t *testing.T) {
	root, _ := buildTree(t)
	if got := root.Size(); got != 6 {
		t.Errorf("Size() = %d, want 6", got)
	}
}

func TestWalkOrder(t *testing.T) {
	root, _ := buildTree(t)

	var got []any
	root.Walk(func(n *Node) { got = append(got, n.Value) })

	want := []any{"+", 1, 2, "a", "b", 3}
	if len(got) != len(want) {
		t.Fatalf("Walk visited %d nodes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("visit %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParent(t *testing.T) {
	root, two := buildTree(t)

	if root.Parent() != nil {
		t.Error("root Parent() should be nil")
	}
	if two.Parent() != root {
		t.Error("child Parent() should be the root")
	}
}

func TestString(t *testing.T) {
	root, _ := buildTree(t)

	want := "+\n|- 1\n|- 2\n   |- a\n   |- b\n|- 3"
	if got := root.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestNewStyled(t *testing.T) {
	n, err := NewStyled("x", "crimson@30")
	if err != nil {
		t.Fatalf("NewStyled: %v", err)
	}
	if n.Style.Color() != "crimson" || n.Style.Size() != 30 {
		t.Errorf("Style = %v, want crimson@30", n.Style)
	}

	if _, err := NewStyled("x", "bug_color@62"); !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("NewStyled with bad color = %v, want INVALID_COLOR", err)
	}
}
