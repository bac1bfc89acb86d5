// Package treegen generates random trees for demos and layout exercises.
//
// Generation draws every choice from a caller-supplied *rand.Rand, never
// from global state, so a fixed seed always reproduces the same tree.
package treegen

import (
	"fmt"
	"math/rand"

	"github.com/matzehuels/treesvg/pkg/errors"
	"github.com/matzehuels/treesvg/pkg/style"
	"github.com/matzehuels/treesvg/pkg/tree"
)

// Params controls random tree generation. The zero value is not usable;
// start from DefaultParams and override fields as needed.
type Params struct {
	// MaxDepth bounds the depth of the generated tree. Depth counts edges:
	// MaxDepth 0 yields a single node; negative yields no tree at all.
	MaxDepth int
	// Branching lists the candidate child counts drawn for each node.
	Branching []int
	// Values lists the candidate node values.
	Values []any
	// Sizes lists the candidate circle radii.
	Sizes []int
	// Colors lists the candidate node colors. When empty, each node gets a
	// color drawn uniformly from the whole rgb space.
	Colors []string
}

// DefaultParams returns the stock generation parameters: depth up to 5,
// 0-4 children per node, single-digit values, radii 5-20, spectrum colors.
func DefaultParams() Params {
	p := Params{
		MaxDepth:  5,
		Branching: intRange(0, 5),
		Sizes:     intRange(5, 21),
	}
	for _, v := range intRange(0, 10) {
		p.Values = append(p.Values, v)
	}
	return p
}

// Node generates a single random node from the parameter pools.
// Empty value or size pools are rejected with ErrCodeInvalidInput.
func Node(rng *rand.Rand, p Params) (*tree.Node, error) {
	if len(p.Values) == 0 || len(p.Sizes) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"values and sizes pools must not be empty")
	}

	var color string
	if len(p.Colors) > 0 {
		color = p.Colors[rng.Intn(len(p.Colors))]
	} else {
		color = fmt.Sprintf("rgb(%d,%d,%d)", rng.Intn(256), rng.Intn(256), rng.Intn(256))
	}

	s, err := style.Parse(fmt.Sprintf("%s@%d", color, p.Sizes[rng.Intn(len(p.Sizes))]))
	if err != nil {
		return nil, err
	}

	n := tree.New(p.Values[rng.Intn(len(p.Values))])
	n.Style = s
	return n, nil
}

// Tree generates a random tree of depth at most p.MaxDepth.
// A negative MaxDepth returns (nil, nil): the empty tree. Each node draws
// its child count from p.Branching, so subtrees thin out at random before
// the depth bound is reached.
func Tree(rng *rand.Rand, p Params) (*tree.Node, error) {
	if p.MaxDepth < 0 {
		return nil, nil
	}
	if len(p.Branching) == 0 || len(p.Values) == 0 || len(p.Sizes) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"branching, values and sizes pools must not be empty")
	}

	root, err := Node(rng, p)
	if err != nil {
		return nil, err
	}

	children := p.Branching[rng.Intn(len(p.Branching))]
	sub := p
	sub.MaxDepth = p.MaxDepth - 1

	for i := 0; i < children; i++ {
		child, err := Tree(rng, sub)
		if err != nil {
			return nil, err
		}
		if child == nil {
			continue
		}
		if err := root.AddChild(child); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func intRange(lo, hi int) []int {
	out := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, i)
	}
	return out
}
