package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/treesvg/pkg/tree"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// TreeBrowserModel - Interactive tree inspection
// =============================================================================

// nodeRow is one flattened tree node with its depth for indentation.
type nodeRow struct {
	node  *tree.Node
	depth int
}

// TreeBrowserModel is the bubbletea model for browsing a tree document.
// Nodes are shown depth-first, one per line, with cursor navigation and a
// detail pane for the selected node.
type TreeBrowserModel struct {
	Rows   []nodeRow
	Cursor int
	Height int
	Offset int
}

// NewTreeBrowserModel flattens the tree depth-first into a browsable model.
func NewTreeBrowserModel(root *tree.Node) TreeBrowserModel {
	var rows []nodeRow
	var flatten func(n *tree.Node, depth int)
	flatten = func(n *tree.Node, depth int) {
		rows = append(rows, nodeRow{node: n, depth: depth})
		for _, c := range n.Children() {
			flatten(c, depth+1)
		}
	}
	flatten(root, 0)

	return TreeBrowserModel{
		Rows:   rows,
		Height: 15,
	}
}

func (m TreeBrowserModel) Init() tea.Cmd {
	return nil
}

func (m TreeBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			m.Cursor = len(m.Rows) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case tea.WindowSizeMsg:
		if msg.Height > 6 {
			m.Height = msg.Height - 6
		}
	}
	return m, nil
}

func (m TreeBrowserModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Tree browser") + "\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("%d nodes · ↑/↓ move · q quit", len(m.Rows))) + "\n\n")

	end := m.Offset + m.Height
	if end > len(m.Rows) {
		end = len(m.Rows)
	}

	for i := m.Offset; i < end; i++ {
		row := m.Rows[i]
		line := strings.Repeat("  ", row.depth) + fmt.Sprintf("%v", row.node.Value)

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString(listNormalStyle.Render("  "+line) + "\n")
		}
	}

	sel := m.Rows[m.Cursor].node
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("style %s · %d child(ren) · subtree depth %d",
		sel.Style, len(sel.Children()), sel.Depth())))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the node currently under the cursor.
func (m TreeBrowserModel) Selected() *tree.Node {
	return m.Rows[m.Cursor].node
}
