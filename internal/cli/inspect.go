package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treesvg/pkg/treeio"
)

// newInspectCmd creates the inspect command for examining a tree document.
func newInspectCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "inspect [tree.json]",
		Short: "Summarize or interactively browse a tree document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := treeio.Import(args[0])
			if err != nil {
				return err
			}

			if interactive {
				p := tea.NewProgram(NewTreeBrowserModel(root))
				if _, err := p.Run(); err != nil {
					return fmt.Errorf("run tree browser: %w", err)
				}
				return nil
			}

			printKeyValue("file", args[0])
			printKeyValue("nodes", fmt.Sprintf("%d", root.Size()))
			printKeyValue("depth", fmt.Sprintf("%d", root.Depth()))
			printKeyValue("root style", root.Style.String())
			printDetail("%s", root)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse the tree in an interactive TUI")

	return cmd
}
