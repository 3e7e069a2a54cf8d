package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/rpncalc/internal/buffer"
	"github.com/zephyrtronium/rpncalc/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive calculator",
		Long: `Start a terminal calculator with a keypad and a stack of saved input.

Keys:
  Enter     - Evaluate
  Tab       - Switch between input and keypad
  Ctrl+S    - Save input to the stack and clear it
  Ctrl+R    - Restore the most recently saved input
  Ctrl+X    - Drop all saved input
  Ctrl+L    - Clear input
  Esc       - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := tui.New(tui.Config{
				Format:  a.cfg.Format,
				Options: a.options(),
				Buffer:  buffer.New(a.cfg.Buffer.Depth),
			})
			p := tea.NewProgram(m, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running calculator: %w", err)
			}
			return nil
		},
	}
}
