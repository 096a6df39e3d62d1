package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/atomicstack/niri-panel/internal/ipc"
	"github.com/atomicstack/niri-panel/internal/picker"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a widget interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		model := picker.NewModel(ipc.Client{Path: socketPath})
		program := tea.NewProgram(model, tea.WithAltScreen())
		final, err := program.Run()
		if err != nil {
			return err
		}
		m, ok := final.(*picker.Model)
		if !ok {
			return fmt.Errorf("unexpected final model %T", final)
		}
		if outcome, ok := m.Outcome(); ok {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", outcome.Command, outcome.Response)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pickCmd)
}
