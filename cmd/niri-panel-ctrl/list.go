package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atomicstack/niri-panel/internal/ipc"
	"github.com/atomicstack/niri-panel/internal/picker"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the widgets the panel can show",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := ipc.Client{Path: socketPath}
		response, err := client.SendCommand("list")
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, response)
		// The acknowledgment carries no names; the daemon only logs its
		// registered set. The canonical set is client-side knowledge.
		fmt.Fprintln(out, "Available widgets:")
		for _, entry := range picker.Entries() {
			fmt.Fprintln(out, entry.Label)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
