package main

import (
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [widget]",
	Short: "Show a widget's popover",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return sendVerb(cmd, "show", args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
