package main

import (
	"github.com/spf13/cobra"
)

var hideCmd = &cobra.Command{
	Use:   "hide [widget]",
	Short: "Hide a widget's popover",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return sendVerb(cmd, "hide", args[0])
	},
}

func init() {
	rootCmd.AddCommand(hideCmd)
}
