package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atomicstack/niri-panel/internal/ipc"
	"github.com/atomicstack/niri-panel/internal/registry"
)

var socketPath string

var rootCmd = &cobra.Command{
	Use:   "niri-panel-ctrl",
	Short: "Control a running niri-panel over its unix socket",
	Long: `niri-panel-ctrl sends one-line commands to the panel's control socket.
Widgets are addressed by their canonical names; the daemon acknowledges
every accepted line with OK.`,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&socketPath, "socket", "", "path to the control socket (empty uses the runtime directory)")
}

// sendVerb validates the widget name before the daemon ever sees it, sends
// one command line, and prints the raw response.
func sendVerb(cmd *cobra.Command, verb, name string) error {
	if _, ok := registry.ParseWidget(name); !ok {
		return fmt.Errorf("unknown widget %q (valid: %s)", name, strings.Join(registry.WidgetNames(), ", "))
	}
	client := ipc.Client{Path: socketPath}
	response, err := client.SendCommand(verb + " " + name)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), response)
	return nil
}
