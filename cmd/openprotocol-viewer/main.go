// Openprotocol-viewer is a demo client for the iChen Open Protocol.
//
// It connects to an iChen server over WebSocket, displays the Open Protocol
// messages to and from the server, and acts as a mock user authentication
// and job cards provider to exercise the operator login and job card
// features.
//
// Usage:
//
//	openprotocol-viewer [command] [flags]
//
// Running without arguments connects using the saved default profile, or
// prompts for connection details.
// See 'openprotocol-viewer --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chenhsong/OpenProtocol/internal/logging"
	"github.com/chenhsong/OpenProtocol/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "openprotocol-viewer",
	Short: "iChen Open Protocol Viewer",
	Long: `A demo client for the iChen Open Protocol.

Connects to an iChen server over WebSocket, displays every Open Protocol
message exchanged, and serves a built-in set of operator accounts and job
cards to test the MIS/MES integration features.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: connect when no subcommand provided
		return runConnect(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("openprotocol-viewer %s (commit: %s)\n", version.Version, version.Commit)
	},
}
