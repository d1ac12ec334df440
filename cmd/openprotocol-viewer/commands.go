package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chenhsong/OpenProtocol/internal/client"
	"github.com/chenhsong/OpenProtocol/internal/config"
	"github.com/chenhsong/OpenProtocol/internal/protocol"
)

// Connection command flags
var (
	serverURL   string
	orgID       string
	filterList  string
	profileName string
	saveProfile bool
)

func init() {
	connectCmd.Flags().StringVar(&serverURL, "url", "", "WebSocket URL of the server, e.g. ws://x.x.x.x:5788")
	connectCmd.Flags().StringVar(&orgID, "org", "", "Organization ID (default organization if empty)")
	connectCmd.Flags().StringVar(&filterList, "filter", "All, JobCards, Operators", "Message filter list")
	connectCmd.Flags().StringVar(&profileName, "profile", "", "Saved connection profile to use")
	connectCmd.Flags().BoolVar(&saveProfile, "save", false, "Save the connection settings to the profile")

	rootCmd.AddCommand(connectCmd)
	rootCmd.AddCommand(profilesCmd)
}

// connectCmd connects to an iChen server and displays message traffic
var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect to an iChen server",
	Long: `Connect to an iChen server's Open Protocol interface and display
all message traffic.

The connection password is always prompted and never stored. The built-in
mock users and job cards are served to the controller when it asks for
operator authentication or job scheduling.`,
	Example: `  # Connect directly
  openprotocol-viewer connect --url ws://192.168.1.10:5788

  # Connect with a restricted filter
  openprotocol-viewer connect --url ws://192.168.1.10:5788 --filter "Status, Cycle"

  # Connect via a saved profile
  openprotocol-viewer connect --profile factory

  # Save the settings while connecting
  openprotocol-viewer connect --url ws://192.168.1.10:5788 --profile factory --save`,
	RunE: runConnect,
}

func runConnect(cmd *cobra.Command, args []string) error {
	registry, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("cannot load configuration: %w", err)
	}

	if profileName == "" {
		profileName = registry.Preferences.DefaultServer
	}
	if profile := registry.GetServer(profileName); profile != nil {
		if serverURL == "" {
			serverURL = profile.URL
		}
		if orgID == "" {
			orgID = profile.OrgID
		}
		if !cmd.Flags().Changed("filter") && profile.Filter != "" {
			filterList = profile.Filter
		}
	}

	if serverURL == "" {
		serverURL, err = promptLine("WebSocket URL (example: ws://x.x.x.x:port or wss://x.x.x.x:port): ")
		if err != nil {
			return err
		}
	}
	if !strings.HasPrefix(serverURL, "ws://") && !strings.HasPrefix(serverURL, "wss://") {
		return fmt.Errorf("invalid WebSocket URL format, should be ws://x.x.x.x:port or wss://x.x.x.x:port")
	}

	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	filter := protocol.ParseFilters(filterList)

	c, err := client.New(client.Config{
		URL:      serverURL,
		Password: password,
		OrgID:    orgID,
		Filter:   filter,
		OnMessage: func(direction string, m protocol.Message) {
			prefix := "<<<"
			if direction == "received" {
				prefix = ">>>"
			}
			fmt.Printf("%s %s(%d)\n", prefix, m.Type(), m.Options().Sequence)
		},
	})
	if err != nil {
		return err
	}

	printBuiltins()

	fmt.Printf("Connecting to iChen Server at %s...\n", serverURL)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if err := c.Connect(ctx); err != nil {
		return err
	}
	fmt.Println("Connection established. Press Ctrl-C to quit.")

	if saveProfile && profileName != "" {
		registry.UpdateServerLastConnected(profileName, serverURL)
		registry.SetServerFilter(profileName, filter.String())
		if orgID != "" {
			registry.EnsureServer(profileName).OrgID = orgID
		}
		if err := registry.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot save profile: %v\n", err)
		}
	}

	if err := c.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	fmt.Println("Connection closed.")
	return nil
}

// profilesCmd lists the saved connection profiles
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List saved connection profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := config.LoadRegistry()
		if err != nil {
			return fmt.Errorf("cannot load configuration: %w", err)
		}

		if len(registry.Servers) == 0 {
			fmt.Println("No saved profiles.")
			fmt.Println("Use 'openprotocol-viewer connect --url <url> --profile <name> --save' to create one.")
			return nil
		}

		for name, server := range registry.Servers {
			marker := " "
			if name == registry.Preferences.DefaultServer {
				marker = "*"
			}
			fmt.Printf("%s %s\n", marker, name)
			fmt.Printf("    URL:    %s\n", server.URL)
			if server.OrgID != "" {
				fmt.Printf("    Org:    %s\n", server.OrgID)
			}
			if server.Filter != "" {
				fmt.Printf("    Filter: %s\n", server.Filter)
			}
			if !server.LastConnected.IsZero() {
				fmt.Printf("    Last:   %s\n", server.LastConnected.Format("2006-01-02 15:04:05"))
			}
		}
		return nil
	},
}

func printBuiltins() {
	fmt.Println("=================================================")
	fmt.Println("Built-in Users for Testing:")
	for password, account := range client.BuiltinUsers() {
		fmt.Printf("> Name=%s, Password=%s, Level=%d\n", account.Name, password, account.Level)
	}
	fmt.Println("=================================================")
	fmt.Println("Built-in Job Cards for Testing:")
	for _, jc := range client.BuiltinJobs() {
		fmt.Printf("> Name=%s, Mold=%s, Quantity=%d/%d\n", jc.JobCardID, jc.MoldID, jc.Progress, jc.Total)
	}
	fmt.Println("=================================================")
}

func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("cannot read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)

	// Hide the password when attached to a terminal.
	if term.IsTerminal(int(os.Stdin.Fd())) {
		data, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("cannot read password: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	return promptLine("")
}
