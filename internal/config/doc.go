// Package config provides user configuration management for the Open
// Protocol tools.
//
// This package manages a YAML-based configuration file that stores saved
// iChen server connection profiles and application preferences. The
// configuration follows OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/openprotocol/config.yaml or $HOME/.config/openprotocol/config.yaml
//   - macOS: $HOME/.config/openprotocol/config.yaml
//   - Windows: %LOCALAPPDATA%\openprotocol\config.yaml
//
// # Security
//
// IMPORTANT: This package NEVER stores server passwords. They are always
// prompted from the user when needed.
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	registry.Servers["factory"] = &config.Server{
//	    URL:    "ws://192.168.1.10:5788",
//	    Filter: "All, JobCards, Operators",
//	}
//
//	// Save changes atomically
//	if err := registry.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across
// goroutines. File operations are protected by a mutex to ensure atomic
// writes.
package config
