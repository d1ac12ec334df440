package config

import "time"

// Registry represents the entire user configuration file.
// This stores user-defined metadata for iChen servers and application
// preferences.
type Registry struct {
	Version     int                `yaml:"version"`
	Servers     map[string]*Server `yaml:"servers,omitempty"` // Keyed by profile name
	Preferences *Preferences       `yaml:"preferences,omitempty"`
}

// Server represents a saved connection profile for a single iChen server.
// This is keyed by a user-chosen profile name in the Registry.
type Server struct {
	URL           string    `yaml:"url"`                      // WebSocket URL, e.g. "ws://192.168.1.10:5788"
	OrgID         string    `yaml:"org_id,omitempty"`         // Organization ID, empty for the default org
	Filter        string    `yaml:"filter,omitempty"`         // Message filter list, e.g. "All, JobCards"
	LastConnected time.Time `yaml:"last_connected,omitempty"` // Last successful connection time
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	DefaultServer string `yaml:"default_server,omitempty"` // Profile used when none is named
	AliveInterval int    `yaml:"alive_interval"`           // Keep-alive period in seconds
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: 1,
		Servers: make(map[string]*Server),
		Preferences: &Preferences{
			AliveInterval: 10,
		},
	}
}

// GetServer retrieves a server profile by name.
// Returns nil if the profile doesn't exist in the registry.
func (r *Registry) GetServer(name string) *Server {
	return r.Servers[name]
}

// EnsureServer ensures a server profile exists in the registry.
// If the profile doesn't exist, creates a new entry with default values.
// Returns the profile (existing or newly created).
func (r *Registry) EnsureServer(name string) *Server {
	if r.Servers == nil {
		r.Servers = make(map[string]*Server)
	}

	if server, exists := r.Servers[name]; exists {
		return server
	}

	server := &Server{}
	r.Servers[name] = server
	return server
}

// UpdateServerLastConnected records a successful connection to a profile.
func (r *Registry) UpdateServerLastConnected(name, url string) {
	server := r.EnsureServer(name)
	server.URL = url
	server.LastConnected = time.Now()
}

// SetServerFilter updates the saved message filter list for a profile.
func (r *Registry) SetServerFilter(name, filter string) {
	server := r.EnsureServer(name)
	server.Filter = filter
}
