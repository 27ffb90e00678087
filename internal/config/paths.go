package config

import (
	"os"
	"os/user"
	"path/filepath"
)

// Paths holds the standard path locations for gemini-switch.
type Paths struct {
	HomeDir string // User home directory
	BaseDir string // Base directory for profile archives and state ($HOME/.gemini-switch)
}

// NewPaths creates a new Paths instance.
// homeDir: user home directory (empty string uses default)
// baseDir: base directory (empty string uses default)
func NewPaths(homeDir, baseDir string) *Paths {
	if homeDir == "" {
		homeDir = DefaultHomeDir()
	}
	if baseDir == "" {
		baseDir = filepath.Join(homeDir, ".gemini-switch")
	}
	return &Paths{
		HomeDir: homeDir,
		BaseDir: baseDir,
	}
}

// DefaultHomeDir returns the user home directory: $HOME, falling back
// to the OS user database when HOME is not set.
func DefaultHomeDir() string {
	home := os.Getenv("HOME")
	if home == "" {
		if currentUser, err := user.Current(); err == nil {
			home = currentUser.HomeDir
		}
	}
	return home
}

// ProfilesDir returns the archive root: $BASE_DIR/profiles
// One zip archive per saved profile lives here.
func (p *Paths) ProfilesDir() string {
	return filepath.Join(p.BaseDir, "profiles")
}

// StateFile returns the path to the current/previous state record:
// $BASE_DIR/state
func (p *Paths) StateFile() string {
	return filepath.Join(p.BaseDir, "state")
}

// SettingsFile returns the settings file path: $BASE_DIR/config.yaml
func (p *Paths) SettingsFile() string {
	return filepath.Join(p.BaseDir, "config.yaml")
}

// DefaultConfigDir returns the default Gemini CLI configuration
// directory: $HOME/.gemini
func (p *Paths) DefaultConfigDir() string {
	return filepath.Join(p.HomeDir, ".gemini")
}
