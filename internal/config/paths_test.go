package config

import (
	"path/filepath"
	"testing"
)

func TestPathDerivations(t *testing.T) {
	paths := NewPaths("/home/alice", "")

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "base dir defaults under home",
			got:      paths.BaseDir,
			expected: "/home/alice/.gemini-switch",
		},
		{
			name:     "profiles dir",
			got:      paths.ProfilesDir(),
			expected: "/home/alice/.gemini-switch/profiles",
		},
		{
			name:     "state file",
			got:      paths.StateFile(),
			expected: "/home/alice/.gemini-switch/state",
		},
		{
			name:     "settings file",
			got:      paths.SettingsFile(),
			expected: "/home/alice/.gemini-switch/config.yaml",
		},
		{
			name:     "default config dir",
			got:      paths.DefaultConfigDir(),
			expected: "/home/alice/.gemini",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != filepath.FromSlash(tt.expected) {
				t.Errorf("got %q, want %q", tt.got, tt.expected)
			}
		})
	}
}

func TestNewPathsExplicitBaseDir(t *testing.T) {
	paths := NewPaths("/home/alice", "/tmp/custom")
	if paths.BaseDir != "/tmp/custom" {
		t.Errorf("BaseDir = %q, want %q", paths.BaseDir, "/tmp/custom")
	}
	if paths.ProfilesDir() != filepath.Join("/tmp/custom", "profiles") {
		t.Errorf("ProfilesDir = %q", paths.ProfilesDir())
	}
}
