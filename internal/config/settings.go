package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings holds user-configurable settings loaded from config.yaml.
type Settings struct {
	// ConfigDir is the Gemini CLI configuration directory that gets
	// archived and restored. Defaults to $HOME/.gemini.
	ConfigDir string `yaml:"config-dir"`

	// Exclude lists top-level subdirectories of ConfigDir that are never
	// persisted into an archive. Defaults to [tmp].
	Exclude []string `yaml:"exclude"`
}

// SettingsManager handles settings persistence.
type SettingsManager struct {
	paths *Paths
}

// NewSettingsManager creates a settings manager.
func NewSettingsManager(paths *Paths) *SettingsManager {
	return &SettingsManager{paths: paths}
}

// Path returns the settings file path.
func (sm *SettingsManager) Path() string {
	return sm.paths.SettingsFile()
}

// Default returns the settings used when no settings file exists.
func (sm *SettingsManager) Default() *Settings {
	return &Settings{
		ConfigDir: sm.paths.DefaultConfigDir(),
		Exclude:   []string{"tmp"},
	}
}

// Load reads settings from disk.
func (sm *SettingsManager) Load() (*Settings, error) {
	data, err := os.ReadFile(sm.Path())
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	sm.sanitize(&settings)

	return &settings, nil
}

// LoadOrDefault reads settings if available, otherwise returns defaults.
// A malformed settings file is an error, not a silent fallback.
func (sm *SettingsManager) LoadOrDefault() (*Settings, error) {
	settings, err := sm.Load()
	if err == nil {
		return settings, nil
	}
	if os.IsNotExist(err) {
		return sm.Default(), nil
	}
	return nil, err
}

// sanitize fills empty fields with defaults and trims entries.
func (sm *SettingsManager) sanitize(settings *Settings) {
	def := sm.Default()
	if strings.TrimSpace(settings.ConfigDir) == "" {
		settings.ConfigDir = def.ConfigDir
	}
	var exclude []string
	for _, e := range settings.Exclude {
		if e = strings.TrimSpace(e); e != "" {
			exclude = append(exclude, e)
		}
	}
	if exclude == nil {
		exclude = def.Exclude
	}
	settings.Exclude = exclude
}
