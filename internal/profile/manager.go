// Package profile orchestrates backup-then-restore transitions between
// named Gemini login profiles.
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/gemini-switch/internal/archive"
	"github.com/danieljhkim/gemini-switch/internal/config"
	"github.com/danieljhkim/gemini-switch/internal/util"
)

var (
	// ErrNoActiveProfile means the configuration directory does not
	// exist, so there is nothing to save.
	ErrNoActiveProfile = errors.New("no active configuration directory")

	// ErrProfileNotFound means the requested profile has no saved
	// archive.
	ErrProfileNotFound = errors.New("profile not found")
)

// NameProvider supplies a profile name when one has to be asked for
// interactively. Tests inject canned names.
type NameProvider func(label string) (string, error)

// StateStore persists the current/previous state record.
type StateStore interface {
	Load() (config.State, error)
	Save(config.State) error
}

// Manager coordinates the archive store, the state store and the
// active configuration directory. It holds no state of its own.
type Manager struct {
	archives  *archive.Store
	states    StateStore
	configDir string
	askName   NameProvider
}

// NewManager creates a profile manager. configDir is the live Gemini
// configuration directory being archived and restored.
func NewManager(archives *archive.Store, states StateStore, configDir string, askName NameProvider) *Manager {
	return &Manager{
		archives:  archives,
		states:    states,
		configDir: configDir,
		askName:   askName,
	}
}

// ConfigDir returns the active configuration directory path.
func (m *Manager) ConfigDir() string {
	return m.configDir
}

// resolveCurrent adopts an untracked configuration directory: when the
// directory exists but no current profile is recorded, the user names
// it and it is archived before anything else happens. A missing
// directory is a no-op.
func (m *Manager) resolveCurrent(st *config.State) error {
	if st.Current != "" || !util.DirExists(m.configDir) {
		return nil
	}

	util.Warn("%s is not tracked by any profile yet", m.configDir)
	name, err := m.askName("Name for the currently logged-in profile")
	if err != nil {
		return err
	}
	if err := validateName(name); err != nil {
		return err
	}
	if err := m.archives.Save(name, m.configDir); err != nil {
		return err
	}
	st.Current, st.Previous = name, ""
	if err := m.states.Save(*st); err != nil {
		return err
	}
	util.Log("Saved current configuration as profile %q", name)
	return nil
}

// Save archives the active configuration directory under name,
// prompting for a name when none is given.
func (m *Manager) Save(name string) error {
	st, err := m.states.Load()
	if err != nil {
		return err
	}
	if !util.DirExists(m.configDir) {
		return fmt.Errorf("%w at %s (log in with the Gemini CLI first)", ErrNoActiveProfile, m.configDir)
	}

	if name == "" {
		if name, err = m.askName("Profile name"); err != nil {
			return err
		}
	}
	if err := validateName(name); err != nil {
		return err
	}

	if err := m.archives.Save(name, m.configDir); err != nil {
		return err
	}
	st.Previous, st.Current = st.Current, name
	return m.states.Save(st)
}

// Add prepares a fresh login under a new profile name: the current
// configuration is adopted if untracked, then the configuration
// directory is removed so the next Gemini login starts clean. No
// archive is created for the new name until the first Save.
func (m *Manager) Add(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	st, err := m.states.Load()
	if err != nil {
		return err
	}
	if err := m.resolveCurrent(&st); err != nil {
		return err
	}

	if util.DirExists(m.configDir) {
		if err := os.RemoveAll(m.configDir); err != nil {
			return fmt.Errorf("failed to clear %s: %w", m.configDir, err)
		}
		util.Log("Cleared %s", m.configDir)
	}

	st.Previous, st.Current = st.Current, name
	return m.states.Save(st)
}

// Switch backs up the active configuration under the current profile,
// then restores target in its place.
func (m *Manager) Switch(target string) error {
	if err := validateName(target); err != nil {
		return err
	}
	st, err := m.states.Load()
	if err != nil {
		return err
	}
	if err := m.resolveCurrent(&st); err != nil {
		return err
	}

	if !m.archives.Has(target) {
		names, _ := m.archives.List()
		if len(names) == 0 {
			return fmt.Errorf("%w: %q (no profiles saved yet)", ErrProfileNotFound, target)
		}
		return fmt.Errorf("%w: %q (available: %s)", ErrProfileNotFound, target, strings.Join(names, ", "))
	}

	if util.DirExists(m.configDir) {
		cur := st.Current
		if cur == "" {
			if cur, err = m.askName("Name for the currently logged-in profile"); err != nil {
				return err
			}
			if err := validateName(cur); err != nil {
				return err
			}
			st.Current = cur
		}
		// Re-archive even when resolveCurrent just did: the extra write
		// is harmless and guarantees the freshest snapshot survives.
		if err := m.archives.Save(cur, m.configDir); err != nil {
			return err
		}
		util.Log("Backed up %q", cur)
	}

	if err := m.archives.Restore(target, m.configDir); err != nil {
		return err
	}
	st.Previous, st.Current = st.Current, target
	if err := m.states.Save(st); err != nil {
		return err
	}
	util.Success("Restored profile %q to %s", target, m.configDir)
	return nil
}

// List returns the names of all saved profiles.
func (m *Manager) List() ([]string, error) {
	return m.archives.List()
}

// Current returns the state record.
func (m *Manager) Current() (config.State, error) {
	return m.states.Load()
}

// validateName rejects names that cannot serve as archive file names.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("profile name required")
	}
	if name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("invalid profile name %q", name)
	}
	return nil
}
