package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/danieljhkim/gemini-switch/internal/util"
)

// State records which profile the active configuration directory is
// presumed to hold, and which one was active before the last switch.
// Either field may be empty ("unknown").
type State struct {
	Current  string
	Previous string
}

// StateStore persists the State record as a two-line key=value file:
//
//	CURRENT="bob"
//	PREVIOUS="alice"
//
// Values are Go-quoted so names with spaces, quotes or '=' survive a
// round trip.
type StateStore struct {
	path string
}

// NewStateStore creates a state store backed by the given file path.
func NewStateStore(path string) *StateStore {
	return &StateStore{path: path}
}

// Path returns the state file path.
func (s *StateStore) Path() string {
	return s.path
}

// Load reads the state record from disk. A missing file yields an empty
// record; malformed lines degrade to empty fields rather than failing,
// so a damaged state file behaves like "unknown profile".
func (s *StateStore) Load() (State, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return State{}, nil
	}
	if err != nil {
		return State{}, err
	}

	var st State
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		switch key {
		case "CURRENT":
			st.Current = decodeValue(value)
		case "PREVIOUS":
			st.Previous = decodeValue(value)
		}
	}
	return st, nil
}

// Save overwrites the state record, writing to a temp file in the same
// directory and renaming it into place so a reader never observes a
// half-written record.
func (s *StateStore) Save(st State) error {
	if err := util.MkdirAll(filepath.Dir(s.path)); err != nil {
		return err
	}

	content := fmt.Sprintf("CURRENT=%s\nPREVIOUS=%s\n",
		strconv.Quote(st.Current), strconv.Quote(st.Previous))

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".state-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// decodeValue reverses the quoting applied by Save. Unquoted values are
// accepted as-is for compatibility with hand-edited files; an
// unparseable quoted value degrades to empty.
func decodeValue(value string) string {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, `"`) {
		return value
	}
	decoded, err := strconv.Unquote(value)
	if err != nil {
		return ""
	}
	return decoded
}
