package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStateStoreLoadMissing(t *testing.T) {
	store := NewStateStore(filepath.Join(t.TempDir(), "state"))

	st, err := store.Load()
	if err != nil {
		t.Fatalf("Load() on missing file failed: %v", err)
	}
	if st.Current != "" || st.Previous != "" {
		t.Errorf("Load() = %+v, want empty state", st)
	}
}

func TestStateStoreRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		state State
	}{
		{
			name:  "plain names",
			state: State{Current: "bob", Previous: "alice"},
		},
		{
			name:  "empty previous",
			state: State{Current: "work"},
		},
		{
			name:  "special characters",
			state: State{Current: `bo b="x"`, Previous: "a=b\nc"},
		},
		{
			name:  "empty state",
			state: State{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStateStore(filepath.Join(t.TempDir(), "state"))
			if err := store.Save(tt.state); err != nil {
				t.Fatalf("Save(%+v) failed: %v", tt.state, err)
			}
			got, err := store.Load()
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if got != tt.state {
				t.Errorf("round trip = %+v, want %+v", got, tt.state)
			}
		})
	}
}

func TestStateStoreLoadMalformed(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected State
	}{
		{
			name:     "garbage file",
			content:  "not a state record at all\n",
			expected: State{},
		},
		{
			name:     "unquoted values accepted",
			content:  "CURRENT=bob\nPREVIOUS=alice\n",
			expected: State{Current: "bob", Previous: "alice"},
		},
		{
			name:     "broken quoting degrades to empty",
			content:  "CURRENT=\"unterminated\nPREVIOUS=\"alice\"\n",
			expected: State{Previous: "alice"},
		},
		{
			name:     "unknown keys ignored",
			content:  "CURRENT=\"bob\"\nLAST_SWITCH=12345\n",
			expected: State{Current: "bob"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "state")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			got, err := NewStateStore(path).Load()
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Load() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestStateStoreSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStateStore(filepath.Join(dir, "state"))

	if err := store.Save(State{Current: "bob"}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := store.Save(State{Current: "alice", Previous: "bob"}); err != nil {
		t.Fatalf("second Save() failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "state" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("state dir contains %v, want only [state]", names)
	}
}
