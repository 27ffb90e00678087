package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")
	os.WriteFile(existingFile, []byte("test"), 0644)

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "file exists",
			path:     existingFile,
			expected: true,
		},
		{
			name:     "file doesn't exist",
			path:     filepath.Join(tmpDir, "notfound.txt"),
			expected: false,
		},
		{
			name:     "path is directory",
			path:     tmpDir,
			expected: true, // FileExists returns true for both files and directories
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FileExists(tt.path)
			if result != tt.expected {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, result, tt.expected)
			}
		})
	}
}

func TestDirExists(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "plain.txt")
	os.WriteFile(file, []byte("test"), 0644)

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "directory exists",
			path:     tmpDir,
			expected: true,
		},
		{
			name:     "path is a regular file",
			path:     file,
			expected: false,
		},
		{
			name:     "path doesn't exist",
			path:     filepath.Join(tmpDir, "missing"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DirExists(tt.path)
			if result != tt.expected {
				t.Errorf("DirExists(%q) = %v, want %v", tt.path, result, tt.expected)
			}
		})
	}
}

func TestMkdirAll(t *testing.T) {
	tmpDir := t.TempDir()

	nested := filepath.Join(tmpDir, "a", "b", "c")
	if err := MkdirAll(nested); err != nil {
		t.Fatalf("MkdirAll(%q) failed: %v", nested, err)
	}
	if !DirExists(nested) {
		t.Errorf("MkdirAll(%q) did not create directory", nested)
	}

	// Creating an existing directory is not an error
	if err := MkdirAll(nested); err != nil {
		t.Errorf("MkdirAll on existing directory failed: %v", err)
	}
}
