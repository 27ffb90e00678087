package util

import (
	"os"
)

// FileExists returns true if the path exists (file or directory).
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// MkdirAll creates the directory and any missing parents with 0755.
func MkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}
