package util

import "os"

// EnsureDir creates path and its parents if they do not exist yet.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}
