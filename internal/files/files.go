// Package files has small filesystem helpers shared across packages.
package files

import "os"

// Exists returns whether the given path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
