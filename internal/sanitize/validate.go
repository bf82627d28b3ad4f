package sanitize

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validation errors.
var (
	// ErrEmptyName indicates an empty checkpoint name.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrPathTraversal indicates a path resolves outside its base directory.
	ErrPathTraversal = errors.New("path escapes base directory")
)

// ContainedPath joins base and filename and verifies the result stays a
// direct child of base.
func ContainedPath(base, filename string) (string, error) {
	cleanBase := filepath.Clean(base)
	joined := filepath.Join(cleanBase, filename)
	if filepath.Dir(joined) != cleanBase || strings.ContainsAny(filename, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrPathTraversal, filename)
	}
	return joined, nil
}
