package project

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fyrsmithlabs/gemsave/internal/sanitize"
)

// Common errors.
var (
	ErrEmptyProjectPath = errors.New("project path cannot be empty")
	ErrEmptyHome        = errors.New("gemini home cannot be empty")
)

// Project identifies one working directory known to the Gemini CLI.
type Project struct {
	// Path is the absolute project directory.
	Path string `json:"path"`

	// ID is the SHA-256 hex digest of Path.
	ID string `json:"id"`
}

// New resolves path to an absolute directory and derives its identifier.
func New(path string) (*Project, error) {
	if path == "" {
		return nil, ErrEmptyProjectPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving project path %s: %w", path, err)
	}
	return &Project{
		Path: abs,
		ID:   sanitize.ProjectHash(abs),
	}, nil
}
