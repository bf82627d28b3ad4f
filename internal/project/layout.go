package project

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	tmpDirName   = "tmp"
	chatsDirName = "chats"
)

// Layout resolves cache paths below a Gemini home directory.
type Layout struct {
	home string
}

// NewLayout returns a Layout rooted at home (typically ~/.gemini).
func NewLayout(home string) (*Layout, error) {
	if home == "" {
		return nil, ErrEmptyHome
	}
	return &Layout{home: filepath.Clean(home)}, nil
}

// Home returns the Gemini home directory.
func (l *Layout) Home() string {
	return l.home
}

// Dir returns the cache directory for a project identifier.
func (l *Layout) Dir(id string) string {
	return filepath.Join(l.home, tmpDirName, id)
}

// ChatsDir returns the directory holding a project's saved sessions.
func (l *Layout) ChatsDir(id string) string {
	return filepath.Join(l.Dir(id), chatsDirName)
}

// EnsureDir creates the project cache directory, including parents, if it is
// missing. The existence check comes first; concurrent creation is not guarded.
func (l *Layout) EnsureDir(id string) (string, error) {
	dir := l.Dir(id)
	if _, err := os.Stat(dir); err == nil {
		return dir, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating project cache directory %s: %w", dir, err)
	}
	return dir, nil
}
