package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fyrsmithlabs/gemsave/internal/project"
)

const (
	filePrefix = "session-"
	fileSuffix = ".json"
)

// Locator finds session files in the Gemini cache.
type Locator struct {
	layout *project.Layout
}

// NewLocator creates a Locator over layout.
func NewLocator(layout *project.Layout) *Locator {
	return &Locator{layout: layout}
}

// Locate returns the session files saved for a project identifier, in
// directory-listing order. A project without a chats directory has no
// sessions and is not an error.
func (l *Locator) Locate(projectID string) ([]string, error) {
	chatsDir := l.layout.ChatsDir(projectID)

	entries, err := os.ReadDir(chatsDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("listing sessions in %s: %w", chatsDir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !IsSessionFile(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(chatsDir, entry.Name()))
	}
	return paths, nil
}

// IsSessionFile reports whether name follows the session-*.json convention.
func IsSessionFile(name string) bool {
	return strings.HasPrefix(name, filePrefix) && strings.HasSuffix(name, fileSuffix)
}
