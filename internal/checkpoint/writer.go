package checkpoint

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/gemsave/internal/logging"
	"github.com/fyrsmithlabs/gemsave/internal/project"
	"github.com/fyrsmithlabs/gemsave/internal/sanitize"
	"github.com/fyrsmithlabs/gemsave/internal/session"
)

// Writer saves and lists checkpoints in the Gemini cache.
type Writer struct {
	layout *project.Layout
	loader session.Loader
	logger *logging.Logger
}

// NewWriter creates a Writer.
func NewWriter(layout *project.Layout, loader session.Loader, logger *logging.Logger) (*Writer, error) {
	if layout == nil {
		return nil, errors.New("layout is required")
	}
	if loader == nil {
		return nil, errors.New("session loader is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required for checkpoint writer")
	}
	return &Writer{
		layout: layout,
		loader: loader,
		logger: logger.Named("checkpoint"),
	}, nil
}

// Save converts the session at req.SessionPath and writes it as a checkpoint
// named req.Name, replacing any checkpoint with the same name.
func (w *Writer) Save(ctx context.Context, req *SaveRequest) (*SaveResult, error) {
	if req == nil {
		return nil, errors.New("save request is required")
	}

	proj, err := project.New(req.ProjectDir)
	if err != nil {
		return nil, err
	}
	ctx = logging.WithProjectID(ctx, proj.ID)
	ctx = logging.WithSessionPath(ctx, req.SessionPath)

	filename, err := sanitize.CheckpointName(req.Name)
	if err != nil {
		return nil, err
	}

	dir, err := w.layout.EnsureDir(proj.ID)
	if err != nil {
		return nil, err
	}

	dest, err := sanitize.ContainedPath(dir, filename)
	if err != nil {
		return nil, err
	}

	rec, err := w.loader.Parse(req.SessionPath)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}

	messages := Transcode(rec)
	w.logger.Debug(ctx, "transcoded session",
		zap.Int("source_messages", len(rec.Messages)),
		zap.Int("checkpoint_messages", len(messages)),
	)

	var buf bytes.Buffer
	if err := Encode(&buf, messages); err != nil {
		return nil, fmt.Errorf("encoding checkpoint: %w", err)
	}
	if err := os.WriteFile(dest, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("writing checkpoint %s: %w", dest, err)
	}

	w.logger.Info(ctx, "checkpoint written",
		zap.String("name", req.Name),
		zap.String("path", dest),
	)

	return &SaveResult{
		Name:      req.Name,
		Path:      dest,
		ProjectID: proj.ID,
		Messages:  len(messages),
	}, nil
}

// List returns the checkpoints saved for projectDir, sorted by name.
func (w *Writer) List(ctx context.Context, projectDir string) ([]Entry, error) {
	proj, err := project.New(projectDir)
	if err != nil {
		return nil, err
	}
	ctx = logging.WithProjectID(ctx, proj.ID)

	dir := w.layout.Dir(proj.ID)
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			w.logger.Debug(ctx, "no project cache directory", zap.String("dir", dir))
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("listing checkpoints in %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name, ok := sanitize.NameFromCheckpointFile(de.Name())
		if !ok {
			continue
		}
		info, err := de.Info()
		if err != nil {
			w.logger.Warn(ctx, "skipping checkpoint", zap.String("file", de.Name()), zap.Error(err))
			continue
		}
		entries = append(entries, Entry{
			Name:    name,
			Path:    filepath.Join(dir, de.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

// Encode writes messages as a 2-space indented JSON array.
func Encode(out io.Writer, messages []Message) error {
	if messages == nil {
		messages = []Message{}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(messages)
}
