package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Parse errors.
var (
	// ErrInvalidRecord indicates a session file is not a structurally valid record.
	ErrInvalidRecord = errors.New("invalid session record")

	// ErrMissingStartTime indicates a session has no startTime field.
	ErrMissingStartTime = errors.New("session has no startTime")
)

// Parser implements Loader for Gemini CLI session files.
type Parser struct{}

// NewParser creates a new session parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads and decodes the session file at path.
func (p *Parser) Parse(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading session file: %w", err)
	}
	rec, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// ParseBytes decodes a session document.
func (p *Parser) ParseBytes(data []byte) (*Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: top level must be a JSON object", ErrInvalidRecord)
	}

	var rec Record
	if err := json.Unmarshal(trimmed, &rec); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: field %q has JSON type %s, want %s",
				ErrInvalidRecord, typeErr.Field, typeErr.Value, typeErr.Type)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return &rec, nil
}

// Ensure Parser implements Loader.
var _ Loader = (*Parser)(nil)
