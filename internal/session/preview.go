package session

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"
)

const (
	// DefaultSnippetLength is the number of runes kept from a message.
	DefaultSnippetLength = 100

	// NoMessages is shown in place of snippets for a session without messages.
	NoMessages = "No messages"
)

// startTimeLayouts are tried in order after a trailing Z is rewritten.
var startTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// Preview summarizes one session for selection.
type Preview struct {
	Path         string    `json:"path"`
	StartTime    time.Time `json:"start_time"`
	First        string    `json:"first"`
	Last         string    `json:"last"`
	MessageCount int       `json:"message_count"`
}

// Entry pairs a session path with its preview or the error that prevented one.
type Entry struct {
	Path    string
	Preview *Preview
	Err     error
}

// Previewer builds previews from session files.
type Previewer struct {
	loader     Loader
	snippetLen int
}

// NewPreviewer creates a Previewer. A non-positive snippetLen selects
// DefaultSnippetLength.
func NewPreviewer(loader Loader, snippetLen int) *Previewer {
	if snippetLen <= 0 {
		snippetLen = DefaultSnippetLength
	}
	return &Previewer{loader: loader, snippetLen: snippetLen}
}

// Preview loads the session at path and summarizes it.
func (p *Previewer) Preview(path string) (*Preview, error) {
	rec, err := p.loader.Parse(path)
	if err != nil {
		return nil, err
	}
	start, err := recordStartTime(rec)
	if err != nil {
		return nil, err
	}

	preview := &Preview{
		Path:         path,
		StartTime:    start,
		First:        NoMessages,
		Last:         NoMessages,
		MessageCount: len(rec.Messages),
	}
	if n := len(rec.Messages); n > 0 {
		preview.First = Truncate(rec.Messages[0].Text(), p.snippetLen)
		preview.Last = Truncate(rec.Messages[n-1].Text(), p.snippetLen)
	}
	return preview, nil
}

// PreviewAll previews every path. A failure is recorded on its entry and
// never stops the remaining paths.
func (p *Previewer) PreviewAll(paths []string) []Entry {
	entries := make([]Entry, 0, len(paths))
	for _, path := range paths {
		preview, err := p.Preview(path)
		entries = append(entries, Entry{Path: path, Preview: preview, Err: err})
	}
	return entries
}

// SortEntries orders entries oldest first by start time. Failed entries
// follow the successful ones and keep their relative order.
func SortEntries(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		switch {
		case a.Err != nil && b.Err != nil:
			return 0
		case a.Err != nil:
			return 1
		case b.Err != nil:
			return -1
		}
		if c := a.Preview.StartTime.Compare(b.Preview.StartTime); c != 0 {
			return c
		}
		return cmp.Compare(a.Path, b.Path)
	})
}

func recordStartTime(rec *Record) (time.Time, error) {
	if isNull(rec.StartTime) {
		return time.Time{}, ErrMissingStartTime
	}
	var raw string
	if err := json.Unmarshal(rec.StartTime, &raw); err != nil {
		return time.Time{}, fmt.Errorf("startTime must be a string, got %s", rec.StartTime)
	}
	return ParseStartTime(raw)
}

// ParseStartTime parses an ISO-8601 session timestamp. A trailing Z is
// rewritten to an explicit +00:00 offset first.
func ParseStartTime(s string) (time.Time, error) {
	value := strings.TrimSpace(s)
	if strings.HasSuffix(value, "Z") {
		value = strings.TrimSuffix(value, "Z") + "+00:00"
	}
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid startTime %q", s)
}

// Truncate returns at most n runes of s.
func Truncate(s string, n int) string {
	if n < 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
