// Package session reads the chat sessions the Gemini CLI saves automatically.
//
// The package supports:
//   - Locating session-*.json files in a project's chats directory
//   - Parsing a session file into a Record with explicit field presence
//   - Previewing sessions (start time, first and last message) for selection
//
// # Architecture
//
// The main components are:
//   - Parser: Reads one session file and validates its structure
//   - Locator: Lists candidate session files for a project identifier
//   - Previewer: Summarizes sessions, isolating per-file failures
//
// # Usage
//
//	locator := session.NewLocator(layout)
//	paths, err := locator.Locate(proj.ID)
//	if err != nil {
//	    return err
//	}
//
//	previewer := session.NewPreviewer(session.NewParser(), 100)
//	entries := previewer.PreviewAll(paths)
//	session.SortEntries(entries)
//
// # Tolerance
//
// Fields the Gemini CLI may omit are optional: content, toolCalls, args and
// result items. Result items that are not objects are skipped. Values of the
// wrong JSON type (a numeric content, an object where messages should be)
// fail the parse with ErrInvalidRecord.
package session
