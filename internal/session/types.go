package session

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// MessageType is the source-schema tag of a message.
type MessageType string

const (
	// TypeUser is a message typed by the user.
	TypeUser MessageType = "user"
	// TypeGemini is a message produced by the model.
	TypeGemini MessageType = "gemini"
)

// UnmarshalJSON accepts any JSON value. A type that is not a string decodes
// to the empty MessageType, which no consumer recognizes.
func (t *MessageType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*t = ""
		return nil
	}
	*t = MessageType(s)
	return nil
}

// Record is one automatically saved session. Only the members read by the
// preview and the transcoder are decoded; anything else in the file is
// ignored whatever its type.
type Record struct {
	// StartTime is the raw startTime value, nil when absent. Only the
	// previewer interprets it.
	StartTime json.RawMessage `json:"startTime,omitempty"`

	// Messages are in chronological order.
	Messages []Message `json:"messages,omitempty"`
}

// Message is a single entry of a session.
type Message struct {
	Type      MessageType `json:"type"`
	Content   *string     `json:"content,omitempty"`
	ToolCalls []ToolCall  `json:"toolCalls,omitempty"`
}

// Text returns the message content, or "" when absent.
func (m Message) Text() string {
	if m.Content == nil {
		return ""
	}
	return *m.Content
}

// ToolCall is a tool invocation recorded on a message.
type ToolCall struct {
	Name   string          `json:"name,omitempty"`
	Args   json.RawMessage `json:"args,omitempty"`
	Result []ResultItem    `json:"result,omitempty"`
}

// HasArgs reports whether Args holds a non-empty, non-zero JSON value.
func (tc ToolCall) HasArgs() bool {
	return truthy(tc.Args)
}

// ResultItem is one element of a tool call's result list. Only the
// functionResponse member is retained, verbatim.
type ResultItem struct {
	FunctionResponse json.RawMessage `json:"functionResponse,omitempty"`
}

// HasFunctionResponse reports whether the item carried a non-null
// functionResponse.
func (r ResultItem) HasFunctionResponse() bool {
	return len(r.FunctionResponse) > 0
}

// UnmarshalJSON keeps functionResponse when the key is present and not null.
// Items that are not JSON objects decode to an empty ResultItem.
func (r *ResultItem) UnmarshalJSON(data []byte) error {
	*r = ResultItem{}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	if fr, ok := fields["functionResponse"]; ok && !isNull(fr) {
		r.FunctionResponse = append(json.RawMessage(nil), fr...)
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// truthy mirrors loose truthiness for an opaque JSON value: null, false, 0,
// "", {} and [] are false.
func truthy(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if isNull(trimmed) {
		return false
	}
	switch trimmed[0] {
	case 't':
		return true
	case 'f':
		return false
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return false
		}
		return s != ""
	case '{':
		var m map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &m); err != nil {
			return false
		}
		return len(m) > 0
	case '[':
		var a []json.RawMessage
		if err := json.Unmarshal(trimmed, &a); err != nil {
			return false
		}
		return len(a) > 0
	default:
		f, err := strconv.ParseFloat(string(trimmed), 64)
		return err == nil && f != 0
	}
}

// Loader loads a session Record from a file.
type Loader interface {
	Parse(path string) (*Record, error)
}
