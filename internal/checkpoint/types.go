package checkpoint

import (
	"encoding/json"
	"time"
)

// Role identifies who produced a checkpoint message.
type Role string

const (
	// RoleUser marks turns typed by the user.
	RoleUser Role = "user"
	// RoleModel marks turns produced by the model.
	RoleModel Role = "model"
)

// Message is one role-tagged turn of a checkpoint.
type Message struct {
	Role  Role   `json:"role"`
	Parts []Part `json:"parts"`
}

// Part holds exactly one of Text, FunctionCall or FunctionResponse.
type Part struct {
	Text             string          `json:"text,omitempty"`
	FunctionCall     *FunctionCall   `json:"functionCall,omitempty"`
	FunctionResponse json.RawMessage `json:"functionResponse,omitempty"`
}

// FunctionCall is a tool invocation requested by the model.
type FunctionCall struct {
	Name string          `json:"name"`
	Args json.RawMessage `json:"args"`
}

// SaveRequest describes a checkpoint to write.
type SaveRequest struct {
	// ProjectDir is the project the session belongs to.
	ProjectDir string

	// SessionPath is the session file to convert.
	SessionPath string

	// Name is the user-chosen checkpoint name, unencoded.
	Name string
}

// SaveResult describes a written checkpoint.
type SaveResult struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	ProjectID string `json:"project_id"`
	Messages  int    `json:"messages"`
}

// Entry is a checkpoint found on disk.
type Entry struct {
	Name    string    `json:"name"`
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}
