package checkpoint

import (
	"github.com/fyrsmithlabs/gemsave/internal/session"
)

// roles maps recognized session message types to checkpoint roles.
var roles = map[session.MessageType]Role{
	session.TypeUser:   RoleUser,
	session.TypeGemini: RoleModel,
}

// Transcode converts a session record into checkpoint messages, preserving
// message order. Messages of any other type are dropped. The record is not
// modified.
func Transcode(rec *session.Record) []Message {
	out := make([]Message, 0, len(rec.Messages))
	for _, msg := range rec.Messages {
		role, ok := roles[msg.Type]
		if !ok {
			continue
		}
		out = append(out, Message{Role: role, Parts: transcodeParts(msg)})
	}
	return out
}

// transcodeParts orders parts as: text, then per tool call its functionCall
// followed by its functionResponses. Result items without a functionResponse
// are dropped.
func transcodeParts(msg session.Message) []Part {
	parts := make([]Part, 0, 1+2*len(msg.ToolCalls))

	if text := msg.Text(); text != "" {
		parts = append(parts, Part{Text: text})
	}

	for _, tc := range msg.ToolCalls {
		if tc.Name != "" && tc.HasArgs() {
			parts = append(parts, Part{FunctionCall: &FunctionCall{
				Name: tc.Name,
				Args: tc.Args,
			}})
		}
		for _, item := range tc.Result {
			if item.HasFunctionResponse() {
				parts = append(parts, Part{FunctionResponse: item.FunctionResponse})
			}
		}
	}

	return parts
}
