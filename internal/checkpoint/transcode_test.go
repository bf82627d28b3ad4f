package checkpoint

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/gemsave/internal/session"
)

func parseRecord(t *testing.T, doc string) *session.Record {
	t.Helper()
	rec, err := session.NewParser().ParseBytes([]byte(doc))
	require.NoError(t, err)
	return rec
}

func transcodeJSON(t *testing.T, doc string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Transcode(parseRecord(t, doc))))
	return buf.String()
}

func TestTranscode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name: "user and gemini text",
			input: `{"messages": [
				{"type": "user", "content": "hi"},
				{"type": "gemini", "content": "hello"}
			]}`,
			want: `[
				{"role": "user", "parts": [{"text": "hi"}]},
				{"role": "model", "parts": [{"text": "hello"}]}
			]`,
		},
		{
			name: "unknown types dropped, order kept",
			input: `{"messages": [
				{"type": "user", "content": "a"},
				{"type": "system", "content": "ignored"},
				{"type": "info", "content": "ignored"},
				{"content": "no type"},
				{"type": "gemini", "content": "b"},
				{"type": "error", "content": "ignored"},
				{"type": "user", "content": "c"}
			]}`,
			want: `[
				{"role": "user", "parts": [{"text": "a"}]},
				{"role": "model", "parts": [{"text": "b"}]},
				{"role": "user", "parts": [{"text": "c"}]}
			]`,
		},
		{
			name: "non-string types dropped",
			input: `{"messages": [
				{"type": "user", "content": "hi"},
				{"type": 7, "content": "x"},
				{"type": null, "content": "x"},
				{"type": "gemini", "content": "yo"}
			]}`,
			want: `[
				{"role": "user", "parts": [{"text": "hi"}]},
				{"role": "model", "parts": [{"text": "yo"}]}
			]`,
		},
		{
			name: "tool call without content",
			input: `{"messages": [
				{"type": "gemini", "toolCalls": [
					{"name": "search", "args": {"q": "x"}, "result": [{"functionResponse": {"output": "y"}}]}
				]}
			]}`,
			want: `[
				{"role": "model", "parts": [
					{"functionCall": {"name": "search", "args": {"q": "x"}}},
					{"functionResponse": {"output": "y"}}
				]}
			]`,
		},
		{
			name: "tool call missing args still emits responses",
			input: `{"messages": [
				{"type": "gemini", "toolCalls": [
					{"name": "search", "result": [{"functionResponse": {"output": "y"}}]}
				]}
			]}`,
			want: `[
				{"role": "model", "parts": [{"functionResponse": {"output": "y"}}]}
			]`,
		},
		{
			name: "tool call with empty args or name",
			input: `{"messages": [
				{"type": "gemini", "toolCalls": [
					{"name": "search", "args": {}},
					{"name": "", "args": {"q": "x"}},
					{"args": {"q": "x"}}
				]}
			]}`,
			want: `[{"role": "model", "parts": []}]`,
		},
		{
			name: "text first then call/response pairs in order",
			input: `{"messages": [
				{"type": "gemini", "content": "working", "toolCalls": [
					{"name": "a", "args": {"n": 1}, "result": [
						{"functionResponse": {"r": "a1"}},
						{"other": true},
						{"functionResponse": {"r": "a2"}}
					]},
					{"name": "b", "args": {"n": 2}, "result": [{"functionResponse": {"r": "b1"}}]}
				]}
			]}`,
			want: `[
				{"role": "model", "parts": [
					{"text": "working"},
					{"functionCall": {"name": "a", "args": {"n": 1}}},
					{"functionResponse": {"r": "a1"}},
					{"functionResponse": {"r": "a2"}},
					{"functionCall": {"name": "b", "args": {"n": 2}}},
					{"functionResponse": {"r": "b1"}}
				]}
			]`,
		},
		{
			name: "empty content yields no text part",
			input: `{"messages": [
				{"type": "user", "content": ""},
				{"type": "user", "content": null}
			]}`,
			want: `[
				{"role": "user", "parts": []},
				{"role": "user", "parts": []}
			]`,
		},
		{
			name:  "no messages",
			input: `{"startTime": "2025-01-01T00:00:00Z"}`,
			want:  `[]`,
		},
		{
			name: "function response passed through verbatim",
			input: `{"messages": [
				{"type": "user", "toolCalls": [
					{"name": "x", "result": [{"functionResponse": {"id": "1", "name": "x", "response": {"nested": [1, {"deep": null}], "html": "<b>&</b>"}}}]}
				]}
			]}`,
			want: `[
				{"role": "user", "parts": [
					{"functionResponse": {"id": "1", "name": "x", "response": {"nested": [1, {"deep": null}], "html": "<b>&</b>"}}}
				]}
			]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.JSONEq(t, tt.want, transcodeJSON(t, tt.input))
		})
	}
}

func TestTranscode_DoesNotMutateInput(t *testing.T) {
	rec := parseRecord(t, `{"messages": [
		{"type": "gemini", "content": "x", "toolCalls": [
			{"name": "a", "args": {"k": "v"}, "result": [{"functionResponse": {"r": 1}}]}
		]},
		{"type": "system", "content": "y"}
	]}`)

	before, err := json.Marshal(rec)
	require.NoError(t, err)

	_ = Transcode(rec)

	after, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
	assert.Len(t, rec.Messages, 2)
}

func TestPart_SingleKey(t *testing.T) {
	parts := transcodeParts(parseRecord(t, `{"messages": [
		{"type": "gemini", "content": "t", "toolCalls": [
			{"name": "a", "args": {"k": 1}, "result": [{"functionResponse": {"r": 1}}]}
		]}
	]}`).Messages[0])
	require.Len(t, parts, 3)

	for _, p := range parts {
		data, err := json.Marshal(p)
		require.NoError(t, err)

		var keys map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &keys))
		assert.Len(t, keys, 1, string(data))
	}
}

func TestEncode_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, []Message{{Role: RoleUser, Parts: []Part{{Text: "<hi>"}}}}))

	want := "[\n  {\n    \"role\": \"user\",\n    \"parts\": [\n      {\n        \"text\": \"<hi>\"\n      }\n    ]\n  }\n]\n"
	assert.Equal(t, want, buf.String())

	buf.Reset()
	require.NoError(t, Encode(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}
