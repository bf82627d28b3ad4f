// Package project maps a project directory onto the Gemini CLI cache.
//
// Every project gets a directory under <home>/tmp named by the SHA-256 of its
// absolute path:
//
//	<home>/tmp/<id>/chats/session-*.json     automatically saved sessions
//	<home>/tmp/<id>/checkpoint-<name>.json   named checkpoints
//
// The project directory is always passed explicitly; nothing in this package
// reads the process working directory.
package project
