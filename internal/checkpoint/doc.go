// Package checkpoint converts Gemini CLI sessions into named checkpoints.
//
// A session stores type-tagged messages (user, gemini) with inline tool
// calls. A checkpoint stores role-tagged turns (user, model) made of parts:
// text, functionCall and functionResponse. Transcode performs the mapping;
// Writer persists it as <home>/tmp/<project-id>/checkpoint-<name>.json,
// the file the Gemini CLI reads on /chat resume.
package checkpoint
