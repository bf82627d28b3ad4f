// Package logging provides structured logging for gemsave.
//
// # Overview
//
// Logging package wraps Zap with:
//   - Custom Trace level (-2, below Debug)
//   - Console or JSON encoding on a configurable writer (stderr by default)
//   - Automatic context field injection (invocation, project, session)
//
// # Usage
//
// Create logger from config:
//
//	cfg := logging.NewDefaultConfig()
//	logger, err := logging.NewLogger(cfg, os.Stderr)
//	if err != nil {
//	    return err
//	}
//	defer logger.Sync()
//
// Log with context:
//
//	ctx = logging.WithProjectID(ctx, proj.ID)
//	ctx = logging.WithSessionPath(ctx, path)
//	logger.Info(ctx, "checkpoint written", zap.String("name", name))
//
// Output includes automatic correlation:
//
//	2025-11-24T10:15:30.000Z  info  checkpoint written  {"invocation.id": "9f0c...", "project.id": "3b4a...", "session.path": "/home/u/.gemini/tmp/3b4a.../chats/session-1.json", "name": "wip"}
//
// Logs go to stderr so interactive prompts on stdout stay readable.
//
// # Testing
//
// NewTestLogger returns a logger backed by zaptest/observer:
//
//	logger := logging.NewTestLogger()
//	svc.Do(ctx)
//	logger.AssertLogged(t, zapcore.InfoLevel, "checkpoint written")
package logging
