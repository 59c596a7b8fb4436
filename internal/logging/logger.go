// Package logging builds the zap logger deskmate writes to. Output
// goes to a file under the state directory, never to stdout or stderr:
// the TUI owns the terminal and stray writes corrupt the screen.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a file-backed logger tagged with a fresh session ID so
// overlapping runs can be told apart in the shared log file. Callers
// must Sync on shutdown.
func New(dir, level string) (*zap.Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{filepath.Join(dir, "deskmate.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log.With(zap.String("session", uuid.NewString())), nil
}
