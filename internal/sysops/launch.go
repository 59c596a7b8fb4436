// Package sysops performs small host-side actions on the user's behalf:
// launching applications, running disk cleanup, reading the clipboard,
// toggling audio mute, and listing recently modified files. Every
// operation is attempted once; failures are returned, never retried.
package sysops

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/skratchdot/open-golang/open"
	"go.uber.org/zap"
)

// ErrUnknownApp reports a launch request for an app with no configured path.
var ErrUnknownApp = errors.New("unknown application")

// Launcher starts applications from a name to path table.
type Launcher struct {
	apps map[string]string
	log  *zap.Logger
}

// NewLauncher builds a launcher over the given name to path table.
func NewLauncher(apps map[string]string, log *zap.Logger) *Launcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Launcher{apps: apps, log: log}
}

// Open launches the named application. Names not present in the table
// return ErrUnknownApp.
func (l *Launcher) Open(name string) error {
	path, ok := l.apps[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownApp, name)
	}
	if err := open.Start(path); err != nil {
		l.log.Warn("app launch failed", zap.String("app", name), zap.Error(err))
		return fmt.Errorf("launch %s: %w", name, err)
	}
	l.log.Info("launched app", zap.String("app", name), zap.String("path", path))
	return nil
}

// Cleanup starts the platform disk-cleanup utility and returns without
// waiting for it.
func (l *Launcher) Cleanup() error {
	name, args := cleanupCommand()
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		l.log.Warn("cleanup launch failed", zap.String("command", name), zap.Error(err))
		return fmt.Errorf("launch %s: %w", name, err)
	}
	// Detach: cleanup runs in its own window, we don't collect it.
	go func() { _ = cmd.Wait() }()
	return nil
}

func cleanupCommand() (string, []string) {
	switch runtime.GOOS {
	case "windows":
		return "cleanmgr", nil
	case "darwin":
		return "open", []string{"-a", "Storage Management"}
	default:
		return "bleachbit", nil
	}
}
