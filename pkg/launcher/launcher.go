// Package launcher opens programs, folders and documents with the host's
// default "open" mechanism.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/launchdeck/pkg/core"
)

// Launcher errors.
var (
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrNotAllowed          = errors.New("target is not in the launch allow-list")
	ErrLaunchFailed        = errors.New("failed to launch")
)

// Launcher opens a path-like target.
type Launcher interface {
	Open(ctx context.Context, target string) error
}

// Runner executes a command. It is swapped out in tests.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs the command and returns its combined output.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// OS launches targets with open (darwin), rundll32 (windows) or xdg-open (linux).
// Targets are passed as a single argv entry and never interpreted by a shell.
type OS struct {
	GOOS   string
	Allow  []string // doublestar patterns; empty allows everything
	Runner Runner
	Logger *slog.Logger
}

// Option configures an OS launcher.
type Option func(*OS)

// WithAllow restricts targets to the given glob patterns.
func WithAllow(patterns ...string) Option {
	return func(l *OS) {
		l.Allow = append(l.Allow, patterns...)
	}
}

// WithRunner replaces the command runner.
func WithRunner(r Runner) Option {
	return func(l *OS) {
		l.Runner = r
	}
}

// WithGOOS overrides the detected platform.
func WithGOOS(goos string) Option {
	return func(l *OS) {
		l.GOOS = goos
	}
}

// WithLogger sets the logger for the launcher.
func WithLogger(logger *slog.Logger) Option {
	return func(l *OS) {
		l.Logger = logger
	}
}

// New creates a launcher for the running platform.
func New(opts ...Option) (*OS, error) {
	l := &OS{
		GOOS:   runtime.GOOS,
		Runner: ExecRunner,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.Logger == nil {
		l.Logger = slog.Default()
	}
	for _, p := range l.Allow {
		if !doublestar.ValidatePathPattern(p) {
			return nil, fmt.Errorf("invalid allow pattern %q", p)
		}
	}
	return l, nil
}

// Command returns the program and arguments used to open target.
func (l *OS) Command(target string) (string, []string, error) {
	switch l.GOOS {
	case "darwin":
		return "open", []string{target}, nil
	case "windows":
		// cmd.exe re-parses its command line, so "start" would run
		// anything after a & or |. rundll32 takes the target verbatim.
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{target}, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, l.GOOS)
	}
}

// Allowed reports whether target matches the allow-list.
func (l *OS) Allowed(target string) bool {
	if len(l.Allow) == 0 {
		return true
	}
	for _, p := range l.Allow {
		if ok, _ := doublestar.PathMatch(p, target); ok {
			return true
		}
	}
	return false
}

// Open implements Launcher.
func (l *OS) Open(ctx context.Context, target string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return fmt.Errorf("%w: launch target is required", core.ErrValidation)
	}
	if !l.Allowed(target) {
		return fmt.Errorf("%w: %s", ErrNotAllowed, target)
	}

	name, args, err := l.Command(target)
	if err != nil {
		return err
	}

	l.Logger.Debug("launching", "command", name, "args", args)
	if out, err := l.Runner(ctx, name, args...); err != nil {
		l.Logger.Warn("launch failed", "target", target, "error", err, "output", strings.TrimSpace(string(out)))
		return fmt.Errorf("%w %s: %v", ErrLaunchFailed, target, err)
	}

	l.Logger.Info("launched", "target", target)
	return nil
}

var _ Launcher = (*OS)(nil)
