// Package exec wraps external command execution behind a Commander
// interface so that workflow commands can be tested without touching a real
// repository. geet is an instructional tool: the executor announces every
// command before running it, so users can learn the underlying git/gh
// invocations.
package exec

import (
	"context"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Commander runs one external command and returns its combined output.
type Commander interface {
	Run(ctx context.Context, dir string, command string, args ...string) ([]byte, error)
}

// RealCommander executes commands against the real operating system.
type RealCommander struct{}

func (c *RealCommander) Run(ctx context.Context, dir string, command string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// CommandExecutor is the convenience layer the workflow commands use. It
// shows each command as it executes.
type CommandExecutor struct {
	commander Commander
	logger    *log.Logger
}

// NewCommandExecutor wraps commander; a nil commander means real execution
// and a nil logger means the package default.
func NewCommandExecutor(commander Commander, logger *log.Logger) *CommandExecutor {
	if commander == nil {
		commander = &RealCommander{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &CommandExecutor{commander: commander, logger: logger}
}

// Git runs a git command in dir.
func (e *CommandExecutor) Git(ctx context.Context, dir string, args ...string) ([]byte, error) {
	return e.run(ctx, dir, "git", args...)
}

// Gh runs a GitHub CLI command in dir.
func (e *CommandExecutor) Gh(ctx context.Context, dir string, args ...string) ([]byte, error) {
	return e.run(ctx, dir, "gh", args...)
}

// Shell runs a configured command line through sh -c, for user-supplied
// entries like fix_commands.
func (e *CommandExecutor) Shell(ctx context.Context, dir string, command string) ([]byte, error) {
	return e.run(ctx, dir, "sh", "-c", command)
}

func (e *CommandExecutor) run(ctx context.Context, dir string, command string, args ...string) ([]byte, error) {
	e.logger.Info("+ " + command + " " + strings.Join(args, " "))
	return e.commander.Run(ctx, dir, command, args...)
}
