// Package cli declares geet's commands and wires them into the engine.
//
// Every command is a docstring constant plus a handler method on App; the
// docstrings are compiled and registered once when the App is built, so a
// malformed declaration stops the process before it can dispatch anything.
package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/enfabrica/geet/internal/command"
	"github.com/enfabrica/geet/internal/config"
	"github.com/enfabrica/geet/internal/exec"
	"github.com/enfabrica/geet/internal/git"
	"github.com/enfabrica/geet/internal/ui"
)

// These are set at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// App owns the registry, configuration, and executor, and carries them into
// every handler. It is built once in main; there is no package-level state.
type App struct {
	cfg      *config.Config
	exec     *exec.CommandExecutor
	out      io.Writer
	logger   *log.Logger
	registry *command.Registry

	// workDir is where repo-relative commands run; "." outside tests.
	workDir string
}

type declaration struct {
	doc string
	run command.Handler
}

// New builds the App and registers every command. A malformed docstring or
// duplicate name/alias surfaces here, before any dispatch.
func New(cfg *config.Config, commander exec.Commander, out io.Writer) (*App, error) {
	logger := log.New(os.Stderr)
	if cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	a := &App{
		cfg:      cfg,
		exec:     exec.NewCommandExecutor(commander, logger),
		out:      out,
		logger:   logger,
		workDir:  ".",
		registry: command.NewRegistry("geet"),
	}

	for _, d := range a.declarations() {
		spec, err := command.New(d.doc, d.run)
		if err != nil {
			return nil, err
		}
		if err := a.registry.Register(spec); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// declarations lists every command. Order here is irrelevant; help output
// sorts by name.
func (a *App) declarations() []declaration {
	return []declaration{
		{initDoc, a.runInit},
		{makeBranchDoc, a.runMakeBranch},
		{gcdDoc, a.runGcd},
		{branchesDoc, a.runBranches},
		{commitDoc, a.runCommit},
		{updateDoc, a.runUpdate},
		{rupdateDoc, a.runRupdate},
		{fixDoc, a.runFix},
		{makePRDoc, a.runMakePR},
		{submitPRDoc, a.runSubmitPR},
		{helpDoc, a.runHelp},
		{versionDoc, a.runVersion},
		{completionsDoc, a.runCompletions},
	}
}

// repo returns a handle on the worktree the user invoked geet from.
func (a *App) repo() *git.Repo {
	return git.Open(a.workDir, a.exec)
}

// repoAt returns a handle on a specific branch's worktree directory.
func (a *App) repoAt(branch string) *git.Repo {
	return git.Open(a.cfg.BranchDir(branch), a.exec)
}

// Run dispatches argv and maps the outcome to a process exit code. With no
// arguments it prints the command list and succeeds.
func (a *App) Run(ctx context.Context, argv []string) int {
	if len(argv) == 0 || argv[0] == "-h" || argv[0] == "--help" {
		a.registry.WriteCommandList(a.out)
		return config.ExitSuccess
	}

	err := a.registry.Dispatch(ctx, argv[0], argv[1:])
	switch {
	case err == nil:
		return config.ExitSuccess
	case ui.IsAbort(err):
		a.logger.Warn("aborted")
		return config.ExitAborted
	default:
		var uerr *command.UsageError
		if errors.As(err, &uerr) {
			a.logger.Error(uerr.Error())
			if uerr.Spec != nil {
				a.logger.Print(uerr.Spec.Usage(a.registry.ProgName()))
			} else {
				a.registry.WriteCommandList(a.out)
			}
			return config.ExitUsageError
		}
		a.logger.Error(err.Error())
		return config.ExitGeneralError
	}
}
