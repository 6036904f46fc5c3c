package cli

import (
	"context"

	"github.com/enfabrica/geet/internal/command"
)

const commitDoc = `commit: Commit changes and back them up to origin.

Aliases: c, ci

Args:
   -a|--all: Also stage every modified tracked file.
   -m|--message=string: Use the given commit message.

Every local commit is automatically pushed to your fork, so work
survives a lost laptop and is visible from other hosts.`

func (a *App) runCommit(ctx context.Context, args *command.Args) error {
	repo := a.repo()

	if err := repo.Commit(ctx, args.Bool("all"), args.String("message")); err != nil {
		return err
	}

	branch, err := repo.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	return repo.Push(ctx, "origin", branch)
}

const fixDoc = `fix: Run the configured code formatters.

Runs each entry of fix_commands from your geet config, in order, in the
current worktree. Commit the result with:

    geet commit -a -m "ran geet fix"`

func (a *App) runFix(ctx context.Context, args *command.Args) error {
	if len(a.cfg.FixCommands) == 0 {
		a.logger.Info("no fix_commands configured; nothing to do")
		return nil
	}
	for _, cmd := range a.cfg.FixCommands {
		if _, err := a.exec.Shell(ctx, a.workDir, cmd); err != nil {
			return err
		}
	}
	return nil
}
