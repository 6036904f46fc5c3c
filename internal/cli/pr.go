package cli

import (
	"context"
	"fmt"

	"github.com/enfabrica/geet/internal/command"
	"github.com/enfabrica/geet/internal/ui"
)

const makePRDoc = `make_pr: Create a pull request for the current branch.

Aliases: mkpr, prmk

Args:
   -t|--title=string: Title for the pull request.
   -d|--draft: Create the pull request as a draft.

The branch is backed up to origin first, then a PR is opened against
the upstream repo. Keep committing afterwards; "geet commit" updates
the PR automatically.`

func (a *App) runMakePR(ctx context.Context, args *command.Args) error {
	repo := a.repo()

	branch, err := repo.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	if err := repo.Push(ctx, "origin", branch); err != nil {
		return err
	}

	ghArgs := []string{"pr", "create", "--fill"}
	if args.Has("title") {
		ghArgs = append(ghArgs, "--title", args.String("title"))
	}
	if args.Bool("draft") {
		ghArgs = append(ghArgs, "--draft")
	}

	out, err := a.exec.Gh(ctx, a.workDir, ghArgs...)
	if err != nil {
		return fmt.Errorf("creating pull request: %w\n%s", err, string(out))
	}
	fmt.Fprint(a.out, string(out))
	return nil
}

const submitPRDoc = `submit_pr: Merge the current branch's approved pull request.

Aliases: sbpr, prsb

Args:
   -y|--yes: Merge without asking for confirmation.

Merging is irreversible, so geet asks first unless --yes is given or
no terminal is attached.`

func (a *App) runSubmitPR(ctx context.Context, args *command.Args) error {
	if !args.Bool("yes") {
		ok, err := ui.Confirm("Merge this pull request?")
		if err != nil {
			return err
		}
		if !ok {
			return ui.ErrUserAborted
		}
	}

	out, err := a.exec.Gh(ctx, a.workDir, "pr", "merge", "--squash", "--delete-branch=false")
	if err != nil {
		return fmt.Errorf("merging pull request: %w\n%s", err, string(out))
	}
	fmt.Fprint(a.out, string(out))
	return nil
}
