package cli

import (
	"context"

	"github.com/enfabrica/geet/internal/command"
	"github.com/enfabrica/geet/internal/git"
)

const updateDoc = `update: Pull new changes from this branch's parent.

Aliases: up

Fetches the remotes, rebases the current branch onto its recorded
parent (top of tree when no parent is recorded), and refreshes the
origin backup. Updates flow one way:

    upstream/main -> main -> feature -> feature2`

func (a *App) runUpdate(ctx context.Context, args *command.Args) error {
	return a.updateBranchIn(ctx, a.repo())
}

// updateBranchIn rebases the worktree's branch onto its parent and pushes
// the backup ref. Shared by update and rupdate.
func (a *App) updateBranchIn(ctx context.Context, repo *git.Repo) error {
	branch, err := repo.CurrentBranch(ctx)
	if err != nil {
		return err
	}

	parent, err := repo.Parent(ctx, branch)
	if err != nil {
		return err
	}

	if err := repo.Fetch(ctx, "upstream"); err != nil {
		return err
	}

	if parent == "" {
		// Top of tree: integrate upstream directly.
		main, err := repo.MainBranch(ctx, a.cfg.MainCandidates)
		if err != nil {
			return err
		}
		if branch == main {
			if err := repo.Rebase(ctx, "upstream/"+main); err != nil {
				return err
			}
			return repo.Push(ctx, "origin", main)
		}
		parent = main
	}

	if err := repo.Rebase(ctx, parent); err != nil {
		return err
	}
	return repo.Push(ctx, "origin", branch)
}

const rupdateDoc = `rupdate: Recursively update a chain of branches.

Aliases: rup

Starts from the current branch and walks the recorded parentage
downward, updating each descendant branch in its own worktree. Useful
when a change to a parent branch needs to ripple through its children.`

func (a *App) runRupdate(ctx context.Context, args *command.Args) error {
	repo := a.repo()

	start, err := repo.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	if err := a.updateBranchIn(ctx, repo); err != nil {
		return err
	}

	queue := []string{start}
	for len(queue) > 0 {
		branch := queue[0]
		queue = queue[1:]

		children, err := repo.Children(ctx, branch)
		if err != nil {
			return err
		}
		for _, child := range children {
			if err := a.updateBranchIn(ctx, a.repoAt(child)); err != nil {
				return err
			}
			queue = append(queue, child)
		}
	}
	return nil
}
