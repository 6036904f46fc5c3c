package cli

import (
	"context"
	"fmt"

	"github.com/enfabrica/geet/internal/command"
)

const makeBranchDoc = `make_branch: Create a feature branch in its own directory.

Aliases: mkbr, brmk

Args:
   new_branch: Name of the branch to create.

The branch is forked from the branch you are currently in, gets its own
worktree directory under <root>/<repo>/, and is backed up to origin
right away. The fork point is recorded as the new branch's parent, so
"update" knows where to pull from. Switch to it with:

    cd $(geet gcd <new_branch>)`

func (a *App) runMakeBranch(ctx context.Context, args *command.Args) error {
	name := args.String("new_branch")
	repo := a.repo()

	parent, err := repo.CurrentBranch(ctx)
	if err != nil {
		return err
	}

	path := a.cfg.BranchDir(name)
	if err := repo.AddWorktree(ctx, path, name, parent); err != nil {
		return err
	}
	if err := repo.SetParent(ctx, name, parent); err != nil {
		return err
	}
	if err := repo.Push(ctx, "origin", name); err != nil {
		return err
	}

	fmt.Fprintln(a.out, path)
	return nil
}

const gcdDoc = `gcd: Print the directory of a branch's worktree.

Aliases: cd

Args:
   branch: The branch to locate.

Branches are switched by changing directory, not by checkout:

    cd $(geet gcd my_feature)`

func (a *App) runGcd(ctx context.Context, args *command.Args) error {
	name := args.String("branch")

	branches, err := a.repo().LocalBranches(ctx)
	if err != nil {
		return err
	}
	for _, b := range branches {
		if b == name {
			fmt.Fprintln(a.out, a.cfg.BranchDir(name))
			return nil
		}
	}
	return fmt.Errorf("no such branch: %s", name)
}

const branchesDoc = `branches: List local branches and their parents.

Aliases: br`

func (a *App) runBranches(ctx context.Context, args *command.Args) error {
	repo := a.repo()

	branches, err := repo.LocalBranches(ctx)
	if err != nil {
		return err
	}
	for _, b := range branches {
		parent, err := repo.Parent(ctx, b)
		if err != nil {
			return err
		}
		if parent == "" {
			fmt.Fprintln(a.out, b)
		} else {
			fmt.Fprintf(a.out, "%s (from %s)\n", b, parent)
		}
	}
	return nil
}
