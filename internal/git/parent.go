package git

import (
	"context"
	"fmt"
)

// geet tracks which branch each feature branch was forked from ("parentage")
// in git config, so updates can flow down the chain:
//
//	upstream/main -> main -> feature -> feature2
//
// The keys live in the repo's own config; no extra state file is needed.

func parentKey(branch string) string {
	return fmt.Sprintf("branch.%s.geet-parent", branch)
}

// Parent returns the recorded parent of branch, or "" when none is set.
func (r *Repo) Parent(ctx context.Context, branch string) (string, error) {
	output, err := r.exec.Git(ctx, r.Dir, "config", "--get", parentKey(branch))
	if err != nil {
		// git config --get exits 1 for an unset key.
		return "", nil
	}
	return trimOutput(output), nil
}

// SetParent records parent as the branch that branch was forked from.
// Safe to call again; the key is overwritten.
func (r *Repo) SetParent(ctx context.Context, branch, parent string) error {
	_, err := r.git(ctx, "config", parentKey(branch), parent)
	return err
}

// Children returns the branches whose recorded parent is branch, in the
// order git reports them.
func (r *Repo) Children(ctx context.Context, branch string) ([]string, error) {
	branches, err := r.LocalBranches(ctx)
	if err != nil {
		return nil, err
	}
	var children []string
	for _, b := range branches {
		parent, err := r.Parent(ctx, b)
		if err != nil {
			return nil, err
		}
		if parent == branch {
			children = append(children, b)
		}
	}
	return children, nil
}
