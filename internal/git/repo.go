// Package git shells out to the git binary for the handful of operations the
// workflow commands need. Every operation goes through the injected executor
// so tests can run against a MockCommander instead of a real repository.
package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/enfabrica/geet/internal/exec"
)

// Repo is a handle on one worktree directory.
type Repo struct {
	// Dir is the worktree the commands run in.
	Dir string

	exec *exec.CommandExecutor
}

// Open returns a handle for the worktree at dir.
func Open(dir string, executor *exec.CommandExecutor) *Repo {
	return &Repo{Dir: dir, exec: executor}
}

func trimOutput(output []byte) string {
	return strings.TrimSpace(string(output))
}

func (r *Repo) git(ctx context.Context, args ...string) (string, error) {
	output, err := r.exec.Git(ctx, r.Dir, args...)
	if err != nil {
		return "", fmt.Errorf("git %s: %w\n%s", strings.Join(args, " "), err, string(output))
	}
	return strings.TrimSpace(string(output)), nil
}

// CurrentBranch returns the branch checked out in the worktree.
func (r *Repo) CurrentBranch(ctx context.Context) (string, error) {
	return r.git(ctx, "rev-parse", "--abbrev-ref", "HEAD")
}

// LocalBranches returns all local branch names.
func (r *Repo) LocalBranches(ctx context.Context) ([]string, error) {
	output, err := r.git(ctx, "for-each-ref", "--format=%(refname:short)", "refs/heads/")
	if err != nil {
		return nil, fmt.Errorf("listing local branches: %w", err)
	}
	var branches []string
	for _, line := range strings.Split(output, "\n") {
		if line != "" {
			branches = append(branches, line)
		}
	}
	return branches, nil
}

// MainBranch returns the first of candidates that exists locally. The repo
// may still be transitioning from "master" to "main", so both are usually
// candidates, in that order.
func (r *Repo) MainBranch(ctx context.Context, candidates []string) (string, error) {
	branches, err := r.LocalBranches(ctx)
	if err != nil {
		return "", err
	}
	for _, candidate := range candidates {
		for _, b := range branches {
			if b == candidate {
				return candidate, nil
			}
		}
	}
	return "", fmt.Errorf("none of %v exists in this repo", candidates)
}

// Fetch updates the named remote.
func (r *Repo) Fetch(ctx context.Context, remote string) error {
	_, err := r.git(ctx, "fetch", remote)
	return err
}

// Push pushes branch to remote, creating or updating the remote ref.
func (r *Repo) Push(ctx context.Context, remote, branch string) error {
	_, err := r.git(ctx, "push", remote, branch)
	return err
}

// Rebase replays the worktree's branch onto the given upstream ref.
func (r *Repo) Rebase(ctx context.Context, onto string) error {
	_, err := r.git(ctx, "rebase", onto)
	return err
}

// Commit records staged changes; all additionally stages every modified
// tracked file, message may be empty to open the editor.
func (r *Repo) Commit(ctx context.Context, all bool, message string) error {
	args := []string{"commit"}
	if all {
		args = append(args, "-a")
	}
	if message != "" {
		args = append(args, "-m", message)
	}
	_, err := r.git(ctx, args...)
	return err
}

// AddWorktree creates a worktree at path for a new branch forked from base.
func (r *Repo) AddWorktree(ctx context.Context, path, branch, base string) error {
	_, err := r.git(ctx, "worktree", "add", "-b", branch, path, base)
	return err
}

// CheckoutWorktree creates a worktree at path for an existing branch.
func (r *Repo) CheckoutWorktree(ctx context.Context, path, branch string) error {
	_, err := r.git(ctx, "worktree", "add", path, branch)
	return err
}
