package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/enfabrica/geet/internal/command"
	"github.com/enfabrica/geet/internal/git"
	"github.com/enfabrica/geet/internal/ui"
)

const initDoc = `init: Clone the upstream repo and create the main worktree.

Clones the configured upstream repository over ssh into
<root>/<repo>/.bare, adds your fork as the "origin" remote, and checks
out the repo's top-of-tree branch into its own worktree directory.
This only needs to be done once per home directory; afterwards,
"cd <root>/<repo>/main" to start working.`

func (a *App) runInit(ctx context.Context, args *command.Args) error {
	if a.cfg.Upstream == "" {
		return fmt.Errorf("no upstream configured; set upstream (owner/repo) in your geet config")
	}
	if a.cfg.GHUser == "" {
		return fmt.Errorf("no ghuser configured; set ghuser in your geet config")
	}

	bareDir := filepath.Join(a.cfg.RepoDir(), ".bare")
	upstreamURL := sshURL(a.cfg.Upstream)
	originURL := sshURL(a.cfg.GHUser + "/" + a.cfg.RepoName())

	var cloneErr error
	err := ui.Spin("Cloning "+a.cfg.Upstream+"...", func() {
		if out, err := a.exec.Git(ctx, "", "clone", "--bare", upstreamURL, bareDir); err != nil {
			cloneErr = fmt.Errorf("cloning %s: %w\n%s", a.cfg.Upstream, err, string(out))
		}
	})
	if err != nil {
		return err
	}
	if cloneErr != nil {
		return cloneErr
	}

	// The bare clone's lone remote is the upstream; name it so, and add
	// the user's fork as origin. All pushes go to origin, never upstream.
	bare := git.Open(bareDir, a.exec)
	for _, step := range [][]string{
		{"remote", "rename", "origin", "upstream"},
		{"remote", "add", "origin", originURL},
		{"fetch", "origin"},
	} {
		if out, err := a.exec.Git(ctx, bareDir, step...); err != nil {
			return fmt.Errorf("configuring remotes: %w\n%s", err, string(out))
		}
	}

	main, err := bare.MainBranch(ctx, a.cfg.MainCandidates)
	if err != nil {
		return err
	}
	if err := bare.CheckoutWorktree(ctx, a.cfg.BranchDir(main), main); err != nil {
		return err
	}

	fmt.Fprintln(a.out, a.cfg.BranchDir(main))
	return nil
}

func sshURL(ownerRepo string) string {
	return "git@github.com:" + ownerRepo + ".git"
}
