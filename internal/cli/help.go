package cli

import (
	"context"
	"fmt"

	"github.com/enfabrica/geet/internal/command"
)

const helpDoc = `help: Show extended help for a command.

Args:
   command: The command or alias to describe.`

func (a *App) runHelp(ctx context.Context, args *command.Args) error {
	spec, err := a.registry.Resolve(args.String("command"))
	if err != nil {
		return err
	}
	spec.WriteHelp(a.out, a.registry.ProgName())
	return nil
}

const versionDoc = `version: Print version information.`

func (a *App) runVersion(ctx context.Context, args *command.Args) error {
	fmt.Fprintf(a.out, "geet version %s (%s, built %s)\n", Version, Commit, BuildDate)
	return nil
}
