package cli

import (
	"context"
	"fmt"

	"github.com/enfabrica/geet/internal/command"
	"github.com/enfabrica/geet/internal/completion"
)

const completionsDoc = `completions: Print completion candidates for a partial command line.

Args:
   words...: The words typed so far, ending with the word under the cursor.

Intended for shell completion glue, one candidate per line. The glue
should separate the words with "--" so that flag-like words are passed
through unparsed. A single ":files" line means the shell should fall
back to filename completion. Branch-typed arguments complete against
the repo's local branches.`

func (a *App) runCompletions(ctx context.Context, args *command.Args) error {
	words := args.Strings("words")

	candidates, directive := completion.Candidates(ctx, a.registry, a.repo(), words)
	if directive == completion.DirectiveFiles {
		fmt.Fprintln(a.out, ":files")
		return nil
	}
	for _, c := range candidates {
		fmt.Fprintln(a.out, c)
	}
	return nil
}
