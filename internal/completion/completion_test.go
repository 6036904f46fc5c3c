package completion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enfabrica/geet/internal/command"
)

type fakeBranches []string

func (f fakeBranches) LocalBranches(ctx context.Context) ([]string, error) {
	return f, nil
}

func nop(ctx context.Context, args *command.Args) error { return nil }

func testRegistry(t *testing.T) *command.Registry {
	t.Helper()
	reg := command.NewRegistry("geet")
	require.NoError(t, reg.Register(command.MustNew(`testing: testing the cli api

Aliases: t, test

Args:
   branch: branch to integrate
   files...: One or more files.
   -k|--kill: kill
   -c|--comment=string: text`, nop)))
	require.NoError(t, reg.Register(command.MustNew(`update: pull upstream changes`, nop)))
	return reg
}

func TestCandidates_CommandWord(t *testing.T) {
	reg := testRegistry(t)

	words, directive := Candidates(context.Background(), reg, fakeBranches{}, nil)

	assert.Equal(t, DirectiveDefault, directive)
	assert.Contains(t, words, "testing")
	assert.Contains(t, words, "t")
	assert.Contains(t, words, "test")
	assert.Contains(t, words, "update")
}

func TestCandidates_CommandWordPrefixFiltered(t *testing.T) {
	reg := testRegistry(t)

	words, _ := Candidates(context.Background(), reg, fakeBranches{}, []string{"up"})

	assert.Equal(t, []string{"update"}, words)
}

func TestCandidates_BranchHintedPositional(t *testing.T) {
	reg := testRegistry(t)
	branches := fakeBranches{"main", "my_feature"}

	words, directive := Candidates(context.Background(), reg, branches, []string{"testing", ""})

	assert.Equal(t, DirectiveDefault, directive)
	assert.Equal(t, []string{"main", "my_feature"}, words)
}

func TestCandidates_FileHintedPositionalDefersToShell(t *testing.T) {
	reg := testRegistry(t)

	_, directive := Candidates(context.Background(), reg, fakeBranches{}, []string{"testing", "main", ""})

	assert.Equal(t, DirectiveFiles, directive)
}

func TestCandidates_RepeatedPositionalKeepsCompleting(t *testing.T) {
	reg := testRegistry(t)

	_, directive := Candidates(context.Background(), reg, fakeBranches{}, []string{"testing", "main", "a.txt", ""})

	assert.Equal(t, DirectiveFiles, directive)
}

func TestCandidates_FlagWord(t *testing.T) {
	reg := testRegistry(t)

	words, _ := Candidates(context.Background(), reg, fakeBranches{}, []string{"testing", "--"})

	assert.Contains(t, words, "--kill")
	assert.Contains(t, words, "--comment")
}

func TestCandidates_FlagValueNotCountedAsPositional(t *testing.T) {
	reg := testRegistry(t)
	branches := fakeBranches{"main"}

	// "-c hello" is a flag and its value; the cursor is still on the
	// first positional.
	words, directive := Candidates(context.Background(), reg, branches, []string{"testing", "-c", "hello", ""})

	assert.Equal(t, DirectiveDefault, directive)
	assert.Equal(t, []string{"main"}, words)
}

func TestCandidates_UnknownCommand(t *testing.T) {
	reg := testRegistry(t)

	words, directive := Candidates(context.Background(), reg, fakeBranches{}, []string{"bogus", ""})

	assert.Empty(t, words)
	assert.Equal(t, DirectiveNone, directive)
}
