// Package completion turns compiled argument rules into shell completion
// candidates. The engine only carries a hint per rule (file, branch); this
// package decides what the hint means: branch hints complete against the
// working repo's branch list, file hints defer to the shell's own filename
// completion.
package completion

import (
	"context"
	"strings"

	"github.com/enfabrica/geet/internal/command"
)

// Directive tells the shell glue how to treat the candidate list.
type Directive int

const (
	// DirectiveDefault: offer the returned words.
	DirectiveDefault Directive = iota
	// DirectiveFiles: ignore words and fall back to filename completion.
	DirectiveFiles
	// DirectiveNone: nothing sensible to offer.
	DirectiveNone
)

// BranchLister supplies branch names for branch-hinted arguments.
type BranchLister interface {
	LocalBranches(ctx context.Context) ([]string, error)
}

// Candidates completes the last word of a partially-typed invocation.
// words holds everything after the program name, including the (possibly
// empty) word under the cursor.
func Candidates(ctx context.Context, reg *command.Registry, branches BranchLister, words []string) ([]string, Directive) {
	if len(words) <= 1 {
		prefix := ""
		if len(words) == 1 {
			prefix = words[0]
		}
		return commandNames(reg, prefix), DirectiveDefault
	}

	spec, err := reg.Resolve(words[0])
	if err != nil {
		return nil, DirectiveNone
	}

	cur := words[len(words)-1]
	if strings.HasPrefix(cur, "-") {
		return flagNames(spec, cur), DirectiveDefault
	}

	rule := positionalAt(spec, words[1:len(words)-1])
	if rule == nil {
		return nil, DirectiveNone
	}
	switch rule.Hint {
	case command.HintBranch:
		names, err := branches.LocalBranches(ctx)
		if err != nil {
			return nil, DirectiveNone
		}
		return withPrefix(names, cur), DirectiveDefault
	case command.HintFile:
		return nil, DirectiveFiles
	default:
		return nil, DirectiveNone
	}
}

func commandNames(reg *command.Registry, prefix string) []string {
	var out []string
	for _, spec := range reg.Commands() {
		out = append(out, spec.Name)
		out = append(out, spec.Aliases...)
	}
	return withPrefix(out, prefix)
}

func flagNames(spec *command.Spec, prefix string) []string {
	var out []string
	for _, r := range spec.Rules {
		if r.Kind == command.Flag {
			out = append(out, r.Names...)
		}
	}
	return withPrefix(out, prefix)
}

// positionalAt returns the positional rule the cursor is on, given the
// tokens already completed before it. Flag tokens and their values are
// skipped the same way dispatch validation skips them.
func positionalAt(spec *command.Spec, before []string) *command.ArgumentRule {
	bound := 0
	expectValue := false
	for _, tok := range before {
		switch {
		case expectValue:
			expectValue = false
		case strings.HasPrefix(tok, "-") && tok != "-":
			if tok != "--" && !strings.Contains(tok, "=") && !isBoolFlag(spec, tok) {
				expectValue = true
			}
		default:
			bound++
		}
	}

	var positionals []*command.ArgumentRule
	for _, r := range spec.Rules {
		if r.Kind == command.Positional {
			positionals = append(positionals, r)
		}
	}
	if len(positionals) == 0 {
		return nil
	}
	if bound >= len(positionals) {
		last := positionals[len(positionals)-1]
		if last.Cardinality == command.Repeated {
			return last
		}
		return nil
	}
	return positionals[bound]
}

func isBoolFlag(spec *command.Spec, name string) bool {
	for _, r := range spec.Rules {
		if r.Kind != command.Flag || r.Type != command.Bool {
			continue
		}
		for _, n := range r.Names {
			if n == name {
				return true
			}
		}
	}
	return false
}

func withPrefix(words []string, prefix string) []string {
	if prefix == "" {
		return words
	}
	var out []string
	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			out = append(out, w)
		}
	}
	return out
}
