package command

import (
	"context"
	"fmt"
)

// Handler is the function a command dispatches to once its invocation has
// been validated and typed.
type Handler func(ctx context.Context, args *Args) error

// Spec is the compiled, immutable description of one subcommand. Specs are
// built once at startup by New and owned by the Registry afterwards.
type Spec struct {
	Name      string
	ShortHelp string
	LongHelp  string
	Aliases   []string
	Rules     []*ArgumentRule
	Run       Handler
}

// New compiles a docstring declaration and its handler into a Spec. Errors
// identify the declaration by its command name (or the docstring head when
// no name could be parsed) so a broken definition is easy to find.
func New(doc string, run Handler) (*Spec, error) {
	d, err := ParseDocstring(doc)
	if err != nil {
		return nil, err
	}
	rules, err := CompileRules(d.ArgsBody)
	if err != nil {
		return nil, fmt.Errorf("command %q: %w", d.Name, err)
	}
	if run == nil {
		return nil, fmt.Errorf("command %q: %w: nil handler", d.Name, ErrMalformedDocstring)
	}
	return &Spec{
		Name:      d.Name,
		ShortHelp: d.ShortHelp,
		LongHelp:  d.LongHelp,
		Aliases:   d.Aliases,
		Rules:     rules,
		Run:       run,
	}, nil
}

// MustNew is New for statically-declared commands; it panics on a malformed
// declaration, which is a programming error caught the first time the
// process starts.
func MustNew(doc string, run Handler) *Spec {
	spec, err := New(doc, run)
	if err != nil {
		panic(err)
	}
	return spec
}

// positionals returns the spec's positional rules in declaration order.
func (s *Spec) positionals() []*ArgumentRule {
	var out []*ArgumentRule
	for _, r := range s.Rules {
		if r.Kind == Positional {
			out = append(out, r)
		}
	}
	return out
}

// flagIndex maps every flag spelling to its rule.
func (s *Spec) flagIndex() map[string]*ArgumentRule {
	idx := make(map[string]*ArgumentRule)
	for _, r := range s.Rules {
		if r.Kind != Flag {
			continue
		}
		for _, name := range r.Names {
			idx[name] = r
		}
	}
	return idx
}
