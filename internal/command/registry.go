package command

import (
	"context"
	"fmt"
	"sort"
)

// Registry maps command names and aliases to their Specs. It is built once
// during startup registration and read-only afterwards; the first Dispatch
// seals it, so a late Register is caught instead of silently racing use.
type Registry struct {
	byName   map[string]*Spec
	ordered  []*Spec
	progName string
	sealed   bool
}

// NewRegistry returns an empty registry for the named program. progName is
// only used in usage and help text.
func NewRegistry(progName string) *Registry {
	return &Registry{
		byName:   make(map[string]*Spec),
		progName: progName,
	}
}

// Register inserts spec under its name and each of its aliases. Every key
// must be unique across the whole registry; a collision means two command
// declarations are fighting over a name and is a configuration error.
func (r *Registry) Register(spec *Spec) error {
	if r.sealed {
		return fmt.Errorf("%w: cannot register %q after dispatch has begun",
			ErrRegistrySealed, spec.Name)
	}

	keys := append([]string{spec.Name}, spec.Aliases...)
	for _, key := range keys {
		if prev, exists := r.byName[key]; exists {
			return fmt.Errorf("%w: %q is already taken by %q",
				ErrDuplicateCommand, key, prev.Name)
		}
	}
	for _, key := range keys {
		r.byName[key] = spec
	}
	r.ordered = append(r.ordered, spec)
	return nil
}

// Resolve returns the spec registered under token, matching canonical names
// and aliases alike.
func (r *Registry) Resolve(token string) (*Spec, error) {
	spec, ok := r.byName[token]
	if !ok {
		return nil, usageErrf(nil, ErrUnknownCommand, "%q", token)
	}
	return spec, nil
}

// Dispatch resolves token, validates raw against the command's rules, and
// invokes the handler with the typed bundle. The handler never runs when
// resolution or validation fails, and handler errors pass through untouched.
func (r *Registry) Dispatch(ctx context.Context, token string, raw []string) error {
	r.sealed = true

	spec, err := r.Resolve(token)
	if err != nil {
		return err
	}
	args, err := bindArgs(spec, raw)
	if err != nil {
		return err
	}
	return spec.Run(ctx, args)
}

// Commands returns every registered spec sorted by canonical name.
func (r *Registry) Commands() []*Spec {
	out := make([]*Spec, len(r.ordered))
	copy(out, r.ordered)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ProgName returns the program name the registry renders help for.
func (r *Registry) ProgName() string { return r.progName }
