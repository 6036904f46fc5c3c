package command

import (
	"strconv"
	"strings"
)

// Args is the validated, typed argument bundle a handler is invoked with.
// Values are keyed by each rule's Key(). Getters return the zero value for
// keys the invocation never set; Has distinguishes unset from zero.
type Args struct {
	values map[string]any
}

// Has reports whether the invocation supplied a value for key. Bool flags
// and repeated flags always have a value (false / empty sequence).
func (a *Args) Has(key string) bool {
	_, ok := a.values[key]
	return ok
}

// String returns the string bound to key, or "" when unset.
func (a *Args) String(key string) string {
	v, _ := a.values[key].(string)
	return v
}

// Int returns the int bound to key, or 0 when unset.
func (a *Args) Int(key string) int {
	v, _ := a.values[key].(int)
	return v
}

// Bool returns the bool bound to key, or false when unset.
func (a *Args) Bool(key string) bool {
	v, _ := a.values[key].(bool)
	return v
}

// Strings returns the ordered sequence bound to a repeated key.
func (a *Args) Strings(key string) []string {
	v, _ := a.values[key].([]string)
	return v
}

// Ints returns the ordered int sequence bound to a repeated int key.
func (a *Args) Ints(key string) []int {
	v, _ := a.values[key].([]int)
	return v
}

// bindArgs validates raw tokens against the spec's rules and produces the
// typed bundle. It is pure: no handler side effects occur on failure.
//
// Flags accept their value inline ("--flag=v") or as the next token
// ("--flag v"); bool flags consume no value. "--" ends flag parsing, and
// every later token is positional. Positional tokens bind to positional
// rules in declaration order, with a trailing repeated rule consuming all
// remaining tokens (one or more).
func bindArgs(spec *Spec, raw []string) (*Args, error) {
	args := &Args{values: make(map[string]any)}
	flags := spec.flagIndex()

	// Flags start from their documented defaults.
	for _, r := range spec.Rules {
		if r.Kind != Flag {
			continue
		}
		switch {
		case r.Cardinality == Repeated:
			args.values[r.Key()] = []string{}
			if r.Type == Int {
				args.values[r.Key()] = []int{}
			}
		case r.Type == Bool:
			args.values[r.Key()] = false
		}
	}

	var positionals []string
	onlyPositionals := false

	for i := 0; i < len(raw); i++ {
		token := raw[i]

		if onlyPositionals || token == "-" || !strings.HasPrefix(token, "-") {
			positionals = append(positionals, token)
			continue
		}
		if token == "--" {
			onlyPositionals = true
			continue
		}

		name, inline, hasInline := strings.Cut(token, "=")
		rule, ok := flags[name]
		if !ok {
			return nil, usageErrf(spec, ErrUnknownFlag, "%s", name)
		}

		if rule.Type == Bool {
			if hasInline {
				return nil, usageErrf(spec, ErrBadValue, "%s takes no value", name)
			}
			args.values[rule.Key()] = true
			continue
		}

		value := inline
		if !hasInline {
			if i+1 >= len(raw) {
				return nil, usageErrf(spec, ErrMissingValue, "%s", name)
			}
			i++
			value = raw[i]
		}
		if err := args.setTyped(spec, rule, name, value); err != nil {
			return nil, err
		}
	}

	return args, bindPositionals(spec, args, positionals)
}

// setTyped converts value per the rule's type and stores it, appending for
// repeated rules.
func (a *Args) setTyped(spec *Spec, rule *ArgumentRule, name, value string) error {
	key := rule.Key()
	switch rule.Type {
	case Int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return usageErrf(spec, ErrBadValue, "%s: %q is not an integer", name, value)
		}
		if rule.Cardinality == Repeated {
			a.values[key] = append(a.values[key].([]int), n)
		} else {
			a.values[key] = n
		}
	default:
		if rule.Cardinality == Repeated {
			a.values[key] = append(a.values[key].([]string), value)
		} else {
			a.values[key] = value
		}
	}
	return nil
}

// bindPositionals assigns queued positional tokens to positional rules in
// declaration order. A repeated rule is always last among positionals and
// consumes every remaining token; it must get at least one.
func bindPositionals(spec *Spec, args *Args, tokens []string) error {
	rules := spec.positionals()

	for _, rule := range rules {
		if rule.Cardinality == Repeated {
			if len(tokens) == 0 {
				return usageErrf(spec, ErrMissingPositional, "%s", rule.Metavar())
			}
			seq := make([]string, len(tokens))
			copy(seq, tokens)
			args.values[rule.Key()] = seq
			tokens = nil
			continue
		}
		if len(tokens) == 0 {
			return usageErrf(spec, ErrMissingPositional, "%s", rule.Metavar())
		}
		args.values[rule.Key()] = tokens[0]
		tokens = tokens[1:]
	}

	if len(tokens) > 0 {
		return usageErrf(spec, ErrUnexpectedArg, "%q", tokens[0])
	}
	return nil
}
