package command

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind distinguishes how an argument is supplied on the command line.
type Kind int

const (
	// Positional arguments are bound by position and always required.
	Positional Kind = iota
	// Flag arguments are bound by a dash-prefixed name and always optional.
	Flag
)

// ValueType is the type an argument value is converted to before the handler
// sees it.
type ValueType int

const (
	String ValueType = iota
	Int
	Bool
)

// Cardinality says whether a rule binds a single value or collects a
// one-or-more sequence.
type Cardinality int

const (
	Single Cardinality = iota
	Repeated
)

// Hint is autocomplete metadata carried for the shell-completion helper.
// It never affects validation.
type Hint int

const (
	HintNone Hint = iota
	// HintFile marks an argument that names a file path.
	HintFile
	// HintBranch marks an argument that names a branch in the working repo.
	HintBranch
)

// ArgumentRule is the compiled form of one line of an Args: paragraph.
type ArgumentRule struct {
	// Names holds the rule's spellings: exactly one bare name for a
	// positional, one or more dash-prefixed names for a flag.
	Names       []string
	Kind        Kind
	Type        ValueType
	Cardinality Cardinality
	Required    bool
	Help        string
	Hint        Hint
}

// Key returns the name the rule's value is stored under in the parsed
// argument bundle: the positional name, or the longest flag spelling with
// its leading dashes stripped.
func (r *ArgumentRule) Key() string {
	key := r.Names[0]
	for _, n := range r.Names[1:] {
		if len(n) > len(key) {
			key = n
		}
	}
	return strings.TrimLeft(key, "-")
}

// Metavar returns the display name used in usage lines.
func (r *ArgumentRule) Metavar() string {
	return "<" + r.Key() + ">"
}

const repeatSuffix = "..."

// continuation matches a newline followed by four-or-more spaces: the tail
// of a help text wrapped across physical docstring lines.
var continuation = regexp.MustCompile(`\s*\n\s{4,}`)

// CompileRules converts the raw body of an Args: paragraph into an ordered
// rule sequence. Declaration order is preserved; it drives both positional
// binding and help display. Any line that does not fit the argument grammar
// is a configuration error.
func CompileRules(body string) ([]*ArgumentRule, error) {
	body = continuation.ReplaceAllString(body, " ")

	var rules []*ArgumentRule
	repeatedAt := -1 // index of the repeated positional, if declared

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		spec, help, ok := strings.Cut(line, ": ")
		if !ok || spec == "" {
			return nil, fmt.Errorf("%w: %q must be \"spec: help text\"",
				ErrMalformedArgSpec, line)
		}

		var (
			rule *ArgumentRule
			err  error
		)
		if strings.HasPrefix(spec, "-") {
			rule, err = compileFlag(spec)
		} else {
			rule, err = compilePositional(spec)
		}
		if err != nil {
			return nil, err
		}
		rule.Help = help

		if rule.Kind == Positional {
			if repeatedAt >= 0 {
				return nil, fmt.Errorf("%w: positional %q declared after repeated positional %q",
					ErrMalformedArgSpec, rule.Key(), rules[repeatedAt].Key())
			}
			if rule.Cardinality == Repeated {
				repeatedAt = len(rules)
			}
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

// compileFlag parses a flag spec: "-k|--kill" (bool toggle),
// "-c|--comment=string", "-n|--count=int", "-f|--file=string..." (repeated).
func compileFlag(spec string) (*ArgumentRule, error) {
	rule := &ArgumentRule{Kind: Flag, Cardinality: Single}

	namePart := spec
	if names, typePart, hasType := strings.Cut(spec, "="); hasType {
		namePart = names
		if strings.HasSuffix(typePart, repeatSuffix) {
			rule.Cardinality = Repeated
			typePart = strings.TrimSuffix(typePart, repeatSuffix)
		}
		switch typePart {
		case "int":
			rule.Type = Int
		case "":
			return nil, fmt.Errorf("%w: flag %q has an empty type", ErrMalformedArgSpec, spec)
		default:
			rule.Type = String
		}
	} else {
		rule.Type = Bool
	}

	for _, name := range strings.Split(namePart, "|") {
		if !strings.HasPrefix(name, "-") || strings.TrimLeft(name, "-") == "" {
			return nil, fmt.Errorf("%w: flag name %q in %q must be dash-prefixed",
				ErrMalformedArgSpec, name, spec)
		}
		rule.Names = append(rule.Names, name)
	}

	rule.Hint = hintFor(rule.Key())
	return rule, nil
}

// compilePositional parses a positional spec: "branch", "files...".
func compilePositional(spec string) (*ArgumentRule, error) {
	rule := &ArgumentRule{
		Kind:     Positional,
		Type:     String,
		Required: true,
	}
	name := spec
	if strings.HasSuffix(name, repeatSuffix) {
		rule.Cardinality = Repeated
		name = strings.TrimSuffix(name, repeatSuffix)
	}
	if name == "" || strings.ContainsAny(name, " \t|=") {
		return nil, fmt.Errorf("%w: bad positional name %q", ErrMalformedArgSpec, spec)
	}
	rule.Names = []string{name}
	rule.Hint = hintFor(name)
	return rule, nil
}

// hintFor derives completion metadata from an argument name. Arguments named
// for files complete as paths; arguments named for branches complete against
// the repo's branch list.
func hintFor(name string) Hint {
	switch {
	case name == "file" || strings.HasSuffix(name, "file") || strings.HasSuffix(name, "files"):
		return HintFile
	case name == "branch" || strings.HasSuffix(name, "branch") || strings.HasSuffix(name, "branches"):
		return HintBranch
	default:
		return HintNone
	}
}
