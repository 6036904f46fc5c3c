// Package command implements geet's declarative subcommand engine.
//
// A command is declared as a docstring: the first paragraph carries the
// command name and its short help ("name: help"), an optional "Args:"
// paragraph declares positional and flag arguments, an optional "Aliases:"
// paragraph declares alternate names, and every remaining paragraph becomes
// the long help. Docstrings are parsed and compiled once at startup into
// immutable Specs held by a Registry, which resolves and dispatches
// invocations against them.
package command

import (
	"fmt"
	"strings"
)

const (
	argsHeader    = "Args:"
	aliasesHeader = "Aliases:"
)

// Docstring is the parsed form of a command declaration, before its Args
// body has been compiled into rules.
type Docstring struct {
	Name      string
	ShortHelp string
	LongHelp  string
	Aliases   []string

	// ArgsBody is the raw body of the Args: paragraph, empty when the
	// docstring declares no arguments.
	ArgsBody string
}

// ParseDocstring splits a raw docstring into its grammar parts. A docstring
// whose first paragraph is not of the form "name: short help" is a broken
// declaration and fails here, at registration time.
func ParseDocstring(doc string) (*Docstring, error) {
	paragraphs := splitParagraphs(doc)
	if len(paragraphs) == 0 {
		return nil, fmt.Errorf("%w: empty docstring", ErrMalformedDocstring)
	}

	name, short, ok := strings.Cut(paragraphs[0], ": ")
	if !ok || name == "" {
		return nil, fmt.Errorf("%w: first paragraph must be %q, got %q",
			ErrMalformedDocstring, "name: short help", paragraphs[0])
	}
	if strings.ContainsAny(name, " \n") {
		return nil, fmt.Errorf("%w: command name %q contains whitespace",
			ErrMalformedDocstring, name)
	}

	d := &Docstring{Name: name, ShortHelp: short}

	rest := make([]string, 0, len(paragraphs)-1)
	for _, p := range paragraphs[1:] {
		switch {
		case d.ArgsBody == "" && strings.HasPrefix(p, argsHeader+"\n"):
			d.ArgsBody = p[len(argsHeader)+1:]
		case d.Aliases == nil && strings.HasPrefix(p, aliasesHeader):
			d.Aliases = splitAliases(p[len(aliasesHeader):])
		default:
			rest = append(rest, p)
		}
	}
	d.LongHelp = strings.Join(rest, "\n\n")

	return d, nil
}

// splitParagraphs breaks a docstring into dedented paragraphs. Paragraphs are
// separated by blank lines; indentation common to a paragraph's lines is
// stripped so that declarations read naturally when indented inside source.
func splitParagraphs(doc string) []string {
	var out []string
	for _, block := range strings.Split(strings.TrimSpace(doc), "\n\n") {
		p := dedent(block)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// dedent removes the longest run of leading spaces and tabs common to every
// non-blank line of the block.
func dedent(block string) string {
	lines := strings.Split(block, "\n")

	margin := -1
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		indent := len(line) - len(trimmed)
		if margin < 0 || indent < margin {
			margin = indent
		}
	}
	if margin <= 0 {
		return strings.TrimRight(block, " \t\n")
	}

	for i, line := range lines {
		if len(line) >= margin {
			lines[i] = line[margin:]
		} else {
			lines[i] = strings.TrimLeft(line, " \t")
		}
	}
	return strings.TrimRight(strings.Join(lines, "\n"), " \t\n")
}

func splitAliases(s string) []string {
	var out []string
	for _, a := range strings.Split(s, ",") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}
