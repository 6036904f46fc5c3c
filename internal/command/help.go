package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	nameStyle  = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// Usage returns the one-line usage string for a command. Positional
// metavariables are wrapped in angle brackets to set them apart from flags;
// flags are summarised as a single optional group.
func (s *Spec) Usage(progName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "usage: %s %s", progName, s.Name)

	hasFlags := false
	for _, r := range s.Rules {
		switch r.Kind {
		case Positional:
			if r.Cardinality == Repeated {
				fmt.Fprintf(&b, " %s...", r.Metavar())
			} else {
				fmt.Fprintf(&b, " %s", r.Metavar())
			}
		case Flag:
			hasFlags = true
		}
	}
	if hasFlags {
		b.WriteString(" [flags]")
	}
	return b.String()
}

// WriteHelp renders the command's extended help: usage, long help, aliases,
// and one line per argument rule in declaration order.
func (s *Spec) WriteHelp(w io.Writer, progName string) {
	fmt.Fprintln(w, s.Usage(progName))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s: %s\n", nameStyle.Render(s.Name), s.ShortHelp)

	if s.LongHelp != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.LongHelp)
	}
	if len(s.Aliases) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Aliases: %s\n", strings.Join(s.Aliases, ", "))
	}
	if len(s.Rules) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Arguments:")
		width := 0
		labels := make([]string, len(s.Rules))
		for i, r := range s.Rules {
			labels[i] = ruleLabel(r)
			if len(labels[i]) > width {
				width = len(labels[i])
			}
		}
		for i, r := range s.Rules {
			fmt.Fprintf(w, "  %-*s  %s\n", width, labels[i], r.Help)
		}
	}
}

// ruleLabel renders a rule the way it is spelled on the command line.
func ruleLabel(r *ArgumentRule) string {
	if r.Kind == Positional {
		if r.Cardinality == Repeated {
			return r.Metavar() + "..."
		}
		return r.Metavar()
	}
	label := strings.Join(r.Names, "|")
	switch {
	case r.Type == Bool:
		return label
	case r.Cardinality == Repeated:
		return label + "=..."
	case r.Type == Int:
		return label + "=int"
	default:
		return label + "=string"
	}
}

// WriteCommandList renders the top-level help: a usage line followed by
// every registered command with its short help and aliases.
func (r *Registry) WriteCommandList(w io.Writer) {
	fmt.Fprintf(w, "usage: %s <command> [arguments]\n", r.progName)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")

	specs := r.Commands()
	width := 0
	for _, s := range specs {
		if len(s.Name) > width {
			width = len(s.Name)
		}
	}
	for _, s := range specs {
		fmt.Fprintf(w, "  %s  %s", nameStyle.Render(fmt.Sprintf("%-*s", width, s.Name)), s.ShortHelp)
		if len(s.Aliases) > 0 {
			fmt.Fprintf(w, " %s", faintStyle.Render("("+strings.Join(s.Aliases, ", ")+")"))
		}
		fmt.Fprintln(w)
	}
}
