// Package ui holds the interactive surface: confirmation prompts, spinners,
// and abort handling. geet's rule is "when in doubt, ask" — but only when a
// human is attached; every prompt degrades gracefully off-TTY.
package ui

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
)

// ErrUserAborted normalizes the various ways a user can bail out of a
// prompt (Esc, Ctrl+C, Ctrl+D) into one sentinel.
var ErrUserAborted = errors.New("user aborted")

// NormalizeAbort converts known abort-like errors to ErrUserAborted.
func NormalizeAbort(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, huh.ErrUserAborted) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled) {
		return ErrUserAborted
	}
	return err
}

// IsAbort reports whether err represents a user abort.
func IsAbort(err error) bool {
	return errors.Is(err, ErrUserAborted)
}

// Interactive reports whether a human is on the other end of stdout.
func Interactive() bool {
	return term.IsTerminal(os.Stdout.Fd())
}
