package command

import (
	"errors"
	"fmt"
)

// Configuration errors. These indicate a broken command declaration and are
// surfaced at registration time; the process must not start with one pending.
var (
	ErrMalformedDocstring = errors.New("malformed docstring")
	ErrMalformedArgSpec   = errors.New("malformed argument spec")
	ErrDuplicateCommand   = errors.New("duplicate command name or alias")
	ErrRegistrySealed     = errors.New("registry is sealed")
)

// Usage errors. These are raised while validating an invocation and are
// recovered at the CLI boundary into a user-facing message; no handler runs.
var (
	ErrUnknownCommand    = errors.New("unknown command")
	ErrUnknownFlag       = errors.New("unknown flag")
	ErrMissingValue      = errors.New("flag requires a value")
	ErrMissingPositional = errors.New("missing required argument")
	ErrUnexpectedArg     = errors.New("unexpected argument")
	ErrBadValue          = errors.New("invalid value")
)

// UsageError wraps a dispatch-time validation failure together with the
// command it was raised for, so the boundary can render command-specific
// usage text. Spec is nil when the command itself could not be resolved.
type UsageError struct {
	Spec *Spec
	Err  error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

func usageErrf(spec *Spec, sentinel error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return &UsageError{Spec: spec, Err: fmt.Errorf("%w: %s", sentinel, msg)}
}
