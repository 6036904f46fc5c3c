package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// Confirm asks a yes/no question. Off-TTY it answers true without prompting,
// so scripted runs behave like --yes.
func Confirm(title string) (bool, error) {
	if !Interactive() {
		return true, nil
	}

	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	)
	if err := form.Run(); err != nil {
		return false, NormalizeAbort(err)
	}
	return confirmed, nil
}

// Spin runs action behind a spinner titled title. Off-TTY the action runs
// directly; its log output stays readable.
func Spin(title string, action func()) error {
	if !Interactive() {
		action()
		return nil
	}
	return spinner.New().Title(title).Action(action).Run()
}
