package exec

import (
	"context"
	"fmt"
	"strings"
)

// MockCommander records every command it is asked to run and answers from a
// table of preset responses, keyed by "command arg1 arg2 ...". Commands
// without a preset succeed with no output.
type MockCommander struct {
	Responses map[string]CommandResponse
	Calls     []CommandCall
}

// CommandCall records one command invocation.
type CommandCall struct {
	Dir     string
	Command string
	Args    []string
}

// CommandResponse is the canned result for one command key.
type CommandResponse struct {
	Output []byte
	Err    error
}

func NewMockCommander() *MockCommander {
	return &MockCommander{
		Responses: make(map[string]CommandResponse),
	}
}

func (m *MockCommander) Run(ctx context.Context, dir string, command string, args ...string) ([]byte, error) {
	m.Calls = append(m.Calls, CommandCall{Dir: dir, Command: command, Args: args})

	if resp, ok := m.Responses[commandKey(command, args)]; ok {
		return resp.Output, resp.Err
	}
	return nil, nil
}

// SetResponse registers a canned result for the given command line.
func (m *MockCommander) SetResponse(command string, args []string, output []byte, err error) {
	m.Responses[commandKey(command, args)] = CommandResponse{Output: output, Err: err}
}

// LastCall returns the most recent invocation, or nil when nothing ran.
func (m *MockCommander) LastCall() *CommandCall {
	if len(m.Calls) == 0 {
		return nil
	}
	return &m.Calls[len(m.Calls)-1]
}

// WasCalled reports whether the exact command line was ever run.
func (m *MockCommander) WasCalled(command string, args ...string) bool {
	key := commandKey(command, args)
	for _, call := range m.Calls {
		if commandKey(call.Command, call.Args) == key {
			return true
		}
	}
	return false
}

// CallCount returns how many commands have been run.
func (m *MockCommander) CallCount() int { return len(m.Calls) }

func commandKey(command string, args []string) string {
	if len(args) == 0 {
		return command
	}
	return fmt.Sprintf("%s %s", command, strings.Join(args, " "))
}
