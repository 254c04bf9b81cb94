package git

import (
	"fmt"
	"strings"
)

// MockResponse is a canned command outcome.
type MockResponse struct {
	Stdout string
	Err    error
}

// MockCall records one invocation of a mock runner.
type MockCall struct {
	WorkDir string
	Command string
	Args    []string
}

// MockRunner returns canned responses keyed by command line.
//
// Lookup order: exact "command args..." key, then the bare command name,
// then the "*" wildcard, then DefaultResponse.
type MockRunner struct {
	Responses       map[string]MockResponse
	DefaultResponse MockResponse
	Calls           []MockCall
}

// NewMockRunner creates an empty mock runner.
func NewMockRunner() *MockRunner {
	return &MockRunner{
		Responses: make(map[string]MockResponse),
	}
}

// MockExpectation binds a response to a command key.
type MockExpectation struct {
	runner *MockRunner
	key    string
}

// OnCommand starts an expectation for the exact command line.
func (m *MockRunner) OnCommand(name string, args ...string) *MockExpectation {
	return &MockExpectation{runner: m, key: commandKey(name, args)}
}

// OnAnyCommand starts an expectation matching every command.
func (m *MockRunner) OnAnyCommand() *MockExpectation {
	return &MockExpectation{runner: m, key: "*"}
}

// Return sets the response for the expectation.
func (e *MockExpectation) Return(stdout string, err error) {
	e.runner.Responses[e.key] = MockResponse{Stdout: stdout, Err: err}
}

// Run implements CommandRunner.
func (m *MockRunner) Run(workDir, name string, args ...string) (string, error) {
	m.Calls = append(m.Calls, MockCall{WorkDir: workDir, Command: name, Args: args})

	for _, key := range []string{commandKey(name, args), name, "*"} {
		if resp, ok := m.Responses[key]; ok {
			return resp.Stdout, resp.Err
		}
	}
	return m.DefaultResponse.Stdout, m.DefaultResponse.Err
}

// WasCalled reports whether the command ran. With no args any invocation
// of the command matches.
func (m *MockRunner) WasCalled(name string, args ...string) bool {
	for _, call := range m.Calls {
		if call.Command != name {
			continue
		}
		if len(args) == 0 || argsMatch(call.Args, args) {
			return true
		}
	}
	return false
}

// CallCount returns how many times the command ran.
func (m *MockRunner) CallCount(name string) int {
	count := 0
	for _, call := range m.Calls {
		if call.Command == name {
			count++
		}
	}
	return count
}

// SequentialMockRunner returns responses in the order they were added,
// regardless of the command.
type SequentialMockRunner struct {
	outputs []MockResponse
	Calls   []MockCall
}

// NewSequentialMockRunner creates an empty sequential runner.
func NewSequentialMockRunner() *SequentialMockRunner {
	return &SequentialMockRunner{}
}

// AddOutput queues a response.
func (s *SequentialMockRunner) AddOutput(stdout string, err error) {
	s.outputs = append(s.outputs, MockResponse{Stdout: stdout, Err: err})
}

// AddFailure queues a CommandError with the given exit code and message.
func (s *SequentialMockRunner) AddFailure(exitCode int, message string) {
	s.outputs = append(s.outputs, MockResponse{Err: &CommandError{
		Output:   message,
		ExitCode: exitCode,
		Err:      fmt.Errorf("exit status %d", exitCode),
	}})
}

// Run implements CommandRunner.
func (s *SequentialMockRunner) Run(workDir, name string, args ...string) (string, error) {
	s.Calls = append(s.Calls, MockCall{WorkDir: workDir, Command: name, Args: args})
	if len(s.outputs) == 0 {
		return "", fmt.Errorf("unexpected command: %s", commandKey(name, args))
	}
	resp := s.outputs[0]
	s.outputs = s.outputs[1:]
	return resp.Stdout, resp.Err
}

func commandKey(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

func argsMatch(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i := range actual {
		if actual[i] != expected[i] {
			return false
		}
	}
	return true
}
