package git

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
)

// CommandRunner executes external commands.
// Output is returned trimmed. Implementations return a *CommandError when the
// command ran and exited non-zero.
type CommandRunner interface {
	Run(workDir, name string, args ...string) (string, error)
}

// CommandError describes a failed external command.
type CommandError struct {
	Command  string   // Executable name (git, gh)
	Args     []string // Arguments passed to the executable
	Output   string   // stderr if any, otherwise stdout
	ExitCode int      // Process exit code, -1 if the process never ran
	Err      error    // Underlying error
}

func (e *CommandError) Error() string {
	if e.Output != "" {
		return e.Output
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "command failed"
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// NewExecRunner creates a runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run implements CommandRunner.
func (r *ExecRunner) Run(workDir, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := strings.TrimSpace(stdout.String())
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = out
		}
		return out, &CommandError{
			Command:  name,
			Args:     args,
			Output:   msg,
			ExitCode: exitCode,
			Err:      err,
		}
	}
	return out, nil
}

// Status classifies the outcome of an external command.
type Status int

const (
	// StatusOK means the command exited zero.
	StatusOK Status = iota
	// StatusCommandFailed means the command ran and failed.
	StatusCommandFailed
	// StatusNotFound means the executable could not be located.
	StatusNotFound
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusCommandFailed:
		return "command failed"
	case StatusNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Result is the explicit outcome of one external command.
type Result struct {
	Status   Status
	Output   string // Trimmed stdout
	ExitCode int    // Exit code when Status is StatusCommandFailed
	Stderr   string // Error output when Status is not StatusOK
	Err      error  // Underlying error, nil when Status is StatusOK
}

// Exec runs a command and folds its outcome into a Result.
func Exec(r CommandRunner, workDir, name string, args ...string) Result {
	out, err := r.Run(workDir, name, args...)
	return resultFrom(out, err)
}

func resultFrom(out string, err error) Result {
	if err == nil {
		return Result{Status: StatusOK, Output: out}
	}
	if errors.Is(err, exec.ErrNotFound) {
		return Result{Status: StatusNotFound, Stderr: err.Error(), ExitCode: -1, Err: err}
	}
	res := Result{Status: StatusCommandFailed, Output: out, ExitCode: -1, Stderr: err.Error(), Err: err}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		res.ExitCode = cmdErr.ExitCode
	}
	return res
}

// OK reports whether the command succeeded.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Evidence returns the output of a successful command and the empty string
// otherwise. Call sites use it where a failed query means "nothing to do".
func (r Result) Evidence() string {
	if r.Status != StatusOK {
		return ""
	}
	return r.Output
}

// Lines splits Evidence into non-empty trimmed lines.
func (r Result) Lines() []string {
	return splitLines(r.Evidence())
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
