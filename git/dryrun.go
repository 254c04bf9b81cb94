package git

import (
	"fmt"
	"io"
	"strings"
)

// CommandKind groups commands by their effect on the outside world.
type CommandKind int

const (
	// KindQuery only reads state and always executes.
	KindQuery CommandKind = iota
	// KindDiffInspection reads the staged diff; simulated empty in dry-run.
	KindDiffInspection
	// KindMutating changes a repository, a remote or a pull request.
	KindMutating
)

var mutatingGit = map[string]bool{
	"add":      true,
	"commit":   true,
	"push":     true,
	"fetch":    true,
	"pull":     true,
	"merge":    true,
	"checkout": true,
	"reset":    true,
	"rebase":   true,
	"stash":    true,
}

var queryGH = map[string]bool{
	"list":   true,
	"view":   true,
	"status": true,
	"diff":   true,
	"checks": true,
}

// ClassifyCommand reports the kind of a git or gh invocation.
// Unknown executables are treated as mutating.
func ClassifyCommand(name string, args []string) CommandKind {
	switch name {
	case "git":
		if len(args) == 0 {
			return KindQuery
		}
		sub := args[0]
		if sub == "diff" && contains(args[1:], "--cached") {
			return KindDiffInspection
		}
		if sub == "tag" && len(args) > 1 && !strings.HasPrefix(args[1], "-") {
			return KindMutating
		}
		if mutatingGit[sub] {
			return KindMutating
		}
		return KindQuery
	case "gh":
		if len(args) >= 2 && args[0] == "pr" && queryGH[args[1]] {
			return KindQuery
		}
		if len(args) >= 2 && args[0] == "auth" && args[1] == "status" {
			return KindQuery
		}
		return KindMutating
	default:
		return KindMutating
	}
}

// DryRunRunner wraps a runner and suppresses everything that would change
// state. Mutating commands are announced on Out and report success with empty
// output; staged diff inspection is simulated as empty; queries execute.
type DryRunRunner struct {
	next CommandRunner
	out  io.Writer

	// Suppressed lists every command line that was not executed.
	Suppressed []string
}

// NewDryRunRunner creates a dry-run wrapper around next.
func NewDryRunRunner(next CommandRunner, out io.Writer) *DryRunRunner {
	if out == nil {
		out = io.Discard
	}
	return &DryRunRunner{next: next, out: out}
}

// Run implements CommandRunner.
func (r *DryRunRunner) Run(workDir, name string, args ...string) (string, error) {
	if ClassifyCommand(name, args) == KindQuery {
		return r.next.Run(workDir, name, args...)
	}
	line := commandKey(name, args)
	r.Suppressed = append(r.Suppressed, line)
	fmt.Fprintf(r.out, "[DRY-RUN] Would execute: %s in %s\n", line, workDir)
	return "", nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
