// Package git runs the git subcommands repotidy needs against one
// repository and models their outcomes explicitly.
//
// Core types:
//   - Context: repository handle exposing status, staged diff, log, tag,
//     fetch, rev-parse, merge-base, rev-list, add, commit and push
//   - CommandRunner: executes external commands (ExecRunner, DryRunRunner,
//     MockRunner, SequentialMockRunner)
//   - Result: Ok / CommandFailed / NotFound outcome of a command
//   - CommitType: the closed set of conventional-commit labels
//   - CommitMessage: "<type>: <description> (<timestamp>)" titles
//
// Queries that feed evidence (diff, status, log) return a Result; callers
// decide whether a failure reads as empty evidence via Result.Evidence.
//
// Example usage:
//
//	runner := git.NewDryRunRunner(git.NewExecRunner(), os.Stdout)
//	repo, err := git.NewContext("/path/to/repo", git.WithRunner(runner))
//	diff := repo.DiffStaged().Evidence()
package git
