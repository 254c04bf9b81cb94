// Package prompt asks the operator to confirm actions.
//
// Core types:
//   - Confirmer: Interface for yes/no questions
//   - StdinConfirmer: Reads answers from a terminal or any reader
//   - AutoConfirmer: Answers every question the same way (--yes)
//   - ScriptedConfirmer: Replays a fixed list of answers (for testing)
//
// Only an answer of "y" (any case, surrounding whitespace ignored) confirms.
//
// Example usage:
//
//	c := prompt.NewStdinConfirmer(os.Stdin, os.Stdout)
//	if c.Confirm("Commit these changes?") {
//	    ...
//	}
package prompt
