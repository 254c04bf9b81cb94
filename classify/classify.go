package classify

import (
	"fmt"

	"github.com/randalmurphal/repotidy/git"
)

// Strategy selects which evidence the classifier looks at.
type Strategy string

const (
	// StrategyDiff scores staged diff content.
	StrategyDiff Strategy = "diff"
	// StrategyFiles votes over modified file paths.
	StrategyFiles Strategy = "files"
)

// ParseStrategy parses a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyDiff, StrategyFiles:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("unknown classification strategy %q (want %q or %q)", s, StrategyDiff, StrategyFiles)
	}
}

// Evidence is the pending-change input for one classification.
type Evidence struct {
	Diff  string   // Staged diff text, used by StrategyDiff
	Paths []string // Modified paths, used by StrategyFiles
}

// Empty reports whether the evidence relevant to the strategy is absent.
func (e Evidence) Empty(s Strategy) bool {
	if s == StrategyFiles {
		return len(e.Paths) == 0
	}
	return e.Diff == ""
}

// Classify dispatches to FromFiles or FromDiff.
func Classify(s Strategy, e Evidence) git.CommitType {
	if s == StrategyFiles {
		return FromFiles(e.Paths)
	}
	return FromDiff(e.Diff)
}
