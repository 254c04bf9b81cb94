package classify

import (
	"strings"
	"unicode/utf8"

	"github.com/randalmurphal/repotidy/git"
)

// Polarity tells whether a diff line was added or removed.
type Polarity int

const (
	Added Polarity = iota
	Removed
)

// Signal is one line of evidence taken from a unified diff.
type Signal struct {
	Text     string   // Lower-cased line, including its +/- marker
	Polarity Polarity // Added or Removed
	Comment  bool     // Whether the line body is a comment
}

// Score is the accumulated weight per commit type.
type Score map[git.CommitType]float64

// commentMarkers start a comment line once leading whitespace is removed.
var commentMarkers = []string{"#", "//", "/*", "*"}

var (
	fixWords     = []string{"fix", "bug", "error", "typo"}
	featWords    = []string{"function", "def ", "class "}
	docsWords    = []string{".md", "documentation"}
	uiWords      = []string{".css", ".scss", ".html"}
	choreWords   = []string{".json", ".yml", ".yaml", "config", "build"}
	removeMinLen = 30 // characters, not bytes
)

// diffPriority breaks score ties. Types absent from the list follow in
// enumeration order.
var diffPriority = []git.CommitType{
	git.CommitTypeFix,
	git.CommitTypeFeat,
	git.CommitTypeRefactor,
	git.CommitTypeDocs,
	git.CommitTypeUI,
	git.CommitTypeChore,
}

// ParseDiff extracts evidence lines from unified diff text. Only lines
// starting with '+' or '-' are kept; context lines are dropped.
func ParseDiff(diffText string) []Signal {
	var signals []Signal
	for _, line := range strings.Split(strings.ToLower(diffText), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		var pol Polarity
		switch line[0] {
		case '+':
			pol = Added
		case '-':
			pol = Removed
		default:
			continue
		}
		signals = append(signals, Signal{
			Text:     line,
			Polarity: pol,
			Comment:  isComment(line[1:]),
		})
	}
	return signals
}

func isComment(body string) bool {
	body = strings.TrimLeft(body, " \t")
	for _, m := range commentMarkers {
		if strings.HasPrefix(body, m) {
			return true
		}
	}
	return false
}

// ScoreSignals accumulates weights for a sequence of signals.
//
// Comment lines add half weight to fix or refactor only. Code lines run six
// independent checks, so one line may feed several types.
func ScoreSignals(signals []Signal) Score {
	score := make(Score)
	for _, s := range signals {
		line := s.Text
		if s.Comment {
			if containsAny(line, fixWords) {
				score[git.CommitTypeFix] += 0.5
			}
			if strings.Contains(line, "refactor") {
				score[git.CommitTypeRefactor] += 0.5
			}
			continue
		}

		if containsAny(line, fixWords) {
			score[git.CommitTypeFix]++
		}
		if containsAny(line, featWords) {
			score[git.CommitTypeFeat] += 2
		}
		if strings.Contains(line, "refactor") || (strings.Contains(line, "remove") && utf8.RuneCountInString(line) > removeMinLen) {
			score[git.CommitTypeRefactor]++
		}
		if containsAny(line, docsWords) {
			score[git.CommitTypeDocs]++
		}
		if containsAny(line, uiWords) {
			score[git.CommitTypeUI]++
		}
		if containsAny(line, choreWords) {
			score[git.CommitTypeChore]++
		}
	}
	return score
}

// Explain returns the score table FromDiff decides on.
func Explain(diffText string) Score {
	return ScoreSignals(ParseDiff(diffText))
}

// FromDiff infers a commit type from staged diff text. Empty text or text
// without evidence yields chore.
func FromDiff(diffText string) git.CommitType {
	if diffText == "" {
		return git.CommitTypeChore
	}
	return Explain(diffText).Winner()
}

// Winner returns the highest scoring type, or chore when the score is empty.
// Ties resolve through the fixed priority fix > feat > refactor > docs > ui >
// chore, then enumeration order.
func (s Score) Winner() git.CommitType {
	if len(s) == 0 {
		return git.CommitTypeChore
	}
	best := git.CommitTypeChore
	bestScore := -1.0
	for _, t := range tieOrder(diffPriority) {
		if v, ok := s[t]; ok && v > bestScore {
			best, bestScore = t, v
		}
	}
	return best
}

// tieOrder appends the rest of the enumeration to a priority list.
func tieOrder(priority []git.CommitType) []git.CommitType {
	order := append([]git.CommitType(nil), priority...)
	seen := make(map[git.CommitType]bool, len(priority))
	for _, t := range priority {
		seen[t] = true
	}
	for _, t := range git.AllCommitTypes() {
		if !seen[t] {
			order = append(order, t)
		}
	}
	return order
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
