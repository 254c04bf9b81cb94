package classify

import (
	"path"
	"strings"

	"github.com/randalmurphal/repotidy/git"
)

var extensionTypes = map[string]git.CommitType{
	".ts":   git.CommitTypeFeat,
	".tsx":  git.CommitTypeFeat,
	".jsx":  git.CommitTypeFeat,
	".js":   git.CommitTypeFeat,
	".rb":   git.CommitTypeFeat,
	".html": git.CommitTypeUI,
	".scss": git.CommitTypeUI,
	".css":  git.CommitTypeUI,
	".py":   git.CommitTypeChore,
	".json": git.CommitTypeChore,
	".yml":  git.CommitTypeChore,
	".yaml": git.CommitTypeChore,
	".md":   git.CommitTypeDocs,
}

var docFiles = map[string]bool{
	"readme.md":    true,
	"changelog.md": true,
}

// filePriority breaks vote ties. Types absent from the list follow in
// enumeration order.
var filePriority = []git.CommitType{
	git.CommitTypeTest,
	git.CommitTypeDocs,
	git.CommitTypeFeat,
	git.CommitTypeUI,
	git.CommitTypeChore,
}

// FileVote returns the type a single path votes for.
func FileVote(p string) git.CommitType {
	lower := strings.ToLower(strings.ReplaceAll(p, `\`, "/"))
	if strings.Contains(lower, "test") {
		return git.CommitTypeTest
	}
	if docFiles[path.Base(lower)] {
		return git.CommitTypeDocs
	}
	if t, ok := extensionTypes[path.Ext(lower)]; ok {
		return t
	}
	return git.CommitTypeChore
}

// Votes tallies FileVote over paths.
func Votes(paths []string) map[git.CommitType]int {
	votes := make(map[git.CommitType]int)
	for _, p := range paths {
		votes[FileVote(p)]++
	}
	return votes
}

// FromFiles infers a commit type by plurality vote over modified paths.
// An empty list yields chore. Ties resolve through the fixed priority
// test > docs > feat > ui > chore, then enumeration order.
func FromFiles(paths []string) git.CommitType {
	if len(paths) == 0 {
		return git.CommitTypeChore
	}
	votes := Votes(paths)

	best := git.CommitTypeChore
	bestCount := 0
	for _, t := range tieOrder(filePriority) {
		if n := votes[t]; n > bestCount {
			best, bestCount = t, n
		}
	}
	return best
}
