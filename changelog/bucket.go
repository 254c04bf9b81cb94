package changelog

import (
	"strings"

	"github.com/randalmurphal/repotidy/git"
)

// Section is one changelog category: a commit type and its heading emoji.
type Section struct {
	Type  git.CommitType
	Emoji string
}

// Sections lists the changelog categories in rendering order. A subject is
// matched against these prefixes in this order.
var Sections = []Section{
	{git.CommitTypeFeat, "✨"},
	{git.CommitTypeFix, "🐛"},
	{git.CommitTypeDocs, "📝"},
	{git.CommitTypeRefactor, "🧹"},
	{git.CommitTypeTest, "✅"},
	{git.CommitTypeChore, "🔧"},
	{git.CommitTypeStyle, "🎨"},
	{git.CommitTypePerf, "🚀"},
	{git.CommitTypeCI, "🔁"},
	{git.CommitTypeBuild, "🏗️"},
}

// OthersEmoji heads the section of uncategorized subjects.
const OthersEmoji = "🔖"

// Denylist holds substrings that exclude a subject from the changelog.
var Denylist = []string{
	"changelog",
	"readme",
	"merge",
	"auto commit",
	"autocommit",
	"bump",
	"version",
	"initial commit",
}

// Entry is a set of commit subjects grouped by type prefix.
type Entry struct {
	Buckets map[git.CommitType][]string
	Others  []string
}

// Empty reports whether the entry holds no subjects.
func (e Entry) Empty() bool {
	return len(e.Buckets) == 0 && len(e.Others) == 0
}

// Len returns the number of subjects in the entry.
func (e Entry) Len() int {
	n := len(e.Others)
	for _, msgs := range e.Buckets {
		n += len(msgs)
	}
	return n
}

// Filter drops empty subjects and subjects matching the denylist.
func Filter(subjects []string) []string {
	var kept []string
	for _, s := range subjects {
		if s == "" || excluded(s) {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

func excluded(subject string) bool {
	lower := strings.ToLower(subject)
	for _, word := range Denylist {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// Match returns the section type whose "<type>:" prefix starts subject,
// case-insensitively.
func Match(subject string) (git.CommitType, bool) {
	lower := strings.ToLower(subject)
	for _, s := range Sections {
		if strings.HasPrefix(lower, string(s.Type)+":") {
			return s.Type, true
		}
	}
	return "", false
}

// Bucket groups subjects by type prefix, preserving order within a bucket.
func Bucket(subjects []string) Entry {
	entry := Entry{Buckets: make(map[git.CommitType][]string)}
	for _, s := range subjects {
		if t, ok := Match(s); ok {
			entry.Buckets[t] = append(entry.Buckets[t], s)
			continue
		}
		entry.Others = append(entry.Others, s)
	}
	return entry
}
