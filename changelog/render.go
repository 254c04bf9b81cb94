package changelog

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DateLayout formats the date in a block heading.
const DateLayout = "2006-01-02"

// UnreleasedLabel is used when a repository has no tags.
const UnreleasedLabel = "Unreleased"

// VersionLabel returns the tag, or UnreleasedLabel when tag is empty.
func VersionLabel(tag string) string {
	if tag == "" {
		return UnreleasedLabel
	}
	return tag
}

// Render formats an entry as a markdown block:
//
//	## [<label>] - <YYYY-MM-DD>
//
//	### ✨ Feat
//	- add login
//
//	### 🔖 Others
//	- updated stuff
//
// Sections appear in Sections order. Categorized bullets drop the type prefix.
func Render(entry Entry, label string, date time.Time) string {
	caser := cases.Title(language.English)
	lines := []string{fmt.Sprintf("## [%s] - %s", label, date.Format(DateLayout)), ""}

	for _, s := range Sections {
		msgs := entry.Buckets[s.Type]
		if len(msgs) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("### %s %s", s.Emoji, caser.String(string(s.Type))))
		for _, msg := range msgs {
			lines = append(lines, "- "+stripPrefix(msg))
		}
		lines = append(lines, "")
	}

	if len(entry.Others) > 0 {
		lines = append(lines, fmt.Sprintf("### %s Others", OthersEmoji))
		for _, msg := range entry.Others {
			lines = append(lines, "- "+msg)
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func stripPrefix(msg string) string {
	if _, rest, ok := strings.Cut(msg, ":"); ok {
		return strings.TrimSpace(rest)
	}
	return msg
}
