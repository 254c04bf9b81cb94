package git

import (
	"fmt"
	"strings"
	"time"
)

// CommitType represents the type of change in a commit.
type CommitType string

const (
	CommitTypeFeat     CommitType = "feat"
	CommitTypeFix      CommitType = "fix"
	CommitTypeDocs     CommitType = "docs"
	CommitTypeRefactor CommitType = "refactor"
	CommitTypeChore    CommitType = "chore"
	CommitTypeUI       CommitType = "ui"
	CommitTypeTest     CommitType = "test"
	CommitTypeStyle    CommitType = "style"
	CommitTypePerf     CommitType = "perf"
	CommitTypeCI       CommitType = "ci"
	CommitTypeBuild    CommitType = "build"
)

var allCommitTypes = []CommitType{
	CommitTypeFeat,
	CommitTypeFix,
	CommitTypeDocs,
	CommitTypeRefactor,
	CommitTypeChore,
	CommitTypeUI,
	CommitTypeTest,
	CommitTypeStyle,
	CommitTypePerf,
	CommitTypeCI,
	CommitTypeBuild,
}

// AllCommitTypes returns the closed set of commit types in declaration order.
func AllCommitTypes() []CommitType {
	out := make([]CommitType, len(allCommitTypes))
	copy(out, allCommitTypes)
	return out
}

// Valid reports whether t belongs to the closed set.
func (t CommitType) Valid() bool {
	for _, known := range allCommitTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseCommitType parses a commit type label, case-insensitively.
func ParseCommitType(s string) (CommitType, error) {
	t := CommitType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown commit type %q", s)
	}
	return t, nil
}

// TimestampLayout is the layout of the timestamp suffix of generated titles.
const TimestampLayout = "2006-01-02 15:04"

// CommitMessage is a generated conventional-commit title:
// "<type>: <description> (<YYYY-MM-DD HH:MM>)".
type CommitMessage struct {
	typ         CommitType
	description string
	at          time.Time
}

// NewCommitMessage builds a commit message stamped with at.
func NewCommitMessage(typ CommitType, description string, at time.Time) CommitMessage {
	return CommitMessage{typ: typ, description: description, at: at}
}

// Type returns the commit type.
func (c CommitMessage) Type() CommitType { return c.typ }

// Description returns the human description.
func (c CommitMessage) Description() string { return c.description }

// Time returns the timestamp.
func (c CommitMessage) Time() time.Time { return c.at }

// String formats the commit message.
func (c CommitMessage) String() string {
	return fmt.Sprintf("%s: %s (%s)", c.typ, c.description, c.at.Format(TimestampLayout))
}

// Validate checks if the commit message is valid.
func (c CommitMessage) Validate() error {
	if !c.typ.Valid() {
		return fmt.Errorf("invalid commit type %q", c.typ)
	}
	if c.description == "" {
		return fmt.Errorf("commit description is required")
	}
	if len(c.String()) > 100 {
		return fmt.Errorf("commit subject too long (max 100 characters)")
	}
	return nil
}
