package git

import "fmt"

// DivergenceMode selects how two branches are judged out of sync.
type DivergenceMode string

const (
	// DivergenceDifferent flags any difference between the two tips,
	// including head being behind base.
	DivergenceDifferent DivergenceMode = "different"

	// DivergenceAhead flags only commits reachable from head and not from base.
	DivergenceAhead DivergenceMode = "ahead"
)

// ParseDivergenceMode parses a divergence mode name.
func ParseDivergenceMode(s string) (DivergenceMode, error) {
	switch DivergenceMode(s) {
	case DivergenceDifferent, DivergenceAhead:
		return DivergenceMode(s), nil
	default:
		return "", fmt.Errorf("unknown divergence mode %q (want %q or %q)", s, DivergenceDifferent, DivergenceAhead)
	}
}

// BranchComparison holds the resolved tips of a base and a head ref.
type BranchComparison struct {
	Base    string // Base ref, e.g. origin/master
	Head    string // Head ref, e.g. origin/staging
	BaseSHA string
	HeadSHA string
	Ahead   int // Commits in base..head, only resolved in DivergenceAhead mode
}

// Diverged reports whether a promotion from head to base is pending.
func (c *BranchComparison) Diverged(mode DivergenceMode) bool {
	if mode == DivergenceAhead {
		return c.Ahead > 0
	}
	return c.BaseSHA != c.HeadSHA
}

// CompareBranches resolves base and head and, in DivergenceAhead mode,
// counts the commits head has over base.
func (g *Context) CompareBranches(base, head string, mode DivergenceMode) (*BranchComparison, error) {
	baseSHA, err := g.RevParse(base)
	if err != nil {
		return nil, err
	}
	headSHA, err := g.RevParse(head)
	if err != nil {
		return nil, err
	}

	cmp := &BranchComparison{
		Base:    base,
		Head:    head,
		BaseSHA: baseSHA,
		HeadSHA: headSHA,
	}
	if mode == DivergenceAhead {
		ahead, err := g.RevListCount(base + ".." + head)
		if err != nil {
			return nil, err
		}
		cmp.Ahead = ahead
	}
	return cmp, nil
}

// HeadBehind reports whether head is an ancestor of base, meaning a
// difference between the two comes only from commits on base.
func (g *Context) HeadBehind(cmp *BranchComparison) bool {
	if cmp.BaseSHA == cmp.HeadSHA {
		return false
	}
	mb, err := g.MergeBase(cmp.Base, cmp.Head)
	if err != nil {
		return false
	}
	return mb == cmp.HeadSHA
}
