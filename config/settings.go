package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/randalmurphal/repotidy/classify"
	"github.com/randalmurphal/repotidy/git"
)

// Settings is the typed, validated configuration of one run.
type Settings struct {
	Roots           []string
	Remote          string
	StagingBranch   string
	MasterBranch    string
	DryRun          bool
	CommitStrategy  classify.Strategy
	StageAll        bool
	Divergence      git.DivergenceMode
	CheckExistingPR bool
	PollAttempts    int
	PollInterval    time.Duration
	ChangelogFile   string
	NoColor         bool
}

// Load resolves every layer and converts the result into Settings.
func Load(r *Resolver, flags map[string]string) (Settings, error) {
	return FromResolved(r.ResolveWithFlags(flags))
}

// FromResolved converts resolved values into Settings. Every invalid key is
// reported, not only the first.
func FromResolved(c *Resolved) (Settings, error) {
	var errs *multierror.Error
	fail := func(key string, err error) {
		errs = multierror.Append(errs, fmt.Errorf("%s (from %s): %w", key, c.Source(key), err))
	}

	s := Settings{
		Roots:         SplitList(c.Get(KeyRoots)),
		Remote:        c.Get(KeyRemote),
		StagingBranch: c.Get(KeyStagingBranch),
		MasterBranch:  c.Get(KeyMasterBranch),
		ChangelogFile: c.Get(KeyChangelogFile),
	}

	boolKeys := map[string]*bool{
		KeyDryRun:          &s.DryRun,
		KeyStageAll:        &s.StageAll,
		KeyCheckExistingPR: &s.CheckExistingPR,
		KeyNoColor:         &s.NoColor,
	}
	for _, key := range Keys {
		dst, ok := boolKeys[key]
		if !ok {
			continue
		}
		v, err := strconv.ParseBool(c.Get(key))
		if err != nil {
			fail(key, fmt.Errorf("invalid boolean %q", c.Get(key)))
			continue
		}
		*dst = v
	}

	var err error
	if s.CommitStrategy, err = classify.ParseStrategy(c.Get(KeyCommitStrategy)); err != nil {
		fail(KeyCommitStrategy, err)
	}
	if s.Divergence, err = git.ParseDivergenceMode(c.Get(KeyDivergence)); err != nil {
		fail(KeyDivergence, err)
	}

	if s.PollAttempts, err = strconv.Atoi(c.Get(KeyPollAttempts)); err != nil || s.PollAttempts < 1 {
		fail(KeyPollAttempts, fmt.Errorf("want a positive integer, got %q", c.Get(KeyPollAttempts)))
	}
	if s.PollInterval, err = time.ParseDuration(c.Get(KeyPollInterval)); err != nil || s.PollInterval < 0 {
		fail(KeyPollInterval, fmt.Errorf("want a duration such as 10s, got %q", c.Get(KeyPollInterval)))
	}

	for _, key := range []string{KeyRemote, KeyStagingBranch, KeyMasterBranch, KeyChangelogFile} {
		if strings.TrimSpace(c.Get(key)) == "" {
			fail(key, fmt.Errorf("must not be empty"))
		}
	}
	if s.StagingBranch != "" && s.StagingBranch == s.MasterBranch {
		fail(KeyStagingBranch, fmt.Errorf("must differ from %s", KeyMasterBranch))
	}

	return s, errs.ErrorOrNil()
}

// SplitList splits a comma-separated value, dropping blanks.
func SplitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
