package config

// Configuration keys.
const (
	KeyRoots           = "roots"
	KeyRemote          = "remote"
	KeyStagingBranch   = "staging_branch"
	KeyMasterBranch    = "master_branch"
	KeyDryRun          = "dry_run"
	KeyCommitStrategy  = "commit_strategy"
	KeyStageAll        = "stage_all"
	KeyDivergence      = "divergence"
	KeyCheckExistingPR = "check_existing_pr"
	KeyPollAttempts    = "poll_attempts"
	KeyPollInterval    = "poll_interval"
	KeyChangelogFile   = "changelog_file"
	KeyNoColor         = "no_color"
)

// EnvPrefix is prepended to upper-cased keys for environment lookup,
// e.g. REPOTIDY_STAGING_BRANCH.
const EnvPrefix = "REPOTIDY_"

// AppDir is the directory under ~/.config holding the global config file.
const AppDir = "repotidy"

// Keys lists every key in display order.
var Keys = []string{
	KeyRoots,
	KeyRemote,
	KeyStagingBranch,
	KeyMasterBranch,
	KeyDryRun,
	KeyCommitStrategy,
	KeyStageAll,
	KeyDivergence,
	KeyCheckExistingPR,
	KeyPollAttempts,
	KeyPollInterval,
	KeyChangelogFile,
	KeyNoColor,
}

// Defaults returns the built-in value of every key.
func Defaults() map[string]string {
	return map[string]string{
		KeyRoots:           "~/code/pers,~/code/bricolage",
		KeyRemote:          "origin",
		KeyStagingBranch:   "staging",
		KeyMasterBranch:    "master",
		KeyDryRun:          "false",
		KeyCommitStrategy:  "diff",
		KeyStageAll:        "false",
		KeyDivergence:      "different",
		KeyCheckExistingPR: "true",
		KeyPollAttempts:    "5",
		KeyPollInterval:    "10s",
		KeyChangelogFile:   "CHANGELOG.md",
		KeyNoColor:         "false",
	}
}

// ValidKey reports whether key is a known configuration key.
func ValidKey(key string) bool {
	return contains(Keys, key)
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
