package workflow

// MergeState is a step of the promotion flow for one repository.
//
//	Diverged -> NoCommits
//	Diverged -> Declined
//	Diverged -> [PRExists | PRCreated] -> MergeRequested -> MergeConfirmed | MergeTimedOut
//
// InSync ends the flow before Diverged. Failed may follow any step.
type MergeState int

const (
	MergeInSync MergeState = iota
	MergeDiverged
	MergeNoCommits
	MergeDeclined
	MergePRExists
	MergePRCreated
	MergeRequested
	MergeConfirmed
	MergeTimedOut
	MergeFailed
)

var mergeStateNames = map[MergeState]string{
	MergeInSync:    "in_sync",
	MergeDiverged:  "diverged",
	MergeNoCommits: "no_commits",
	MergeDeclined:  "declined",
	MergePRExists:  "pr_exists",
	MergePRCreated: "pr_created",
	MergeRequested: "merge_requested",
	MergeConfirmed: "merge_confirmed",
	MergeTimedOut:  "merge_timed_out",
	MergeFailed:    "failed",
}

func (s MergeState) String() string {
	if name, ok := mergeStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether no further transition follows s.
func (s MergeState) Terminal() bool {
	switch s {
	case MergeInSync, MergeNoCommits, MergeDeclined, MergeConfirmed, MergeTimedOut, MergeFailed:
		return true
	}
	return false
}
