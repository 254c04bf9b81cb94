// Package pr opens, merges and confirms pull requests through the GitHub CLI.
//
// Core types:
//   - Provider: interface for finding, creating, merging and inspecting PRs
//   - GHProvider: Provider backed by `gh pr list|create|merge|view`
//   - Poller: bounded merge confirmation (fixed attempts, fixed delay)
//   - Builder: fluent builder for promotion PR titles and bodies
//   - MockProvider: function-field mock for tests
//
// Example usage:
//
//	provider := pr.NewGHProvider(git.NewExecRunner(), repoPath)
//	pull, err := provider.CreatePR(ctx, pr.NewBuilder(title).
//	    WithBase("master").WithHead("staging").
//	    WithPromotionSummary(summary, time.Now()).Build())
//	_ = provider.MergePR(ctx, pull.Ref(), pr.MergeOptions{Method: pr.MergeMethodMerge, Auto: true})
//	_, err = pr.NewPoller(5, 10*time.Second).ConfirmMerge(ctx, provider, pull.Ref())
package pr
