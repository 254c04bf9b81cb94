// Package workflow runs the hygiene pipelines over every repository found
// under the configured roots.
//
// Core types:
//   - Deps: settings and collaborators shared by every pipeline
//   - Runner: sequential per-repository driver; a failing repository never
//     stops the loop
//   - CommitPipeline: classify pending changes, commit, push to staging
//   - ChangelogPipeline: render commits since the last tag into the changelog
//   - MergePipeline: promote staging into master through an auto-merged PR
//   - MergeState: steps of the promotion flow
//
// Every pipeline confirms before each mutating step and reports one event
// per outcome to Deps.Notifier.
//
// Example usage:
//
//	runner := workflow.NewRunner(workflow.Deps{
//	    Settings: settings,
//	    Runner:   git.NewDryRunRunner(git.NewExecRunner(), os.Stdout),
//	    Confirm:  prompt.NewStdinConfirmer(os.Stdin, os.Stdout),
//	    Notifier: notify.NewMultiNotifier(notify.NewLogNotifier(logger), summary),
//	    Printer:  ui.New(os.Stdout, settings.NoColor),
//	    Logger:   logger,
//	})
//	repos := runner.Discover()
//	err := runner.RunAll(ctx, repos)
package workflow
