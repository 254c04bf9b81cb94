package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/randalmurphal/repotidy/config"
	clierrors "github.com/randalmurphal/repotidy/errors"
	"github.com/randalmurphal/repotidy/git"
	"github.com/randalmurphal/repotidy/notify"
	"github.com/randalmurphal/repotidy/prompt"
	"github.com/randalmurphal/repotidy/ui"
	"github.com/randalmurphal/repotidy/walker"
	"github.com/randalmurphal/repotidy/workflow"
)

// app holds the streams and persistent flag values of one invocation.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	roots      []string
	dryRun     bool
	yes        bool
	verbose    bool
	noColor    bool
	configPath string
}

// execute runs the CLI and returns the process exit status. Only startup
// errors exit non-zero; per-repository failures end up in the summary.
func execute(args []string, in io.Reader, out, errOut io.Writer) int {
	a := &app{in: in, out: out, errOut: errOut}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go releaseOnDone(ctx, stop)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	return 0
}

// releaseOnDone calls stop once ctx is done. After the first signal the
// default handler is back, so a second Ctrl-C ends a blocked prompt or poll.
func releaseOnDone(ctx context.Context, stop context.CancelFunc) {
	<-ctx.Done()
	stop()
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "repotidy",
		Short: "Commit, changelog and promote every repository under your roots",
		Long: `repotidy walks the git repositories directly under each configured root and
runs three confirm-gated pipelines over them: auto-commit with a classified
title, changelog update since the last tag, and promotion of staging into
master through an auto-merged GitHub pull request.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPipelines(cmd, "")
		},
	}

	flags := root.PersistentFlags()
	flags.StringArrayVar(&a.roots, "root", nil, "root directory holding repositories (repeatable)")
	flags.BoolVar(&a.dryRun, "dry-run", false, "announce mutating commands instead of running them")
	flags.BoolVarP(&a.yes, "yes", "y", false, "answer yes to every question")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	flags.StringVar(&a.configPath, "config", config.DefaultGlobalPath(), "global config file")

	root.AddCommand(
		newRunCmd(a),
		newPipelineCmd(a, workflow.PipelineCommit, "Commit pending changes with a classified title"),
		newPipelineCmd(a, workflow.PipelineChangelog, "Prepend commits since the last tag to the changelog"),
		newPipelineCmd(a, workflow.PipelineMerge, "Promote staging into master through an auto-merged PR"),
		newConfigCmd(a),
	)
	return root
}

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run every pipeline, each behind a confirmation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPipelines(cmd, "")
		},
	}
}

func newPipelineCmd(a *app, pipeline, short string) *cobra.Command {
	return &cobra.Command{
		Use:   pipeline,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPipelines(cmd, pipeline)
		},
	}
}

// flagOverrides maps the persistent flags the operator set to config keys.
func (a *app) flagOverrides(fs *pflag.FlagSet) map[string]string {
	overrides := make(map[string]string)
	if fs.Changed("root") {
		overrides[config.KeyRoots] = strings.Join(a.roots, ",")
	}
	if fs.Changed("dry-run") {
		overrides[config.KeyDryRun] = strconv.FormatBool(a.dryRun)
	}
	if fs.Changed("no-color") {
		overrides[config.KeyNoColor] = strconv.FormatBool(a.noColor)
	}
	return overrides
}

// settings resolves every config layer plus the flags of cmd.
func (a *app) settings(cmd *cobra.Command) (config.Settings, error) {
	resolver := config.NewResolver(a.configPath).WithErrWriter(a.errOut)
	s, err := config.Load(resolver, a.flagOverrides(cmd.Flags()))
	if err != nil {
		return s, clierrors.WrapConfigError(err, a.configPath)
	}
	if len(s.Roots) == 0 {
		return s, clierrors.NewNoRootsError()
	}
	return s, nil
}

// session is everything one pipeline invocation needs.
type session struct {
	settings config.Settings
	printer  *ui.Printer
	summary  *notify.Summary
	dry      *git.DryRunRunner
	runner   *workflow.Runner
}

func (a *app) newSession(cmd *cobra.Command) (*session, error) {
	settings, err := a.settings(cmd)
	if err != nil {
		return nil, err
	}

	runID := workflow.NewRunID()
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level})).
		With("run_id", runID)

	s := &session{
		settings: settings,
		printer:  ui.New(a.out, settings.NoColor),
		summary:  notify.NewSummary(),
	}

	var runner git.CommandRunner = git.NewExecRunner()
	if settings.DryRun {
		s.dry = git.NewDryRunRunner(runner, a.out)
		runner = s.dry
	}

	var confirm prompt.Confirmer = prompt.NewStdinConfirmer(a.in, a.out)
	if a.yes {
		confirm = &prompt.AutoConfirmer{Answer: true}
	}

	s.runner = workflow.NewRunner(workflow.Deps{
		Settings: settings,
		Runner:   runner,
		Confirm:  confirm,
		Notifier: notify.NewMultiNotifier(notify.NewLogNotifier(logger), s.summary),
		Printer:  s.printer,
		Logger:   logger,
		RunID:    runID,
	})

	logger.Debug("session ready",
		"roots", settings.Roots, "dry_run", settings.DryRun, "strategy", settings.CommitStrategy)
	return s, nil
}

// runPipelines runs one pipeline, or all of them when pipeline is empty,
// and prints the summary.
func (a *app) runPipelines(cmd *cobra.Command, pipeline string) error {
	s, err := a.newSession(cmd)
	if err != nil {
		return err
	}
	if s.settings.DryRun {
		s.printer.Warn("Dry-run: commands that change a repository, remote or pull request are only announced.")
	}

	repos := s.runner.Discover()
	if len(repos) == 0 {
		return clierrors.NewNoRepositoriesError(s.settings.Roots)
	}

	ctx := cmd.Context()
	if pipeline == "" {
		err = s.runner.RunAll(ctx, repos)
	} else {
		_, err = s.runner.RunPipeline(ctx, pipeline, repos)
	}

	printSummary(s.printer, s.summary, s.dry, repos)
	if err != nil {
		s.printer.Warn("Run interrupted: %v", err)
	}
	return nil
}

func printSummary(p *ui.Printer, summary *notify.Summary, dry *git.DryRunRunner, repos []walker.Repo) {
	p.SectionTitle("📊", "Summary")
	p.List([]string{
		fmt.Sprintf("📂 %d repositories", len(repos)),
		fmt.Sprintf("📝 %d commits made", summary.Committed),
		fmt.Sprintf("🚀 %d pushes performed", summary.Pushed),
	})
	if lines := summary.Lines(); len(lines) > 0 {
		p.Muted("🧾", "Outcomes")
		p.List(lines)
	}
	if dry != nil {
		p.Muted("🌐", "%d commands suppressed by dry-run", len(dry.Suppressed))
	}
	if err := summary.Failures(); err != nil {
		p.Error("%d repositories failed", summary.FailureCount())
		fmt.Fprintln(p.Writer(), err)
	}
}
