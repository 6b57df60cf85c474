package commands

import (
	"fmt"
	"os"

	"unitlite/internal/collector"
	"unitlite/internal/config"
	"unitlite/internal/execution"
	"unitlite/internal/registry"
	"unitlite/internal/storage"
	"unitlite/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	registry  *registry.Registry
	runner    *execution.Runner
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    *ui.FailureViewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	reg *registry.Registry,
	runner *execution.Runner,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer *ui.FailureViewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		registry:  reg,
		runner:    runner,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	cases := registry.FilterByName(rc.registry.Cases(), rc.config.Flags.NameFilter)

	reg := rc.registry
	if len(cases) != reg.Len() {
		reg = registry.New()
		for _, tc := range cases {
			reg.Register(tc)
		}
	}

	// Progress bar and verbose tracing write over each other; pick one
	if !rc.config.Verbose && reg.Len() > 0 {
		rc.runner.SetProgress(ui.NewProgressBar(reg.Len()))
	}

	col := collector.NewTimingResults()
	sum := rc.runner.RunAll(reg, col)

	rc.formatter.PrintSummary(sum)

	if err := rc.storage.Save(sum, rc.runner.Details()); err != nil {
		return fmt.Errorf("failed to save test results: %w", err)
	}

	if rc.config.Flags.OpenFailures && sum.Failures+sum.Errors > 0 {
		output, err := rc.storage.Load()
		if err != nil {
			return err
		}
		if err := rc.viewer.View(output); err != nil {
			return err
		}
	}

	// The exit code is the failure count; errors are reported but do not
	// affect it
	if sum.Failures > 0 {
		color.Red("\nExiting with failure count %d", sum.Failures)
		os.Exit(sum.Failures)
	}
	return nil
}
