package commands

import (
	"unitlite/internal/cli"
	"unitlite/internal/config"
	"unitlite/internal/execution"
	"unitlite/internal/registry"
	"unitlite/internal/storage"
	"unitlite/internal/suite"
	"unitlite/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
	Demo     *DemoCommand
}

// NewCommands creates all commands with dependencies. Registration happens
// here, before any command executes, so the registry order is fixed at
// start-up.
func NewCommands(cfg *config.Config) *Commands {
	reg := registry.New()
	suite.RegisterAll(reg)

	runner := execution.NewRunner(cfg)
	st := storage.ForConfig(cfg)
	formatter := ui.NewFormatter()
	viewer := ui.NewFailureViewer(st)

	return &Commands{
		Run:      NewRunCommand(cfg, reg, runner, st, formatter, viewer),
		List:     NewListCommand(cfg, reg, formatter),
		Failures: NewFailuresCommand(cfg, st, viewer),
		Demo:     NewDemoCommand(),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the registered test suite",
		Long:  "Execute every registered test case sequentially and report a summary. The exit code is the failure count.",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			if flags.Verbose {
				cfg.Verbose = true
			}
			return nil
		},
	}
	runCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print per-test Running/PASSED/FAILED lines")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g. '*Division*')")
	runCmd.Flags().BoolVar(&flags.OpenFailures, "open-failures", false, "Open the failures viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered tests",
		Long:  "List all registered test cases without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g. '*Division*')")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View test failures interactively",
		Long:  "Display failures from the last run in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)

	// Demo command
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the arithmetic library demo",
		Long:  "Print the add/subtract/divide showcase for the sample values",
		RunE:  c.Demo.Execute,
	}
	rootCmd.AddCommand(demoCmd)
}
