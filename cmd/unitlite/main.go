package main

import (
	"fmt"
	"os"

	"unitlite/internal/cli"
	"unitlite/internal/cli/commands"
	"unitlite/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "unitlite",
		Short:   "Minimal unit-test engine and arithmetic demo",
		Long:    `A small unit-testing engine with an explicit registry, sequential runner and result collection, plus the arithmetic demo suite it exercises.`,
		Version: version,
	}

	// Create initial config with defaults and environment settings
	cfg := config.New()
	cfg.LoadEnv()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
