package main

import (
	"os"

	"github.com/kubev2v/concrete-planner/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	command := NewConcretePlannerCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewConcretePlannerCommand returns the root command. Invoked without a
// subcommand it runs the estimate.
func NewConcretePlannerCommand() *cobra.Command {
	cmd := cli.NewCmdEstimate()
	cmd.Use = "concrete-planner"
	cmd.Short = "concrete-planner estimates the concrete needed for Bloo's structure."
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}
