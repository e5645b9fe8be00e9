package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/kubev2v/concrete-planner/pkg/version"
	"github.com/spf13/cobra"
)

type VersionOptions struct{}

func DefaultVersionOptions() *VersionOptions {
	return &VersionOptions{}
}

func NewCmdVersion() *cobra.Command {
	o := DefaultVersionOptions()
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print concrete-planner version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(cmd.Context(), cmd.OutOrStdout())
		},
	}
	return cmd
}

func (o *VersionOptions) Run(ctx context.Context, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	versionInfo := version.Get()
	_, err := fmt.Fprintf(out, "Concrete Planner Version: %s\n", versionInfo.String())
	return err
}
