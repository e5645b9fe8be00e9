package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/big"

	"github.com/dustin/go-humanize"
	"github.com/kubev2v/concrete-planner/internal/scenario"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// selfCheck guards the wall footprint formula before any estimate is printed.
var selfCheck = scenario.SelfCheck

type EstimateOptions struct {
	GlobalOptions
}

func DefaultEstimateOptions() *EstimateOptions {
	return &EstimateOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

// NewCmdEstimate returns the command that checks the wall footprint formula,
// solves the configured scenario and prints the concrete volume.
func NewCmdEstimate() *cobra.Command {
	o := DefaultEstimateOptions()
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the concrete held by the structure's walls.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}
	return cmd
}

func (o *EstimateOptions) Run(ctx context.Context, out io.Writer) error {
	logger := o.Logger
	defer func() { _ = logger.Sync() }()

	if err := selfCheck(); err != nil {
		logger.Error("wall footprint self-check failed", zap.Error(err))
		return err
	}

	sc, err := o.Config.Scenario()
	if err != nil {
		logger.Error("failed to load scenario", zap.Error(err))
		return err
	}
	logger.Debug("solving scenario",
		zap.Float64("excavation_length", sc.ExcavationLength),
		zap.Float64("excavation_width", sc.ExcavationWidth),
		zap.Float64("excavation_depth", sc.ExcavationDepth))

	if err := ctx.Err(); err != nil {
		return err
	}

	volume, err := scenario.NewSolver(logger).Solve(sc)
	if err != nil {
		logger.Error("failed to solve scenario", zap.Error(err))
		return errors.Wrap(err, "estimating concrete volume")
	}

	_, err = fmt.Fprintf(out, "Bloo's structure would contain %s cubic feet of concrete, given the assumptions\n", FormatVolume(volume))
	return err
}

// FormatVolume truncates volume toward zero and groups its digits by thousands.
// Volumes beyond the int64 range keep their exact digits.
func FormatVolume(volume float64) string {
	if math.IsNaN(volume) || math.IsInf(volume, 0) {
		return fmt.Sprint(volume)
	}
	truncated, _ := big.NewFloat(volume).Int(nil)
	return humanize.BigComma(truncated)
}
