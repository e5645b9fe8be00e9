package cli

import (
	"github.com/kubev2v/concrete-planner/internal/config"
	"github.com/kubev2v/concrete-planner/pkg/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type GlobalOptions struct {
	Config *config.Config
	Logger *zap.Logger
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{}
}

// Complete loads the environment configuration and builds the logger, unless already set.
func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	if o.Config == nil {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		o.Config = cfg
	}
	if o.Logger == nil {
		level := ""
		if o.Config.Service != nil {
			level = o.Config.Service.LogLevel
		}
		o.Logger = log.InitLog(log.ParseLevel(level))
		zap.ReplaceGlobals(o.Logger)
	}
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	return nil
}
