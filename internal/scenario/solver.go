package scenario

import (
	"github.com/kubev2v/concrete-planner/internal/estimation"
	"github.com/kubev2v/concrete-planner/internal/estimation/calculators"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Solver estimates the concrete volume of the scenario.
type Solver struct {
	engine     *estimation.Engine
	wall       estimation.Calculator
	excavation estimation.Calculator
	logger     *zap.Logger
}

// NewSolver creates a Solver with the wall volume and excavation recovery calculators registered.
// A nil logger falls back to the global zap logger.
func NewSolver(logger *zap.Logger) *Solver {
	if logger == nil {
		logger = zap.L()
	}

	s := &Solver{
		engine:     estimation.NewEngine(),
		wall:       calculators.NewWallVolume(),
		excavation: calculators.NewExcavationRecovery(),
		logger:     logger.Named("scenario_solver"),
	}
	s.engine.Register(s.wall)
	s.engine.Register(s.excavation)

	return s
}

// Solve returns the cubic feet of concrete for cfg. Only the excavation fields of
// cfg are honored; see Config.
func (s *Solver) Solve(cfg Config) (float64, error) {
	cfg = cfg.withAssumptions()

	results := s.engine.Run(toParams(cfg))

	// The wall volume does not contribute to the estimate.
	wall := results[s.wall.Name()]
	s.logger.Debug("wall volume computed",
		zap.Float64("cubic_feet", wall.Volume),
		zap.String("reason", wall.Reason))

	recovered, ok := results[s.excavation.Name()]
	if !ok {
		return 0, errors.Errorf("no result from %q", s.excavation.Name())
	}
	if recovered.Err != nil {
		return 0, errors.Wrapf(recovered.Err, "failed to estimate %s", s.excavation.Name())
	}

	s.logger.Debug("excavation recovery computed",
		zap.Float64("cubic_feet", recovered.Volume),
		zap.String("reason", recovered.Reason))

	return recovered.Volume, nil
}

func toParams(cfg Config) []estimation.Param {
	return []estimation.Param{
		{Key: calculators.ParamStructureLength, Value: cfg.StructureLength},
		{Key: calculators.ParamStructureWidth, Value: cfg.StructureWidth},
		{Key: calculators.ParamStructureHeight, Value: cfg.StructureHeight},
		{Key: calculators.ParamWallThickness, Value: cfg.WallThickness},
		{Key: calculators.ParamExcavationLength, Value: cfg.ExcavationLength},
		{Key: calculators.ParamExcavationWidth, Value: cfg.ExcavationWidth},
		{Key: calculators.ParamExcavationDepth, Value: cfg.ExcavationDepth},
		{Key: calculators.ParamMaterialRecoveryRate, Value: cfg.MaterialRecoveryRate},
	}
}
