package scenario

import "github.com/kubev2v/concrete-planner/pkg/units"

// Config holds the scenario inputs, in feet. Every field defaults to zero.
//
// StructureLength, StructureWidth, StructureHeight, WallThickness and
// MaterialRecoveryRate are accepted but currently inert: Solve replaces them
// with the fixed assumptions below.
type Config struct {
	StructureLength      float64 `json:"structureLength"`
	StructureWidth       float64 `json:"structureWidth"`
	StructureHeight      float64 `json:"structureHeight"`
	WallThickness        float64 `json:"wallThickness"`
	MaterialRecoveryRate float64 `json:"materialRecoveryRate"`

	ExcavationLength float64 `json:"excavationLength"`
	ExcavationWidth  float64 `json:"excavationWidth"`
	ExcavationDepth  float64 `json:"excavationDepth"`
}

// Fixed assumptions applied by Solve.
const (
	AssumedStructureSideMiles = 1928
	AssumedStructureHeight    = 700
	AssumedWallThickness      = 300
	AssumedRecoveryRate       = 0.3
)

// DefaultConfig returns the reference scenario: a 1928 mile square structure
// with 700 ft walls 300 ft thick, and a 5525 x 1 x 0.5 mile excavation.
func DefaultConfig() Config {
	return Config{
		StructureLength:      units.MilesToFeet(AssumedStructureSideMiles),
		StructureWidth:       units.MilesToFeet(AssumedStructureSideMiles),
		StructureHeight:      AssumedStructureHeight,
		WallThickness:        AssumedWallThickness,
		MaterialRecoveryRate: AssumedRecoveryRate,
		ExcavationLength:     units.MilesToFeet(5525),
		ExcavationWidth:      units.MilesToFeet(1),
		ExcavationDepth:      units.MilesToFeet(0.5),
	}
}

// withAssumptions returns cfg with the structure and recovery fields replaced by
// the fixed assumptions.
func (cfg Config) withAssumptions() Config {
	cfg.StructureLength = units.Convert(AssumedStructureSideMiles, units.FeetPerMile)
	cfg.StructureWidth = units.Convert(AssumedStructureSideMiles, units.FeetPerMile)
	cfg.StructureHeight = AssumedStructureHeight
	cfg.WallThickness = AssumedWallThickness
	cfg.MaterialRecoveryRate = AssumedRecoveryRate
	return cfg
}
