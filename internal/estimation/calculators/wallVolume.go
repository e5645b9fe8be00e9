package calculators

import (
	"fmt"

	"github.com/kubev2v/concrete-planner/internal/estimation"
	"github.com/kubev2v/concrete-planner/pkg/geometry"
)

const (
	// ParamStructureLength outer length of the structure in feet.
	ParamStructureLength = "structure_length"
	// ParamStructureWidth outer width of the structure in feet.
	ParamStructureWidth = "structure_width"
	// ParamStructureHeight height of the walls in feet.
	ParamStructureHeight = "structure_height"
	// ParamWallThickness thickness of the walls in feet.
	ParamWallThickness = "wall_thickness"
)

// Compile-time assertion that WallVolumeCalculator implements the Calculator interface.
var _ estimation.Calculator = (*WallVolumeCalculator)(nil)

// WallVolume returns the volume of material in the hollow walls of a rectangular
// structure: the wall footprint of a length x width rectangle times height.
func WallVolume(length, width, height, wallThickness float64) float64 {
	structureArea := geometry.NewRectangle(length, width)
	return height * structureArea.WallFootprintArea(wallThickness)
}

// WallVolumeCalculator estimates the material held by the walls of the structure.
type WallVolumeCalculator struct{}

// NewWallVolume creates a WallVolumeCalculator.
func NewWallVolume() *WallVolumeCalculator {
	return &WallVolumeCalculator{}
}

// Name returns the human-readable name of this calculator.
func (c *WallVolumeCalculator) Name() string {
	return "Wall Volume"
}

// Keys returns the list of parameter keys read by this calculator.
func (c *WallVolumeCalculator) Keys() []string {
	return []string{ParamStructureLength, ParamStructureWidth, ParamStructureHeight, ParamWallThickness}
}

// Calculate computes the wall volume. Missing params count as zero.
func (c *WallVolumeCalculator) Calculate(params map[string]estimation.Param) (estimation.Estimation, error) {
	v, err := floatsOrZero(params, c.Keys()...)
	if err != nil {
		return estimation.Estimation{}, err
	}
	length, width, height, thickness := v[0], v[1], v[2], v[3]

	return estimation.Estimation{
		Volume: WallVolume(length, width, height, thickness),
		Reason: fmt.Sprintf("%.0f x %.0f ft structure, %.0f ft high with %.0f ft thick walls", length, width, height, thickness),
	}, nil
}
