package calculators

import (
	"fmt"

	"github.com/kubev2v/concrete-planner/internal/estimation"
	"github.com/kubev2v/concrete-planner/pkg/geometry"
)

const (
	// ParamExcavationLength length of the excavation in feet.
	ParamExcavationLength = "excavation_length"
	// ParamExcavationWidth width of the excavation in feet.
	ParamExcavationWidth = "excavation_width"
	// ParamExcavationDepth depth of the excavation in feet.
	ParamExcavationDepth = "excavation_depth"
	// ParamMaterialRecoveryRate fraction of the excavated material usable as concrete.
	ParamMaterialRecoveryRate = "material_recovery_rate"
)

// Compile-time assertion that ExcavationRecovery implements the Calculator interface.
var _ estimation.Calculator = (*ExcavationRecovery)(nil)

// ExcavationRecovery estimates the volume of concrete obtained from an excavation,
// i.e. the excavated volume scaled by the material recovery rate.
type ExcavationRecovery struct{}

// NewExcavationRecovery creates an ExcavationRecovery calculator.
func NewExcavationRecovery() *ExcavationRecovery {
	return &ExcavationRecovery{}
}

// Name returns the human-readable name of this calculator.
func (c *ExcavationRecovery) Name() string {
	return "Excavation Recovery"
}

// Keys returns the list of parameter keys read by this calculator.
func (c *ExcavationRecovery) Keys() []string {
	return []string{ParamExcavationLength, ParamExcavationWidth, ParamExcavationDepth, ParamMaterialRecoveryRate}
}

// Calculate computes volume(excavation) * recovery rate. Missing params count as zero.
func (c *ExcavationRecovery) Calculate(params map[string]estimation.Param) (estimation.Estimation, error) {
	v, err := floatsOrZero(params, c.Keys()...)
	if err != nil {
		return estimation.Estimation{}, err
	}
	excavation := geometry.NewPrism(v[0], v[1], v[2])
	rate := v[3]

	excavated := excavation.Volume()
	return estimation.Estimation{
		Volume: excavated * rate,
		Reason: fmt.Sprintf("%.0f cubic ft excavated at %.0f%% recovery", excavated, rate*100),
	}, nil
}
