package estimation

// Calculator encapsulates one specific part of the estimation (e.g. "wall volume", "excavation recovery").
type Calculator interface {
	// Name returns the human-readable name of this calculator, used as the key in Engine results.
	Name() string
	// Keys returns the list of Param keys this calculator depends on.
	Keys() []string
	// Calculate runs the estimation using the provided params and returns an Estimation or an error.
	Calculate(params map[string]Param) (Estimation, error)
}

// Param represents an input for a Calculator, either scenario supplied or fixed by the solver.
type Param struct {
	Key   string      // Unique identifier (e.g., "excavation_depth")
	Value interface{} // The actual value (e.g., 2640.0, 700, 0.3)
}

// Estimation the result of a Calculator calculation
type Estimation struct {
	// Volume in cubic feet.
	Volume float64
	Reason string
	// Err is set when the calculator failed; Volume is then zero.
	Err error
}
