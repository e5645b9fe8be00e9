package calculators

import (
	"fmt"

	"github.com/kubev2v/concrete-planner/internal/estimation"
)

func getFloat(p estimation.Param) (float64, error) {
	switch v := p.Value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0.0, fmt.Errorf("param %s is not a number (type: %T)", p.Key, p.Value)
	}
}

// floatOrZero reads key from params, treating a missing param as zero.
func floatOrZero(params map[string]estimation.Param, key string) (float64, error) {
	p, ok := params[key]
	if !ok {
		return 0, nil
	}
	return getFloat(p)
}

// floatsOrZero reads keys in order with floatOrZero, stopping at the first error.
func floatsOrZero(params map[string]estimation.Param, keys ...string) ([]float64, error) {
	values := make([]float64, 0, len(keys))
	for _, key := range keys {
		v, err := floatOrZero(params, key)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
