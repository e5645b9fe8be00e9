package scenario

import (
	"github.com/kubev2v/concrete-planner/pkg/geometry"
	"github.com/pkg/errors"
)

// ErrSelfCheckFailed reports a regression in the wall footprint formula.
var ErrSelfCheckFailed = errors.New("self-check failed")

// SelfCheck verifies the wall footprint of a 4x4 square with a unit wall is 16 - 4.
func SelfCheck() error {
	return checkWallFootprint(geometry.NewRectangle(4, 4), 1, 16-4)
}

func checkWallFootprint(r geometry.Rectangle, thickness, expected float64) error {
	if got := r.WallFootprintArea(thickness); got != expected {
		return errors.Wrapf(ErrSelfCheckFailed, "wall footprint of %vx%v with thickness %v: expected %v, got %v",
			r.Length, r.Width, thickness, expected, got)
	}
	return nil
}
