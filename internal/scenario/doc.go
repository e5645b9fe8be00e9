// Package scenario runs the concrete estimation for the walled structure scenario.
//
// The structure dimensions, wall thickness and recovery rate of the scenario are fixed
// assumptions; only the excavation dimensions come from the caller. The wall volume is
// computed alongside the excavation but does not contribute to the result.
package scenario
