// Package calculators provides concrete Calculator implementations for the estimation engine.
//
// Each calculator estimates one volume of the concrete scenario (e.g. the material held
// by the structure's walls, the material recovered from the excavation). Calculators are
// designed to be composed via the estimation.Engine and accept input through estimation.Param slices.
// Dimensions are in feet and missing params count as zero.
package calculators
