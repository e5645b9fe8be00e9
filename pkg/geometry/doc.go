// Package geometry provides the rectangular area and volume primitives used by
// the concrete estimation.
//
// Dimensions are plain float64 values, in feet by convention. Nothing is
// validated: negative or zero dimensions propagate through the arithmetic.
package geometry
