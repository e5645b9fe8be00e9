// Package estimation defines a pluggable concrete volume estimation calculator.
//
// Each part of the calculation is encapsulated in one specific Calculator, and calculation results are aggregated by the Engine.
package estimation
