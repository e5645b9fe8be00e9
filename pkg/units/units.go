// Package units converts linear distances between units using a fixed ratio.
package units

// FeetPerMile is the number of feet in one statute mile.
const FeetPerMile = 5280

// Convert expresses value in the base unit, given how many base units make one unit of value.
func Convert(value, ratioToBaseUnit float64) float64 {
	return value * ratioToBaseUnit
}

// MilesToFeet converts a distance in miles to feet.
func MilesToFeet(miles float64) float64 {
	return Convert(miles, FeetPerMile)
}
