package geometry

// Rectangle is a rectangle in the ground plan.
type Rectangle struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
}

// NewRectangle creates a Rectangle from its two sides.
func NewRectangle(length, width float64) Rectangle {
	return Rectangle{Length: length, Width: width}
}

// Area returns Length * Width.
func (r Rectangle) Area() float64 {
	return r.Length * r.Width
}

// Inner returns the rectangle enclosed by a wall of the given thickness whose
// outer face lies on r's boundary. The wall encroaches from both sides of each
// dimension, so the thickness is taken off twice.
//
// Sides are not clamped: a thickness above half a dimension yields a negative side.
func (r Rectangle) Inner(thickness float64) Rectangle {
	return Rectangle{
		Length: r.Length - 2*thickness,
		Width:  r.Width - 2*thickness,
	}
}

// WallFootprintArea returns the ground area covered by a hollow wall of the
// given thickness built along the inside of r.
//
//	-----------------
//	| |           | |
//	| |   inner   | |
//	| |           | |
//	-----------------
func (r Rectangle) WallFootprintArea(thickness float64) float64 {
	return r.Area() - r.Inner(thickness).Area()
}
