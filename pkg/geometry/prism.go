package geometry

// Prism is a rectangular prism.
type Prism struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewPrism creates a Prism from its three edges.
func NewPrism(length, width, height float64) Prism {
	return Prism{Length: length, Width: width, Height: height}
}

// Volume returns Length * Width * Height.
func (p Prism) Volume() float64 {
	return p.Length * p.Width * p.Height
}
