// Package shape provides plain geometric value types.
package shape

// Rectangle is a plain width/height record. The JSON tags let rectangles
// round-trip through the codec package.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRectangle returns a rectangle with the given dimensions. Dimensions
// are not validated.
func NewRectangle(width, height float64) *Rectangle {
	return &Rectangle{Width: width, Height: height}
}

// Area returns width times height, computed on each call.
func (r *Rectangle) Area() float64 {
	return r.Width * r.Height
}
