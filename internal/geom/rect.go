// Package geom holds the rectangle value type and the totals computed over a
// collection of rectangles.
package geom

// NewRectangle returns a rectangle with the given dimensions. Dimensions are
// taken as-is: zero and negative values yield degenerate but well defined
// area and perimeter.
func NewRectangle(height, width float64) Rectangle {
	return Rectangle{height: height, width: width}
}

// Height returns the rectangle height.
func (r Rectangle) Height() float64 { return r.height }

// Width returns the rectangle width.
func (r Rectangle) Width() float64 { return r.width }

// Area returns height × width.
func (r Rectangle) Area() float64 { return r.height * r.width }

// Perimeter returns 2 × (height + width).
func (r Rectangle) Perimeter() float64 { return 2 * (r.height + r.width) }

// Circumference is Perimeter under the name the table report uses.
func (r Rectangle) Circumference() float64 { return r.Perimeter() }
