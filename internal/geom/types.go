package geom

// Rectangle is an immutable height/width pair.
type Rectangle struct {
	height float64
	width  float64
}

// Totals holds the accumulated area and perimeter of a set of rectangles.
type Totals struct {
	Area      float64
	Perimeter float64
}
