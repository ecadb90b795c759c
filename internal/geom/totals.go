package geom

// Tables returns the fixed set of table tops the report is computed over.
// Each call returns a new slice.
func Tables() []Rectangle {
	return []Rectangle{
		NewRectangle(7, 5),
		NewRectangle(2, 4),
		NewRectangle(3, 5),
	}
}

// Sum accumulates area and perimeter over rects in a single pass.
// An empty or nil slice yields zero Totals.
func Sum(rects []Rectangle) Totals {
	var t Totals
	for _, r := range rects {
		t.Area += r.Area()
		t.Perimeter += r.Perimeter()
	}
	return t
}
