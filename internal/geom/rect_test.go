package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rectsum/internal/geom"
)

func TestRectangle_AreaAndPerimeter(t *testing.T) {
	cases := []struct {
		name      string
		h, w      float64
		area      float64
		perimeter float64
	}{
		{"square", 3, 3, 9, 12},
		{"single", 3, 4, 12, 14},
		{"fractional", 1.5, 2.5, 3.75, 8},
		{"zero height", 0, 5, 0, 10},
		{"both zero", 0, 0, 0, 0},
		{"negative width", 2, -3, -6, -2},
		{"both negative", -2, -3, 6, -10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := geom.NewRectangle(tc.h, tc.w)
			assert.Equal(t, tc.h, r.Height())
			assert.Equal(t, tc.w, r.Width())
			assert.Equal(t, tc.area, r.Area())
			assert.Equal(t, tc.perimeter, r.Perimeter())
		})
	}
}

func TestRectangle_CircumferenceMatchesPerimeter(t *testing.T) {
	for _, r := range geom.Tables() {
		assert.Equal(t, r.Perimeter(), r.Circumference())
	}
}
