// Package report prints area and perimeter totals as two labelled lines.
//
// Output is styled through lipgloss when it goes to a terminal. Any other
// writer gets the plain text:
//
//	Total area = 58.0
//	Total circumference = 52.0
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rectsum/internal/geom"
)

const (
	areaLabel          = "Total area"
	circumferenceLabel = "Total circumference"
	perimeterLabel     = "Total perimeter"
)

// Printer writes area and perimeter totals to a writer.
type Printer struct {
	w          io.Writer
	st         styles
	perimLabel string
}

// Option configures a Printer.
type Option func(*Printer)

// WithPerimeterLabel labels the second line "Total perimeter" instead of
// "Total circumference".
func WithPerimeterLabel() Option {
	return func(p *Printer) { p.perimLabel = perimeterLabel }
}

// WithRenderer styles output with r instead of a renderer bound to the
// printer's writer.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(p *Printer) { p.st = newStyles(r) }
}

// New returns a Printer writing to w, styled for w unless WithRenderer is given.
func New(w io.Writer, opts ...Option) *Printer {
	p := &Printer{
		w:          w,
		st:         newStyles(lipgloss.NewRenderer(w)),
		perimLabel: circumferenceLabel,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Print writes the area line followed by the perimeter line.
func (p *Printer) Print(t geom.Totals) error {
	if err := p.line(areaLabel, t.Area); err != nil {
		return fmt.Errorf("report: area: %w", err)
	}
	if err := p.line(p.perimLabel, t.Perimeter); err != nil {
		return fmt.Errorf("report: perimeter: %w", err)
	}
	return nil
}

func (p *Printer) line(label string, v float64) error {
	_, err := io.WriteString(p.w, p.st.label.Render(label)+" = "+p.st.value.Render(FormatNumber(v))+"\n")
	return err
}

// FormatNumber renders v as the shortest decimal that round-trips, keeping a
// trailing ".0" on integral values (58 -> "58.0"). Very large or small
// magnitudes switch to exponent form ("1.0E10").
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	abs := math.Abs(v)
	if v == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	s := strconv.FormatFloat(v, 'E', -1, 64)
	mant, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	exp = strings.TrimPrefix(exp, "+")
	if neg := strings.HasPrefix(exp, "-"); neg {
		exp = "-" + strings.TrimLeft(exp[1:], "0")
	} else {
		exp = strings.TrimLeft(exp, "0")
	}
	return mant + "E" + exp
}
