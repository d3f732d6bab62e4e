// Package geometry holds the tiling math: offset, axial and pixel coordinate
// conversions, regular polygons, tiles and neighbourhoods.
package geometry

import (
	"fmt"
	"math"
)

// Offset addresses a tile by column and row.
type Offset struct {
	Col int
	Row int
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(v Offset) Offset {
	return Offset{Col: o.Col + v.Col, Row: o.Row + v.Row}
}

func (o Offset) String() string {
	return fmt.Sprintf("(%d,%d)", o.Col, o.Row)
}

// Hex is an axial coordinate pair. The third cube coordinate is derived:
// s = -q - r.
type Hex struct {
	Q int
	R int
}

// S returns the implicit third cube coordinate.
func (h Hex) S() int {
	return -h.Q - h.R
}

// Add returns the sum of two axial coordinates.
func (h Hex) Add(v Hex) Hex {
	return Hex{Q: h.Q + v.Q, R: h.R + v.R}
}

// Sub returns the difference of two axial coordinates.
func (h Hex) Sub(v Hex) Hex {
	return Hex{Q: h.Q - v.Q, R: h.R - v.R}
}

// Distance returns the number of hex steps between h and v.
func (h Hex) Distance(v Hex) int {
	d := h.Sub(v)
	return max(absInt(d.Q), absInt(d.R), absInt(d.S()))
}

func (h Hex) String() string {
	return fmt.Sprintf("q=%d,r=%d", h.Q, h.R)
}

// FractionalHex is a continuous axial position, produced when mapping a
// pixel onto the hex plane.
type FractionalHex struct {
	Q float64
	R float64
}

// Round snaps the fractional position to the nearest hex using cube
// rounding. The component with the largest rounding error is rebuilt from
// the other two so that q+r+s == 0 always holds. Precedence on ties: q only
// when its error is strictly the largest, then r when strictly larger than
// s, otherwise s.
func (f FractionalHex) Round() Hex {
	fs := -f.Q - f.R
	q := roundHalfUp(f.Q)
	r := roundHalfUp(f.R)
	s := roundHalfUp(fs)

	qDiff := math.Abs(q - f.Q)
	rDiff := math.Abs(r - f.R)
	sDiff := math.Abs(s - fs)

	switch {
	case qDiff > rDiff && qDiff > sDiff:
		q = -r - s
	case rDiff > sDiff:
		r = -q - s
	}
	return Hex{Q: int(q), R: int(r)}
}

// roundHalfUp rounds to the nearest integer, ties toward positive infinity.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
