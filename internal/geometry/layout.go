package geometry

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"gonum.org/v1/gonum/mat"
)

// Layout selects one of the four offset-coordinate conventions for
// hexagonal tiling.
type Layout uint8

const (
	// OddR pushes odd rows right; pointy-top hexagons.
	OddR Layout = iota
	// EvenR pushes even rows right; pointy-top hexagons.
	EvenR
	// OddQ pushes odd columns down; flat-top hexagons.
	OddQ
	// EvenQ pushes even columns down; flat-top hexagons.
	EvenQ
)

// Layouts lists every supported layout in declaration order.
var Layouts = []Layout{OddR, EvenR, OddQ, EvenQ}

// Orientation distinguishes row-oriented (pointy-top) from column-oriented
// (flat-top) hexagons.
type Orientation uint8

const (
	// Horizontal hexagons have a vertex pointing north.
	Horizontal Orientation = iota
	// Vertical hexagons have a vertex pointing west.
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

var sqrt3 = math.Sqrt(3)

// ParseLayout resolves a layout name such as "odd-r" or "EVEN_Q".
func ParseLayout(name string) (Layout, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for _, l := range Layouts {
		if l.String() == key {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown layout %q", ErrConstruction, name)
}

func (l Layout) String() string {
	switch l {
	case OddR:
		return "odd-r"
	case EvenR:
		return "even-r"
	case OddQ:
		return "odd-q"
	case EvenQ:
		return "even-q"
	default:
		return fmt.Sprintf("layout(%d)", uint8(l))
	}
}

// Orientation reports whether the layout uses pointy-top or flat-top tiles.
func (l Layout) Orientation() Orientation {
	if l == OddQ || l == EvenQ {
		return Vertical
	}
	return Horizontal
}

// StartAngle is the angle of the first vertex used when drawing a hexagon
// in this layout.
func (l Layout) StartAngle() float64 {
	if l.Orientation() == Vertical {
		return math.Pi
	}
	return math.Pi / 2
}

// ToOffset converts axial coordinates to this layout's column/row pair.
func (l Layout) ToOffset(h Hex) Offset {
	switch l {
	case OddR:
		return Offset{Col: h.Q + (h.R-(h.R&1))/2, Row: h.R}
	case EvenR:
		return Offset{Col: h.Q + (h.R+(h.R&1))/2, Row: h.R}
	case OddQ:
		return Offset{Col: h.Q, Row: h.R + (h.Q-(h.Q&1))/2}
	case EvenQ:
		return Offset{Col: h.Q, Row: h.R + (h.Q+(h.Q&1))/2}
	default:
		panic(fmt.Sprintf("geometry: invalid %v", l))
	}
}

// ToHex converts a column/row pair in this layout to axial coordinates.
func (l Layout) ToHex(o Offset) Hex {
	switch l {
	case OddR:
		return Hex{Q: o.Col - (o.Row-(o.Row&1))/2, R: o.Row}
	case EvenR:
		return Hex{Q: o.Col - (o.Row+(o.Row&1))/2, R: o.Row}
	case OddQ:
		return Hex{Q: o.Col, R: o.Row - (o.Col-(o.Col&1))/2}
	case EvenQ:
		return Hex{Q: o.Col, R: o.Row - (o.Col+(o.Col&1))/2}
	default:
		panic(fmt.Sprintf("geometry: invalid %v", l))
	}
}

// HexToPixelMatrix returns the 2x2 transform from (q, r) to (x, y) for
// hexagons with the given side length.
func (l Layout) HexToPixelMatrix(side float64) *mat.Dense {
	var m *mat.Dense
	if l.Orientation() == Vertical {
		m = mat.NewDense(2, 2, []float64{
			1.5, 0,
			sqrt3 / 2, sqrt3,
		})
	} else {
		m = mat.NewDense(2, 2, []float64{
			sqrt3, sqrt3 / 2,
			0, 1.5,
		})
	}
	m.Scale(side, m)
	return m
}

// PixelToHexMatrix returns the inverse of HexToPixelMatrix.
func (l Layout) PixelToHexMatrix(side float64) *mat.Dense {
	var m *mat.Dense
	if l.Orientation() == Vertical {
		m = mat.NewDense(2, 2, []float64{
			2. / 3, 0,
			-1. / 3, sqrt3 / 3,
		})
	} else {
		m = mat.NewDense(2, 2, []float64{
			sqrt3 / 3, -1. / 3,
			0, 2. / 3,
		})
	}
	m.Scale(1/side, m)
	return m
}

// HexToPixel returns the centre of hexagon h in pixel space.
func (l Layout) HexToPixel(h Hex, side float64) gg.Point {
	var xy mat.VecDense
	xy.MulVec(l.HexToPixelMatrix(side), mat.NewVecDense(2, []float64{float64(h.Q), float64(h.R)}))
	return gg.Pt(xy.AtVec(0), xy.AtVec(1))
}

// PixelToFractional maps a pixel onto the continuous axial plane.
func (l Layout) PixelToFractional(x, y, side float64) FractionalHex {
	var qr mat.VecDense
	qr.MulVec(l.PixelToHexMatrix(side), mat.NewVecDense(2, []float64{x, y}))
	return FractionalHex{Q: qr.AtVec(0), R: qr.AtVec(1)}
}

// PixelToHex returns the hexagon containing the pixel (x, y).
func (l Layout) PixelToHex(x, y, side float64) Hex {
	return l.PixelToFractional(x, y, side).Round()
}
