package geometry

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Polygon is a regular polygon described by its number of sides and its
// circumradius. Every other metric is derived on demand.
type Polygon struct {
	sides  int
	radius float64
}

// PolygonOfRadius builds a polygon from its circumradius.
func PolygonOfRadius(sides int, radius float64) Polygon {
	return Polygon{sides: sides, radius: radius}
}

// PolygonOfSide builds a polygon from the length of one side.
func PolygonOfSide(sides int, side float64) Polygon {
	return Polygon{sides: sides, radius: side / (2 * math.Sin(math.Pi/float64(sides)))}
}

// PolygonOfApothem builds a polygon from its inradius.
func PolygonOfApothem(sides int, apothem float64) Polygon {
	return Polygon{sides: sides, radius: apothem / math.Cos(math.Pi/float64(sides))}
}

// NewPolygon validates its arguments before building a polygon from a side
// length. It is the entry point for user supplied values.
func NewPolygon(sides int, side float64) (Polygon, error) {
	if sides < 3 {
		return Polygon{}, fmt.Errorf("%w: polygon needs at least 3 sides, got %d", ErrConstruction, sides)
	}
	if !(side > 0) || math.IsInf(side, 0) {
		return Polygon{}, fmt.Errorf("%w: side length must be positive, got %v", ErrConstruction, side)
	}
	return PolygonOfSide(sides, side), nil
}

// Sides returns the number of sides.
func (p Polygon) Sides() int { return p.sides }

// Radius returns the distance from the centre to a vertex.
func (p Polygon) Radius() float64 { return p.radius }

// SideLen returns the length of one side.
func (p Polygon) SideLen() float64 {
	return 2 * p.radius * math.Sin(math.Pi/float64(p.sides))
}

// Apothem returns the distance from the centre to the midpoint of a side.
func (p Polygon) Apothem() float64 {
	return p.radius * math.Cos(math.Pi/float64(p.sides))
}

// InteriorAngle returns one interior angle in radians.
func (p Polygon) InteriorAngle() float64 {
	n := float64(p.sides)
	return (n - 2) * math.Pi / n
}

// ExteriorAngle returns one exterior angle in radians.
func (p Polygon) ExteriorAngle() float64 {
	return 2 * math.Pi / float64(p.sides)
}

// Area returns the enclosed area.
func (p Polygon) Area() float64 {
	return float64(p.sides) * p.SideLen() * p.Apothem() / 2
}

// Perimeter returns the total length of all sides.
func (p Polygon) Perimeter() float64 {
	return float64(p.sides) * p.SideLen()
}

// Vertices returns the polygon's vertices around center, the first one at
// startAngle, proceeding by one exterior angle each.
func (p Polygon) Vertices(center gg.Point, startAngle float64) []gg.Point {
	step := p.ExteriorAngle()
	out := make([]gg.Point, p.sides)
	for i := range out {
		angle := startAngle + float64(i)*step
		out[i] = gg.Pt(center.X+p.radius*math.Cos(angle), center.Y+p.radius*math.Sin(angle))
	}
	return out
}

// Path returns a closed path through the polygon's vertices.
func (p Polygon) Path(center gg.Point, startAngle float64) *gg.Path {
	vertices := p.Vertices(center, startAngle)
	path := gg.NewPath()
	if len(vertices) == 0 {
		return path
	}
	path.MoveTo(vertices[0].X, vertices[0].Y)
	for _, v := range vertices[1:] {
		path.LineTo(v.X, v.Y)
	}
	path.Close()
	return path
}

func (p Polygon) String() string {
	return fmt.Sprintf("polygon(n=%d, r=%.4g)", p.sides, p.radius)
}
