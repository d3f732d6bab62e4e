package geometry

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// TileKind identifies the shape used to tile the plane.
type TileKind uint8

const (
	KindQuad TileKind = iota
	KindHex
)

func (k TileKind) String() string {
	switch k {
	case KindQuad:
		return "quad"
	case KindHex:
		return "hex"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Dimension is a count of tile columns and rows.
type Dimension struct {
	Cols int
	Rows int
}

// Tile is a regular polygon able to tessellate the plane. Implementations
// are immutable and safe for concurrent use.
type Tile interface {
	Kind() TileKind
	SideLen() float64
	// Center returns the pixel centre of the tile at o.
	Center(o Offset) gg.Point
	// Path returns a closed outline of the tile at o.
	Path(o Offset) *gg.Path
	// ColRowDimension returns how many columns and rows cover a w by h
	// pixel viewport.
	ColRowDimension(w, h float64) Dimension
	// Selected returns the tile containing pixel (x, y).
	Selected(x, y float64) Offset
	Neighborhood(self Offset) Neighborhood
}

// HexTile tiles the plane with regular hexagons.
type HexTile struct {
	layout  Layout
	side    float64
	hexagon Polygon
}

// NewHexTile returns a hexagonal tile with the given side length and layout.
func NewHexTile(side float64, layout Layout) HexTile {
	return HexTile{layout: layout, side: side, hexagon: PolygonOfSide(6, side)}
}

// NewHexTileOriented chooses odd-r for horizontal and odd-q for vertical
// orientation.
func NewHexTileOriented(side float64, o Orientation) HexTile {
	if o == Vertical {
		return NewHexTile(side, OddQ)
	}
	return NewHexTile(side, OddR)
}

func (t HexTile) Kind() TileKind { return KindHex }

// Layout returns the offset convention of this tile.
func (t HexTile) Layout() Layout { return t.layout }

// Orientation returns whether the hexagons are pointy-top or flat-top.
func (t HexTile) Orientation() Orientation { return t.layout.Orientation() }

// Polygon returns the reference hexagon.
func (t HexTile) Polygon() Polygon { return t.hexagon }

func (t HexTile) SideLen() float64 { return t.side }

// HexCenter returns the pixel centre of the hexagon at h.
func (t HexTile) HexCenter(h Hex) gg.Point {
	return t.layout.HexToPixel(h, t.SideLen())
}

func (t HexTile) Center(o Offset) gg.Point {
	return t.HexCenter(t.layout.ToHex(o))
}

// HexPath returns the outline of the hexagon at h.
func (t HexTile) HexPath(h Hex) *gg.Path {
	return t.hexagon.Path(t.HexCenter(h), t.layout.StartAngle())
}

func (t HexTile) Path(o Offset) *gg.Path {
	return t.HexPath(t.layout.ToHex(o))
}

// ColRowDimension pads by one column and one row because the first row and
// column overhang the north and west edges of the viewport.
func (t HexTile) ColRowDimension(w, h float64) Dimension {
	radius := t.hexagon.Radius()
	apothem := t.hexagon.Apothem()
	var cellW, cellH float64
	if t.Orientation() == Vertical {
		cellW = 2 * radius * .75
		cellH = 2 * apothem
	} else {
		cellW = 2 * apothem
		cellH = 2 * radius * .75
	}
	return Dimension{
		Cols: int(math.Ceil(w/cellW)) + 1,
		Rows: int(math.Ceil(h/cellH)) + 1,
	}
}

// SelectedHex returns the axial coordinates of the hexagon under (x, y).
func (t HexTile) SelectedHex(x, y float64) Hex {
	return t.layout.PixelToHex(x, y, t.SideLen())
}

func (t HexTile) Selected(x, y float64) Offset {
	return t.layout.ToOffset(t.SelectedHex(x, y))
}

func (t HexTile) Neighborhood(self Offset) Neighborhood {
	return HexNeighborhood(self, t.layout)
}

func (t HexTile) String() string {
	return fmt.Sprintf("hex %v side=%g", t.layout, t.SideLen())
}

// quadStartAngle puts the first vertex of a square on a corner so the edges
// are parallel to the axes.
const quadStartAngle = math.Pi * 3 / 4

// QuadTile tiles the plane with axis-aligned squares.
type QuadTile struct {
	side   float64
	square Polygon
}

// NewQuadTile returns a square tile with the given side length.
func NewQuadTile(side float64) QuadTile {
	return QuadTile{side: side, square: PolygonOfSide(4, side)}
}

func (t QuadTile) Kind() TileKind { return KindQuad }

func (t QuadTile) SideLen() float64 { return t.side }

// Polygon returns the reference square.
func (t QuadTile) Polygon() Polygon { return t.square }

func (t QuadTile) Center(o Offset) gg.Point {
	side := t.SideLen()
	return gg.Pt(side*float64(o.Col)+side/2, side*float64(o.Row)+side/2)
}

func (t QuadTile) Path(o Offset) *gg.Path {
	return t.square.Path(t.Center(o), quadStartAngle)
}

func (t QuadTile) ColRowDimension(w, h float64) Dimension {
	side := t.SideLen()
	return Dimension{
		Cols: int(math.Ceil(w / side)),
		Rows: int(math.Ceil(h / side)),
	}
}

func (t QuadTile) Selected(x, y float64) Offset {
	side := t.SideLen()
	return Offset{
		Col: int(math.Floor(x / side)),
		Row: int(math.Floor(y / side)),
	}
}

func (t QuadTile) Neighborhood(self Offset) Neighborhood {
	return QuadNeighborhood(self)
}

func (t QuadTile) String() string {
	return fmt.Sprintf("quad side=%g", t.SideLen())
}
