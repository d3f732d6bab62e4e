package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexColRowDimension(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		w, h   float64
		want   Dimension
	}{
		{"horizontal", OddR, 100, 100, Dimension{Cols: 7, Rows: 8}},
		{"vertical", OddQ, 100, 100, Dimension{Cols: 8, Rows: 7}},
		{"empty viewport", EvenR, 0, 0, Dimension{Cols: 1, Rows: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewHexTile(10, tt.layout).ColRowDimension(tt.w, tt.h))
		})
	}
}

func TestQuadColRowDimension(t *testing.T) {
	tile := NewQuadTile(10)
	assert.Equal(t, Dimension{Cols: 10, Rows: 10}, tile.ColRowDimension(95, 100))
	assert.Equal(t, Dimension{Cols: 11, Rows: 1}, tile.ColRowDimension(101, 1))
}

func TestHexSelectedInvertsCenter(t *testing.T) {
	for _, layout := range Layouts {
		tile := NewHexTile(12, layout)
		inner := tile.Polygon().Apothem() * 0.9
		for col := -10; col <= 10; col++ {
			for row := -10; row <= 10; row++ {
				o := Offset{Col: col, Row: row}
				c := tile.Center(o)
				require.Equal(t, o, tile.Selected(c.X, c.Y), "%v centre of %v", layout, o)
				for k := 0; k < 6; k++ {
					a := float64(k) * math.Pi / 3
					require.Equal(t, o, tile.Selected(c.X+inner*math.Cos(a), c.Y+inner*math.Sin(a)), "%v near %v", layout, o)
				}
			}
		}
	}
}

func TestQuadTile(t *testing.T) {
	tile := NewQuadTile(10)
	assert.Equal(t, gg.Pt(5, 5), tile.Center(Offset{}))
	assert.Equal(t, gg.Pt(-15, 25), tile.Center(Offset{Col: -2, Row: 2}))

	assert.Equal(t, Offset{Col: 0, Row: 0}, tile.Selected(0, 9.99))
	assert.Equal(t, Offset{Col: 1, Row: 0}, tile.Selected(10, 0))
	assert.Equal(t, Offset{Col: -1, Row: -1}, tile.Selected(-0.5, -0.5))

	for col := -5; col <= 5; col++ {
		for row := -5; row <= 5; row++ {
			o := Offset{Col: col, Row: row}
			c := tile.Center(o)
			assert.Equal(t, o, tile.Selected(c.X, c.Y))
		}
	}
}

func TestQuadPathIsAxisAligned(t *testing.T) {
	tile := NewQuadTile(10)
	elems := tile.Path(Offset{}).Elements()
	require.Len(t, elems, 5)
	move, ok := elems[0].(gg.MoveTo)
	require.True(t, ok)
	assert.InDelta(t, 0, move.Point.X, 1e-9)
	assert.InDelta(t, 10, move.Point.Y, 1e-9)
	for _, e := range elems[1:4] {
		line, ok := e.(gg.LineTo)
		require.True(t, ok)
		onX := math.Abs(line.Point.X) < 1e-9 || math.Abs(line.Point.X-10) < 1e-9
		onY := math.Abs(line.Point.Y) < 1e-9 || math.Abs(line.Point.Y-10) < 1e-9
		assert.True(t, onX && onY, "vertex %v", line.Point)
	}
}

func TestHexTileOfValues(t *testing.T) {
	tile, err := HexTileOfValues()
	require.NoError(t, err)
	assert.Equal(t, DefaultLayout, tile.Layout())
	assert.Equal(t, float64(DefaultSide), tile.SideLen())

	tile, err = HexTileOfValues("even-q", "12.5")
	require.NoError(t, err)
	assert.Equal(t, EvenQ, tile.Layout())
	assert.Equal(t, 12.5, tile.SideLen())
	assert.Equal(t, Vertical, tile.Orientation())

	bad := [][]string{
		{"sideways"},
		{"odd-r", "ten"},
		{"odd-r", "0"},
		{"odd-r", "-4"},
		{"odd-r", "10", "extra"},
	}
	for _, tokens := range bad {
		_, err := HexTileOfValues(tokens...)
		assert.True(t, errors.Is(err, ErrConstruction), "%v", tokens)
	}
}

func TestQuadTileOfValues(t *testing.T) {
	tile, err := QuadTileOfValues()
	require.NoError(t, err)
	assert.Equal(t, float64(DefaultSide), tile.SideLen())

	tile, err = QuadTileOfValues("4")
	require.NoError(t, err)
	assert.Equal(t, 4.0, tile.SideLen())

	_, err = QuadTileOfValues("4", "5")
	assert.True(t, errors.Is(err, ErrConstruction))
	_, err = QuadTileOfValues("x")
	assert.True(t, errors.Is(err, ErrConstruction))
}

func TestParseTile(t *testing.T) {
	tile, err := ParseTile("Hex", "odd-q", "3")
	require.NoError(t, err)
	assert.Equal(t, KindHex, tile.Kind())

	tile, err = ParseTile("square")
	require.NoError(t, err)
	assert.Equal(t, KindQuad, tile.Kind())

	_, err = ParseTile("tri")
	assert.True(t, errors.Is(err, ErrConstruction))
}

func TestNewHexTileOriented(t *testing.T) {
	assert.Equal(t, OddR, NewHexTileOriented(5, Horizontal).Layout())
	assert.Equal(t, OddQ, NewHexTileOriented(5, Vertical).Layout())
}
