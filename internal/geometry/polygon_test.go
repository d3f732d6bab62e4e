package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolygonConstructorsAgree(t *testing.T) {
	for _, n := range []int{3, 4, 5, 6, 8} {
		for _, r := range []float64{0.5, 1, 13.25, 400} {
			p := PolygonOfRadius(n, r)
			assert.InDelta(t, r, PolygonOfSide(n, p.SideLen()).Radius(), 1e-9, "n=%d r=%v", n, r)
			assert.InDelta(t, r, PolygonOfApothem(n, p.Apothem()).Radius(), 1e-9, "n=%d r=%v", n, r)
		}
	}
}

func TestPolygonMetrics(t *testing.T) {
	sq := PolygonOfSide(4, 2)
	assert.InDelta(t, math.Sqrt2, sq.Radius(), 1e-12)
	assert.InDelta(t, 1, sq.Apothem(), 1e-12)
	assert.InDelta(t, 4, sq.Area(), 1e-12)
	assert.InDelta(t, 8, sq.Perimeter(), 1e-12)
	assert.InDelta(t, math.Pi/2, sq.InteriorAngle(), 1e-12)
	assert.InDelta(t, math.Pi/2, sq.ExteriorAngle(), 1e-12)

	hex := PolygonOfSide(6, 10)
	assert.InDelta(t, 10, hex.Radius(), 1e-12)
	assert.InDelta(t, 5*math.Sqrt(3), hex.Apothem(), 1e-12)
	assert.InDelta(t, 2*math.Pi/3, hex.InteriorAngle(), 1e-12)
	assert.InDelta(t, 150*math.Sqrt(3), hex.Area(), 1e-9)

	tri := PolygonOfSide(3, 1)
	assert.InDelta(t, math.Sqrt(3)/4, tri.Area(), 1e-12)
}

func TestPolygonVertices(t *testing.T) {
	p := PolygonOfRadius(6, 10)
	center := gg.Pt(100, 50)
	vs := p.Vertices(center, math.Pi/2)
	require.Len(t, vs, 6)

	assert.InDelta(t, 100, vs[0].X, 1e-9)
	assert.InDelta(t, 60, vs[0].Y, 1e-9)
	for i, v := range vs {
		assert.InDelta(t, 10, v.Distance(center), 1e-9, "vertex %d", i)
		next := vs[(i+1)%len(vs)]
		assert.InDelta(t, p.SideLen(), v.Distance(next), 1e-9, "edge %d", i)
	}
}

func TestPolygonPath(t *testing.T) {
	p := PolygonOfSide(5, 3)
	path := p.Path(gg.Pt(0, 0), 0)
	elems := path.Elements()
	require.Len(t, elems, 6)

	vs := p.Vertices(gg.Pt(0, 0), 0)
	move, ok := elems[0].(gg.MoveTo)
	require.True(t, ok)
	assert.Equal(t, vs[0], move.Point)
	for i := 1; i < 5; i++ {
		line, ok := elems[i].(gg.LineTo)
		require.True(t, ok, "element %d", i)
		assert.Equal(t, vs[i], line.Point)
	}
	_, ok = elems[5].(gg.Close)
	assert.True(t, ok)
}

func TestNewPolygonRejectsBadValues(t *testing.T) {
	_, err := NewPolygon(2, 10)
	assert.True(t, errors.Is(err, ErrConstruction))
	_, err = NewPolygon(6, 0)
	assert.True(t, errors.Is(err, ErrConstruction))
	_, err = NewPolygon(6, math.NaN())
	assert.True(t, errors.Is(err, ErrConstruction))

	p, err := NewPolygon(6, 4)
	require.NoError(t, err)
	assert.InDelta(t, 4, p.SideLen(), 1e-12)
}
