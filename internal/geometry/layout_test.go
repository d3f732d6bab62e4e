package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestLayoutOffsetRoundTrip(t *testing.T) {
	for _, layout := range Layouts {
		t.Run(layout.String(), func(t *testing.T) {
			for a := -25; a <= 25; a++ {
				for b := -25; b <= 25; b++ {
					h := Hex{Q: a, R: b}
					require.Equal(t, h, layout.ToHex(layout.ToOffset(h)), "hex %v", h)
					o := Offset{Col: a, Row: b}
					require.Equal(t, o, layout.ToOffset(layout.ToHex(o)), "offset %v", o)
				}
			}
		})
	}
}

func TestLayoutKnownOffsets(t *testing.T) {
	tests := []struct {
		layout Layout
		hex    Hex
		want   Offset
	}{
		{OddR, Hex{Q: 0, R: 1}, Offset{Col: 0, Row: 1}},
		{OddR, Hex{Q: -1, R: 3}, Offset{Col: 0, Row: 3}},
		{OddR, Hex{Q: 0, R: -1}, Offset{Col: -1, Row: -1}},
		{EvenR, Hex{Q: 0, R: 1}, Offset{Col: 1, Row: 1}},
		{EvenR, Hex{Q: 0, R: -1}, Offset{Col: 0, Row: -1}},
		{OddQ, Hex{Q: 1, R: 0}, Offset{Col: 1, Row: 0}},
		{OddQ, Hex{Q: 3, R: -1}, Offset{Col: 3, Row: 0}},
		{EvenQ, Hex{Q: 1, R: 0}, Offset{Col: 1, Row: 1}},
		{EvenQ, Hex{Q: -1, R: 0}, Offset{Col: -1, Row: 0}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.layout.ToOffset(tt.hex), "%v %v", tt.layout, tt.hex)
	}
}

func TestLayoutMatricesAreInverse(t *testing.T) {
	for _, layout := range Layouts {
		for _, side := range []float64{1, 7.5, 25} {
			var product mat.Dense
			product.Mul(layout.HexToPixelMatrix(side), layout.PixelToHexMatrix(side))
			identity := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
			assert.True(t, mat.EqualApprox(&product, identity, 1e-12), "%v side %v", layout, side)
		}
	}
}

func TestLayoutHexToPixel(t *testing.T) {
	p := OddR.HexToPixel(Hex{Q: 1, R: 0}, 10)
	assert.InDelta(t, 10*math.Sqrt(3), p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)

	p = EvenR.HexToPixel(Hex{Q: 0, R: 2}, 10)
	assert.InDelta(t, 10*math.Sqrt(3), p.X, 1e-9)
	assert.InDelta(t, 30, p.Y, 1e-9)

	p = OddQ.HexToPixel(Hex{Q: 1, R: 0}, 10)
	assert.InDelta(t, 15, p.X, 1e-9)
	assert.InDelta(t, 5*math.Sqrt(3), p.Y, 1e-9)
}

func TestLayoutPixelRoundTrip(t *testing.T) {
	for _, layout := range Layouts {
		for _, side := range []float64{1, 7.5, 25} {
			for q := -15; q <= 15; q++ {
				for r := -15; r <= 15; r++ {
					h := Hex{Q: q, R: r}
					p := layout.HexToPixel(h, side)
					require.Equal(t, h, layout.PixelToHex(p.X, p.Y, side), "%v side %v", layout, side)
				}
			}
		}
	}
}

func TestLayoutStartAngleAndOrientation(t *testing.T) {
	assert.Equal(t, math.Pi/2, OddR.StartAngle())
	assert.Equal(t, math.Pi/2, EvenR.StartAngle())
	assert.Equal(t, math.Pi, OddQ.StartAngle())
	assert.Equal(t, math.Pi, EvenQ.StartAngle())
	assert.Equal(t, Horizontal, EvenR.Orientation())
	assert.Equal(t, Vertical, EvenQ.Orientation())
}

func TestParseLayout(t *testing.T) {
	for _, name := range []string{"odd-r", "ODD_R", " Odd-R "} {
		l, err := ParseLayout(name)
		require.NoError(t, err)
		assert.Equal(t, OddR, l)
	}
	l, err := ParseLayout("even_q")
	require.NoError(t, err)
	assert.Equal(t, EvenQ, l)

	_, err = ParseLayout("diagonal")
	assert.True(t, errors.Is(err, ErrConstruction))
}
