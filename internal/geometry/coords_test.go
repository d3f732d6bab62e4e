package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexAddition(t *testing.T) {
	assert.Equal(t, Hex{}, Hex{Q: 1, R: 0}.Add(Hex{Q: -1, R: 0}))

	samples := []Hex{{0, 0}, {1, -1}, {-3, 2}, {7, 5}, {-4, -9}}
	for _, a := range samples {
		for _, b := range samples {
			assert.Equal(t, a.Add(b), b.Add(a), "commutative %v %v", a, b)
			for _, c := range samples {
				assert.Equal(t, a.Add(b).Add(c), a.Add(b.Add(c)), "associative %v %v %v", a, b, c)
			}
		}
	}
}

func TestHexCubeInvariant(t *testing.T) {
	for q := -10; q <= 10; q++ {
		for r := -10; r <= 10; r++ {
			h := Hex{Q: q, R: r}
			require.Zero(t, h.Q+h.R+h.S())
		}
	}
}

func TestHexDistance(t *testing.T) {
	origin := Hex{}
	assert.Equal(t, 0, origin.Distance(origin))
	for _, v := range hexVectors {
		assert.Equal(t, 1, origin.Distance(v))
	}
	assert.Equal(t, 3, Hex{Q: 3, R: -1}.Distance(Hex{Q: 0, R: 1}))
}

func TestFractionalHexRound(t *testing.T) {
	tests := []struct {
		name string
		in   FractionalHex
		want Hex
	}{
		{"integral", FractionalHex{Q: 2, R: -3}, Hex{Q: 2, R: -3}},
		{"q error largest", FractionalHex{Q: 0.6, R: -0.3}, Hex{Q: 0, R: 0}},
		{"r rebuilt", FractionalHex{Q: 5.1, R: 5.5}, Hex{Q: 5, R: 6}},
		{"q rebuilt", FractionalHex{Q: 5.5, R: 5.1}, Hex{Q: 6, R: 5}},
		{"q and r tie favours r", FractionalHex{Q: 0.4, R: 0.4}, Hex{Q: 0, R: 1}},
		{"half tie", FractionalHex{Q: 0.5, R: 0.5}, Hex{Q: 1, R: 0}},
		{"negative", FractionalHex{Q: -2.2, R: -0.9}, Hex{Q: -2, R: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Round()
			assert.Equal(t, tt.want, got)
			assert.Zero(t, got.Q+got.R+got.S())
		})
	}
}

func TestFractionalHexRoundKeepsCubeInvariant(t *testing.T) {
	for qi := -40; qi <= 40; qi++ {
		for ri := -40; ri <= 40; ri++ {
			f := FractionalHex{Q: float64(qi) / 7, R: float64(ri) / 9}
			h := f.Round()
			require.Zero(t, h.Q+h.R+h.S(), "rounding %+v", f)
			require.LessOrEqual(t, absFloat(float64(h.Q)-f.Q), 1.0)
			require.LessOrEqual(t, absFloat(float64(h.R)-f.R), 1.0)
		}
	}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
