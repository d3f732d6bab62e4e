package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertColorNear allows one step of rounding per channel between the
// float palette and the 8-bit raster.
func assertColorNear(t *testing.T, want color.RGBA, img image.Image, x, y int) {
	t.Helper()
	r, g, b, a := img.At(x, y).RGBA()
	got := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
	assert.InDelta(t, want.R, got.R, 1, "red at (%d,%d)", x, y)
	assert.InDelta(t, want.G, got.G, 1, "green at (%d,%d)", x, y)
	assert.InDelta(t, want.B, got.B, 1, "blue at (%d,%d)", x, y)
	assert.InDelta(t, want.A, got.A, 1, "alpha at (%d,%d)", x, y)
}
