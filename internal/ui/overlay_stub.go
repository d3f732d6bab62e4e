//go:build !ebiten

package ui

import (
	"tilelife/internal/core"
	"tilelife/internal/geometry"
	"tilelife/internal/render"
)

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update(*render.Viewport) {}

// Hovered never reports a tile in headless builds.
func (o *Overlay) Hovered() (geometry.Offset, bool) { return geometry.Offset{}, false }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, *render.Viewport, core.Rect) {}
