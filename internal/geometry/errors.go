package geometry

import "errors"

var (
	// ErrConstruction reports invalid arguments supplied when building a
	// tile or polygon from configuration values.
	ErrConstruction = errors.New("geometry: invalid construction arguments")

	// ErrInvalidDirection reports a direction that the tiling does not
	// define, such as north on a pointy-top hex grid.
	ErrInvalidDirection = errors.New("geometry: invalid direction for tiling")
)
