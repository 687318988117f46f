package turtle

import "errors"

// Errors returned by New and NewShapeRegistry.
var (
	// ErrInvalidDimensions is returned when the canvas width or height is
	// not positive.
	ErrInvalidDimensions = errors.New("turtle: invalid dimensions")

	// ErrSurfaceMismatch is returned when the ink and overlay surfaces
	// differ in size.
	ErrSurfaceMismatch = errors.New("turtle: ink and overlay surfaces differ in size")

	// ErrNoFallbackShape is returned when a shape registry lacks a usable
	// fallback outline.
	ErrNoFallbackShape = errors.New("turtle: fallback shape not registered")
)
