package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned when a grid size is not positive
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrInvalidProbability is returned when a probability lies outside [0, 1]
	ErrInvalidProbability = errors.New("invalid probability")
	// ErrOutOfBounds is returned when a pattern does not fit inside the grid
	ErrOutOfBounds = errors.New("pattern out of bounds")
)
