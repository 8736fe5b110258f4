package gridgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedGrid is wrapped by every grid construction failure.
	ErrMalformedGrid = errors.New("gridgraph: malformed grid")
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = fmt.Errorf("%w: input grid must have at least one row and one column", ErrMalformedGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
	// ErrNegativeCost indicates a cell with a cost below zero.
	ErrNegativeCost = fmt.Errorf("%w: cell costs must be non-negative", ErrMalformedGrid)
	// ErrBadDigit indicates a non-digit character in digit-grid text.
	ErrBadDigit = fmt.Errorf("%w: expected a decimal digit", ErrMalformedGrid)
	// ErrOutOfBounds indicates a coordinate outside the grid extents.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
)
