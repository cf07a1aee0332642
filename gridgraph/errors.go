package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates map rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownGlyph indicates a map character that names no cell state.
	ErrUnknownGlyph = errors.New("gridgraph: unknown map glyph")
	// ErrDuplicateEndpoint indicates a map declaring more than one start or end.
	ErrDuplicateEndpoint = errors.New("gridgraph: start and end may appear at most once")
	// ErrNotReady indicates that start and end are not both placed.
	ErrNotReady = errors.New("gridgraph: start and end must both be set")
)
