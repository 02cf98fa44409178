package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrStartCount indicates the maze text does not hold exactly one start 'A'.
	ErrStartCount = errors.New("gridgraph: maze must have exactly one starting point")
	// ErrGoalCount indicates the maze text does not hold exactly one goal 'B'.
	ErrGoalCount = errors.New("gridgraph: maze must have exactly one goal")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrBlockedEndpoint indicates the start or goal sits on a wall.
	ErrBlockedEndpoint = errors.New("gridgraph: start and goal must be open cells")
	// ErrNoPath indicates no open route exists between two coordinates.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)
