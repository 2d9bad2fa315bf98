// SPDX-License-Identifier: MIT

package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadConnectivity indicates a Connectivity other than Conn4 or Conn8.
	ErrBadConnectivity = errors.New("gridgraph: connectivity must be Conn4 or Conn8")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Point addresses a cell by column X and row Y. It is the vertex id of the store.
type Point struct {
	X, Y int
}

// String renders the point as "x,y".
func (p Point) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// Cell represents a single grid cell with its coordinates and stored value.
// It is the vertex data searches see.
type Cell struct {
	Point
	Value int // Original grid value at (X, Y)
}

// GridOptions contains tunable parameters for the grid store.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered passable.
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// UnknownValue, when non-nil, marks cells whose entry cost is unknown.
	// Such cells are passable; the edges into them carry no weight.
	UnknownValue *int
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are passable), Conn=Conn4, no unknown marker.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	LandThreshold   int
	unknown         *int
	neighborOffsets [][2]int
}
