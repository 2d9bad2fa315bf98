// SPDX-License-Identifier: MIT

// Package gridgraph treats a 2D grid of integer cells as a vertex store, so
// every search in this module runs on maps without building a graph first.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - *GridGraph implements store.VertexStore[Point, Cell]: passable cells are
//     vertices, neighbours follow Conn4 or Conn8 in clockwise order from north.
//   - Entering a cell costs its value; diagonal moves cost value×√2.
//   - GridOptions.UnknownValue marks cells of unknown cost (fog of war); edges
//     into them are unknown and follow the search's missing-weight policy.
//   - Manhattan, Euclidean and Octile heuristics for astar, scaled by the
//     cheapest known cell so they never overestimate.
//   - ConnectedComponents groups passable cells into regions.
//   - ToCoreGraph materialises the same graph as a *core.Graph.
//
// Complexity:
//
//   - Lookup:              O(d), d = 4 or 8.
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//   - ToCoreGraph:         O(W×H×d), Memory: O(W×H + E).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadConnectivity: Conn is neither Conn4 nor Conn8.
//   - Lookup of a water or out-of-bounds cell wraps store.ErrInvalidEntity.
package gridgraph
