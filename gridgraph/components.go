// SPDX-License-Identifier: MIT

package gridgraph

// ConnectedComponents finds all contiguous regions of passable cells
// according to gg.Conn connectivity, scanning rows top to bottom.
// Each component lists its cells in BFS order from its first cell.
// Two points in different components can never be joined by a search.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Point {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]Point

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) || seen[gg.index(x, y)] {
				continue
			}
			seen[gg.index(x, y)] = true
			queue := []Point{{x, y}}
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range gg.neighborOffsets {
					vx, vy := u.X+d[0], u.Y+d[1]
					if !gg.Passable(vx, vy) {
						continue
					}
					if vi := gg.index(vx, vy); !seen[vi] {
						seen[vi] = true
						queue = append(queue, Point{vx, vy})
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// ComponentOf returns a map from every passable point to the index of its
// component in ConnectedComponents order.
func (gg *GridGraph) ComponentOf() map[Point]int {
	out := make(map[Point]int)
	for i, comp := range gg.ConnectedComponents() {
		for _, p := range comp {
			out[p] = i
		}
	}

	return out
}
