// SPDX-License-Identifier: MIT

package path

// GraphPath is a route stored destination-first: Nodes[0] is where the
// search ended and Nodes[len-1] is where it started.
type GraphPath[ID comparable, D any] struct {
	Nodes []Node[ID, D]
}

// Len returns the number of vertices on the path (edges + 1).
func (p GraphPath[ID, D]) Len() int { return len(p.Nodes) }

// IDs returns the vertex ids in stored (destination-first) order.
func (p GraphPath[ID, D]) IDs() []ID {
	ids := make([]ID, len(p.Nodes))
	for i, n := range p.Nodes {
		ids[i] = n.ID
	}

	return ids
}

// Forward returns the vertex ids from source to destination.
func (p GraphPath[ID, D]) Forward() []ID {
	ids := make([]ID, len(p.Nodes))
	for i, n := range p.Nodes {
		ids[len(p.Nodes)-1-i] = n.ID
	}

	return ids
}

// Destination returns the last vertex reached. Zero value on an empty path.
func (p GraphPath[ID, D]) Destination() ID {
	var zero ID
	if len(p.Nodes) == 0 {
		return zero
	}

	return p.Nodes[0].ID
}

// Source returns the start vertex. Zero value on an empty path.
func (p GraphPath[ID, D]) Source() ID {
	var zero ID
	if len(p.Nodes) == 0 {
		return zero
	}

	return p.Nodes[len(p.Nodes)-1].ID
}

// Cost returns the payload recorded at the destination.
func (p GraphPath[ID, D]) Cost() D {
	var zero D
	if len(p.Nodes) == 0 {
		return zero
	}

	return p.Nodes[0].Payload
}
