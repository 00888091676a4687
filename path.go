package osm2route

import (
	"github.com/pkg/errors"
)

// PathEdge is a single hop of a path
type PathEdge struct {
	From     VertexID
	To       VertexID
	Distance float64
}

// Path is an ordered route from source to target with coordinates of every visited vertex
type Path struct {
	Vertices []VertexID
	NodeIDs  []NodeID
	Points   []GeoPoint
	Edges    []PathEdge
	// Total is the sum of hop distances in meters
	Total float64
}

// ReconstructPath walks predecessors back from target to the tree source.
// The walk is bounded by the number of vertices, so broken trees can't loop forever.
func ReconstructPath(tree *ShortestPathTree, target VertexID) ([]VertexID, error) {
	verticesNum := len(tree.Predecessors)
	if target < 0 || int(target) >= verticesNum {
		return nil, errors.Wrapf(ErrVertexOutOfRange, "target %d, vertices %d", target, verticesNum)
	}
	vertices := []VertexID{target}
	current := target
	for steps := 0; current != tree.Source; steps++ {
		if steps >= verticesNum {
			return nil, errors.Wrapf(ErrUnreachable, "no way back from %d to %d in %d steps", target, tree.Source, verticesNum)
		}
		prev := tree.Predecessors[current]
		if prev == NoVertex {
			return nil, errors.Wrapf(ErrUnreachable, "from %d to %d", tree.Source, target)
		}
		current = prev
		vertices = append(vertices, current)
	}
	for i, j := 0, len(vertices)-1; i < j; i, j = i+1, j-1 {
		vertices[i], vertices[j] = vertices[j], vertices[i]
	}
	return vertices, nil
}

// minCostBetween returns the cheapest of (possibly parallel) edges connecting a and b
func (graph *Graph) minCostBetween(a, b VertexID) (float64, bool) {
	found := false
	best := 0.0
	for _, e := range graph.adjacency[a] {
		if e.to != b {
			continue
		}
		if !found || e.cost < best {
			best = e.cost
			found = true
		}
	}
	return best, found
}
