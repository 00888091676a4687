package osm2route

import (
	"container/heap"
	"math"

	"github.com/pkg/errors"
)

// ShortestPathTree is the result of single-source search. Source is its own predecessor,
// unreachable vertices have NoVertex predecessor and infinite distance.
type ShortestPathTree struct {
	Source       VertexID
	Predecessors []VertexID
	Distances    []float64
}

// Reachable reports whether there is a path from tree source to v
func (tree *ShortestPathTree) Reachable(v VertexID) bool {
	if v < 0 || int(v) >= len(tree.Predecessors) {
		return false
	}
	return tree.Predecessors[v] != NoVertex
}

// Dijkstra computes shortest paths from source to every vertex of the graph
func Dijkstra(graph *Graph, source VertexID) (*ShortestPathTree, error) {
	if graph == nil || graph.EdgesNum() == 0 {
		return nil, ErrEmptyGraph
	}
	if !graph.hasVertex(source) {
		return nil, errors.Wrapf(ErrVertexOutOfRange, "source %d, vertices %d", source, graph.VerticesNum())
	}
	tree := &ShortestPathTree{
		Source:       source,
		Predecessors: make([]VertexID, graph.VerticesNum()),
		Distances:    make([]float64, graph.VerticesNum()),
	}
	for i := range tree.Predecessors {
		tree.Predecessors[i] = NoVertex
		tree.Distances[i] = math.Inf(1)
	}
	tree.Predecessors[source] = source
	tree.Distances[source] = 0

	settled := make([]bool, graph.VerticesNum())
	pq := &vertexQueue{}
	heap.Init(pq)
	heap.Push(pq, &vertexQueueItem{vertex: source, distance: 0})
	for pq.Len() > 0 {
		item := heap.Pop(pq).(*vertexQueueItem)
		current := item.vertex
		// Outdated entry: vertex has been reached with smaller distance already
		if settled[current] {
			continue
		}
		settled[current] = true
		for _, e := range graph.adjacency[current] {
			if settled[e.to] {
				continue
			}
			tentative := tree.Distances[current] + e.cost
			if tentative < tree.Distances[e.to] {
				tree.Distances[e.to] = tentative
				tree.Predecessors[e.to] = current
				heap.Push(pq, &vertexQueueItem{vertex: e.to, distance: tentative})
			}
		}
	}
	return tree, nil
}

type vertexQueueItem struct {
	vertex   VertexID
	distance float64
}

type vertexQueue []*vertexQueueItem

func (pq vertexQueue) Len() int           { return len(pq) }
func (pq vertexQueue) Less(i, j int) bool { return pq[i].distance < pq[j].distance }
func (pq vertexQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *vertexQueue) Push(x interface{}) {
	item := x.(*vertexQueueItem)
	*pq = append(*pq, item)
}

func (pq *vertexQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}
