package osm2route

import (
	"time"

	"github.com/LdDl/ch"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ContractionEngine answers point-to-point queries on contracted copy of the road graph
type ContractionEngine struct {
	net   *RoadNetwork
	graph ch.Graph
}

// NewContractionEngine contracts road graph of the network. Parallel edges collapse into the cheapest one
func NewContractionEngine(net *RoadNetwork) (*ContractionEngine, error) {
	if net.graph == nil {
		return nil, ErrEmptyGraph
	}
	st := time.Now()
	engine := &ContractionEngine{
		net:   net,
		graph: ch.Graph{},
	}
	for v := 0; v < net.graph.VerticesNum(); v++ {
		err := engine.graph.CreateVertex(int64(v))
		if err != nil {
			return nil, errors.Wrap(err, "Can not create vertex")
		}
	}
	added := 0
	for v := 0; v < net.graph.VerticesNum(); v++ {
		source := VertexID(v)
		seen := make(map[VertexID]struct{})
		for _, e := range net.graph.adjacency[source] {
			if _, ok := seen[e.to]; ok {
				continue
			}
			seen[e.to] = struct{}{}
			cost, _ := net.graph.minCostBetween(source, e.to)
			err := engine.graph.AddEdge(int64(source), int64(e.to), cost)
			if err != nil {
				return nil, errors.Wrap(err, "Can not wrap Source and Target vertices as Edge")
			}
			added++
		}
	}
	engine.graph.PrepareContractionHierarchies()
	net.logger.Info("Contraction hierarchies have been prepared",
		zap.Int("vertices", net.graph.VerticesNum()),
		zap.Int("directed_edges", added),
		zap.Duration("took", time.Since(st)),
	)
	return engine, nil
}

// ShortestPath queries contracted graph. Result is the same path type Dijkstra produces
func (engine *ContractionEngine) ShortestPath(source, target VertexID) (*Path, error) {
	n := engine.net.graph.VerticesNum()
	if source < 0 || int(source) >= n {
		return nil, errors.Wrapf(ErrVertexOutOfRange, "source %d, vertices %d", source, n)
	}
	if target < 0 || int(target) >= n {
		return nil, errors.Wrapf(ErrVertexOutOfRange, "target %d, vertices %d", target, n)
	}
	if source == target {
		return engine.net.NewPath([]VertexID{source})
	}
	cost, vertices := engine.graph.ShortestPath(int64(source), int64(target))
	if cost < 0 || len(vertices) == 0 {
		return nil, errors.Wrapf(ErrUnreachable, "from %d to %d", source, target)
	}
	path := make([]VertexID, len(vertices))
	for i, v := range vertices {
		path[i] = VertexID(v)
	}
	return engine.net.NewPath(path)
}

// ExportShortcutsToFile writes shortcuts produced by contraction
func (engine *ContractionEngine) ExportShortcutsToFile(fname string) error {
	return engine.graph.ExportShortcutsToFile(fname)
}
