package osm2route

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// VertexID is a compact vertex identifier in range [0, verticesNum)
type VertexID int64

// NoVertex marks missing predecessor
const NoVertex = VertexID(-1)

type EdgeID int64

// Edge is an undirected connection between two kept nodes of the same road
type Edge struct {
	ID         EdgeID
	RoadID     WayID
	Source     VertexID
	Target     VertexID
	CostMeters float64
	Geom       []GeoPoint
}

type halfEdge struct {
	to   VertexID
	cost float64
	edge EdgeID
}

// Graph is weighted undirected multigraph over compact vertices. Parallel edges are allowed
type Graph struct {
	Edges       []Edge
	adjacency   [][]halfEdge
	verticesNum int
}

// NewGraph returns graph with verticesNum isolated vertices
func NewGraph(verticesNum int) *Graph {
	return &Graph{
		Edges:       make([]Edge, 0),
		adjacency:   make([][]halfEdge, verticesNum),
		verticesNum: verticesNum,
	}
}

// VerticesNum returns size of the vertex space
func (graph *Graph) VerticesNum() int {
	return graph.verticesNum
}

// EdgesNum returns number of undirected edges
func (graph *Graph) EdgesNum() int {
	return len(graph.Edges)
}

func (graph *Graph) hasVertex(v VertexID) bool {
	return v >= 0 && int(v) < graph.verticesNum
}

// AddEdge connects source and target in both directions. Self-loops are rejected
func (graph *Graph) AddEdge(edge Edge) error {
	if !graph.hasVertex(edge.Source) {
		return errors.Wrapf(ErrVertexOutOfRange, "source %d", edge.Source)
	}
	if !graph.hasVertex(edge.Target) {
		return errors.Wrapf(ErrVertexOutOfRange, "target %d", edge.Target)
	}
	if edge.Source == edge.Target {
		return fmt.Errorf("Self-loop at vertex %d", edge.Source)
	}
	if edge.CostMeters < 0 {
		return fmt.Errorf("Negative cost %f between %d and %d", edge.CostMeters, edge.Source, edge.Target)
	}
	edge.ID = EdgeID(len(graph.Edges))
	graph.Edges = append(graph.Edges, edge)
	graph.adjacency[edge.Source] = append(graph.adjacency[edge.Source], halfEdge{to: edge.Target, cost: edge.CostMeters, edge: edge.ID})
	graph.adjacency[edge.Target] = append(graph.adjacency[edge.Target], halfEdge{to: edge.Source, cost: edge.CostMeters, edge: edge.ID})
	return nil
}

// buildGraph emits an edge for every pair of consecutive vertices of every simplified road
func buildGraph(data *OSMData, roads []*Road, verticesNum int, logger *zap.Logger) (*Graph, error) {
	st := time.Now()
	graph := NewGraph(verticesNum)
	selfLoops := 0
	for _, road := range roads {
		for i := 1; i < len(road.Vertices); i++ {
			prev, curr := road.Vertices[i-1], road.Vertices[i]
			source, err := compactIDOf(data, prev.NodeID)
			if err != nil {
				return nil, errors.Wrapf(err, "Way ID: '%s'", road.ID)
			}
			target, err := compactIDOf(data, curr.NodeID)
			if err != nil {
				return nil, errors.Wrapf(err, "Way ID: '%s'", road.ID)
			}
			if source == target {
				selfLoops++
				logger.Debug("Skipping self-loop", zap.String("way_id", string(road.ID)), zap.Int64("vertex", int64(source)))
				continue
			}
			geom := make([]GeoPoint, 0, curr.Index-prev.Index+1)
			for _, nodeID := range road.Nodes[prev.Index : curr.Index+1] {
				node, _ := data.nodes.get(nodeID)
				geom = append(geom, node.Point)
			}
			err = graph.AddEdge(Edge{
				RoadID:     road.ID,
				Source:     source,
				Target:     target,
				CostMeters: curr.Distance,
				Geom:       geom,
			})
			if err != nil {
				return nil, errors.Wrapf(err, "Way ID: '%s'", road.ID)
			}
		}
	}
	logger.Info("Graph has been built",
		zap.Int("vertices", graph.VerticesNum()),
		zap.Int("edges", graph.EdgesNum()),
		zap.Int("self_loops", selfLoops),
		zap.Duration("took", time.Since(st)),
	)
	if graph.EdgesNum() == 0 {
		return nil, ErrEmptyGraph
	}
	return graph, nil
}

func compactIDOf(data *OSMData, nodeID NodeID) (VertexID, error) {
	node, ok := data.nodes.get(nodeID)
	if !ok {
		return NoVertex, errors.Wrapf(ErrUnresolvedNode, "No such node '%s'", nodeID)
	}
	if !node.hasCompactID {
		return NoVertex, errors.Wrapf(ErrUnknownNode, "Node '%s'", nodeID)
	}
	return node.compactID, nil
}
