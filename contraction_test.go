package osm2route

import (
	"fmt"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// gridNetwork is 3x3 grid of streets plus one detached street
func gridNetwork(t *testing.T) *RoadNetwork {
	t.Helper()
	nodes := make([]testNode, 0, 11)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			nodes = append(nodes, testNode{id: NodeID(fmt.Sprintf("g%d%d", r, c)), lat: 0.001 * float64(r), lon: 0.0013 * float64(c)})
		}
	}
	nodes = append(nodes, testNode{id: "x", lat: 1, lon: 1}, testNode{id: "y", lat: 1.001, lon: 1})
	ways := make([]testWay, 0, 7)
	for i := 0; i < 3; i++ {
		row := []NodeID{}
		col := []NodeID{}
		for j := 0; j < 3; j++ {
			row = append(row, NodeID(fmt.Sprintf("g%d%d", i, j)))
			col = append(col, NodeID(fmt.Sprintf("g%d%d", j, i)))
		}
		ways = append(ways, testWay{id: WayID(fmt.Sprintf("r%d", i)), highway: "residential", nodes: row})
		ways = append(ways, testWay{id: WayID(fmt.Sprintf("c%d", i)), highway: "residential", nodes: col})
	}
	ways = append(ways, testWay{id: "detached", highway: "residential", nodes: []NodeID{"x", "y"}})
	net, err := NewRoadNetwork(buildTestData(nodes, ways), DefaultRoadConfiguration(), true, nil)
	require.NoError(t, err)
	return net
}

func TestContractionEngineMatchesDijkstra(t *testing.T) {
	net := gridNetwork(t)
	engine, err := NewContractionEngine(net)
	require.NoError(t, err)

	detachedX, err := net.VertexOf("x")
	require.NoError(t, err)
	detachedY, err := net.VertexOf("y")
	require.NoError(t, err)
	isDetached := func(v VertexID) bool { return v == detachedX || v == detachedY }

	for s := 0; s < net.VerticesNum(); s++ {
		for d := 0; d < net.VerticesNum(); d++ {
			source, target := VertexID(s), VertexID(d)
			chPath, chErr := engine.ShortestPath(source, target)
			dPath, dErr := net.ShortestPath(source, target)
			if isDetached(source) != isDetached(target) {
				if !errors.Is(chErr, ErrUnreachable) || !errors.Is(dErr, ErrUnreachable) {
					t.Errorf("Path %d -> %d must be unreachable, but got %v and %v", source, target, chErr, dErr)
				}
				continue
			}
			require.NoError(t, chErr)
			require.NoError(t, dErr)
			if math.Abs(chPath.Total-dPath.Total) > 1e-6 {
				t.Errorf("Distance %d -> %d must be %f, but got %f", source, target, dPath.Total, chPath.Total)
			}
			if chPath.Vertices[0] != source || chPath.Vertices[len(chPath.Vertices)-1] != target {
				t.Errorf("Path %d -> %d has wrong ends: %v", source, target, chPath.Vertices)
			}
		}
	}
}

func TestContractionEngineOutOfRange(t *testing.T) {
	net := gridNetwork(t)
	engine, err := NewContractionEngine(net)
	require.NoError(t, err)
	_, err = engine.ShortestPath(0, VertexID(net.VerticesNum()))
	if !errors.Is(err, ErrVertexOutOfRange) {
		t.Errorf("Target out of range must fail, but got %v", err)
	}
}
