package osm2route

import (
	"go.uber.org/zap"
)

type testNode struct {
	id       NodeID
	lat, lon float64
}

type testWay struct {
	id      WayID
	highway string
	nodes   []NodeID
}

// buildTestData drives the state machine the same way document readers do
func buildTestData(nodes []testNode, ways []testWay) *OSMData {
	sm := newOSMStateMachine(zap.NewNop())
	for _, n := range nodes {
		sm.startNode(n.id, GeoPoint{Lat: n.lat, Lon: n.lon}, true)
		sm.endNode()
	}
	for _, w := range ways {
		sm.startWay(w.id)
		for _, ref := range w.nodes {
			sm.wayNodeRef(ref)
		}
		if w.highway != "" {
			sm.wayTag("highway", w.highway)
		}
		sm.endWay()
	}
	return sm.data
}

// abcdNodes are three points of a straight street plus an isolated one
var abcdNodes = []testNode{
	{id: "A", lat: 38.8800, lon: -77.1000},
	{id: "B", lat: 38.8810, lon: -77.1000},
	{id: "C", lat: 38.8820, lon: -77.1010},
	{id: "D", lat: 38.8790, lon: -77.0990},
}

func abcdData() *OSMData {
	return buildTestData(abcdNodes, []testWay{
		{id: "1", highway: "residential", nodes: []NodeID{"A", "B", "C"}},
		{id: "2", highway: "residential", nodes: []NodeID{"B"}},
	})
}

func pointOf(data *OSMData, id NodeID) GeoPoint {
	node, _ := data.Node(id)
	return node.Point
}
