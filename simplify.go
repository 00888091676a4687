package osm2route

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// simplifyRoads reduces every road to its first node, last node and junctions (nodes referenced by 2+ roads).
// Geometry between kept nodes collapses into RoadVertex.Distance.
//
// Kept nodes get compact vertex IDs from a single counter shared by all roads, so a junction
// keeps the ID assigned by the first road reaching it. Returned slice maps compact ID to node ID.
func simplifyRoads(data *OSMData, roads []*Road, logger *zap.Logger) ([]NodeID, error) {
	st := time.Now()
	vertexNodes := make([]NodeID, 0)
	for _, road := range roads {
		road.Vertices = make([]RoadVertex, 0, 2)
		distance := 0.0
		var lastPoint GeoPoint
		hasLastPoint := false
		for i, nodeID := range road.Nodes {
			node, ok := data.nodes.get(nodeID)
			if !ok || !node.hasPoint {
				return nil, errors.Wrapf(ErrUnresolvedNode, "Can't simplify node '%s'. Way ID: '%s'", nodeID, road.ID)
			}
			if hasLastPoint {
				distance += greatCircleMeters(node.Point, lastPoint)
			}
			if node.useCount >= 2 || i == len(road.Nodes)-1 || i == 0 {
				node.kept = true
				node.segmentDistance = distance
				road.Vertices = append(road.Vertices, RoadVertex{NodeID: nodeID, Index: i, Distance: distance})
				if !node.hasCompactID {
					node.compactID = VertexID(len(vertexNodes))
					node.hasCompactID = true
					vertexNodes = append(vertexNodes, nodeID)
				}
				distance = 0.0
			}
			lastPoint = node.Point
			hasLastPoint = true
		}
	}
	logger.Info("Roads have been simplified",
		zap.Int("vertices", len(vertexNodes)),
		zap.Duration("took", time.Since(st)),
	)
	return vertexNodes, nil
}
