package osm2route

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const noname = "<noname>"

// RoadVertex is a kept node of a road. Index is position of the node in Road.Nodes,
// Distance is measured in meters from the previous kept node of the same road
type RoadVertex struct {
	NodeID   NodeID
	Index    int
	Distance float64
}

// Road is a way tagged as a drivable street
type Road struct {
	ID       WayID
	Name     string
	Highway  string
	Nodes    []NodeID
	Vertices []RoadVertex
}

// extractRoads collects ways accepted by cfg in order of appearance and counts
// how many roads reference every node.
//
// In strict mode reference to unknown node (or node without coordinates) is an error.
// Otherwise such road is skipped and its nodes are not counted.
func extractRoads(data *OSMData, cfg RoadConfiguration, strict bool, logger *zap.Logger) ([]*Road, error) {
	st := time.Now()
	roads := make([]*Road, 0)
	skipped := 0
	for _, way := range data.Ways() {
		if !cfg.Accepts(way) {
			continue
		}
		if err := checkWayNodes(data, way); err != nil {
			if strict {
				return nil, err
			}
			logger.Warn("Skipping road with unresolved nodes", zap.String("way_id", string(way.ID)), zap.Error(err))
			skipped++
			continue
		}
		road := &Road{
			ID:      way.ID,
			Name:    way.Tag("name", noname),
			Highway: way.Tags[cfg.EntityName],
			Nodes:   make([]NodeID, len(way.Nodes)),
		}
		copy(road.Nodes, way.Nodes)
		for _, nodeID := range road.Nodes {
			node, _ := data.nodes.get(nodeID)
			node.useCount++
		}
		roads = append(roads, road)
	}
	logger.Info("Roads have been extracted",
		zap.Int("roads", len(roads)),
		zap.Int("skipped", skipped),
		zap.Strings("classes", cfg.Tags),
		zap.Duration("took", time.Since(st)),
	)
	return roads, nil
}

func checkWayNodes(data *OSMData, way *Way) error {
	for _, nodeID := range way.Nodes {
		node, ok := data.nodes.get(nodeID)
		if !ok {
			return errors.Wrapf(ErrUnresolvedNode, "No such node '%s'. Way ID: '%s'", nodeID, way.ID)
		}
		if !node.hasPoint {
			return errors.Wrapf(ErrUnresolvedNode, "Node '%s' has no coordinates. Way ID: '%s'", nodeID, way.ID)
		}
	}
	return nil
}
