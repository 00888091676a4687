package osm2route

import (
	"strconv"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// OSMScanner is the object stream of a paulmach/osm scanner (osmpbf for PBF input)
type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// readOSMObjects replays decoded objects as element events: a node is a start+end pair,
// a way is start, its references and tags, then end.
func readOSMObjects(scanner OSMScanner, sm *osmStateMachine) error {
	for scanner.Scan() {
		switch obj := scanner.Object().(type) {
		case *osm.Node:
			sm.startNode(osmNodeID(obj.ID), GeoPoint{Lat: obj.Lat, Lon: obj.Lon}, isFinite(obj.Lat) && isFinite(obj.Lon))
			sm.endNode()
		case *osm.Way:
			sm.startWay(WayID(strconv.FormatInt(int64(obj.ID), 10)))
			for _, wayNode := range obj.Nodes {
				sm.wayNodeRef(osmNodeID(wayNode.ID))
			}
			for _, tag := range obj.Tags {
				sm.wayTag(tag.Key, tag.Value)
			}
			sm.endWay()
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(ErrParse, "%v", err)
	}
	return nil
}

func osmNodeID(id osm.NodeID) NodeID {
	return NodeID(strconv.FormatInt(int64(id), 10))
}
