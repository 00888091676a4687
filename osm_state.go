package osm2route

import (
	"go.uber.org/zap"
)

type osmState uint16

const (
	STATE_TOP = osmState(iota + 1)
	STATE_NODE
	STATE_WAY
)

func (iotaIdx osmState) String() string {
	return [...]string{"top", "node", "way"}[iotaIdx-1]
}

// osmStateMachine accumulates nodes and ways from a stream of element events.
// Both XML and PBF sources drive the same transitions.
type osmStateMachine struct {
	data      *OSMData
	newWay    *Way
	logger    *zap.Logger
	nodeCount uint64
	state     osmState
}

func newOSMStateMachine(logger *zap.Logger) *osmStateMachine {
	return &osmStateMachine{
		data:   newOSMData(),
		logger: logger,
		state:  STATE_TOP,
	}
}

// startNode registers the node and enters STATE_NODE. Ways never contain nodes in valid documents,
// so a node element met inside a way is dropped and the way stays open.
func (sm *osmStateMachine) startNode(id NodeID, pt GeoPoint, hasPoint bool) {
	if sm.state == STATE_WAY {
		sm.logger.Warn("Node element inside way, ignoring", zap.String("node_id", string(id)), zap.String("way_id", string(sm.newWay.ID)))
		return
	}
	sm.data.nodes.put(Node{
		ID:       id,
		Num:      sm.nodeCount,
		Point:    pt,
		hasPoint: hasPoint,
	})
	sm.nodeCount++
	sm.state = STATE_NODE
}

func (sm *osmStateMachine) endNode() {
	if sm.state == STATE_NODE {
		sm.state = STATE_TOP
	}
}

func (sm *osmStateMachine) startWay(id WayID) {
	if sm.state == STATE_WAY {
		sm.logger.Warn("Nested way element, dropping unfinished way", zap.String("way_id", string(sm.newWay.ID)))
	}
	sm.newWay = newWay(id)
	sm.state = STATE_WAY
}

func (sm *osmStateMachine) wayNodeRef(ref NodeID) {
	if sm.state != STATE_WAY {
		sm.logger.Debug("Node reference outside of way, ignoring", zap.String("ref", string(ref)), zap.Stringer("state", sm.state))
		return
	}
	sm.newWay.Nodes = append(sm.newWay.Nodes, ref)
}

func (sm *osmStateMachine) wayTag(key, value string) {
	if sm.state != STATE_WAY {
		return
	}
	sm.newWay.Tags[key] = value
}

func (sm *osmStateMachine) endWay() {
	if sm.state != STATE_WAY {
		return
	}
	sm.data.ways.put(sm.newWay)
	sm.newWay = nil
	sm.state = STATE_TOP
}
