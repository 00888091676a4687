package osm2route

// OSMData is the result of a single pass over the document: every node and every way
type OSMData struct {
	nodes *nodeRegistry
	ways  *wayRegistry
}

func newOSMData() *OSMData {
	return &OSMData{
		nodes: newNodeRegistry(),
		ways:  newWayRegistry(),
	}
}

// NodesNum returns number of unique nodes
func (data *OSMData) NodesNum() int {
	return data.nodes.len()
}

// WaysNum returns number of unique ways
func (data *OSMData) WaysNum() int {
	return data.ways.len()
}

// Node returns node by its ID
func (data *OSMData) Node(id NodeID) (*Node, bool) {
	return data.nodes.get(id)
}

// Way returns way by its ID
func (data *OSMData) Way(id WayID) (*Way, bool) {
	return data.ways.get(id)
}

// Ways returns ways in order of first appearance
func (data *OSMData) Ways() []*Way {
	return data.ways.ways
}
