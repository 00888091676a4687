package osm2route

// NodeID is the identifier assigned to a node by the source document
type NodeID string

// Node is a point of the source document together with the state gathered while reducing roads
type Node struct {
	ID    NodeID
	Num   uint64
	Point GeoPoint

	hasPoint        bool
	useCount        int
	kept            bool
	hasCompactID    bool
	compactID       VertexID
	segmentDistance float64
}

// HasPoint returns false when coordinates of the node could not be read
func (node *Node) HasPoint() bool {
	return node.hasPoint
}

// UseCount returns number of roads referencing the node
func (node *Node) UseCount() int {
	return node.useCount
}

// Kept reports whether the node survived simplification at least once
func (node *Node) Kept() bool {
	return node.kept
}

// CompactID returns graph vertex assigned to the node. Second value is false for dropped nodes
func (node *Node) CompactID() (VertexID, bool) {
	return node.compactID, node.hasCompactID
}

// SegmentDistance returns the distance (meters) to the previous kept vertex of the road which kept the node last
func (node *Node) SegmentDistance() float64 {
	return node.segmentDistance
}

// nodeRegistry owns every node of the document. Nodes are addressed by ID only:
// pointers returned by get must not be held across insertions.
type nodeRegistry struct {
	nodes []Node
	index map[NodeID]int
}

func newNodeRegistry() *nodeRegistry {
	return &nodeRegistry{
		nodes: make([]Node, 0),
		index: make(map[NodeID]int),
	}
}

// put inserts node or overwrites the previous node with the same ID (last write wins)
func (reg *nodeRegistry) put(node Node) {
	if idx, ok := reg.index[node.ID]; ok {
		reg.nodes[idx] = node
		return
	}
	reg.index[node.ID] = len(reg.nodes)
	reg.nodes = append(reg.nodes, node)
}

func (reg *nodeRegistry) get(id NodeID) (*Node, bool) {
	idx, ok := reg.index[id]
	if !ok {
		return nil, false
	}
	return &reg.nodes[idx], true
}

func (reg *nodeRegistry) len() int {
	return len(reg.nodes)
}
