package osm2route

import (
	"sort"

	"github.com/paulmach/osm"
)

// WayID is the identifier assigned to a way by the source document
type WayID string

// Way is an ordered list of node references plus tags
type Way struct {
	ID    WayID
	Tags  map[string]string
	Nodes []NodeID
}

func newWay(id WayID) *Way {
	return &Way{
		ID:    id,
		Tags:  make(map[string]string),
		Nodes: make([]NodeID, 0),
	}
}

// Tag returns value for given key or noname when key is absent
func (way *Way) Tag(key, noname string) string {
	if value, ok := way.Tags[key]; ok {
		return value
	}
	return noname
}

// OSMTags returns tags of the way sorted by key
func (way *Way) OSMTags() osm.Tags {
	tags := make(osm.Tags, 0, len(way.Tags))
	for k, v := range way.Tags {
		tags = append(tags, osm.Tag{Key: k, Value: v})
	}
	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Key < tags[j].Key
	})
	return tags
}

// wayRegistry keeps ways in order of first appearance
type wayRegistry struct {
	ways  []*Way
	index map[WayID]int
}

func newWayRegistry() *wayRegistry {
	return &wayRegistry{
		ways:  make([]*Way, 0),
		index: make(map[WayID]int),
	}
}

// put inserts way or replaces the previous way with the same ID in place
func (reg *wayRegistry) put(way *Way) {
	if idx, ok := reg.index[way.ID]; ok {
		reg.ways[idx] = way
		return
	}
	reg.index[way.ID] = len(reg.ways)
	reg.ways = append(reg.ways, way)
}

func (reg *wayRegistry) get(id WayID) (*Way, bool) {
	idx, ok := reg.index[id]
	if !ok {
		return nil, false
	}
	return reg.ways[idx], true
}

func (reg *wayRegistry) len() int {
	return len(reg.ways)
}
