package osm2route

import (
	"strings"
)

const (
	DEFAULT_ENTITY_NAME = "highway"
	DEFAULT_ROAD_CLASS  = "residential"
)

// RoadConfiguration Allows to filter ways by certain tags from OSM data
type RoadConfiguration struct {
	EntityName string // Currrently we support 'highway' only
	Tags       []string
}

// DefaultRoadConfiguration returns filter accepting residential streets only
func DefaultRoadConfiguration() RoadConfiguration {
	return RoadConfiguration{
		EntityName: DEFAULT_ENTITY_NAME,
		Tags:       []string{DEFAULT_ROAD_CLASS},
	}
}

// ParseRoadTags splits comma separated list of road classes
func ParseRoadTags(tagStr string) []string {
	tags := make([]string, 0)
	for _, tag := range strings.Split(tagStr, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// CheckTag Checks if incoming tag is represented in configuration
func (cfg *RoadConfiguration) CheckTag(tag string) bool {
	for i := range cfg.Tags {
		if cfg.Tags[i] == tag {
			return true
		}
	}
	return false
}

// Accepts returns true when way is tagged with one of configured road classes
func (cfg *RoadConfiguration) Accepts(way *Way) bool {
	tag, ok := way.Tags[cfg.EntityName]
	if !ok {
		return false
	}
	return cfg.CheckTag(tag)
}
