package osm2route

import "github.com/pkg/errors"

var (
	// ErrParse is returned when the input document is structurally broken
	ErrParse = errors.New("malformed OSM document")
	// ErrUnresolvedNode is returned when a road references a node which is missing or has no coordinates
	ErrUnresolvedNode = errors.New("unresolved node reference")
	// ErrEmptyGraph is returned when simplification produced no edges
	ErrEmptyGraph = errors.New("road graph has no edges")
	// ErrVertexOutOfRange is returned for compact vertex ids outside of [0, verticesNum)
	ErrVertexOutOfRange = errors.New("vertex is out of range")
	// ErrUnreachable is returned when there is no path between source and target
	ErrUnreachable = errors.New("target is unreachable from source")
	// ErrUnknownNode is returned when an OSM node ID can't be mapped to a graph vertex
	ErrUnknownNode = errors.New("node is not a graph vertex")
)
