package osm2route

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// RoadNetwork is the simplified road graph together with the data it was built from
type RoadNetwork struct {
	data        *OSMData
	roads       []*Road
	vertexNodes []NodeID
	graph       *Graph
	logger      *zap.Logger
}

// NewRoadNetwork extracts roads accepted by cfg, reduces them to junction vertices and builds the graph
func NewRoadNetwork(data *OSMData, cfg RoadConfiguration, strict bool, logger *zap.Logger) (*RoadNetwork, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if unusual := unusualRoadClasses(cfg.Tags); len(unusual) > 0 {
		logger.Warn("Some of road classes are not drivable or unknown", zap.Strings("classes", unusual))
	}
	roads, err := extractRoads(data, cfg, strict, logger)
	if err != nil {
		return nil, errors.Wrap(err, "Can't extract roads")
	}
	vertexNodes, err := simplifyRoads(data, roads, logger)
	if err != nil {
		return nil, errors.Wrap(err, "Can't simplify roads")
	}
	net := &RoadNetwork{
		data:        data,
		roads:       roads,
		vertexNodes: vertexNodes,
		logger:      logger,
	}
	graph, err := buildGraph(data, roads, len(vertexNodes), logger)
	if err != nil {
		return net, errors.Wrap(err, "Can't build graph")
	}
	net.graph = graph
	return net, nil
}

// Data returns parsed document
func (net *RoadNetwork) Data() *OSMData {
	return net.data
}

// Roads returns extracted roads in order of appearance
func (net *RoadNetwork) Roads() []*Road {
	return net.roads
}

// Graph returns road graph. Nil when no edges were produced
func (net *RoadNetwork) Graph() *Graph {
	return net.graph
}

// VerticesNum returns number of kept nodes
func (net *RoadNetwork) VerticesNum() int {
	return len(net.vertexNodes)
}

// VertexOf maps source node ID to compact vertex
func (net *RoadNetwork) VertexOf(nodeID NodeID) (VertexID, error) {
	return compactIDOf(net.data, nodeID)
}

// NodeOf maps compact vertex back to its node
func (net *RoadNetwork) NodeOf(v VertexID) (*Node, error) {
	if v < 0 || int(v) >= len(net.vertexNodes) {
		return nil, errors.Wrapf(ErrVertexOutOfRange, "vertex %d, vertices %d", v, len(net.vertexNodes))
	}
	node, ok := net.data.nodes.get(net.vertexNodes[v])
	if !ok {
		return nil, errors.Wrapf(ErrUnresolvedNode, "No such node '%s'", net.vertexNodes[v])
	}
	return node, nil
}

// ShortestPath runs Dijkstra from source and reconstructs the path to target
func (net *RoadNetwork) ShortestPath(source, target VertexID) (*Path, error) {
	if net.graph == nil {
		return nil, ErrEmptyGraph
	}
	tree, err := Dijkstra(net.graph, source)
	if err != nil {
		return nil, errors.Wrap(err, "Can't run Dijkstra")
	}
	vertices, err := ReconstructPath(tree, target)
	if err != nil {
		return nil, err
	}
	return net.NewPath(vertices)
}

// NewPath attaches coordinates and hop costs to a sequence of adjacent vertices
func (net *RoadNetwork) NewPath(vertices []VertexID) (*Path, error) {
	if net.graph == nil {
		return nil, ErrEmptyGraph
	}
	path := &Path{
		Vertices: vertices,
		NodeIDs:  make([]NodeID, 0, len(vertices)),
		Points:   make([]GeoPoint, 0, len(vertices)),
		Edges:    make([]PathEdge, 0, len(vertices)),
	}
	for i, v := range vertices {
		node, err := net.NodeOf(v)
		if err != nil {
			return nil, err
		}
		path.NodeIDs = append(path.NodeIDs, node.ID)
		path.Points = append(path.Points, node.Point)
		if i == 0 {
			continue
		}
		cost, ok := net.graph.minCostBetween(vertices[i-1], v)
		if !ok {
			return nil, fmt.Errorf("Vertices %d and %d are not adjacent", vertices[i-1], v)
		}
		path.Edges = append(path.Edges, PathEdge{From: vertices[i-1], To: v, Distance: cost})
		path.Total += cost
	}
	return path, nil
}

// ExportToCSV writes roads, edges and vertices of the network into three files sharing fname prefix.
// Geometries are GeoJSON for OUTPUT_GEOJSON and WKT for any other format
func (net *RoadNetwork) ExportToCSV(fname string, geomFormat OutputFormat) error {
	if net.graph == nil {
		return ErrEmptyGraph
	}
	fnameParts := strings.Split(fname, ".csv")
	fnameRoads := fnameParts[0] + "_roads.csv"
	fnameEdges := fnameParts[0] + "_edges.csv"
	fnameVertices := fnameParts[0] + "_vertices.csv"

	err := net.exportRoadsToCSV(fnameRoads)
	if err != nil {
		return errors.Wrap(err, "Can't export roads")
	}

	err = net.exportEdgesToCSV(fnameEdges, geomFormat)
	if err != nil {
		return errors.Wrap(err, "Can't export edges")
	}

	err = net.exportVerticesToCSV(fnameVertices, geomFormat)
	if err != nil {
		return errors.Wrap(err, "Can't export vertices")
	}
	return nil
}

func (net *RoadNetwork) exportRoadsToCSV(fname string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"osm_way_id", "name", "highway", "nodes_num", "vertices_num", "length_meters", "tags"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for _, road := range net.roads {
		pts := make([]GeoPoint, 0, len(road.Nodes))
		for _, nodeID := range road.Nodes {
			node, _ := net.data.nodes.get(nodeID)
			pts = append(pts, node.Point)
		}
		tags := ""
		if way, ok := net.data.ways.get(road.ID); ok {
			tags = formatTags(way.OSMTags())
		}
		err = writer.Write([]string{
			string(road.ID),
			road.Name,
			road.Highway,
			fmt.Sprintf("%d", len(road.Nodes)),
			fmt.Sprintf("%d", len(road.Vertices)),
			fmt.Sprintf("%f", getSphericalLength(pts)*1000.0),
			tags,
		})
		if err != nil {
			return errors.Wrap(err, "Can't write road")
		}
	}
	return writer.Error()
}

func (net *RoadNetwork) exportEdgesToCSV(fname string, geomFormat OutputFormat) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"id", "from_vertex_id", "to_vertex_id", "osm_way_id", "cost_meters", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for _, edge := range net.graph.Edges {
		geomStr := PrepareWKTLinestring(edge.Geom)
		if geomFormat == OUTPUT_GEOJSON {
			geomStr, err = PrepareGeoJSONLinestring(edge.Geom)
			if err != nil {
				return err
			}
		}
		err = writer.Write([]string{
			fmt.Sprintf("%d", edge.ID),
			fmt.Sprintf("%d", edge.Source),
			fmt.Sprintf("%d", edge.Target),
			string(edge.RoadID),
			fmt.Sprintf("%f", edge.CostMeters),
			geomStr,
		})
		if err != nil {
			return errors.Wrap(err, "Can't write edge")
		}
	}
	return writer.Error()
}

func (net *RoadNetwork) exportVerticesToCSV(fname string, geomFormat OutputFormat) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"vertex_id", "osm_node_id", "roads_num", "longitude", "latitude", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for i := range net.vertexNodes {
		node, err := net.NodeOf(VertexID(i))
		if err != nil {
			return err
		}
		geomStr := PrepareWKTPoint(node.Point)
		if geomFormat == OUTPUT_GEOJSON {
			geomStr, err = PrepareGeoJSONPoint(node.Point)
			if err != nil {
				return err
			}
		}
		err = writer.Write([]string{
			fmt.Sprintf("%d", i),
			string(node.ID),
			fmt.Sprintf("%d", node.useCount),
			fmt.Sprintf("%f", node.Point.Lon),
			fmt.Sprintf("%f", node.Point.Lat),
			geomStr,
		})
		if err != nil {
			return errors.Wrap(err, "Can't write vertex")
		}
	}
	return writer.Error()
}

func formatTags(tags osm.Tags) string {
	pairs := make([]string, len(tags))
	for i, tag := range tags {
		pairs[i] = tag.Key + "=" + tag.Value
	}
	return strings.Join(pairs, ",")
}
