package osm2route

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// OutputFormat is format of rendered waypoints
type OutputFormat uint16

const (
	OUTPUT_TEXT = OutputFormat(iota + 1)
	OUTPUT_WKT
	OUTPUT_GEOJSON
	OUTPUT_GPX
)

func (iotaIdx OutputFormat) String() string {
	return [...]string{"text", "wkt", "geojson", "gpx"}[iotaIdx-1]
}

// ParseOutputFormat converts string representation into OutputFormat
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return OUTPUT_TEXT, nil
	case "wkt":
		return OUTPUT_WKT, nil
	case "geojson":
		return OUTPUT_GEOJSON, nil
	case "gpx":
		return OUTPUT_GPX, nil
	default:
		return OutputFormat(0), fmt.Errorf("Output format '%s' is not handled yet", s)
	}
}

// Reporter prints network summary and paths into w
type Reporter struct {
	w       io.Writer
	format  OutputFormat
	verbose bool
}

// NewReporter returns reporter. Unknown format falls back to text
func NewReporter(w io.Writer, format OutputFormat, verbose bool) *Reporter {
	if format < OUTPUT_TEXT || format > OUTPUT_GPX {
		format = OUTPUT_TEXT
	}
	return &Reporter{
		w:       w,
		format:  format,
		verbose: verbose,
	}
}

// Summary prints counters of every pipeline stage. In verbose mode every road is listed with its edges
func (rep *Reporter) Summary(net *RoadNetwork) error {
	edgesNum := 0
	if net.graph != nil {
		edgesNum = net.graph.EdgesNum()
	}
	_, err := fmt.Fprintf(rep.w, "ways: %d\nroads: %d\nvertices: %d\nedges: %d\n",
		net.data.WaysNum(), len(net.roads), len(net.vertexNodes), edgesNum)
	if err != nil {
		return errors.Wrap(err, "Can't write summary")
	}
	if !rep.verbose {
		return nil
	}
	for _, road := range net.roads {
		_, err = fmt.Fprintf(rep.w, "%s\n", road.Name)
		if err != nil {
			return errors.Wrap(err, "Can't write road")
		}
		for i := 1; i < len(road.Vertices); i++ {
			prev, curr := road.Vertices[i-1], road.Vertices[i]
			source, err := net.VertexOf(prev.NodeID)
			if err != nil {
				return err
			}
			target, err := net.VertexOf(curr.NodeID)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(rep.w, "%s\n", formatEdgeDescriptor(source, target, curr.Distance))
			if err != nil {
				return errors.Wrap(err, "Can't write road")
			}
		}
	}
	return nil
}

// Path prints edge descriptors, vertex chain and waypoints of the path
func (rep *Reporter) Path(path *Path) error {
	var sb strings.Builder
	for _, e := range path.Edges {
		sb.WriteString(formatEdgeDescriptor(e.From, e.To, e.Distance))
		sb.WriteString("\n")
	}
	chain := make([]string, len(path.Vertices))
	for i, v := range path.Vertices {
		chain[i] = fmt.Sprintf("%d", v)
	}
	sb.WriteString(strings.Join(chain, " -> "))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("distance: %f\n", path.Total))
	_, err := io.WriteString(rep.w, sb.String())
	if err != nil {
		return errors.Wrap(err, "Can't write path")
	}
	return rep.waypoints(path)
}

func (rep *Reporter) waypoints(path *Path) error {
	var err error
	switch rep.format {
	case OUTPUT_WKT:
		_, err = fmt.Fprintf(rep.w, "%s\n", PrepareWKTLinestring(path.Points))
	case OUTPUT_GEOJSON:
		var s string
		s, err = PrepareGeoJSONPath(path)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(rep.w, "%s\n", s)
	case OUTPUT_GPX:
		return WriteGPX(rep.w, path)
	default:
		for _, pt := range path.Points {
			_, err = fmt.Fprintf(rep.w, "%s\n", formatTrackPoint(pt))
			if err != nil {
				break
			}
		}
	}
	if err != nil {
		return errors.Wrap(err, "Can't write waypoints")
	}
	return nil
}

func formatEdgeDescriptor(source, target VertexID, distance float64) string {
	return fmt.Sprintf("%d:%d, %.4f", source, target, distance)
}

func formatTrackPoint(pt GeoPoint) string {
	return fmt.Sprintf(`<trkpt lat="%s" lon="%s"></trkpt>`, formatCoordinate(pt.Lat), formatCoordinate(pt.Lon))
}
