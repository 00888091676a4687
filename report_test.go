package osm2route

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beevik/etree"
	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abcdPath(t *testing.T) (*RoadNetwork, *Path) {
	t.Helper()
	net, err := NewRoadNetwork(abcdData(), DefaultRoadConfiguration(), true, nil)
	require.NoError(t, err)
	path, err := net.ShortestPath(0, 2)
	require.NoError(t, err)
	return net, path
}

func TestReporterSummary(t *testing.T) {
	net, _ := abcdPath(t)
	var buf bytes.Buffer
	err := NewReporter(&buf, OUTPUT_TEXT, false).Summary(net)
	require.NoError(t, err)
	assert.Equal(t, "ways: 2\nroads: 2\nvertices: 3\nedges: 2\n", buf.String())

	buf.Reset()
	err = NewReporter(&buf, OUTPUT_TEXT, true).Summary(net)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, noname, lines[4])
	assert.True(t, strings.HasPrefix(lines[5], "0:1, "), lines[5])
	assert.True(t, strings.HasPrefix(lines[6], "1:2, "), lines[6])
	assert.Equal(t, noname, lines[7])
}

func TestReporterPathText(t *testing.T) {
	_, path := abcdPath(t)
	var buf bytes.Buffer
	err := NewReporter(&buf, OUTPUT_TEXT, false).Path(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "0:1, 111.2298", lines[0])
	assert.Equal(t, "1:2, 140.9584", lines[1])
	assert.Equal(t, "0 -> 1 -> 2", lines[2])
	assert.Equal(t, "distance: 252.188271", lines[3])
	assert.Equal(t, `<trkpt lat="38.88" lon="-77.1"></trkpt>`, lines[4])
	assert.Equal(t, `<trkpt lat="38.882" lon="-77.101"></trkpt>`, lines[6])
}

func TestReporterPathWKT(t *testing.T) {
	_, path := abcdPath(t)
	var buf bytes.Buffer
	err := NewReporter(&buf, OUTPUT_WKT, false).Path(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	last := lines[len(lines)-1]
	assert.True(t, strings.HasPrefix(last, "LINESTRING("), last)
	assert.Contains(t, last, "-77.101 38.882")
}

func TestReporterPathGeoJSON(t *testing.T) {
	_, path := abcdPath(t)
	s, err := PrepareGeoJSONPath(path)
	require.NoError(t, err)
	fc, err := geojson.UnmarshalFeatureCollection([]byte(s))
	require.NoError(t, err)
	require.Len(t, fc.Features, 4)
	assert.True(t, fc.Features[0].Geometry.IsLineString())
	assert.Len(t, fc.Features[0].Geometry.LineString, 3)
	assert.True(t, fc.Features[3].Geometry.IsPoint())
	assert.Equal(t, "C", fc.Features[3].Properties["osm_node_id"])
}

func TestReporterPathGPX(t *testing.T) {
	_, path := abcdPath(t)
	var buf bytes.Buffer
	err := NewReporter(&buf, OUTPUT_GPX, false).Path(path)
	require.NoError(t, err)
	out := buf.String()
	doc := etree.NewDocument()
	err = doc.ReadFromString(out[strings.Index(out, "<?xml"):])
	require.NoError(t, err)
	gpx := doc.SelectElement("gpx")
	require.NotNil(t, gpx)
	assert.Equal(t, "1.1", gpx.SelectAttrValue("version", ""))
	trkpts := doc.FindElements("//trkpt")
	require.Len(t, trkpts, 3)
	assert.Equal(t, "38.881", trkpts[1].SelectAttrValue("lat", ""))
	assert.Equal(t, "-77.1", trkpts[1].SelectAttrValue("lon", ""))
	assert.Equal(t, "A - C", doc.FindElement("//trk/name").Text())
}

func TestParseOutputFormat(t *testing.T) {
	correct := map[string]OutputFormat{
		"":        OUTPUT_TEXT,
		"text":    OUTPUT_TEXT,
		"WKT":     OUTPUT_WKT,
		"geojson": OUTPUT_GEOJSON,
		" gpx ":   OUTPUT_GPX,
	}
	for s, format := range correct {
		parsed, err := ParseOutputFormat(s)
		require.NoError(t, err)
		if parsed != format {
			t.Errorf("Format of '%s' must be %s, but got %s", s, format, parsed)
		}
	}
	_, err := ParseOutputFormat("kml")
	assert.Error(t, err)
}
