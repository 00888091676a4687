package osm2route

import (
	"github.com/pkg/errors"

	geojson "github.com/paulmach/go.geojson"
)

func toGeoJSONCoordinates(pts []GeoPoint) [][]float64 {
	pts2d := make([][]float64, len(pts))
	for i := range pts {
		pts2d[i] = []float64{pts[i].Lon, pts[i].Lat}
	}
	return pts2d
}

// PrepareGeoJSONLinestring returns GeoJSON representation of LineString
func PrepareGeoJSONLinestring(pts []GeoPoint) (string, error) {
	b, err := geojson.NewLineStringGeometry(toGeoJSONCoordinates(pts)).MarshalJSON()
	if err != nil {
		return "", errors.Wrap(err, "Can not convert geometry to geojson format")
	}
	return string(b), nil
}

// PrepareGeoJSONPoint returns GeoJSON representation of Point
func PrepareGeoJSONPoint(pt GeoPoint) (string, error) {
	b, err := geojson.NewPointGeometry([]float64{pt.Lon, pt.Lat}).MarshalJSON()
	if err != nil {
		return "", errors.Wrap(err, "Can not convert geometry to geojson format")
	}
	return string(b), nil
}

// PrepareGeoJSONPath returns feature collection with the path line and its vertices as points
func PrepareGeoJSONPath(path *Path) (string, error) {
	fc := geojson.NewFeatureCollection()
	line := geojson.NewFeature(geojson.NewLineStringGeometry(toGeoJSONCoordinates(path.Points)))
	line.SetProperty("distance_meters", path.Total)
	line.SetProperty("vertices_num", len(path.Vertices))
	fc.AddFeature(line)
	for i, pt := range path.Points {
		f := geojson.NewFeature(geojson.NewPointGeometry([]float64{pt.Lon, pt.Lat}))
		f.SetProperty("vertex_id", path.Vertices[i])
		f.SetProperty("osm_node_id", string(path.NodeIDs[i]))
		fc.AddFeature(f)
	}
	b, err := fc.MarshalJSON()
	if err != nil {
		return "", errors.Wrap(err, "Can not convert path to geojson format")
	}
	return string(b), nil
}
