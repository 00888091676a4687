package osm2route

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

func toOrbPoint(pt GeoPoint) orb.Point {
	return orb.Point{pt.Lon, pt.Lat}
}

func toOrbLineString(pts []GeoPoint) orb.LineString {
	line := make(orb.LineString, len(pts))
	for i := range pts {
		line[i] = toOrbPoint(pts[i])
	}
	return line
}

// PrepareWKTLinestring returns WKT representation of LineString
func PrepareWKTLinestring(pts []GeoPoint) string {
	return wkt.MarshalString(toOrbLineString(pts))
}

// PrepareWKTPoint returns WKT representation of Point
func PrepareWKTPoint(pt GeoPoint) string {
	return wkt.MarshalString(toOrbPoint(pt))
}
