package osm2route

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestGreatCircleDistance(t *testing.T) {
	p1 := GeoPoint{
		Lon: 37.6417350769043,
		Lat: 55.751849391735284,
	}
	p2 := GeoPoint{
		Lon: 37.668514251708984,
		Lat: 55.73261980350401,
	}
	res := 2.71778012928 // kilometers
	gcd := greatCircleDistance(p1, p2)
	if Round(gcd, 0.0005) != Round(res, 0.0005) {
		t.Errorf("Great circle dist must be %f, but got %f", res, gcd)
	}
}

func TestGreatCircleDistanceOneDegree(t *testing.T) {
	res := earthRadius * math.Pi / 180.0
	gcd := greatCircleDistance(GeoPoint{Lat: 0, Lon: 0}, GeoPoint{Lat: 1, Lon: 0})
	if math.Abs(gcd-res) > 1e-9 {
		t.Errorf("One degree of meridian must be %f, but got %f", res, gcd)
	}
	meters := greatCircleMeters(GeoPoint{Lat: 0, Lon: 0}, GeoPoint{Lat: 1, Lon: 0})
	if math.Abs(meters-res*1000.0) > 1e-6 {
		t.Errorf("One degree of meridian must be %f meters, but got %f", res*1000.0, meters)
	}
}

func TestSphericalLength(t *testing.T) {
	line := []GeoPoint{
		{Lat: 38.8800, Lon: -77.1000},
		{Lat: 38.8810, Lon: -77.1000},
		{Lat: 38.8820, Lon: -77.1010},
	}
	res := greatCircleDistance(line[0], line[1]) + greatCircleDistance(line[1], line[2])
	length := getSphericalLength(line)
	if Round(length, 0.000001) != Round(res, 0.000001) {
		t.Errorf("Length must be %f, but got %f", res, length)
	}
	if getSphericalLength(line[:1]) != 0 {
		t.Errorf("Length of single point must be 0, but got %f", getSphericalLength(line[:1]))
	}
}

func TestGreatCircleDistanceProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("distance is symmetric", prop.ForAll(
		func(lat1, lon1, lat2, lon2 float64) bool {
			p := GeoPoint{Lat: lat1, Lon: lon1}
			q := GeoPoint{Lat: lat2, Lon: lon2}
			return math.Abs(greatCircleDistance(p, q)-greatCircleDistance(q, p)) < 1e-9
		},
		gen.Float64Range(-90, 90),
		gen.Float64Range(-180, 180),
		gen.Float64Range(-90, 90),
		gen.Float64Range(-180, 180),
	))

	properties.Property("distance to itself is zero", prop.ForAll(
		func(lat, lon float64) bool {
			p := GeoPoint{Lat: lat, Lon: lon}
			return greatCircleDistance(p, p) == 0
		},
		gen.Float64Range(-90, 90),
		gen.Float64Range(-180, 180),
	))

	properties.Property("distance is never negative nor longer than half of circumference", prop.ForAll(
		func(lat1, lon1, lat2, lon2 float64) bool {
			d := greatCircleDistance(GeoPoint{Lat: lat1, Lon: lon1}, GeoPoint{Lat: lat2, Lon: lon2})
			return d >= 0 && d <= math.Pi*earthRadius+1e-9
		},
		gen.Float64Range(-90, 90),
		gen.Float64Range(-180, 180),
		gen.Float64Range(-90, 90),
		gen.Float64Range(-180, 180),
	))

	properties.TestingRun(t)
}

func Round(x, unit float64) float64 {
	if x > 0 {
		return float64(int64(x/unit+0.5)) * unit
	}
	return float64(int64(x/unit-0.5)) * unit
}
