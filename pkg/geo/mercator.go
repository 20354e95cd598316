package geo

import (
	"math"

	"github.com/golang/geo/s2"
	"github.com/lintang-b-s/navtrack/pkg/datastructure"
	"github.com/lintang-b-s/navtrack/pkg/util"
)

const (
	earthRadiusM = 6378137.0

	// length of one degree of longitude at the equator, in meters.
	metersPerDegree = math.Pi * earthRadiusM / 180.0

	maxMercatorY = 180.0
	minMercatorY = -180.0
)

// LonToX longitude in degrees to planar mercator x.
func LonToX(lon float64) float64 {
	return lon
}

// LatToY latitude in degrees to planar mercator y.
func LatToY(lat float64) float64 {
	latRad := util.DegreeToRadians(lat)
	y := util.RadiansToDegree(math.Log(math.Tan(math.Pi/4.0 + latRad/2.0)))
	return math.Max(minMercatorY, math.Min(maxMercatorY, y))
}

func XToLon(x float64) float64 {
	return x
}

func YToLat(y float64) float64 {
	return util.RadiansToDegree(2.0*math.Atan(math.Exp(util.DegreeToRadians(y))) - math.Pi/2.0)
}

func FromLatLon(lat, lon float64) datastructure.Point {
	return datastructure.NewPoint(LonToX(lon), LatToY(lat))
}

func ToLatLon(p datastructure.Point) (float64, float64) {
	return YToLat(p.GetY()), XToLon(p.GetX())
}

// DistanceOnEarthM. earth distance in meters between two mercator points.
func DistanceOnEarthM(a, b datastructure.Point) float64 {
	aLat, aLon := ToLatLon(a)
	bLat, bLon := ToLatLon(b)
	ll1 := s2.LatLngFromDegrees(aLat, aLon)
	ll2 := s2.LatLngFromDegrees(bLat, bLon)
	return ll1.Distance(ll2).Radians() * earthRadiusM
}

// MetersToXY builds the search rect of half-size radiusM meters around a
// geographic position. mercator is conformal, one local scale factor covers
// both axes.
func MetersToXY(lon, lat, radiusM float64) datastructure.Rect {
	center := FromLatLon(lat, lon)
	scale := metersPerDegree * math.Cos(util.DegreeToRadians(lat))
	if scale < 1.0 {
		scale = 1.0 // near the poles the projection blows up anyway
	}
	return datastructure.NewRectFromCenter(center, radiusM/scale)
}

// MercatorDistanceAlongPath. cumulative planar length of points[from..to].
func MercatorDistanceAlongPath(from, to int, points []datastructure.Point) float64 {
	if from >= to || from < 0 || to >= len(points) {
		return 0
	}
	dist := 0.0
	for i := from; i < to; i++ {
		dist += datastructure.PlanarDistance(points[i], points[i+1])
	}
	return dist
}
