package geo

import (
	"math"

	"github.com/lintang-b-s/navtrack/pkg/datastructure"
	"github.com/lintang-b-s/navtrack/pkg/util"
)

// AngleTo. math angle (radians, ccw from +x) of the planar segment (p1,p2).
func AngleTo(p1, p2 datastructure.Point) float64 {
	return math.Atan2(p2.GetY()-p1.GetY(), p2.GetX()-p1.GetX())
}

// AngleToBearing converts a math angle in degrees to a compass bearing
// (clockwise from north).
func AngleToBearing(angleDeg float64) float64 {
	bearing := math.Mod(90.0-angleDeg, 360.0)
	if bearing < 0 {
		bearing += 360.0
	}
	return bearing
}

/*
BearingTo. initial bearing of the great-circle edge (p1,p2).
https://www.movable-type.co.uk/scripts/latlong.html
*/
func BearingTo(p1Lat, p1Lon, p2Lat, p2Lon float64) float64 {

	dLon := util.DegreeToRadians(p2Lon - p1Lon)

	lat1 := util.DegreeToRadians(p1Lat)
	lat2 := util.DegreeToRadians(p2Lat)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) -
		math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	brng := math.Mod(util.RadiansToDegree(math.Atan2(y, x))+360, 360.0)

	return brng
}
