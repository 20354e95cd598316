package route

import (
	"math"

	"github.com/lintang-b-s/navtrack/pkg"
	"github.com/lintang-b-s/navtrack/pkg/datastructure"
	"github.com/lintang-b-s/navtrack/pkg/geo"
	"github.com/lintang-b-s/navtrack/pkg/util"
)

// MoveIterator advances the cursor with a new gps fix. a predicted travel
// distance (speed x elapsed) narrows the projection search window, but only
// when the fix gap is positive and fresh; stale or backward timestamps fall
// back to an unconstrained forward search. returns whether the resulting
// cursor is valid.
func (r *Route) MoveIterator(info datastructure.GpsInfo) bool {
	predictDistance := -1.0
	if r.currentTime > 0.0 && info.HasSpeed() {
		deltaT := info.Timestamp() - r.currentTime
		if deltaT > 0.0 && deltaT < pkg.LOCATION_TIME_THRESHOLD_SEC {
			predictDistance = info.Speed() * deltaT
		}
	}

	rect := geo.MetersToXY(info.Lon(), info.Lat(),
		math.Max(r.settings.matchingThresholdM, info.HorizontalAccuracy()))

	res := r.poly.UpdateProjectionByPrediction(rect, predictDistance)
	if r.simplifiedPoly.IsValid() {
		r.simplifiedPoly.UpdateProjectionByPrediction(rect, predictDistance)
	}

	r.currentTime = info.Timestamp()
	return res.IsValid()
}

// MatchLocationToRoute snaps the fix onto the route when the cursor lies
// within the matching threshold: the returned fix carries the projected
// coordinates and, for modes that require it, a bearing aligned with the
// local polyline heading. outside the threshold the fix is returned
// unmodified and no matching is emitted.
func (r *Route) MatchLocationToRoute(location datastructure.GpsInfo,
	matchingResult *datastructure.MatchingResult) datastructure.GpsInfo {
	if !r.poly.IsValid() {
		return location
	}

	iter := r.poly.GetCurrentIter()
	locationMerc := geo.FromLatLon(location.Lat(), location.Lon())
	distFromRouteM := geo.DistanceOnEarthM(iter.GetPoint(), locationMerc)
	if distFromRouteM >= r.settings.matchingThresholdM {
		return location
	}

	lat, lon := geo.ToLatLon(iter.GetPoint())
	location = location.WithPosition(lat, lon)
	if r.settings.matchRoute {
		location = location.WithBearing(geo.AngleToBearing(r.GetPolySegAngle(iter.GetIndex())))
	}
	matchingResult.Set(iter.GetPoint(), iter.GetIndex(), r.GetMercatorDistanceFromBegin())
	return location
}

// GetPolySegAngle. heading (math degrees) of the segment starting at ind,
// skipping coincident vertices forward until a non-degenerate segment is
// found. neutral 0 when only coincident points remain before the end.
func (r *Route) GetPolySegAngle(ind int) float64 {
	poly := r.poly.GetPolyline()
	sz := poly.GetSize()

	if ind+1 >= sz {
		return 0
	}

	p1 := poly.GetPoint(ind)
	var p2 datastructure.Point
	i := ind + 1
	for {
		p2 = poly.GetPoint(i)
		if !datastructure.PointsAlmostEqual(p1, p2) {
			break
		}
		i++
		if i >= sz {
			return 0
		}
	}
	return util.RadiansToDegree(geo.AngleTo(p1, p2))
}
