package route

import (
	"github.com/lintang-b-s/navtrack/pkg"
	"github.com/lintang-b-s/navtrack/pkg/datastructure"
	"github.com/lintang-b-s/navtrack/pkg/geo"
	"github.com/lintang-b-s/navtrack/pkg/polyline"
)

// Route aggregates the followed polyline, the turn/time/street tables and
// the per-mode matching settings for one computed route. all mutating
// operations and queries assume a single logical owner: there is no
// internal locking, callers serialize access.
type Route struct {
	router   string
	settings RoutingSettings
	name     string

	poly           *polyline.FollowedPolyline
	simplifiedPoly *polyline.FollowedPolyline

	turns   []datastructure.TurnItem
	times   []datastructure.TimeItem
	streets []datastructure.StreetItem

	absentCountries map[string]struct{}

	// timestamp of the last processed fix, baseline for motion prediction.
	currentTime float64
}

func NewRoute(router string, points []datastructure.Point, name string) *Route {
	r := &Route{
		router:          router,
		settings:        GetCarRoutingSettings(),
		name:            name,
		poly:            polyline.NewFollowedPolyline(points).WithSpatialIndex(),
		simplifiedPoly:  polyline.NewFollowedPolyline(nil),
		absentCountries: make(map[string]struct{}),
	}
	r.Update()
	return r
}

func NewEmptyRoute(router string) *Route {
	return NewRoute(router, nil, "")
}

func (r *Route) IsValid() bool {
	return r.poly.IsValid()
}

func (r *Route) GetRouterId() string {
	return r.router
}

func (r *Route) GetName() string {
	return r.name
}

func (r *Route) GetPoly() *polyline.FollowedPolyline {
	return r.poly
}

func (r *Route) GetTurns() []datastructure.TurnItem {
	return r.turns
}

func (r *Route) GetTimes() []datastructure.TimeItem {
	return r.times
}

func (r *Route) GetStreets() []datastructure.StreetItem {
	return r.streets
}

func (r *Route) GetRoutingSettings() RoutingSettings {
	return r.settings
}

func (r *Route) SetRoutingSettings(settings RoutingSettings) {
	r.settings = settings
	r.Update()
}

func (r *Route) SetGeometry(points []datastructure.Point) {
	r.poly = polyline.NewFollowedPolyline(points).WithSpatialIndex()
	r.Update()
}

func (r *Route) SetTurnInstructions(turns []datastructure.TurnItem) {
	r.turns = turns
}

func (r *Route) SetSectionTimes(times []datastructure.TimeItem) {
	r.times = times
}

func (r *Route) SetStreetNames(streets []datastructure.StreetItem) {
	r.streets = streets
}

func (r *Route) AddAbsentCountry(name string) {
	if name != "" {
		r.absentCountries[name] = struct{}{}
	}
}

func (r *Route) GetAbsentCountries() []string {
	countries := make([]string, 0, len(r.absentCountries))
	for c := range r.absentCountries {
		countries = append(countries, c)
	}
	return countries
}

func (r *Route) GetTotalDistanceMeters() float64 {
	return r.poly.GetTotalDistanceM()
}

func (r *Route) GetCurrentDistanceFromBeginMeters() float64 {
	return r.poly.GetDistanceFromBeginM()
}

func (r *Route) GetCurrentDistanceToEndMeters() float64 {
	return r.poly.GetDistanceToEndM()
}

func (r *Route) GetMercatorDistanceFromBegin() float64 {
	return r.poly.GetMercatorDistanceFromBegin()
}

func (r *Route) IsCurrentOnEnd() bool {
	return r.poly.GetDistanceToEndM() < pkg.ON_END_TOLERANCE_M
}

// GetCurrentDirectionPoint prefers the simplified polyline when pedestrian
// info is kept, so the direction arrow stays stable on dense geometry.
func (r *Route) GetCurrentDirectionPoint() (datastructure.Point, bool) {
	if r.settings.keepPedestrianInfo && r.simplifiedPoly.IsValid() {
		return r.simplifiedPoly.GetCurrentDirectionPoint(pkg.ON_END_TOLERANCE_M)
	}
	return r.poly.GetCurrentDirectionPoint(pkg.ON_END_TOLERANCE_M)
}

// Update must run after every geometry mutation: it rebuilds the simplified
// polyline for pedestrian tracking (or frees it otherwise) and resets the
// prediction baseline.
func (r *Route) Update() {
	if !r.poly.IsValid() {
		return
	}
	if r.settings.keepPedestrianInfo {
		simplified := polyline.SimplifyNearOptimal(pkg.SIMPLIFY_MAX_POINT_COUNT,
			r.poly.GetPolyline().GetPoints(), pkg.SIMPLIFY_EPSILON)
		r.simplifiedPoly = polyline.NewFollowedPolyline(simplified)
	} else {
		// free the memory, simplified geometry is not needed for this mode.
		r.simplifiedPoly = polyline.NewFollowedPolyline(nil)
	}
	r.currentTime = 0.0
}

// Swap exchanges the full state of two routes. only safe under the caller's
// serialization of both instances.
func (r *Route) Swap(rhs *Route) {
	*r, *rhs = *rhs, *r
}

// GetTurnsDistances returns the cumulative mercator distance of every
// displayable turn. turns at the side points of the polyline are skipped,
// they cannot be displayed properly.
func (r *Route) GetTurnsDistances() []float64 {
	distances := make([]float64, 0, len(r.turns))
	points := r.poly.GetPolyline().GetPoints()
	sz := r.poly.GetPolyline().GetSize()

	mercatorDistance := 0.0
	formerTurnIndex := 0
	for i, turn := range r.turns {
		if i > 0 {
			formerTurnIndex = r.turns[i-1].GetIndex()
		}

		if turn.GetIndex() == 0 || turn.GetIndex() == sz-1 {
			continue
		}

		mercatorDistance += geo.MercatorDistanceAlongPath(formerTurnIndex, turn.GetIndex(), points)
		distances = append(distances, mercatorDistance)
	}
	return distances
}
