package route

import (
	"math"
	"testing"

	"github.com/lintang-b-s/navtrack/pkg"
	"github.com/lintang-b-s/navtrack/pkg/datastructure"
	"github.com/lintang-b-s/navtrack/pkg/geo"
)

// one degree of longitude at the equator in meters.
const degreeM = 111319.49

// equatorRoute builds a straight 10-vertex route along the equator with
// vertices about 111 m apart.
func equatorRoute() *Route {
	points := make([]datastructure.Point, 0, 10)
	for i := 0; i < 10; i++ {
		points = append(points, geo.FromLatLon(0, float64(i)*0.001))
	}
	return NewRoute("vehicle", points, "equator")
}

// fix builds a gps fix without speed, so projection runs unconstrained.
func fix(lat, lon float64) datastructure.GpsInfo {
	return datastructure.NewGpsInfo(lat, lon, 0, -1, 0, 0)
}

func TestRouteValidity(t *testing.T) {
	r := NewEmptyRoute("vehicle")
	if r.IsValid() {
		t.Error("empty route should be invalid")
	}

	r.SetGeometry([]datastructure.Point{
		geo.FromLatLon(0, 0), geo.FromLatLon(0, 0.001),
	})
	if !r.IsValid() {
		t.Error("route with two points should be valid")
	}
}

func TestGetCurrentTurn(t *testing.T) {
	r := equatorRoute()
	r.SetTurnInstructions([]datastructure.TurnItem{
		datastructure.NewTurnItem(3, pkg.TURN_RIGHT, 0, false, pkg.PEDESTRIAN_NONE, "Alpha", "Beta"),
		datastructure.NewTurnItem(6, pkg.TURN_LEFT, 0, false, pkg.PEDESTRIAN_NONE, "Beta", "Gamma"),
	})

	turn, dist, ok := r.GetCurrentTurn()
	if !ok {
		t.Fatal("current turn should exist at the route start")
	}
	if turn.GetIndex() != 3 || turn.GetTurn() != pkg.TURN_RIGHT {
		t.Errorf("current turn = %v at %d, want TURN_RIGHT at 3", turn.GetTurn(), turn.GetIndex())
	}
	if want := 3 * 0.001 * degreeM; math.Abs(dist-want) > 1.0 {
		t.Errorf("distance to current turn = %v m, want about %v m", dist, want)
	}

	next, nextDist, ok := r.GetNextTurn()
	if !ok || next.GetIndex() != 6 {
		t.Fatalf("next turn should be the one at 6, got ok=%v index=%d", ok, next.GetIndex())
	}
	if dist >= nextDist {
		t.Error("next turn must be farther than the current one")
	}

	lookahead, ok := r.GetNextTurns()
	if !ok || len(lookahead) != 2 {
		t.Fatalf("lookahead should carry two turns, got ok=%v len=%d", ok, len(lookahead))
	}
}

func TestTurnsAdvanceWithCursor(t *testing.T) {
	r := equatorRoute()
	r.SetTurnInstructions([]datastructure.TurnItem{
		datastructure.NewTurnItem(3, pkg.TURN_RIGHT, 0, false, pkg.PEDESTRIAN_NONE, "", ""),
		datastructure.NewTurnItem(6, pkg.TURN_LEFT, 0, false, pkg.PEDESTRIAN_NONE, "", ""),
	})

	if !r.MoveIterator(fix(0.00001, 0.0045)) {
		t.Fatal("fix on the route corridor should move the cursor")
	}

	turn, _, ok := r.GetCurrentTurn()
	if !ok || turn.GetIndex() != 6 {
		t.Fatalf("after passing the first turn, current turn index = %d, want 6", turn.GetIndex())
	}
	if _, _, ok := r.GetNextTurn(); ok {
		t.Error("no turn exists after the final one")
	}
	lookahead, ok := r.GetNextTurns()
	if !ok || len(lookahead) != 1 {
		t.Errorf("lookahead at the final turn should carry one entry, got %d", len(lookahead))
	}

	if !r.MoveIterator(fix(0.00001, 0.0085)) {
		t.Fatal("fix past the final turn should move the cursor")
	}
	if _, _, ok := r.GetCurrentTurn(); ok {
		t.Error("turn table should be exhausted past the final turn")
	}
	if _, ok := r.GetNextTurns(); ok {
		t.Error("lookahead should be empty once the turn table is exhausted")
	}
}

func TestGetCurrentTimeToEndSec(t *testing.T) {
	r := equatorRoute()
	r.SetSectionTimes([]datastructure.TimeItem{
		datastructure.NewTimeItem(0, 0),
		datastructure.NewTimeItem(5, 50),
		datastructure.NewTimeItem(9, 90),
	})

	if got := r.GetTotalTimeSec(); got != 90 {
		t.Fatalf("total time = %v, want 90", got)
	}

	atStart := r.GetCurrentTimeToEndSec()
	if math.Abs(atStart-90) > 0.5 {
		t.Errorf("time to end at start = %v, want about 90", atStart)
	}

	if !r.MoveIterator(fix(0.00001, 0.0025)) {
		t.Fatal("fix on the route corridor should move the cursor")
	}
	midBracket := r.GetCurrentTimeToEndSec()
	if math.Abs(midBracket-65) > 0.5 {
		t.Errorf("time to end mid bracket = %v, want about 65", midBracket)
	}

	if !r.MoveIterator(fix(0.00001, 0.0085)) {
		t.Fatal("fix near the route end should move the cursor")
	}
	nearEnd := r.GetCurrentTimeToEndSec()
	if math.Abs(nearEnd-5) > 0.5 {
		t.Errorf("time to end near the end = %v, want about 5", nearEnd)
	}

	if !(atStart > midBracket && midBracket > nearEnd) {
		t.Error("time to end must decrease while the cursor advances")
	}
}

func TestGetCurrentTimeToEndSecEmptyTable(t *testing.T) {
	r := equatorRoute()
	if got := r.GetCurrentTimeToEndSec(); got != 0 {
		t.Errorf("time to end without a table = %v, want 0", got)
	}
}

func TestGetCurrentStreetName(t *testing.T) {
	r := equatorRoute()
	r.SetStreetNames([]datastructure.StreetItem{
		datastructure.NewStreetItem(0, "Alpha"),
		datastructure.NewStreetItem(4, "Beta"),
		datastructure.NewStreetItem(7, ""),
		datastructure.NewStreetItem(8, "Gamma"),
	})

	if got := r.GetCurrentStreetName(); got != "Alpha" {
		t.Errorf("street at start = %q, want Alpha", got)
	}

	if !r.MoveIterator(fix(0.00001, 0.0055)) {
		t.Fatal("fix on the route corridor should move the cursor")
	}
	if got := r.GetCurrentStreetName(); got != "Beta" {
		t.Errorf("street at vertex 5 = %q, want Beta", got)
	}

	short := equatorRoute()
	short.SetStreetNames([]datastructure.StreetItem{
		datastructure.NewStreetItem(0, "Alpha"),
		datastructure.NewStreetItem(4, "Beta"),
	})
	if !short.MoveIterator(fix(0.00001, 0.007)) {
		t.Fatal("fix on the route corridor should move the cursor")
	}
	// the cursor sits beyond the final boundary, no street is in effect.
	if got := short.GetCurrentStreetName(); got != "" {
		t.Errorf("street past the final boundary = %q, want empty", got)
	}
}

func TestGetStreetNameAfterIdx(t *testing.T) {
	r := equatorRoute()
	r.SetStreetNames([]datastructure.StreetItem{
		datastructure.NewStreetItem(0, "Alpha"),
		datastructure.NewStreetItem(4, "Beta"),
		datastructure.NewStreetItem(7, ""),
		datastructure.NewStreetItem(8, "Gamma"),
	})

	// the unnamed stretch at 7 is skipped, Gamma starts about 111 m later.
	if got := r.GetStreetNameAfterIdx(7); got != "Gamma" {
		t.Errorf("street after vertex 7 = %q, want Gamma", got)
	}
	if got := r.GetStreetNameAfterIdx(9); got != "" {
		t.Errorf("street beyond the final boundary = %q, want empty", got)
	}

	far := equatorRoute()
	far.SetStreetNames([]datastructure.StreetItem{
		datastructure.NewStreetItem(0, "Alpha"),
		datastructure.NewStreetItem(2, ""),
		datastructure.NewStreetItem(8, "Far"),
	})
	// the next named entry sits about 668 m ahead, past the lookahead bound.
	if got := far.GetStreetNameAfterIdx(2); got != "" {
		t.Errorf("street after vertex 2 = %q, want empty", got)
	}

	empty := equatorRoute()
	if got := empty.GetCurrentStreetName(); got != "" {
		t.Errorf("street without a table = %q, want empty", got)
	}
}

func TestMatchLocationToRoute(t *testing.T) {
	r := equatorRoute()

	if !r.MoveIterator(fix(0.00001, 0.0045)) {
		t.Fatal("fix on the route corridor should move the cursor")
	}

	matching := datastructure.NewMatchingResult()
	snapped := r.MatchLocationToRoute(fix(0.00001, 0.0045), matching)
	if !matching.IsMatched() {
		t.Fatal("fix within the threshold should match")
	}
	if math.Abs(snapped.Lat()) > 1e-6 || math.Abs(snapped.Lon()-0.0045) > 1e-6 {
		t.Errorf("snapped position = (%v, %v), want (0, 0.0045)", snapped.Lat(), snapped.Lon())
	}
	// the route heads due east, compass bearing 90.
	if math.Abs(snapped.Bearing()-90) > 0.5 {
		t.Errorf("snapped bearing = %v, want about 90", snapped.Bearing())
	}

	farMatching := datastructure.NewMatchingResult()
	offRoute := fix(0.002, 0.0045)
	unchanged := r.MatchLocationToRoute(offRoute, farMatching)
	if farMatching.IsMatched() {
		t.Error("fix far off the route should not match")
	}
	if unchanged.Lat() != offRoute.Lat() || unchanged.Lon() != offRoute.Lon() {
		t.Error("unmatched fix must be returned unmodified")
	}
}

func TestIsCurrentOnEnd(t *testing.T) {
	r := equatorRoute()

	if r.IsCurrentOnEnd() {
		t.Error("route should not be finished at the start")
	}

	if !r.MoveIterator(fix(0.00001, 0.009)) {
		t.Fatal("fix at the route end should move the cursor")
	}
	if !r.IsCurrentOnEnd() {
		t.Error("route should be finished at the final vertex")
	}
}

func TestMoveIteratorPredictionPrefersReachableLeg(t *testing.T) {
	// out-and-back route, the return leg runs about 11 m north of the
	// outbound one.
	points := []datastructure.Point{
		geo.FromLatLon(0, 0),
		geo.FromLatLon(0, 0.01),
		geo.FromLatLon(0.0001, 0.01),
		geo.FromLatLon(0.0001, 0),
	}

	predicted := NewRoute("vehicle", points, "loop")
	if !predicted.MoveIterator(datastructure.NewGpsInfo(0, 0.001, 0, 10, 100, 0)) {
		t.Fatal("first fix should move the cursor onto the outbound leg")
	}
	// ~110 m predicted travel keeps the search near the outbound leg even
	// though the fix sits slightly closer to the return leg.
	if !predicted.MoveIterator(datastructure.NewGpsInfo(0.00006, 0.002, 0, 10, 111, 0)) {
		t.Fatal("second fix should move the cursor")
	}
	if got := predicted.GetPoly().GetCurrentIter().GetIndex(); got != 0 {
		t.Errorf("predicted cursor segment = %d, want the outbound leg 0", got)
	}

	plain := NewRoute("vehicle", points, "loop")
	if !plain.MoveIterator(datastructure.NewGpsInfo(0, 0.001, 0, -1, 100, 0)) {
		t.Fatal("first fix should move the cursor onto the outbound leg")
	}
	if !plain.MoveIterator(datastructure.NewGpsInfo(0.00006, 0.002, 0, -1, 111, 0)) {
		t.Fatal("second fix should move the cursor")
	}
	if got := plain.GetPoly().GetCurrentIter().GetIndex(); got != 2 {
		t.Errorf("unpredicted cursor segment = %d, want the nearer return leg 2", got)
	}
}

func TestGetTurnsDistances(t *testing.T) {
	r := equatorRoute()
	r.SetTurnInstructions([]datastructure.TurnItem{
		datastructure.NewTurnItem(0, pkg.NO_TURN, 0, false, pkg.PEDESTRIAN_NONE, "", ""),
		datastructure.NewTurnItem(3, pkg.TURN_RIGHT, 0, false, pkg.PEDESTRIAN_NONE, "", ""),
		datastructure.NewTurnItem(9, pkg.REACHED_YOUR_DESTINATION, 0, false, pkg.PEDESTRIAN_NONE, "", ""),
	})

	distances := r.GetTurnsDistances()
	if len(distances) != 1 {
		t.Fatalf("turns at the polyline side points must be skipped, got %d distances", len(distances))
	}
	if math.Abs(distances[0]-0.003) > 1e-9 {
		t.Errorf("turn distance = %v, want 0.003", distances[0])
	}
}

func TestPedestrianSettingsSimplifyGeometry(t *testing.T) {
	r := NewEmptyRoute("pedestrian")
	r.SetRoutingSettings(GetPedestrianRoutingSettings())

	// jagged geometry, dense vertices between the corners.
	points := make([]datastructure.Point, 0, 40)
	for i := 0; i < 40; i++ {
		lat := 0.0
		if i%2 == 1 {
			lat = 0.0000001
		}
		points = append(points, geo.FromLatLon(lat, float64(i)*0.0005))
	}
	r.SetGeometry(points)

	if !r.IsValid() {
		t.Fatal("route should be valid after geometry is set")
	}
	if _, ok := r.GetCurrentDirectionPoint(); !ok {
		t.Error("direction point should exist for a valid pedestrian route")
	}
}
