package usecases

import (
	"fmt"
	"sync"

	"github.com/lintang-b-s/navtrack/pkg/datastructure"
	"github.com/lintang-b-s/navtrack/pkg/geo"
	"github.com/lintang-b-s/navtrack/pkg/route"
	"github.com/lintang-b-s/navtrack/pkg/util"
	gopolyline "github.com/twpayne/go-polyline"
	"go.uber.org/zap"
)

// NavigationTracker keeps one Route per tracking session. a Route has no
// internal locking, the per-session mutex provides the serialization its
// contract requires.
type NavigationTracker struct {
	log   *zap.Logger
	codec *route.Codec

	mu       sync.RWMutex
	seq      uint64
	sessions map[string]*session
}

type session struct {
	mu    sync.Mutex
	route *route.Route
}

func NewNavigationTracker(log *zap.Logger, codec *route.Codec) *NavigationTracker {
	return &NavigationTracker{
		log:      log,
		codec:    codec,
		sessions: make(map[string]*session),
	}
}

// CreateSession decodes a route interchange document and registers a
// tracking session for it. mode "pedestrian" selects pedestrian matching
// settings, everything else tracks as a vehicle.
func (nt *NavigationTracker) CreateSession(document []byte, mode string) (datastructure.SessionSummary, error) {
	r := route.NewEmptyRoute(mode)
	if mode == "pedestrian" {
		r.SetRoutingSettings(route.GetPedestrianRoutingSettings())
	}
	if err := nt.codec.FromJson(document, r); err != nil {
		return datastructure.SessionSummary{}, err
	}
	if !r.IsValid() {
		return datastructure.SessionSummary{}, util.WrapErrorf(nil, util.ErrBadParamInput,
			"route document has fewer than two points")
	}

	nt.mu.Lock()
	nt.seq++
	id := fmt.Sprintf("route-%d", nt.seq)
	nt.sessions[id] = &session{route: r}
	nt.mu.Unlock()

	poly := r.GetPoly().GetPolyline()
	coords := make([][]float64, 0, poly.GetSize())
	for i := 0; i < poly.GetSize(); i++ {
		lat, lon := geo.ToLatLon(poly.GetPoint(i))
		coords = append(coords, []float64{lat, lon})
	}
	encoded := string(gopolyline.EncodeCoords(coords))

	nt.log.Info("tracking session registered",
		zap.String("id", id),
		zap.Int("points", poly.GetSize()),
		zap.Float64("distance_m", r.GetTotalDistanceMeters()))

	return datastructure.NewSessionSummary(id, r.GetRouterId(),
		r.GetTotalDistanceMeters(), r.GetTotalTimeSec(), encoded, poly.GetSize()), nil
}

func (nt *NavigationTracker) getSession(id string) (*session, error) {
	nt.mu.RLock()
	sess, ok := nt.sessions[id]
	nt.mu.RUnlock()
	if !ok {
		return nil, util.WrapErrorf(nil, util.ErrNotFound, "unknown tracking session %s", id)
	}
	return sess, nil
}

// Feed advances a session with one gps fix and reports the resulting
// turn-by-turn state.
func (nt *NavigationTracker) Feed(id string, fix datastructure.GpsInfo) (datastructure.TrackingUpdate, error) {
	sess, err := nt.getSession(id)
	if err != nil {
		return datastructure.TrackingUpdate{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	r := sess.route
	onRoute := r.MoveIterator(fix)

	matching := datastructure.NewMatchingResult()
	location := r.MatchLocationToRoute(fix, matching)

	return nt.buildUpdate(r, location, matching.IsMatched(), onRoute), nil
}

// GetState reports the session state without consuming a fix.
func (nt *NavigationTracker) GetState(id string) (datastructure.TrackingUpdate, error) {
	sess, err := nt.getSession(id)
	if err != nil {
		return datastructure.TrackingUpdate{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	r := sess.route
	iter := r.GetPoly().GetCurrentIter()
	lat, lon := geo.ToLatLon(iter.GetPoint())
	location := datastructure.NewGpsInfo(lat, lon, 0, -1, 0, 0)
	return nt.buildUpdate(r, location, false, iter.IsValid()), nil
}

func (nt *NavigationTracker) buildUpdate(r *route.Route, location datastructure.GpsInfo,
	matched, onRoute bool) datastructure.TrackingUpdate {
	turns, _ := r.GetNextTurns()
	return datastructure.NewTrackingUpdate(
		location,
		matched,
		onRoute,
		r.IsCurrentOnEnd(),
		r.GetCurrentDistanceToEndMeters(),
		r.GetCurrentTimeToEndSec(),
		r.GetCurrentStreetName(),
		turns,
	)
}

func (nt *NavigationTracker) DropSession(id string) error {
	nt.mu.Lock()
	defer nt.mu.Unlock()
	if _, ok := nt.sessions[id]; !ok {
		return util.WrapErrorf(nil, util.ErrNotFound, "unknown tracking session %s", id)
	}
	delete(nt.sessions, id)
	return nil
}
