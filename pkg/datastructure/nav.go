package datastructure

// SessionSummary describes one registered tracking session: totals of the
// decoded route plus its geometry as an encoded polyline string.
type SessionSummary struct {
	id         string
	name       string
	distanceM  float64
	duration   float64
	polyline   string
	pointCount int
}

func NewSessionSummary(id, name string, distanceM, duration float64, polyline string, pointCount int) SessionSummary {
	return SessionSummary{
		id:         id,
		name:       name,
		distanceM:  distanceM,
		duration:   duration,
		polyline:   polyline,
		pointCount: pointCount,
	}
}

func (s SessionSummary) GetId() string {
	return s.id
}

func (s SessionSummary) GetName() string {
	return s.name
}

func (s SessionSummary) GetDistanceM() float64 {
	return s.distanceM
}

func (s SessionSummary) GetDuration() float64 {
	return s.duration
}

func (s SessionSummary) GetPolyline() string {
	return s.polyline
}

func (s SessionSummary) GetPointCount() int {
	return s.pointCount
}

// TrackingUpdate is the turn-by-turn state emitted after each processed
// fix: the (possibly snapped) location, remaining distance/time, the street
// in effect and the bounded turn lookahead.
type TrackingUpdate struct {
	location       GpsInfo
	matched        bool
	onRoute        bool
	finished       bool
	distanceToEndM float64
	timeToEndSec   float64
	currentStreet  string
	turns          []TurnItemDist
}

func NewTrackingUpdate(location GpsInfo, matched, onRoute, finished bool,
	distanceToEndM, timeToEndSec float64, currentStreet string, turns []TurnItemDist) TrackingUpdate {
	return TrackingUpdate{
		location:       location,
		matched:        matched,
		onRoute:        onRoute,
		finished:       finished,
		distanceToEndM: distanceToEndM,
		timeToEndSec:   timeToEndSec,
		currentStreet:  currentStreet,
		turns:          turns,
	}
}

func (t TrackingUpdate) GetLocation() GpsInfo {
	return t.location
}

func (t TrackingUpdate) IsMatched() bool {
	return t.matched
}

func (t TrackingUpdate) IsOnRoute() bool {
	return t.onRoute
}

func (t TrackingUpdate) IsFinished() bool {
	return t.finished
}

func (t TrackingUpdate) GetDistanceToEndM() float64 {
	return t.distanceToEndM
}

func (t TrackingUpdate) GetTimeToEndSec() float64 {
	return t.timeToEndSec
}

func (t TrackingUpdate) GetCurrentStreet() string {
	return t.currentStreet
}

func (t TrackingUpdate) GetTurns() []TurnItemDist {
	return t.turns
}
