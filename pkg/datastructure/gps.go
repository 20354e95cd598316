package datastructure

// GpsInfo is one raw fix from the platform location service. timestamp is
// seconds since epoch, speed is meters per second, bearing is compass degrees.
type GpsInfo struct {
	lat                float64
	lon                float64
	horizontalAccuracy float64
	speed              float64
	timestamp          float64
	bearing            float64
	hasSpeed           bool
}

func NewGpsInfo(lat, lon, horizontalAccuracy, speed, timestamp, bearing float64) GpsInfo {
	return GpsInfo{
		lat:                lat,
		lon:                lon,
		horizontalAccuracy: horizontalAccuracy,
		speed:              speed,
		timestamp:          timestamp,
		bearing:            bearing,
		hasSpeed:           speed >= 0,
	}
}

func (g GpsInfo) Lat() float64 {
	return g.lat
}

func (g GpsInfo) Lon() float64 {
	return g.lon
}

func (g GpsInfo) HorizontalAccuracy() float64 {
	return g.horizontalAccuracy
}

func (g GpsInfo) Speed() float64 {
	return g.speed
}

func (g GpsInfo) Timestamp() float64 {
	return g.timestamp
}

func (g GpsInfo) Bearing() float64 {
	return g.bearing
}

func (g GpsInfo) HasSpeed() bool {
	return g.hasSpeed
}

func (g GpsInfo) WithPosition(lat, lon float64) GpsInfo {
	g.lat = lat
	g.lon = lon
	return g
}

func (g GpsInfo) WithBearing(bearing float64) GpsInfo {
	g.bearing = bearing
	return g
}

// MatchingResult carries the route projection of a matched fix: the snapped
// planar point, its vertex index and the cumulative mercator distance from
// the route start.
type MatchingResult struct {
	matchedPoint  Point
	index         int
	distFromBegin float64
	hasMatching   bool
}

func NewMatchingResult() *MatchingResult {
	return &MatchingResult{}
}

func (m *MatchingResult) Set(matchedPoint Point, index int, distFromBegin float64) {
	m.matchedPoint = matchedPoint
	m.index = index
	m.distFromBegin = distFromBegin
	m.hasMatching = true
}

func (m *MatchingResult) GetMatchedPoint() Point {
	return m.matchedPoint
}

func (m *MatchingResult) GetIndex() int {
	return m.index
}

func (m *MatchingResult) GetDistFromBegin() float64 {
	return m.distFromBegin
}

func (m *MatchingResult) IsMatched() bool {
	return m.hasMatching
}
