package datastructure

import (
	"math"
)

const (
	EPS = 1e-9
)

// Point is a 2D coordinate in the planar mercator projection. all route
// geometry operates on these, lat/lon only exists at the wire boundary.
type Point struct {
	x, y float64
}

func NewPoint(x, y float64) Point {
	return Point{x, y}
}

func (p Point) GetX() float64 {
	return p.x
}

func (p Point) GetY() float64 {
	return p.y
}

// equal operator
func eq(a, b float64) bool {
	return math.Abs(a-b) <= EPS
}

func PointsAlmostEqual(a, b Point) bool {
	return eq(a.x, b.x) && eq(a.y, b.y)
}

func SquaredDistance(a, b Point) float64 {
	dx := a.x - b.x
	dy := a.y - b.y
	return dx*dx + dy*dy
}

func PlanarDistance(a, b Point) float64 {
	return math.Sqrt(SquaredDistance(a, b))
}

// NearestPointOnSegment projects p onto segment (a,b), clamped to the
// segment's endpoints. the second result is the clamped parameter t in [0,1].
func NearestPointOnSegment(a, b, p Point) (Point, float64) {
	abx := b.x - a.x
	aby := b.y - a.y
	lenSq := abx*abx + aby*aby
	if lenSq <= EPS {
		return a, 0
	}

	t := ((p.x-a.x)*abx + (p.y-a.y)*aby) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return NewPoint(a.x+t*abx, a.y+t*aby), t
}

// SquaredDistanceToSegment. squared perpendicular distance from p to the
// clamped segment (a,b), used by the simplifier's split error metric.
func SquaredDistanceToSegment(a, b, p Point) float64 {
	proj, _ := NearestPointOnSegment(a, b, p)
	return SquaredDistance(proj, p)
}

// Rect is an axis-aligned search window in the planar projection.
type Rect struct {
	minX, minY, maxX, maxY float64
}

func NewRect(minX, minY, maxX, maxY float64) Rect {
	return Rect{minX, minY, maxX, maxY}
}

func NewRectFromCenter(center Point, halfSize float64) Rect {
	return Rect{
		minX: center.x - halfSize,
		minY: center.y - halfSize,
		maxX: center.x + halfSize,
		maxY: center.y + halfSize,
	}
}

func (r Rect) Center() Point {
	return NewPoint((r.minX+r.maxX)/2.0, (r.minY+r.maxY)/2.0)
}

func (r Rect) IsPointInside(p Point) bool {
	return p.x >= r.minX && p.x <= r.maxX && p.y >= r.minY && p.y <= r.maxY
}

func (r Rect) Min() Point {
	return NewPoint(r.minX, r.minY)
}

func (r Rect) Max() Point {
	return NewPoint(r.maxX, r.maxY)
}
