package polyline

import (
	"github.com/lintang-b-s/navtrack/pkg/datastructure"
)

// Polyline is the ordered planar point sequence of a route's geometric path.
type Polyline struct {
	points []datastructure.Point
}

func NewPolyline(points []datastructure.Point) Polyline {
	return Polyline{points: points}
}

func (p Polyline) GetSize() int {
	return len(p.points)
}

func (p Polyline) GetPoint(i int) datastructure.Point {
	return p.points[i]
}

func (p Polyline) GetPoints() []datastructure.Point {
	return p.points
}

func (p Polyline) Front() datastructure.Point {
	return p.points[0]
}

func (p Polyline) Back() datastructure.Point {
	return p.points[len(p.points)-1]
}
