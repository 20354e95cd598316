package polyline

import (
	"math"

	"github.com/lintang-b-s/navtrack/pkg/datastructure"
	"github.com/lintang-b-s/navtrack/pkg/geo"
	"github.com/lintang-b-s/navtrack/pkg/spatialindex"
)

// Iter is the cursor of a FollowedPolyline: a point possibly interpolated
// between two vertices, plus the index of the vertex at or immediately
// before it. ind == -1 marks an invalid cursor.
type Iter struct {
	pt  datastructure.Point
	ind int
}

func NewIter(pt datastructure.Point, ind int) Iter {
	return Iter{pt: pt, ind: ind}
}

func InvalidIter() Iter {
	return Iter{ind: -1}
}

func (it Iter) GetPoint() datastructure.Point {
	return it.pt
}

func (it Iter) GetIndex() int {
	return it.ind
}

func (it Iter) IsValid() bool {
	return it.ind != -1
}

// FollowedPolyline tracks a monotonically advancing position on a route
// polyline. the cursor never moves backward across updates: the traveler is
// assumed not to reverse along the route.
type FollowedPolyline struct {
	poly    Polyline
	current Iter

	segDistanceM   []float64 // cumulative meters from the route start to vertex i
	mercatorPrefix []float64 // cumulative planar length to vertex i

	segIndex *spatialindex.SegmentIndex
}

func NewFollowedPolyline(points []datastructure.Point) *FollowedPolyline {
	fp := &FollowedPolyline{
		poly:    NewPolyline(points),
		current: InvalidIter(),
	}
	sz := fp.poly.GetSize()
	if sz < 2 {
		return fp
	}

	fp.segDistanceM = make([]float64, sz)
	fp.mercatorPrefix = make([]float64, sz)
	for i := 1; i < sz; i++ {
		prev := fp.poly.GetPoint(i - 1)
		cur := fp.poly.GetPoint(i)
		fp.segDistanceM[i] = fp.segDistanceM[i-1] + geo.DistanceOnEarthM(prev, cur)
		fp.mercatorPrefix[i] = fp.mercatorPrefix[i-1] + datastructure.PlanarDistance(prev, cur)
	}
	fp.current = NewIter(fp.poly.GetPoint(0), 0)
	return fp
}

// WithSpatialIndex attaches an r-tree over the polyline segments so the
// projection search only visits segments intersecting the gps rect. used
// for the full route geometry; short simplified polylines keep the linear
// forward scan.
func (fp *FollowedPolyline) WithSpatialIndex() *FollowedPolyline {
	if fp.IsValid() {
		fp.segIndex = spatialindex.BuildSegmentIndex(fp.poly.GetPoints())
	}
	return fp
}

func (fp *FollowedPolyline) IsValid() bool {
	return fp.current.IsValid() && fp.poly.GetSize() > 1
}

func (fp *FollowedPolyline) GetPolyline() Polyline {
	return fp.poly
}

func (fp *FollowedPolyline) GetCurrentIter() Iter {
	return fp.current
}

// GetIterToIndex builds a cursor sitting exactly on vertex ind.
func (fp *FollowedPolyline) GetIterToIndex(ind int) Iter {
	if ind < 0 || ind >= fp.poly.GetSize() {
		return InvalidIter()
	}
	return NewIter(fp.poly.GetPoint(ind), ind)
}

func (fp *FollowedPolyline) GetTotalDistanceM() float64 {
	if !fp.IsValid() {
		return 0
	}
	return fp.segDistanceM[fp.poly.GetSize()-1]
}

func (fp *FollowedPolyline) distanceFromBeginM(it Iter) float64 {
	return fp.segDistanceM[it.ind] + geo.DistanceOnEarthM(fp.poly.GetPoint(it.ind), it.pt)
}

func (fp *FollowedPolyline) GetDistanceFromBeginM() float64 {
	if !fp.IsValid() {
		return 0
	}
	return fp.distanceFromBeginM(fp.current)
}

func (fp *FollowedPolyline) GetDistanceToEndM() float64 {
	if !fp.IsValid() {
		return 0
	}
	return fp.GetTotalDistanceM() - fp.GetDistanceFromBeginM()
}

// GetMercatorDistanceFromBegin. cumulative arc length to the cursor in
// planar projection units.
func (fp *FollowedPolyline) GetMercatorDistanceFromBegin() float64 {
	if !fp.IsValid() {
		return 0
	}
	cur := fp.current
	return fp.mercatorPrefix[cur.ind] + datastructure.PlanarDistance(fp.poly.GetPoint(cur.ind), cur.pt)
}

// GetDistanceM. arc length in meters between two cursors, signed by
// traversal order (negative when it2 precedes it1).
func (fp *FollowedPolyline) GetDistanceM(it1, it2 Iter) float64 {
	if !fp.IsValid() || !it1.IsValid() || !it2.IsValid() {
		return 0
	}
	return fp.distanceFromBeginM(it2) - fp.distanceFromBeginM(it1)
}

// UpdateProjection snaps the cursor to the forward projection of the rect
// center geometrically closest to it. returns an invalid iter, leaving the
// cursor untouched, when no projection falls inside rect.
func (fp *FollowedPolyline) UpdateProjection(rect datastructure.Rect) Iter {
	if !fp.IsValid() {
		return InvalidIter()
	}
	center := rect.Center()
	res := fp.getClosestProjection(rect, func(it Iter) float64 {
		return geo.DistanceOnEarthM(center, it.pt)
	})
	if res.IsValid() {
		fp.current = res
	}
	return res
}

// UpdateProjectionByPrediction narrows the search window around
// "current arc length + predictDistanceM" to reject spurious snaps onto
// geometrically near but unreachable geometry (parallel roads). a negative
// predictDistanceM disables prediction.
func (fp *FollowedPolyline) UpdateProjectionByPrediction(rect datastructure.Rect, predictDistanceM float64) Iter {
	if predictDistanceM < 0 {
		return fp.UpdateProjection(rect)
	}
	if !fp.IsValid() {
		return InvalidIter()
	}
	res := fp.getClosestProjection(rect, func(it Iter) float64 {
		return math.Abs(fp.GetDistanceM(fp.current, it) - predictDistanceM)
	})
	if res.IsValid() {
		fp.current = res
	}
	return res
}

// getClosestProjection walks the segments ahead of the cursor, projects the
// rect center onto each, and keeps the candidate minimizing distFn among
// projections inside rect. only segments at or after the current vertex are
// considered, which keeps the cursor index non-decreasing.
func (fp *FollowedPolyline) getClosestProjection(rect datastructure.Rect,
	distFn func(Iter) float64) Iter {
	res := InvalidIter()
	minDist := math.MaxFloat64
	center := rect.Center()

	consider := func(segIdx int) {
		proj, _ := datastructure.NearestPointOnSegment(
			fp.poly.GetPoint(segIdx), fp.poly.GetPoint(segIdx+1), center)
		if !rect.IsPointInside(proj) {
			return
		}
		it := NewIter(proj, segIdx)
		if d := distFn(it); d < minDist {
			minDist = d
			res = it
		}
	}

	if fp.segIndex != nil {
		for _, segIdx := range fp.segIndex.Search(rect) {
			if segIdx < fp.current.ind {
				continue
			}
			consider(segIdx)
		}
		return res
	}

	for segIdx := fp.current.ind; segIdx+1 < fp.poly.GetSize(); segIdx++ {
		consider(segIdx)
	}
	return res
}

// GetCurrentDirectionPoint returns a point ahead of the cursor suitable for
// a direction indicator, skipping points closer than toleranceM so the
// arrow does not jitter while nearly stationary.
func (fp *FollowedPolyline) GetCurrentDirectionPoint(toleranceM float64) (datastructure.Point, bool) {
	if !fp.IsValid() {
		return datastructure.Point{}, false
	}
	sz := fp.poly.GetSize()
	for idx := fp.current.ind + 1; idx < sz-1; idx++ {
		pt := fp.poly.GetPoint(idx)
		if geo.DistanceOnEarthM(pt, fp.current.pt) > toleranceM {
			return pt, true
		}
	}
	return fp.poly.GetPoint(sz - 1), true
}

// Swap exchanges the full tracker state. callers serialize access.
func (fp *FollowedPolyline) Swap(rhs *FollowedPolyline) {
	*fp, *rhs = *rhs, *fp
}
