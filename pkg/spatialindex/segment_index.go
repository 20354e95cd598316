package spatialindex

import (
	"math"
	"sort"

	"github.com/lintang-b-s/navtrack/pkg/datastructure"
	"github.com/tidwall/rtree"
)

// SegmentIndex is an r-tree over the segments of one route polyline, keyed
// by segment index (segment i spans vertices i and i+1). the tracker uses
// it to bound the projection search to segments intersecting the gps
// search rect instead of scanning the whole tail of the route.
type SegmentIndex struct {
	tr *rtree.RTreeG[int]
}

func BuildSegmentIndex(points []datastructure.Point) *SegmentIndex {
	var tr rtree.RTreeG[int]
	for i := 0; i+1 < len(points); i++ {
		a := points[i]
		b := points[i+1]
		minX := math.Min(a.GetX(), b.GetX())
		minY := math.Min(a.GetY(), b.GetY())
		maxX := math.Max(a.GetX(), b.GetX())
		maxY := math.Max(a.GetY(), b.GetY())
		tr.Insert([2]float64{minX, minY}, [2]float64{maxX, maxY}, i)
	}
	return &SegmentIndex{tr: &tr}
}

// Search returns the indices of all segments whose bounding box intersects
// rect, ascending. a projection point inside rect always lies on such a
// segment, so skipping the rest never loses a candidate.
func (si *SegmentIndex) Search(rect datastructure.Rect) []int {
	results := make([]int, 0, 8)
	si.tr.Search(
		[2]float64{rect.Min().GetX(), rect.Min().GetY()},
		[2]float64{rect.Max().GetX(), rect.Max().GetY()},
		func(min, max [2]float64, segIdx int) bool {
			results = append(results, segIdx)
			return true
		})
	sort.Ints(results)
	return results
}
