package route

import (
	"sort"

	"github.com/lintang-b-s/navtrack/pkg/geo"
	"github.com/lintang-b-s/navtrack/pkg/util"
)

// GetTotalTimeSec. total route duration, the last checkpoint of the table.
func (r *Route) GetTotalTimeSec() float64 {
	if len(r.times) == 0 {
		return 0
	}
	return r.times[len(r.times)-1].GetTime()
}

// GetCurrentTimeToEndSec interpolates the remaining travel time linearly
// over the checkpoint bracket straddling the cursor. a zero-length bracket
// cannot be interpolated, only the time after the bracket is reported then.
func (r *Route) GetCurrentTimeToEndSec() float64 {
	sz := r.poly.GetPolyline().GetSize()
	if len(r.times) == 0 || sz == 0 {
		return 0
	}

	cur := r.poly.GetCurrentIter()
	idx := sort.Search(len(r.times), func(i int) bool {
		return r.times[i].GetIndex() > cur.GetIndex()
	})
	if idx == len(r.times) {
		return 0
	}

	bracketTime := r.times[idx].GetTime()
	if idx > 0 {
		bracketTime -= r.times[idx-1].GetTime()
	}

	distFn := func(start, end int) float64 {
		return r.poly.GetDistanceM(r.poly.GetIterToIndex(start), r.poly.GetIterToIndex(end))
	}

	bracketStart := 0
	if idx > 0 {
		bracketStart = r.times[idx-1].GetIndex()
	}
	bracketDist := distFn(bracketStart, r.times[idx].GetIndex())

	timeAfterBracket := r.GetTotalTimeSec() - r.times[idx].GetTime()
	if util.AlmostEqual(bracketDist, 0) {
		return timeAfterBracket
	}

	// distance from the cursor (not its vertex) to the bracket end.
	distRemain := distFn(cur.GetIndex(), r.times[idx].GetIndex()) -
		geo.DistanceOnEarthM(cur.GetPoint(), r.poly.GetPolyline().GetPoint(cur.GetIndex()))
	return timeAfterBracket + bracketTime*(distRemain/bracketDist)
}
