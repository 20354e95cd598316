package route

import (
	"github.com/lintang-b-s/navtrack/pkg"
	"github.com/lintang-b-s/navtrack/pkg/polyline"
	"github.com/lintang-b-s/navtrack/pkg/util"
)

// currentStreetIdxAfter. bracket scan to the street entry in force at iter:
// the matched boundary on an exact hit, the previous entry otherwise. the
// past-the-end index marks an empty table or a cursor beyond the final
// boundary, no street is in effect there.
func (r *Route) currentStreetIdxAfter(iter polyline.Iter) int {
	// streets is empty for the pedestrian router.
	if len(r.streets) == 0 {
		return len(r.streets)
	}

	prev := 0
	cur := 1
	for cur < len(r.streets) && r.streets[cur].GetIndex() < iter.GetIndex() {
		prev++
		cur++
	}
	if cur == len(r.streets) {
		return cur
	}
	if r.streets[cur].GetIndex() == iter.GetIndex() {
		return cur
	}
	return prev
}

// GetCurrentStreetName. name of the street in effect at the cursor, empty
// when the table is empty or exhausted.
func (r *Route) GetCurrentStreetName() string {
	idx := r.currentStreetIdxAfter(r.poly.GetCurrentIter())
	if idx >= len(r.streets) {
		return ""
	}
	return r.streets[idx].GetName()
}

// GetStreetNameAfterIdx resolves the upcoming street name at a vertex,
// looking past consecutive unnamed entries while they stay within
// STREET_NAME_LINK_METERS of the vertex. a hint heuristic only, never use
// it for correctness-critical decisions.
func (r *Route) GetStreetNameAfterIdx(ind int) string {
	polyIter := r.poly.GetIterToIndex(ind)
	if !polyIter.IsValid() {
		return ""
	}
	idx := r.currentStreetIdxAfter(polyIter)
	for ; idx < len(r.streets); idx++ {
		if r.streets[idx].GetName() == "" {
			continue
		}
		nameIndex := util.MaxInt(r.streets[idx].GetIndex(), polyIter.GetIndex())
		if r.poly.GetDistanceM(polyIter, r.poly.GetIterToIndex(nameIndex)) < pkg.STREET_NAME_LINK_METERS {
			return r.streets[idx].GetName()
		}
		return ""
	}
	return ""
}
