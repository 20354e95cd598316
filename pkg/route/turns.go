package route

import (
	"sort"

	"github.com/lintang-b-s/navtrack/pkg/datastructure"
)

// currentTurnIdx. position of the first turn whose vertex index is at or
// after the cursor; len(turns) when the cursor passed the last turn.
func (r *Route) currentTurnIdx() int {
	ind := r.poly.GetCurrentIter().GetIndex()
	return sort.Search(len(r.turns), func(i int) bool {
		return r.turns[i].GetIndex() >= ind
	})
}

// GetCurrentTurn resolves the turn the traveler is approaching and its
// distance in meters. false when the turn table is empty or exhausted.
func (r *Route) GetCurrentTurn() (datastructure.TurnItem, float64, bool) {
	idx := r.currentTurnIdx()
	if len(r.turns) == 0 || idx == len(r.turns) {
		return datastructure.TurnItem{}, 0, false
	}

	turn := r.turns[idx]
	dist := r.poly.GetDistanceM(r.poly.GetCurrentIter(), r.poly.GetIterToIndex(turn.GetIndex()))
	return turn, dist, true
}

// GetNextTurn is the turn strictly after the current one; false at the
// final turn.
func (r *Route) GetNextTurn() (datastructure.TurnItem, float64, bool) {
	idx := r.currentTurnIdx()
	if idx == len(r.turns) || idx+1 == len(r.turns) {
		return datastructure.TurnItem{}, 0, false
	}

	turn := r.turns[idx+1]
	dist := r.poly.GetDistanceM(r.poly.GetCurrentIter(), r.poly.GetIterToIndex(turn.GetIndex()))
	return turn, dist, true
}

// GetNextTurns. bounded lookahead of the current and next turn with their
// distances, the unit consumed by the turn-by-turn UI.
func (r *Route) GetNextTurns() ([]datastructure.TurnItemDist, bool) {
	currentTurn, currentDist, ok := r.GetCurrentTurn()
	if !ok {
		return nil, false
	}

	turns := make([]datastructure.TurnItemDist, 0, 2)
	turns = append(turns, datastructure.NewTurnItemDist(currentTurn, currentDist))

	if nextTurn, nextDist, ok := r.GetNextTurn(); ok {
		turns = append(turns, datastructure.NewTurnItemDist(nextTurn, nextDist))
	}
	return turns, true
}
