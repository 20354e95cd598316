package polyline

import (
	"container/heap"
	"sort"

	"github.com/lintang-b-s/navtrack/pkg/datastructure"
)

// SimplifyNearOptimal reduces points to a near-optimal approximation of at
// most maxPointCount vertices. splits are taken greedily on the vertex with
// the largest squared perpendicular error until every remaining segment's
// error drops below epsSquared or the budget is spent. deterministic for
// identical input. used for the stable pedestrian direction-arrow polyline.
func SimplifyNearOptimal(maxPointCount int, points []datastructure.Point, epsSquared float64) []datastructure.Point {
	n := len(points)
	if maxPointCount < 2 {
		maxPointCount = 2
	}
	if n <= 2 {
		out := make([]datastructure.Point, n)
		copy(out, points)
		return out
	}

	kept := map[int]struct{}{0: {}, n - 1: {}}

	pq := &splitQueue{}
	heap.Init(pq)
	pushSplit(pq, points, 0, n-1)

	for len(kept) < maxPointCount && pq.Len() > 0 {
		cand := heap.Pop(pq).(splitCandidate)
		if cand.errSquared <= epsSquared {
			break
		}
		kept[cand.split] = struct{}{}
		pushSplit(pq, points, cand.from, cand.split)
		pushSplit(pq, points, cand.split, cand.to)
	}

	idxs := make([]int, 0, len(kept))
	for i := range kept {
		idxs = append(idxs, i)
	}
	sort.Ints(idxs)

	out := make([]datastructure.Point, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, points[i])
	}
	return out
}

// worstVertex finds the interior vertex of (from,to) farthest from the
// chord, the classic Douglas-Peucker split choice. ties resolve to the
// lowest index so the result is deterministic.
func worstVertex(points []datastructure.Point, from, to int) (int, float64) {
	worst := -1
	worstErr := -1.0
	for i := from + 1; i < to; i++ {
		e := datastructure.SquaredDistanceToSegment(points[from], points[to], points[i])
		if e > worstErr {
			worstErr = e
			worst = i
		}
	}
	return worst, worstErr
}

type splitCandidate struct {
	from, to, split int
	errSquared      float64
}

func pushSplit(pq *splitQueue, points []datastructure.Point, from, to int) {
	if to-from < 2 {
		return
	}
	split, errSquared := worstVertex(points, from, to)
	heap.Push(pq, splitCandidate{from: from, to: to, split: split, errSquared: errSquared})
}

type splitQueue []splitCandidate

func (q splitQueue) Len() int { return len(q) }

func (q splitQueue) Less(i, j int) bool {
	if q[i].errSquared != q[j].errSquared {
		return q[i].errSquared > q[j].errSquared
	}
	return q[i].split < q[j].split
}

func (q splitQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *splitQueue) Push(x interface{}) {
	*q = append(*q, x.(splitCandidate))
}

func (q *splitQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
