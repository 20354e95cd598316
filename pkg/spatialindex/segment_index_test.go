package spatialindex

import (
	"testing"

	"github.com/lintang-b-s/navtrack/pkg/datastructure"
)

func TestSegmentIndexSearch(t *testing.T) {
	points := []datastructure.Point{
		datastructure.NewPoint(0, 0),
		datastructure.NewPoint(1, 0),
		datastructure.NewPoint(2, 0),
		datastructure.NewPoint(3, 0),
		datastructure.NewPoint(4, 0),
	}
	si := BuildSegmentIndex(points)

	testCases := []struct {
		name string
		rect datastructure.Rect
		want []int
	}{
		{
			name: "test rect over the middle hits two segments",
			rect: datastructure.NewRect(1.5, -0.1, 2.5, 0.1),
			want: []int{1, 2},
		},
		{
			name: "test rect touching a shared vertex hits both neighbors",
			rect: datastructure.NewRect(0.9, -0.1, 1.1, 0.1),
			want: []int{0, 1},
		},
		{
			name: "test rect off the polyline hits nothing",
			rect: datastructure.NewRect(0, 5, 1, 6),
			want: []int{},
		},
		{
			name: "test rect covering everything returns all segments ascending",
			rect: datastructure.NewRect(-1, -1, 5, 1),
			want: []int{0, 1, 2, 3},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := si.Search(tt.rect)
			if len(got) != len(tt.want) {
				t.Fatalf("Search() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Search() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}
