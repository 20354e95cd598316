package datastructure

import (
	"testing"
)

func TestNearestPointOnSegment(t *testing.T) {

	testCases := []struct {
		name   string
		a      Point
		b      Point
		p      Point
		wantPt Point
		wantT  float64
	}{
		{
			name:   "test projection falls inside the segment",
			a:      NewPoint(0, 0),
			b:      NewPoint(10, 0),
			p:      NewPoint(4, 3),
			wantPt: NewPoint(4, 0),
			wantT:  0.4,
		},
		{
			name:   "test projection clamps to the start",
			a:      NewPoint(0, 0),
			b:      NewPoint(10, 0),
			p:      NewPoint(-5, 2),
			wantPt: NewPoint(0, 0),
			wantT:  0,
		},
		{
			name:   "test projection clamps to the end",
			a:      NewPoint(0, 0),
			b:      NewPoint(10, 0),
			p:      NewPoint(14, -1),
			wantPt: NewPoint(10, 0),
			wantT:  1,
		},
		{
			name:   "test degenerate segment returns its point",
			a:      NewPoint(3, 3),
			b:      NewPoint(3, 3),
			p:      NewPoint(7, 7),
			wantPt: NewPoint(3, 3),
			wantT:  0,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			gotPt, gotT := NearestPointOnSegment(tt.a, tt.b, tt.p)
			if !PointsAlmostEqual(gotPt, tt.wantPt) {
				t.Errorf("projection point = (%v, %v), want (%v, %v)",
					gotPt.GetX(), gotPt.GetY(), tt.wantPt.GetX(), tt.wantPt.GetY())
			}
			if !eq(gotT, tt.wantT) {
				t.Errorf("projection parameter = %v, want %v", gotT, tt.wantT)
			}
		})
	}
}

func TestSquaredDistanceToSegment(t *testing.T) {
	a := NewPoint(0, 0)
	b := NewPoint(10, 0)

	if got := SquaredDistanceToSegment(a, b, NewPoint(5, 3)); !eq(got, 9) {
		t.Errorf("perpendicular squared distance = %v, want 9", got)
	}
	if got := SquaredDistanceToSegment(a, b, NewPoint(13, 4)); !eq(got, 25) {
		t.Errorf("clamped squared distance = %v, want 25", got)
	}
}

func TestRectFromCenter(t *testing.T) {
	rect := NewRectFromCenter(NewPoint(2, 2), 1)

	if !PointsAlmostEqual(rect.Center(), NewPoint(2, 2)) {
		t.Error("rect center should stay at the construction center")
	}
	if !rect.IsPointInside(NewPoint(2.5, 1.5)) {
		t.Error("interior point should be inside the rect")
	}
	if !rect.IsPointInside(NewPoint(3, 2)) {
		t.Error("boundary point should be inside the rect")
	}
	if rect.IsPointInside(NewPoint(3.1, 2)) {
		t.Error("point past the boundary should be outside the rect")
	}
}
