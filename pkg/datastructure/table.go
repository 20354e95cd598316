package datastructure

// TimeItem is one checkpoint of the timing table: cumulative travel seconds
// at a polyline vertex. entries are ordered ascending by both fields, the
// last entry holds the total route duration.
type TimeItem struct {
	index int
	time  float64
}

func NewTimeItem(index int, time float64) TimeItem {
	return TimeItem{index: index, time: time}
}

func (t TimeItem) GetIndex() int {
	return t.index
}

func (t TimeItem) GetTime() float64 {
	return t.time
}

// StreetItem opens a half-open range [index, nextEntry.index) over which the
// street name is in effect. an empty name marks an unnamed segment.
type StreetItem struct {
	index int
	name  string
}

func NewStreetItem(index int, name string) StreetItem {
	return StreetItem{index: index, name: name}
}

func (s StreetItem) GetIndex() int {
	return s.index
}

func (s StreetItem) GetName() string {
	return s.name
}
