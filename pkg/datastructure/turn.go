package datastructure

import (
	"github.com/lintang-b-s/navtrack/pkg"
)

// TurnItem is one maneuver of the turn table, keyed by the polyline vertex
// where the maneuver happens. the table is ordered ascending by index.
type TurnItem struct {
	index          int
	turn           pkg.TurnDirection
	pedestrianTurn pkg.PedestrianDirection
	exitNum        int
	keepAnyway     bool
	sourceName     string
	targetName     string
}

func NewTurnItem(index int, turn pkg.TurnDirection, exitNum int, keepAnyway bool,
	pedestrianTurn pkg.PedestrianDirection, sourceName, targetName string) TurnItem {
	return TurnItem{
		index:          index,
		turn:           turn,
		pedestrianTurn: pedestrianTurn,
		exitNum:        exitNum,
		keepAnyway:     keepAnyway,
		sourceName:     sourceName,
		targetName:     targetName,
	}
}

func (t TurnItem) GetIndex() int {
	return t.index
}

func (t TurnItem) GetTurn() pkg.TurnDirection {
	return t.turn
}

func (t TurnItem) GetPedestrianTurn() pkg.PedestrianDirection {
	return t.pedestrianTurn
}

func (t TurnItem) GetExitNum() int {
	return t.exitNum
}

func (t TurnItem) GetKeepAnyway() bool {
	return t.keepAnyway
}

func (t TurnItem) GetSourceName() string {
	return t.sourceName
}

func (t TurnItem) GetTargetName() string {
	return t.targetName
}

// TurnItemDist pairs a maneuver with its distance from the current cursor,
// the unit consumed by turn-by-turn UIs.
type TurnItemDist struct {
	turnItem   TurnItem
	distMeters float64
}

func NewTurnItemDist(turnItem TurnItem, distMeters float64) TurnItemDist {
	return TurnItemDist{
		turnItem:   turnItem,
		distMeters: distMeters,
	}
}

func (td TurnItemDist) GetTurnItem() TurnItem {
	return td.turnItem
}

func (td TurnItemDist) GetDistMeters() float64 {
	return td.distMeters
}
