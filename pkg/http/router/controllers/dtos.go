package controllers

import (
	"github.com/lintang-b-s/navtrack/pkg/datastructure"
)

type gpsFixRequest struct {
	Lat       float64 `json:"lat" validate:"min=-90,max=90"`
	Lon       float64 `json:"lon" validate:"min=-180,max=180"`
	Accuracy  float64 `json:"accuracy" validate:"min=0"`
	Speed     float64 `json:"speed"`
	Timestamp float64 `json:"timestamp" validate:"min=0"`
	Bearing   float64 `json:"bearing"`
}

func (g gpsFixRequest) ToGpsInfo() datastructure.GpsInfo {
	return datastructure.NewGpsInfo(g.Lat, g.Lon, g.Accuracy, g.Speed, g.Timestamp, g.Bearing)
}

type trackRequest struct {
	Id  string        `json:"id" validate:"required"`
	Fix gpsFixRequest `json:"fix"`
}

type sessionResponse struct {
	Id       string  `json:"id"`
	Name     string  `json:"name"`
	Distance float64 `json:"distance"`
	Duration float64 `json:"duration"`
	Path     string  `json:"path"`
	Points   int     `json:"points"`
}

func NewSessionResponse(summary datastructure.SessionSummary) sessionResponse {
	return sessionResponse{
		Id:       summary.GetId(),
		Name:     summary.GetName(),
		Distance: summary.GetDistanceM(),
		Duration: summary.GetDuration(),
		Path:     summary.GetPolyline(),
		Points:   summary.GetPointCount(),
	}
}

type turnResponse struct {
	Direction      string  `json:"direction"`
	DirectionCode  int     `json:"directionCode"`
	ExitNumber     int     `json:"exitNumber"`
	TargetStreet   string  `json:"targetStreet"`
	DistanceMeters float64 `json:"distanceMeters"`
}

type trackingUpdateResponse struct {
	Lat           float64        `json:"lat"`
	Lon           float64        `json:"lon"`
	Bearing       float64        `json:"bearing"`
	Matched       bool           `json:"matched"`
	OnRoute       bool           `json:"onRoute"`
	Finished      bool           `json:"finished"`
	DistanceToEnd float64        `json:"distanceToEnd"`
	TimeToEnd     float64        `json:"timeToEnd"`
	Street        string         `json:"street"`
	Turns         []turnResponse `json:"turns"`
}

func NewTrackingUpdateResponse(update datastructure.TrackingUpdate) trackingUpdateResponse {
	turns := make([]turnResponse, 0, len(update.GetTurns()))
	for _, t := range update.GetTurns() {
		turns = append(turns, turnResponse{
			Direction:      t.GetTurnItem().GetTurn().String(),
			DirectionCode:  int(t.GetTurnItem().GetTurn()),
			ExitNumber:     t.GetTurnItem().GetExitNum(),
			TargetStreet:   t.GetTurnItem().GetTargetName(),
			DistanceMeters: t.GetDistMeters(),
		})
	}
	loc := update.GetLocation()
	return trackingUpdateResponse{
		Lat:           loc.Lat(),
		Lon:           loc.Lon(),
		Bearing:       loc.Bearing(),
		Matched:       update.IsMatched(),
		OnRoute:       update.IsOnRoute(),
		Finished:      update.IsFinished(),
		DistanceToEnd: update.GetDistanceToEndM(),
		TimeToEnd:     update.GetTimeToEndSec(),
		Street:        update.GetCurrentStreet(),
		Turns:         turns,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
