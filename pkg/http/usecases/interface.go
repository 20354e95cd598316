package usecases

import (
	"github.com/lintang-b-s/navtrack/pkg/datastructure"
)

type NavigationService interface {
	CreateSession(document []byte, mode string) (datastructure.SessionSummary, error)
	GetState(id string) (datastructure.TrackingUpdate, error)
	Feed(id string, fix datastructure.GpsInfo) (datastructure.TrackingUpdate, error)
	DropSession(id string) error
}
