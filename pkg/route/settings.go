package route

import (
	"github.com/lintang-b-s/navtrack/pkg"
)

// RoutingSettings is the per-travel-mode matching configuration, immutable
// for the Route's lifetime except via SetRoutingSettings.
type RoutingSettings struct {
	matchRoute         bool
	keepPedestrianInfo bool
	matchingThresholdM float64
}

func NewRoutingSettings(matchRoute, keepPedestrianInfo bool, matchingThresholdM float64) RoutingSettings {
	return RoutingSettings{
		matchRoute:         matchRoute,
		keepPedestrianInfo: keepPedestrianInfo,
		matchingThresholdM: matchingThresholdM,
	}
}

func GetCarRoutingSettings() RoutingSettings {
	return NewRoutingSettings(true, false, pkg.CAR_MATCHING_THRESHOLD_M)
}

func GetPedestrianRoutingSettings() RoutingSettings {
	return NewRoutingSettings(false, true, pkg.PEDESTRIAN_MATCHING_THRESHOLD_M)
}

func (rs RoutingSettings) MatchRoute() bool {
	return rs.matchRoute
}

func (rs RoutingSettings) KeepPedestrianInfo() bool {
	return rs.keepPedestrianInfo
}

func (rs RoutingSettings) MatchingThresholdM() float64 {
	return rs.matchingThresholdM
}
