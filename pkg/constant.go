package pkg

// enum of turn direction. the integer codes are part of the wire format,
// never reorder.
type TurnDirection int

const (
	NO_TURN TurnDirection = iota
	GO_STRAIGHT
	TURN_RIGHT
	TURN_SHARP_RIGHT
	TURN_SLIGHT_RIGHT
	TURN_LEFT
	TURN_SHARP_LEFT
	TURN_SLIGHT_LEFT
	U_TURN
	TAKE_THE_EXIT
	ENTER_ROUND_ABOUT
	LEAVE_ROUND_ABOUT
	STAY_ON_ROUND_ABOUT
	START_AT_END_OF_STREET
	REACHED_YOUR_DESTINATION
)

// enum of pedestrian direction. integer codes are part of the wire format.
type PedestrianDirection int

const (
	PEDESTRIAN_NONE PedestrianDirection = iota
	PEDESTRIAN_UPSTAIRS
	PEDESTRIAN_DOWNSTAIRS
	PEDESTRIAN_LIFT_GATE
	PEDESTRIAN_GATE
	PEDESTRIAN_REACHED_YOUR_DESTINATION
)

func (t TurnDirection) String() string {
	switch t {
	case NO_TURN:
		return "NO_TURN"
	case GO_STRAIGHT:
		return "GO_STRAIGHT"
	case TURN_RIGHT:
		return "TURN_RIGHT"
	case TURN_SHARP_RIGHT:
		return "TURN_SHARP_RIGHT"
	case TURN_SLIGHT_RIGHT:
		return "TURN_SLIGHT_RIGHT"
	case TURN_LEFT:
		return "TURN_LEFT"
	case TURN_SHARP_LEFT:
		return "TURN_SHARP_LEFT"
	case TURN_SLIGHT_LEFT:
		return "TURN_SLIGHT_LEFT"
	case U_TURN:
		return "U_TURN"
	case TAKE_THE_EXIT:
		return "TAKE_THE_EXIT"
	case ENTER_ROUND_ABOUT:
		return "ENTER_ROUND_ABOUT"
	case LEAVE_ROUND_ABOUT:
		return "LEAVE_ROUND_ABOUT"
	case STAY_ON_ROUND_ABOUT:
		return "STAY_ON_ROUND_ABOUT"
	case START_AT_END_OF_STREET:
		return "START_AT_END_OF_STREET"
	case REACHED_YOUR_DESTINATION:
		return "REACHED_YOUR_DESTINATION"
	default:
		return "UNKNOWN"
	}
}

const (
	// prediction is disabled when the gap between two fixes exceeds this,
	// so we never extrapolate across large gaps or backward clock jumps.
	LOCATION_TIME_THRESHOLD_SEC = 60.0

	// the route is considered finished below this distance to the end.
	ON_END_TOLERANCE_M = 10.0

	// GetStreetNameAfterIdx looks past unnamed segments at most this far.
	STREET_NAME_LINK_METERS = 400.0

	// simplified polyline budget for pedestrian direction arrows.
	SIMPLIFY_MAX_POINT_COUNT = 20
	SIMPLIFY_EPSILON         = 1e-8

	CAR_MATCHING_THRESHOLD_M        = 50.0
	PEDESTRIAN_MATCHING_THRESHOLD_M = 20.0
)
