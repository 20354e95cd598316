package usecases

import (
	"testing"

	"github.com/lintang-b-s/navtrack/pkg/datastructure"
	"github.com/lintang-b-s/navtrack/pkg/geo"
	"github.com/lintang-b-s/navtrack/pkg/route"
	"github.com/lintang-b-s/navtrack/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func routeDocument(t *testing.T) []byte {
	t.Helper()

	points := make([]datastructure.Point, 0, 10)
	for i := 0; i < 10; i++ {
		points = append(points, geo.FromLatLon(0, float64(i)*0.001))
	}
	r := route.NewRoute("vehicle", points, "equator")
	r.SetSectionTimes([]datastructure.TimeItem{
		datastructure.NewTimeItem(0, 0),
		datastructure.NewTimeItem(9, 90),
	})
	r.SetStreetNames([]datastructure.StreetItem{
		datastructure.NewStreetItem(0, "Alpha"),
		datastructure.NewStreetItem(5, "Beta"),
	})

	data, err := route.NewCodec(false).ToJson(r)
	require.NoError(t, err)
	return data
}

func newTracker() *NavigationTracker {
	return NewNavigationTracker(zap.NewNop(), route.NewCodec(false))
}

func TestCreateSession(t *testing.T) {
	tracker := newTracker()

	summary, err := tracker.CreateSession(routeDocument(t), "")
	require.NoError(t, err)

	assert.Equal(t, "route-1", summary.GetId())
	assert.Equal(t, 10, summary.GetPointCount())
	assert.InDelta(t, 9*111.32, summary.GetDistanceM(), 1.0)
	assert.Equal(t, 90.0, summary.GetDuration())
	assert.NotEmpty(t, summary.GetPolyline())

	second, err := tracker.CreateSession(routeDocument(t), "pedestrian")
	require.NoError(t, err)
	assert.Equal(t, "route-2", second.GetId())
}

func TestCreateSessionRejectsBadDocument(t *testing.T) {
	tracker := newTracker()

	_, err := tracker.CreateSession([]byte(`{"turns": []}`), "")
	require.Error(t, err)

	domainErr, ok := err.(*util.Error)
	require.True(t, ok)
	assert.Equal(t, util.ErrBadParamInput, domainErr.Code())

	// a single point cannot be followed.
	_, err = tracker.CreateSession([]byte(`{"points": [{"latitude": 0, "longitude": 0}]}`), "")
	require.Error(t, err)
}

func TestFeedAdvancesSession(t *testing.T) {
	tracker := newTracker()
	summary, err := tracker.CreateSession(routeDocument(t), "")
	require.NoError(t, err)

	update, err := tracker.Feed(summary.GetId(),
		datastructure.NewGpsInfo(0.00001, 0.0045, 0, -1, 0, 0))
	require.NoError(t, err)

	assert.True(t, update.IsOnRoute())
	assert.True(t, update.IsMatched())
	assert.False(t, update.IsFinished())
	assert.Equal(t, "Alpha", update.GetCurrentStreet())
	assert.InDelta(t, 4.5*111.32, summary.GetDistanceM()-update.GetDistanceToEndM(), 2.0)

	finish, err := tracker.Feed(summary.GetId(),
		datastructure.NewGpsInfo(0.00001, 0.009, 0, -1, 0, 0))
	require.NoError(t, err)
	assert.True(t, finish.IsFinished())
}

func TestGetState(t *testing.T) {
	tracker := newTracker()
	summary, err := tracker.CreateSession(routeDocument(t), "")
	require.NoError(t, err)

	state, err := tracker.GetState(summary.GetId())
	require.NoError(t, err)
	assert.False(t, state.IsMatched())
	assert.InDelta(t, summary.GetDistanceM(), state.GetDistanceToEndM(), 1.0)

	_, err = tracker.GetState("route-404")
	require.Error(t, err)
	domainErr, ok := err.(*util.Error)
	require.True(t, ok)
	assert.Equal(t, util.ErrNotFound, domainErr.Code())
}

func TestDropSession(t *testing.T) {
	tracker := newTracker()
	summary, err := tracker.CreateSession(routeDocument(t), "")
	require.NoError(t, err)

	require.NoError(t, tracker.DropSession(summary.GetId()))

	_, err = tracker.Feed(summary.GetId(),
		datastructure.NewGpsInfo(0, 0, 0, -1, 0, 0))
	require.Error(t, err)

	err = tracker.DropSession(summary.GetId())
	require.Error(t, err)
	domainErr, ok := err.(*util.Error)
	require.True(t, ok)
	assert.Equal(t, util.ErrNotFound, domainErr.Code())
}
