package route

import (
	"testing"

	"github.com/lintang-b-s/navtrack/pkg"
	"github.com/lintang-b-s/navtrack/pkg/datastructure"
	"github.com/lintang-b-s/navtrack/pkg/geo"
	"github.com/lintang-b-s/navtrack/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCodecRoute() *Route {
	points := []datastructure.Point{
		geo.FromLatLon(0, 0),
		geo.FromLatLon(0, 0.001),
		geo.FromLatLon(0.001, 0.001),
		geo.FromLatLon(0.001, 0.002),
	}
	r := NewRoute("vehicle", points, "codec")
	r.SetTurnInstructions([]datastructure.TurnItem{
		datastructure.NewTurnItem(1, pkg.TURN_LEFT, 0, false, pkg.PEDESTRIAN_NONE, "Alpha", "Beta"),
		datastructure.NewTurnItem(2, pkg.TURN_RIGHT, 2, true, pkg.PEDESTRIAN_NONE, "Beta", "Gamma"),
	})
	r.SetSectionTimes([]datastructure.TimeItem{
		datastructure.NewTimeItem(0, 0),
		datastructure.NewTimeItem(3, 33),
	})
	r.SetStreetNames([]datastructure.StreetItem{
		datastructure.NewStreetItem(0, "Alpha"),
		datastructure.NewStreetItem(1, "Beta"),
	})
	r.AddAbsentCountry("Atlantis")
	return r
}

func TestCodecRoundTrip(t *testing.T) {
	codec := NewCodec(false)
	src := buildCodecRoute()

	data, err := codec.ToJson(src)
	require.NoError(t, err)

	dst := NewEmptyRoute("vehicle")
	require.NoError(t, codec.FromJson(data, dst))

	require.True(t, dst.IsValid())
	assert.Equal(t, 4, dst.GetPoly().GetPolyline().GetSize())
	assert.InDelta(t, src.GetTotalDistanceMeters(), dst.GetTotalDistanceMeters(), 0.01)

	require.Len(t, dst.GetTurns(), 2)
	assert.Equal(t, 1, dst.GetTurns()[0].GetIndex())
	assert.Equal(t, pkg.TURN_LEFT, dst.GetTurns()[0].GetTurn())
	assert.Equal(t, "Alpha", dst.GetTurns()[0].GetSourceName())
	assert.Equal(t, "Beta", dst.GetTurns()[0].GetTargetName())
	assert.Equal(t, 2, dst.GetTurns()[1].GetExitNum())
	assert.True(t, dst.GetTurns()[1].GetKeepAnyway())

	require.Len(t, dst.GetTimes(), 2)
	assert.Equal(t, 3, dst.GetTimes()[1].GetIndex())
	assert.Equal(t, 33.0, dst.GetTimes()[1].GetTime())
	assert.Equal(t, 33.0, dst.GetTotalTimeSec())

	require.Len(t, dst.GetStreets(), 2)
	assert.Equal(t, "Beta", dst.GetStreets()[1].GetName())

	assert.Equal(t, []string{"Atlantis"}, dst.GetAbsentCountries())
}

// the legacy decoder reads the times array through the point field names, so
// a freshly encoded document loses its time table on the way back in. kept
// for interchange compatibility with older producers.
func TestCodecLegacyTimesFieldMismatch(t *testing.T) {
	codec := NewCodec(true)
	src := buildCodecRoute()

	data, err := codec.ToJson(src)
	require.NoError(t, err)

	dst := NewEmptyRoute("vehicle")
	require.NoError(t, codec.FromJson(data, dst))

	require.Len(t, dst.GetTimes(), 2)
	assert.Equal(t, 0.0, dst.GetTotalTimeSec())
}

func TestCodecLegacyTimesDecode(t *testing.T) {
	codec := NewCodec(true)

	// an old producer writing time entries with the point field names.
	doc := []byte(`{
		"points": [
			{"latitude": 0, "longitude": 0},
			{"latitude": 0, "longitude": 0.001},
			{"latitude": 0, "longitude": 0.002}
		],
		"times": [
			{"latitude": 0, "longitude": 0},
			{"latitude": 25, "longitude": 2}
		]
	}`)

	dst := NewEmptyRoute("vehicle")
	require.NoError(t, codec.FromJson(doc, dst))

	require.Len(t, dst.GetTimes(), 2)
	assert.Equal(t, 2, dst.GetTimes()[1].GetIndex())
	assert.Equal(t, 25.0, dst.GetTimes()[1].GetTime())
	assert.Equal(t, 25.0, dst.GetTotalTimeSec())
}

func TestCodecFromJsonErrors(t *testing.T) {
	codec := NewCodec(false)

	testCases := []struct {
		name string
		data []byte
	}{
		{
			name: "test malformed document",
			data: []byte(`{"points": [`),
		},
		{
			name: "test document without points",
			data: []byte(`{"turns": []}`),
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := codec.FromJson(tt.data, NewEmptyRoute("vehicle"))
			require.Error(t, err)

			domainErr, ok := err.(*util.Error)
			require.True(t, ok)
			assert.Equal(t, util.ErrBadParamInput, domainErr.Code())
		})
	}
}

func TestCodecInstructionsCarryIntervals(t *testing.T) {
	codec := NewCodec(false)
	src := buildCodecRoute()

	data, err := codec.ToJson(src)
	require.NoError(t, err)

	// decoding uses the end interval as the turn vertex.
	dst := NewEmptyRoute("vehicle")
	require.NoError(t, codec.FromJson(data, dst))
	require.Len(t, dst.GetTurns(), 2)
	assert.Equal(t, 1, dst.GetTurns()[0].GetIndex())
	assert.Equal(t, 2, dst.GetTurns()[1].GetIndex())
}
