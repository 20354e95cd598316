package route

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"sort"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/navtrack/pkg"
	"github.com/lintang-b-s/navtrack/pkg/datastructure"
	"github.com/lintang-b-s/navtrack/pkg/geo"
	"github.com/lintang-b-s/navtrack/pkg/util"
)

type wirePoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type wireTime struct {
	Time  float64 `json:"time"`
	Index int     `json:"index"`
}

// legacyWireTime mirrors what historical decoders actually read from the
// times array: the encoder writes {time,index} but the legacy reader pulls
// {latitude,longitude}. decoding a freshly encoded document through the
// legacy path therefore loses the time table. preserved behind
// Codec.legacyTimesFields for bit-compatible interchange.
type legacyWireTime struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type wireStreet struct {
	Name  string `json:"name"`
	Index int    `json:"index"`
}

type wireInstruction struct {
	StreetSource        string  `json:"streetSource"`
	StreetTarget        string  `json:"streetTarget"`
	ExitNumber          int     `json:"exitNumber"`
	Exited              bool    `json:"exited"`
	TurnDirection       int     `json:"turnDirection"`
	PedestrianDirection int     `json:"pedestrianDirection"`
	StartInterval       int     `json:"startInterval"`
	EndInterval         int     `json:"endInterval"`
	Time                float64 `json:"time"`
	KeepAnyways         bool    `json:"keepAnyways"`
}

type wireDocument struct {
	Points           []wirePoint       `json:"points"`
	Turns            []float64         `json:"turns"`
	Times            json.RawMessage   `json:"times"`
	Streets          []wireStreet      `json:"streets"`
	Instructions     []wireInstruction `json:"instructions"`
	AbsentCountries  []string          `json:"absentCountries"`
	DistanceMercator float64           `json:"distanceMercator"`
	Distance         float64           `json:"distance"`
	Duration         float64           `json:"duration"`
	Name             string            `json:"name"`
}

// Codec encodes/decodes a Route to the structured interchange document.
type Codec struct {
	legacyTimesFields bool
}

// NewCodec. legacyTimesFields selects the historical decode behavior for
// the times array; pass false only when every producer writes the
// {time,index} fields the encoder emits.
func NewCodec(legacyTimesFields bool) *Codec {
	return &Codec{legacyTimesFields: legacyTimesFields}
}

func (c *Codec) ToJson(r *Route) ([]byte, error) {
	poly := r.GetPoly().GetPolyline()
	sz := poly.GetSize()

	doc := wireDocument{
		Points:       make([]wirePoint, 0, sz),
		Turns:        r.GetTurnsDistances(),
		Streets:      make([]wireStreet, 0, len(r.streets)),
		Instructions: make([]wireInstruction, 0, len(r.turns)),
		Distance:     r.GetTotalDistanceMeters(),
		Duration:     r.GetTotalTimeSec(),
		Name:         r.GetRouterId(),
	}

	for i := 0; i < sz; i++ {
		lat, lon := geo.ToLatLon(poly.GetPoint(i))
		doc.Points = append(doc.Points, wirePoint{Latitude: lat, Longitude: lon})
	}

	times := make([]wireTime, 0, len(r.times))
	for _, t := range r.times {
		times = append(times, wireTime{Time: t.GetTime(), Index: t.GetIndex()})
	}
	rawTimes, err := json.Marshal(times)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "encode times")
	}
	doc.Times = rawTimes

	for _, s := range r.streets {
		doc.Streets = append(doc.Streets, wireStreet{Name: s.GetName(), Index: s.GetIndex()})
	}

	previousIndex := 0
	for i, turn := range r.turns {
		// positional correlation with the time table, the i-th checkpoint
		// belongs to the i-th raw turn. shorter time tables emit zero.
		instructionTime := 0.0
		if i < len(r.times) {
			instructionTime = r.times[i].GetTime()
		}
		doc.Instructions = append(doc.Instructions, wireInstruction{
			StreetSource:        turn.GetSourceName(),
			StreetTarget:        turn.GetTargetName(),
			ExitNumber:          turn.GetExitNum(),
			Exited:              turn.GetExitNum() != 0,
			TurnDirection:       int(turn.GetTurn()),
			PedestrianDirection: int(turn.GetPedestrianTurn()),
			StartInterval:       previousIndex,
			EndInterval:         turn.GetIndex(),
			Time:                instructionTime,
			KeepAnyways:         turn.GetKeepAnyway(),
		})
		previousIndex = turn.GetIndex()
	}

	doc.AbsentCountries = r.GetAbsentCountries()
	sort.Strings(doc.AbsentCountries)

	if sz > 0 {
		doc.DistanceMercator = geo.MercatorDistanceAlongPath(0, sz-1, poly.GetPoints())
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "encode route document")
	}
	return out, nil
}

// FromJson rebuilds the route state from an interchange document. malformed
// documents are a fatal decode error, no partial recovery is attempted.
func (c *Codec) FromJson(data []byte, r *Route) error {
	var doc wireDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return util.WrapErrorf(err, util.ErrBadParamInput, "malformed route document")
	}
	if doc.Points == nil {
		return util.WrapErrorf(nil, util.ErrBadParamInput, "route document has no points")
	}

	points := make([]datastructure.Point, 0, len(doc.Points))
	for _, p := range doc.Points {
		points = append(points, geo.FromLatLon(p.Latitude, p.Longitude))
	}

	times, err := c.decodeTimes(doc.Times)
	if err != nil {
		return err
	}

	streets := make([]datastructure.StreetItem, 0, len(doc.Streets))
	for _, s := range doc.Streets {
		streets = append(streets, datastructure.NewStreetItem(s.Index, s.Name))
	}

	turns := make([]datastructure.TurnItem, 0, len(doc.Instructions))
	for _, ins := range doc.Instructions {
		turns = append(turns, datastructure.NewTurnItem(
			ins.EndInterval,
			pkg.TurnDirection(ins.TurnDirection),
			ins.ExitNumber,
			ins.KeepAnyways,
			pkg.PedestrianDirection(ins.PedestrianDirection),
			ins.StreetSource,
			ins.StreetTarget,
		))
	}

	r.SetGeometry(points)
	r.SetTurnInstructions(turns)
	r.SetSectionTimes(times)
	r.SetStreetNames(streets)
	for _, country := range doc.AbsentCountries {
		r.AddAbsentCountry(country)
	}
	return nil
}

func (c *Codec) decodeTimes(raw json.RawMessage) ([]datastructure.TimeItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	if c.legacyTimesFields {
		var legacy []legacyWireTime
		if err := json.Unmarshal(raw, &legacy); err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "malformed times array")
		}
		times := make([]datastructure.TimeItem, 0, len(legacy))
		for _, t := range legacy {
			times = append(times, datastructure.NewTimeItem(int(t.Longitude), t.Latitude))
		}
		return times, nil
	}

	var entries []wireTime
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "malformed times array")
	}
	times := make([]datastructure.TimeItem, 0, len(entries))
	for _, t := range entries {
		times = append(times, datastructure.NewTimeItem(t.Index, t.Time))
	}
	return times, nil
}

// WriteToFile persists the encoded document bzip2-compressed.
func (c *Codec) WriteToFile(r *Route, filename string) error {
	data, err := c.ToJson(r)
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	defer bz.Close()

	w := bufio.NewWriter(bz)
	defer w.Flush()

	_, err = w.Write(data)
	return err
}

func (c *Codec) ReadFromFile(filename string, r *Route) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
	if err != nil {
		return err
	}
	defer bz.Close()

	data, err := io.ReadAll(bz)
	if err != nil {
		return err
	}
	return c.FromJson(data, r)
}
