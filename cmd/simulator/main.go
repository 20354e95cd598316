package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/lintang-b-s/navtrack/pkg/geo"
	"github.com/lintang-b-s/navtrack/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// simulator drives the tracking server end to end: it registers a synthetic
// route over REST, then walks along it streaming noisy gps fixes over the
// websocket API and prints the turn-by-turn state that comes back.

var (
	serverHost = flag.String("server", "localhost", "tracking server host")
	apiPort    = flag.Int("api_port", 6060, "REST API port")
	wsPort     = flag.Int("ws_port", 6767, "websocket proxy port")
	startLat   = flag.Float64("start_lat", -7.7713, "route start latitude")
	startLon   = flag.Float64("start_lon", 110.3775, "route start longitude")
	pointCount = flag.Int("points", 60, "number of route polyline points")
	speedMps   = flag.Float64("speed", 13.9, "simulated speed in meters per second")
	noiseM     = flag.Float64("noise", 8.0, "gps noise sigma in meters")
	intervalMs = flag.Int("interval_ms", 1000, "delay between fixes in milliseconds")
)

const metersPerDegree = 110574.0

type wirePoint struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

// time entries reuse the point field names, the server's default decoder
// expects them that way.
type wireTime struct {
	Time  float64 `json:"latitude"`
	Index float64 `json:"longitude"`
}

type wireDocument struct {
	Points []wirePoint `json:"points"`
	Times  []wireTime  `json:"times"`
}

type fixFrame struct {
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Accuracy  float64 `json:"accuracy"`
	Speed     float64 `json:"speed"`
	Timestamp float64 `json:"timestamp"`
	Bearing   float64 `json:"bearing"`
}

type trackFrame struct {
	Id  string   `json:"id"`
	Fix fixFrame `json:"fix"`
}

func main() {
	flag.Parse()
	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	rd := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))

	points := randomWalkRoute(rd, *startLat, *startLon, *pointCount)
	doc := buildDocument(points, *speedMps)

	id, err := createSession(doc)
	if err != nil {
		log.Fatal("create session", zap.Error(err))
	}
	log.Info("session registered", zap.String("id", id))

	conn, _, _, err := ws.Dial(context.Background(),
		fmt.Sprintf("ws://%s:%d/ws", *serverHost, *wsPort))
	if err != nil {
		log.Fatal("dial websocket", zap.Error(err))
	}
	defer conn.Close()

	start := time.Now()
	for _, fix := range noisyFixes(rd, points, *speedMps, *noiseM) {
		fix.Timestamp = float64(time.Now().Unix())

		frame, err := json.Marshal(trackFrame{Id: id, Fix: fix})
		if err != nil {
			log.Fatal("encode frame", zap.Error(err))
		}
		if err := wsutil.WriteClientText(conn, frame); err != nil {
			log.Fatal("send fix", zap.Error(err))
		}

		reply, err := wsutil.ReadServerText(conn)
		if err != nil {
			log.Fatal("read tracking state", zap.Error(err))
		}
		fmt.Printf("%s", reply)

		time.Sleep(time.Duration(*intervalMs) * time.Millisecond)
	}

	log.Info("route walked", zap.Duration("elapsed", time.Since(start)))
}

// randomWalkRoute builds a jagged but locally smooth path: each leg keeps
// the previous heading plus a small random turn.
func randomWalkRoute(rd *rand.Rand, lat, lon float64, n int) []wirePoint {
	points := make([]wirePoint, 0, n)
	points = append(points, wirePoint{Lat: lat, Lon: lon})

	heading := rd.Float64() * 2 * math.Pi
	for i := 1; i < n; i++ {
		heading += (rd.Float64() - 0.5) * math.Pi / 6
		stepM := 80 + rd.Float64()*60

		lat += stepM * math.Cos(heading) / metersPerDegree
		lon += stepM * math.Sin(heading) / (metersPerDegree * math.Cos(lat*math.Pi/180))
		points = append(points, wirePoint{Lat: lat, Lon: lon})
	}
	return points
}

func buildDocument(points []wirePoint, speed float64) wireDocument {
	var (
		times  []wireTime
		totalM float64
	)
	for i, p := range points {
		if i > 0 {
			prev := points[i-1]
			totalM += geo.CalculateHaversineDistanceM(prev.Lat, prev.Lon, p.Lat, p.Lon)
		}
		times = append(times, wireTime{Time: totalM / speed, Index: float64(i)})
	}
	return wireDocument{Points: points, Times: times}
}

func noisyFixes(rd *rand.Rand, points []wirePoint, speed, noise float64) []fixFrame {
	fixes := make([]fixFrame, 0, len(points))
	for i, p := range points {
		bearing := 0.0
		if i+1 < len(points) {
			next := points[i+1]
			bearing = geo.BearingTo(p.Lat, p.Lon, next.Lat, next.Lon)
		}
		fixes = append(fixes, fixFrame{
			Lat:      p.Lat + rd.NormFloat64()*noise/metersPerDegree,
			Lon:      p.Lon + rd.NormFloat64()*noise/(metersPerDegree*math.Cos(p.Lat*math.Pi/180)),
			Accuracy: noise * 2,
			Speed:    speed,
			Bearing:  bearing,
		})
	}
	return fixes
}

func createSession(doc wireDocument) (string, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("http://%s:%d/api/routes", *serverHost, *apiPort)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("create session: unexpected status %s", resp.Status)
	}

	var reply struct {
		Data struct {
			Id string `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return "", err
	}
	return reply.Data.Id, nil
}
