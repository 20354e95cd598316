package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/navtrack/pkg/http"
	"github.com/lintang-b-s/navtrack/pkg/http/usecases"
	"github.com/lintang-b-s/navtrack/pkg/logger"
	"github.com/lintang-b-s/navtrack/pkg/route"
	"github.com/lintang-b-s/navtrack/pkg/util"
	"go.uber.org/zap"
)

var (
	useRateLimit     = flag.Bool("rate_limit", false, "rate limit the REST API per client ip")
	legacyTimeFields = flag.Bool("legacy_time_fields", true, "read route document time entries from the latitude/longitude field names older writers produce")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	if err := util.ReadConfig(); err != nil {
		logger.Info("no config file found, using defaults")
	}

	codec := route.NewCodec(*legacyTimeFields)
	navigationService := usecases.NewNavigationTracker(logger, codec)

	api := http.NewServer(logger)

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api.Use(ctx,
		logger, *useRateLimit, navigationService)

	signal := http.GracefulShutdown()

	logger.Info("Navtrack Route Tracking Server Stopped", zap.String("signal", signal.String()))
	cleanup()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
