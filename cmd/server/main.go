package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sol9x-harsh/industrial-communication-system/pkg/common"
	"github.com/sol9x-harsh/industrial-communication-system/pkg/comms"
	"github.com/sol9x-harsh/industrial-communication-system/pkg/db"
	commsHttp "github.com/sol9x-harsh/industrial-communication-system/pkg/http"
	"github.com/sol9x-harsh/industrial-communication-system/pkg/ws"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	commsDbType := os.Getenv(common.EnvKeyCommsDBType)
	switch commsDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown COMMS_DB_TYPE: " + commsDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyCommsHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyCommsDefaultRate), 64); err != nil {
		log.Fatal("Invalid COMMS_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyCommsDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid COMMS_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	settings := comms.SettingsFromEnv()
	core := comms.NewComms(*dbInstance, settings)
	core.WithServices(comms.ServiceOpts{
		Registry: core.GetIRegistry(),
		Router:   core.GetIRouter(),
		Alert:    core.GetIAlert(),
		Store:    core.GetIStore(),
	})

	// one shared store so a limiter set over the CRUD surface also applies
	// to websocket traffic from the same device
	limiterStore := comms.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst))

	hub := ws.NewHub(core)
	hub.RateLimiterStore = limiterStore
	core.WithBroadcaster(hub)

	go hub.RunSweeper(context.Background())

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &commsHttp.RestfulServer{
		Server:           gin.Default(),
		Comms:            core,
		Hub:              hub,
		RateLimiterStore: limiterStore,
	}
	rs.Setup()

	logger.Info("coordinator created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)),
		zap.Duration("stale_threshold", settings.StaleThreshold),
		zap.Duration("alert_window", settings.AlertWindow),
		zap.Int("retention_cap", settings.RetentionCap))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
