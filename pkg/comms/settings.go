package comms

import (
	"os"
	"strconv"
	"time"

	"github.com/sol9x-harsh/industrial-communication-system/pkg/common"
)

// Settings are the coordinator tunables. StaleThreshold drives connection
// liveness while FreshnessWindow drives CRUD display freshness; they look
// related but serve different purposes and stay independent.
type Settings struct {
	RetentionCap    int
	StaleThreshold  time.Duration
	FreshnessWindow time.Duration
	AlertWindow     time.Duration
	SweepInterval   time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		RetentionCap:    1000,
		StaleThreshold:  60 * time.Second,
		FreshnessWindow: 120 * time.Second,
		AlertWindow:     2 * time.Minute,
		SweepInterval:   15 * time.Second,
	}
}

func SettingsFromEnv() Settings {
	s := DefaultSettings()

	if v, err := strconv.Atoi(os.Getenv(common.EnvKeyCommsRetentionCap)); err == nil && v > 0 {
		s.RetentionCap = v
	}
	if d, ok := envDurationMs(common.EnvKeyCommsStaleThresholdMs); ok {
		s.StaleThreshold = d
	}
	if d, ok := envDurationMs(common.EnvKeyCommsFreshnessMs); ok {
		s.FreshnessWindow = d
	}
	if d, ok := envDurationMs(common.EnvKeyCommsAlertWindowMs); ok {
		s.AlertWindow = d
	}
	if d, ok := envDurationMs(common.EnvKeyCommsSweepIntervalMs); ok {
		s.SweepInterval = d
	}

	return s
}

func envDurationMs(key string) (time.Duration, bool) {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return 0, false
	}
	return time.Duration(v) * time.Millisecond, true
}
