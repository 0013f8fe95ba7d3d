package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyCommsDBType string = "COMMS_DB_TYPE"
	EnvKeyCommsDbPath string = "COMMS_DB_PATH"

	EnvKeyCommsHttpHostPort string = "COMMS_HTTP_HOST_PORT"

	EnvKeyCommsDefaultRate  string = "COMMS_DEFAULT_RATE"
	EnvKeyCommsDefaultBurst string = "COMMS_DEFAULT_BURST"

	EnvKeyCommsRetentionCap     string = "COMMS_RETENTION_CAP"
	EnvKeyCommsStaleThresholdMs string = "COMMS_STALE_THRESHOLD_MS"
	EnvKeyCommsFreshnessMs      string = "COMMS_FRESHNESS_MS"
	EnvKeyCommsAlertWindowMs    string = "COMMS_ALERT_WINDOW_MS"
	EnvKeyCommsSweepIntervalMs  string = "COMMS_SWEEP_INTERVAL_MS"

	LoggerNameCommsCore     string = "comms_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameWsHub         string = "ws_hub"
	LoggerFieldCategory     string = "category"
	LoggerCategoryRegistry  string = "registry"
	LoggerCategoryRouter    string = "router"
	LoggerCategoryAlert     string = "alert"
	LoggerCategoryStore     string = "store"
)
