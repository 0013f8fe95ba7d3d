package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/sol9x-harsh/industrial-communication-system/pkg/comms"
	"github.com/sol9x-harsh/industrial-communication-system/pkg/ws"
)

type RestfulServer struct {
	Server           *gin.Engine
	Comms            *comms.Comms
	Hub              *ws.Hub
	RateLimiterStore *comms.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(deviceID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(deviceID)
	}
}

func (rs *RestfulServer) CheckDeviceLimiter(deviceID string) bool {
	limiter := rs.GetLimiter(deviceID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(deviceID string, deviceRate float64, deviceBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(deviceID, rate.Limit(deviceRate), deviceBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	if rs.Hub != nil {
		rs.Server.GET("/ws", rs.Hub.HandleUpgrade)
	}

	devices := rs.Server.Group("/devices")
	{
		devices.GET("", rs.ListDevices)
		devices.POST("", rs.RegisterDevice)
		devices.DELETE("/:device_id", rs.OfflineDevice)
		devices.POST("/:device_id/limiter", rs.PostLimiter)
	}

	messages := rs.Server.Group("/messages")
	{
		messages.GET("", rs.ListMessages)
		messages.POST("", rs.PostMessage)
	}
}
