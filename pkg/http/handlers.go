package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sol9x-harsh/industrial-communication-system/pkg/comms"
	"github.com/sol9x-harsh/industrial-communication-system/pkg/models"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type DeviceRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Language string `json:"language"`
}

var deviceRequestSchema = z.Struct(z.Shape{
	"ID":   z.String().Min(1).Required(),
	"Name": z.String().Min(1).Required(),
	"Type": z.String().OneOf([]string{
		string(models.DeviceTypeMCR),
		string(models.DeviceTypeEngine),
		string(models.DeviceTypeRemote),
		string(models.DeviceTypeHandheld),
	}).Required(),
	"Language": z.String().Optional(),
})

// ListDevices returns the devices seen within the display freshness window.
// This is the CRUD mirror of presence, not the liveness authority.
func (rs *RestfulServer) ListDevices(c *gin.Context) {
	devices, err := rs.Comms.Store.FreshDevices(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, devices)
}

func (rs *RestfulServer) RegisterDevice(c *gin.Context) {
	var req DeviceRequest

	if err := deviceRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	dev := models.Device{
		ID:       req.ID,
		Name:     req.Name,
		Type:     models.DeviceType(req.Type),
		Status:   models.DeviceStatusOnline,
		LastSeen: time.Now(),
		Language: req.Language,
	}

	if err := rs.Comms.Store.UpsertStoredDevice(&dev); err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, dev)
}

// OfflineDevice soft-deletes: the device record survives with status offline.
func (rs *RestfulServer) OfflineDevice(c *gin.Context) {
	deviceID := c.Param("device_id")

	// live registry first so sessions get the disconnect broadcast
	if dev, err := rs.Comms.Registry.MarkOffline(deviceID); err == nil {
		c.JSON(http.StatusOK, dev)
		return
	}

	if err := rs.Comms.Store.OfflineStoredDevice(deviceID); err != nil {
		if comms.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusOK)
}

type MessageRequest struct {
	Text     string `json:"text"`
	Channel  string `json:"channel"`
	Source   string `json:"source"`
	Type     string `json:"type"`
	DeviceID string `json:"deviceId"`
}

var messageRequestSchema = z.Struct(z.Shape{
	"Text":     z.String().Min(1).Required(),
	"Source":   z.String().Min(1).Required(),
	"Channel":  z.String().Optional(),
	"Type":     z.String().Optional(),
	"DeviceID": z.String().Optional(),
})

// validMessageType accepts an omitted type: the router defaults it to normal.
func validMessageType(t string) bool {
	return t == "" ||
		t == string(models.MessageTypeNormal) ||
		t == string(models.MessageTypeEmergency)
}

func (rs *RestfulServer) PostMessage(c *gin.Context) {
	var req MessageRequest

	if err := messageRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if !validMessageType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unrecognized message type: " + req.Type})
		return
	}

	if !rs.CheckDeviceLimiter(req.Source) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	msg, err := rs.Comms.Router.Publish(&models.Message{
		Text:     req.Text,
		Channel:  req.Channel,
		Source:   req.Source,
		Type:     models.MessageType(req.Type),
		DeviceID: req.DeviceID,
	})
	if err != nil {
		if comms.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	// same rule as the realtime command path: an emergency message arms the
	// alert slot no matter which surface it came in on
	if msg.Type == models.MessageTypeEmergency {
		rs.Comms.Alert.Activate(msg)
	}

	c.JSON(http.StatusOK, msg)
}

func (rs *RestfulServer) ListMessages(c *gin.Context) {
	q := models.MessageQuery{
		Channel:  c.Query("channel"),
		DeviceID: c.Query("deviceId"),
		Limit:    100,
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		q.Limit = limit
	}

	messages, err := rs.Comms.Store.RecentMessages(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(deviceID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
