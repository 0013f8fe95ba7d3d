package comms

import "github.com/sol9x-harsh/industrial-communication-system/pkg/models"

// Event names on the coordinator -> session direction.
const (
	EventConnectedDevices   = "connected-devices"
	EventDeviceConnected    = "device-connected"
	EventDeviceDisconnected = "device-disconnected"
	EventNewMessage         = "new-message"
	EventEmergencyAlert     = "emergency-alert"
	EventEmergencyStopped   = "emergency-stopped"
	EventError              = "error"
)

type DeviceDisconnectedPayload struct {
	DeviceID string `json:"deviceId"`
}

type EmergencyStoppedPayload struct {
	DeviceID string          `json:"deviceId"`
	Message  *models.Message `json:"message"`
}
