package ws

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/sol9x-harsh/industrial-communication-system/pkg/common"
	"github.com/sol9x-harsh/industrial-communication-system/pkg/comms"
	"github.com/sol9x-harsh/industrial-communication-system/pkg/models"
)

// Command names on the session -> coordinator direction.
const (
	CmdRegisterDevice = "register-device"
	CmdSendMessage    = "send-message"
	CmdHeartbeat      = "heartbeat"
	CmdStopEmergency  = "stop-emergency"
)

type registerDevicePayload struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Language string `json:"language"`
}

type sendMessagePayload struct {
	Text     string `json:"text"`
	Channel  string `json:"channel"`
	Source   string `json:"source"`
	Type     string `json:"type"`
	DeviceID string `json:"deviceId"`
}

type heartbeatPayload struct {
	DeviceID string `json:"deviceId"`
}

type stopEmergencyPayload struct {
	DeviceID string `json:"deviceId"`
}

func (h *Hub) dispatch(sess *Session, raw []byte) {
	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		sess.Emit(comms.EventError, "malformed command frame")
		return
	}

	switch frame.Event {
	case CmdRegisterDevice:
		h.onRegisterCommand(sess, frame.Data)
	case CmdSendMessage:
		h.onMessageCommand(sess, frame.Data)
	case CmdHeartbeat:
		h.onHeartbeatCommand(sess, frame.Data)
	case CmdStopEmergency:
		h.onStopEmergencyCommand(sess, frame.Data)
	default:
		sess.Emit(comms.EventError, "unknown command: "+frame.Event)
	}
}

func (h *Hub) onRegisterCommand(sess *Session, data json.RawMessage) {
	var p registerDevicePayload
	if err := json.Unmarshal(data, &p); err != nil {
		sess.Emit(comms.EventError, "malformed register-device payload")
		return
	}

	dev, err := h.Comms.Registry.Register(&models.DeviceInfo{
		ID:       p.ID,
		Name:     p.Name,
		Type:     p.Type,
		Language: p.Language,
	}, sess.id)
	if err != nil {
		sess.Emit(comms.EventError, err.Error())
		return
	}

	h.bind(sess, dev.ID)

	// initial presence snapshot for the newcomer; everyone else already got
	// the device-connected broadcast from the registry
	sess.Emit(comms.EventConnectedDevices, h.Comms.Registry.ListOnline())
}

func (h *Hub) onMessageCommand(sess *Session, data json.RawMessage) {
	var p sendMessagePayload
	if err := json.Unmarshal(data, &p); err != nil {
		sess.Emit(comms.EventError, "malformed send-message payload")
		return
	}

	// an omitted type is fine, the router defaults it to normal
	if p.Type != "" &&
		p.Type != string(models.MessageTypeNormal) &&
		p.Type != string(models.MessageTypeEmergency) {
		sess.Emit(comms.EventError, "unrecognized message type: "+p.Type)
		return
	}

	if !h.checkDeviceLimiter(p.Source) {
		sess.Emit(comms.EventError, "rate limit exceeded")
		return
	}

	msg, err := h.Comms.Router.Publish(&models.Message{
		Text:     p.Text,
		Channel:  p.Channel,
		Source:   p.Source,
		Type:     models.MessageType(p.Type),
		DeviceID: p.DeviceID,
	})
	if err != nil {
		sess.Emit(comms.EventError, err.Error())
		return
	}

	if msg.Type == models.MessageTypeEmergency {
		h.Comms.Alert.Activate(msg)
	}
}

func (h *Hub) onHeartbeatCommand(sess *Session, data json.RawMessage) {
	var p heartbeatPayload
	if err := json.Unmarshal(data, &p); err != nil {
		sess.Emit(comms.EventError, "malformed heartbeat payload")
		return
	}

	// unknown ids are silently ignored, matching the registry contract
	h.Comms.Registry.Heartbeat(p.DeviceID)
}

func (h *Hub) onStopEmergencyCommand(sess *Session, data json.RawMessage) {
	logger := common.GetLogger().Named(common.LoggerNameWsHub)

	var p stopEmergencyPayload
	if err := json.Unmarshal(data, &p); err != nil {
		sess.Emit(comms.EventError, "malformed stop-emergency payload")
		return
	}
	if p.DeviceID == "" {
		sess.Emit(comms.EventError, "validation error: deviceId is required")
		return
	}

	if _, stopped := h.Comms.Alert.Stop(p.DeviceID); !stopped {
		logger.Debug("Stop-emergency while idle ignored", zap.String("device_id", p.DeviceID))
	}
}
