package comms

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sol9x-harsh/industrial-communication-system/pkg/common"
	"github.com/sol9x-harsh/industrial-communication-system/pkg/models"
)

// publish validates, stamps and fans out one message. Delivery is
// broadcast-to-all: the channel field is advisory metadata for the receiving
// terminals' own display filtering, never a server-side delivery restriction.
func (c *Comms) publish(input *models.Message) (*models.Message, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameCommsCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRouter),
	)

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, &ValidationError{Reason: "message text is required"}
	}
	source := strings.TrimSpace(input.Source)
	if source == "" {
		return nil, &ValidationError{Reason: "message source is required"}
	}

	msg := models.Message{
		ID:        input.ID,
		Text:      text,
		Timestamp: input.Timestamp,
		Channel:   input.Channel,
		Source:    source,
		Type:      input.Type,
		DeviceID:  input.DeviceID,
	}
	if msg.ID == "" {
		// V7 ids are time-ordered, which gives same-timestamp messages a
		// stable tie-break in history queries and retention trimming
		msg.ID = uuid.Must(uuid.NewV7()).String()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	if msg.Channel == "" {
		msg.Channel = models.ChannelBroadcast
	}
	if msg.Type == "" {
		msg.Type = models.MessageTypeNormal
	}

	logger.Info("Message published", zap.Reflect("message", msg))

	// deliver first; durability is best-effort-eventual and must not gate
	// what connected sessions see
	c.broadcast(EventNewMessage, &msg)
	c.appendMessage(&msg)

	return &msg, nil
}

type IRouterImpl struct {
	comms *Comms
}

func (ir *IRouterImpl) Publish(input *models.Message) (*models.Message, error) {
	return ir.comms.publish(input)
}

func (c *Comms) GetIRouter() IRouter {
	return &IRouterImpl{comms: c}
}
