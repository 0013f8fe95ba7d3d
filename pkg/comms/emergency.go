package comms

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sol9x-harsh/industrial-communication-system/pkg/common"
	"github.com/sol9x-harsh/industrial-communication-system/pkg/models"
)

// alertSlot is the single global emergency slot. There is no persisted alert
// state; a process restart always comes up idle.
//
// gen identifies the activation the slot belongs to. timer.Stop cannot recall
// a callback that has already fired and is waiting on the mutex, so expiry
// carries the generation it was armed for and clears nothing newer.
type alertSlot struct {
	active      bool
	gen         uint64
	trigger     *models.Message
	activatedAt time.Time
	expiresAt   time.Time
	timer       *time.Timer
}

// anyGeneration makes clearAlert skip the generation check; used by explicit
// stops, which always target whatever activation is current.
const anyGeneration uint64 = 0

// activateAlert transitions idle -> active. While already active it is a
// no-op for the slot: the repeat message was broadcast by the router like any
// other, and the first activation's expiry clock stays authoritative.
func (c *Comms) activateAlert(trigger *models.Message) bool {
	logger := common.GetLoggerWith(
		common.LoggerNameCommsCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)

	c.alertMu.Lock()
	if c.alert.active {
		c.alertMu.Unlock()
		logger.Info("Emergency repeat while active, keeping original expiry",
			zap.String("message_id", trigger.ID))
		return false
	}

	now := time.Now()
	c.alertGen++
	gen := c.alertGen
	c.alert = alertSlot{
		active:      true,
		gen:         gen,
		trigger:     trigger,
		activatedAt: now,
		expiresAt:   now.Add(c.Settings.AlertWindow),
		timer: time.AfterFunc(c.Settings.AlertWindow, func() {
			c.expireAlert(gen)
		}),
	}
	c.broadcast(EventEmergencyAlert, trigger)
	c.alertMu.Unlock()

	logger.Info("Emergency alert activated",
		zap.String("message_id", trigger.ID),
		zap.String("source", trigger.Source))

	return true
}

// stopAlert transitions active -> idle on an explicit stop command. Any
// registered device may clear the alert, not only the activator.
func (c *Comms) stopAlert(deviceID string) (*models.Message, bool) {
	return c.clearAlert(deviceID, fmt.Sprintf("Emergency stopped by %s", deviceID), anyGeneration)
}

func (c *Comms) expireAlert(gen uint64) {
	c.clearAlert(models.SourceSystem, "Emergency alert expired", gen)
}

func (c *Comms) clearAlert(stoppedBy, text string, gen uint64) (*models.Message, bool) {
	logger := common.GetLoggerWith(
		common.LoggerNameCommsCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)

	c.alertMu.Lock()
	if !c.alert.active || (gen != anyGeneration && gen != c.alert.gen) {
		// stop while idle, an expiry losing the race to an explicit stop,
		// or a stale timer from an activation that was already cleared
		c.alertMu.Unlock()
		return nil, false
	}
	c.alert.timer.Stop()

	note := &models.Message{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Text:      text,
		Timestamp: time.Now(),
		Channel:   models.ChannelBroadcast,
		Source:    models.SourceSystem,
		Type:      models.MessageTypeNormal,
		DeviceID:  stoppedBy,
	}

	c.alert = alertSlot{}
	c.broadcast(EventEmergencyStopped, &EmergencyStoppedPayload{DeviceID: stoppedBy, Message: note})
	c.alertMu.Unlock()

	logger.Info("Emergency alert cleared", zap.String("stopped_by", stoppedBy))

	c.appendMessage(note)

	return note, true
}

func (c *Comms) alertActive() bool {
	c.alertMu.Lock()
	defer c.alertMu.Unlock()
	return c.alert.active
}

type IAlertImpl struct {
	comms *Comms
}

func (ia *IAlertImpl) Activate(trigger *models.Message) bool {
	return ia.comms.activateAlert(trigger)
}

func (ia *IAlertImpl) Stop(deviceID string) (*models.Message, bool) {
	return ia.comms.stopAlert(deviceID)
}

func (ia *IAlertImpl) Active() bool {
	return ia.comms.alertActive()
}

func (c *Comms) GetIAlert() IAlert {
	return &IAlertImpl{comms: c}
}
