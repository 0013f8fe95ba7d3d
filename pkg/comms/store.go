package comms

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm/clause"

	"github.com/sol9x-harsh/industrial-communication-system/pkg/common"
	"github.com/sol9x-harsh/industrial-communication-system/pkg/models"
)

// The store is a mirror, not the source of truth: the in-memory registry and
// alert slot stay authoritative, so failed writes here are logged as
// transient and never block delivery to connected sessions.

func (c *Comms) persistDevice(dev *models.Device) {
	logger := common.GetLoggerWith(
		common.LoggerNameCommsCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryStore),
	)

	err := c.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(dev).Error

	if err != nil {
		logger.Warn("Device mirror write failed", zap.String("device_id", dev.ID), zap.Error(err))
	}
}

func (c *Comms) appendMessage(msg *models.Message) {
	logger := common.GetLoggerWith(
		common.LoggerNameCommsCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryStore),
	)

	// insert + trim is a read-modify-write on the retention bound
	c.storeMu.Lock()
	defer c.storeMu.Unlock()

	if err := c.Db.Conn.Create(msg).Error; err != nil {
		logger.Warn("Message write failed", zap.String("message_id", msg.ID), zap.Error(err))
		return
	}

	c.trimMessagesLocked(logger)
}

func (c *Comms) trimMessagesLocked(logger *zap.Logger) {
	var count int64
	if err := c.Db.Conn.Model(&models.Message{}).Count(&count).Error; err != nil {
		logger.Warn("Message count failed", zap.Error(err))
		return
	}

	surplus := count - int64(c.Settings.RetentionCap)
	if surplus <= 0 {
		return
	}

	oldest := c.Db.Conn.Model(&models.Message{}).
		Select("id").
		Order("timestamp asc, id asc").
		Limit(int(surplus))

	if err := c.Db.Conn.Where("id IN (?)", oldest).Delete(&models.Message{}).Error; err != nil {
		logger.Warn("Message retention trim failed", zap.Error(err))
		return
	}

	logger.Info("Trimmed message history", zap.Int64("evicted", surplus))
}

func (c *Comms) recentMessages(q models.MessageQuery) ([]models.Message, error) {
	tx := c.Db.Conn.Model(&models.Message{}).Order("timestamp desc, id desc")

	if q.Channel != "" {
		tx = tx.Where("channel = ?", q.Channel)
	}
	if q.DeviceID != "" {
		tx = tx.Where(
			"device_id = ? OR channel = ? OR type = ?",
			q.DeviceID, models.ChannelBroadcast, models.MessageTypeEmergency,
		)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var messages []models.Message
	err := tx.Find(&messages).Error
	return messages, err
}

func (c *Comms) freshDevices(now time.Time) ([]models.Device, error) {
	cutoff := now.Add(-c.Settings.FreshnessWindow)

	var devices []models.Device
	err := c.Db.Conn.
		Where("last_seen > ?", cutoff).
		Order("last_seen desc").
		Find(&devices).Error
	return devices, err
}

func (c *Comms) upsertStoredDevice(dev *models.Device) error {
	err := c.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(dev).Error
	return err
}

func (c *Comms) offlineStoredDevice(deviceID string) error {
	res := c.Db.Conn.Model(&models.Device{}).
		Where("id = ?", deviceID).
		Updates(map[string]any{
			"status":    models.DeviceStatusOffline,
			"last_seen": time.Now(),
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{DeviceID: deviceID}
	}
	return nil
}

type IStoreImpl struct {
	comms *Comms
}

func (is *IStoreImpl) RecentMessages(q models.MessageQuery) ([]models.Message, error) {
	return is.comms.recentMessages(q)
}

func (is *IStoreImpl) FreshDevices(now time.Time) ([]models.Device, error) {
	return is.comms.freshDevices(now)
}

func (is *IStoreImpl) UpsertStoredDevice(dev *models.Device) error {
	return is.comms.upsertStoredDevice(dev)
}

func (is *IStoreImpl) OfflineStoredDevice(deviceID string) error {
	return is.comms.offlineStoredDevice(deviceID)
}

func (c *Comms) GetIStore() IStore {
	return &IStoreImpl{comms: c}
}
