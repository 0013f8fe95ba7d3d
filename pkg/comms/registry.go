package comms

import (
	"sort"
	"strings"
	"time"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"

	"github.com/sol9x-harsh/industrial-communication-system/pkg/common"
	"github.com/sol9x-harsh/industrial-communication-system/pkg/models"
)

var deviceInfoSchema = z.Struct(z.Shape{
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

// register admits or replaces the device keyed by id. Last writer wins: a
// re-registration with the same id takes over the sessionRef, which is what
// makes reconnects idempotent.
func (c *Comms) register(info *models.DeviceInfo, sessionRef string) (*models.Device, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameCommsCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRegistry),
	)

	info.ID = strings.TrimSpace(info.ID)
	info.Name = strings.TrimSpace(info.Name)
	if errs := deviceInfoSchema.Validate(info); errs != nil {
		return nil, &ValidationError{Reason: "device id, name and a recognized type are required"}
	}

	c.mu.Lock()
	now := time.Now()
	dev := &models.Device{
		ID:         info.ID,
		Name:       info.Name,
		Type:       models.DeviceType(info.Type),
		Status:     models.DeviceStatusOnline,
		LastSeen:   now,
		Language:   info.Language,
		SessionRef: sessionRef,
	}
	c.devices[dev.ID] = dev
	snapshot := *dev
	// notify while the entry is still the one we just wrote, so no session
	// ever observes a half-connected device
	c.broadcast(EventDeviceConnected, &snapshot)
	c.mu.Unlock()

	logger.Info("Device registered", zap.Reflect("device", snapshot))

	c.persistDevice(&snapshot)

	return &snapshot, nil
}

// heartbeat refreshes lastSeen. A late heartbeat for an evicted or unknown
// device is silently ignored.
func (c *Comms) heartbeat(deviceID string) {
	c.mu.Lock()
	dev, ok := c.devices[deviceID]
	var snapshot models.Device
	if ok {
		dev.LastSeen = time.Now()
		snapshot = *dev
	}
	c.mu.Unlock()

	if ok {
		c.persistDevice(&snapshot)
	}
}

func (c *Comms) markOffline(deviceID string) (*models.Device, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameCommsCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRegistry),
	)

	c.mu.Lock()
	dev, ok := c.devices[deviceID]
	if !ok || dev.Status == models.DeviceStatusOffline {
		c.mu.Unlock()
		return nil, &NotFoundError{DeviceID: deviceID}
	}
	dev.Status = models.DeviceStatusOffline
	dev.LastSeen = time.Now()
	dev.SessionRef = ""
	snapshot := *dev
	c.broadcast(EventDeviceDisconnected, &DeviceDisconnectedPayload{DeviceID: deviceID})
	c.mu.Unlock()

	logger.Info("Device went offline", zap.String("device_id", deviceID))

	c.persistDevice(&snapshot)

	return &snapshot, nil
}

func (c *Comms) listOnline() []models.Device {
	c.mu.Lock()
	online := make([]models.Device, 0, len(c.devices))
	for _, dev := range c.devices {
		if dev.Status == models.DeviceStatusOnline {
			online = append(online, *dev)
		}
	}
	c.mu.Unlock()

	sort.Slice(online, func(i, j int) bool {
		return online[i].LastSeen.After(online[j].LastSeen)
	})
	return online
}

// sweepStale evicts every online device whose lastSeen is strictly older than
// the threshold. The comparison happens under the registry mutex at the
// moment of sweep, so a concurrent heartbeat either lands before the check
// (and saves the device) or after the eviction (and is then a no-op).
func (c *Comms) sweepStale(now time.Time, threshold time.Duration) []string {
	logger := common.GetLoggerWith(
		common.LoggerNameCommsCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRegistry),
	)

	var evicted []string
	var snapshots []models.Device

	c.mu.Lock()
	for id, dev := range c.devices {
		if dev.Status != models.DeviceStatusOnline {
			continue
		}
		if now.Sub(dev.LastSeen) <= threshold {
			continue
		}
		dev.Status = models.DeviceStatusOffline
		dev.SessionRef = ""
		evicted = append(evicted, id)
		snapshots = append(snapshots, *dev)
		c.broadcast(EventDeviceDisconnected, &DeviceDisconnectedPayload{DeviceID: id})
	}
	c.mu.Unlock()

	if len(evicted) > 0 {
		logger.Info("Evicted stale devices", zap.Strings("device_ids", evicted))
	}

	for i := range snapshots {
		c.persistDevice(&snapshots[i])
	}

	return evicted
}

type IRegistryImpl struct {
	comms *Comms
}

func (ir *IRegistryImpl) Register(info *models.DeviceInfo, sessionRef string) (*models.Device, error) {
	return ir.comms.register(info, sessionRef)
}

func (ir *IRegistryImpl) Heartbeat(deviceID string) {
	ir.comms.heartbeat(deviceID)
}

func (ir *IRegistryImpl) MarkOffline(deviceID string) (*models.Device, error) {
	return ir.comms.markOffline(deviceID)
}

func (ir *IRegistryImpl) ListOnline() []models.Device {
	return ir.comms.listOnline()
}

func (ir *IRegistryImpl) SweepStale(now time.Time, threshold time.Duration) []string {
	return ir.comms.sweepStale(now, threshold)
}

func (c *Comms) GetIRegistry() IRegistry {
	return &IRegistryImpl{comms: c}
}
