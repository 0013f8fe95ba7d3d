package comms

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/sol9x-harsh/industrial-communication-system/pkg/common"
	"github.com/sol9x-harsh/industrial-communication-system/pkg/models"
	_ "github.com/sol9x-harsh/industrial-communication-system/pkg/testing"
)

func TestRegisterReplacesExisting(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, commsObj, recorder, _, _, _ := GetMockCommsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	deviceID := uuid.NewString()

	first, err := commsObj.Registry.Register(&models.DeviceInfo{
		ID:   deviceID,
		Name: "MCR Console",
		Type: string(models.DeviceTypeMCR),
	}, "session-1")
	require.NoError(t, err)
	assert.Equal(t, models.DeviceStatusOnline, first.Status)
	assert.Equal(t, "session-1", first.SessionRef)

	// re-registration with the same id takes over, last writer wins
	second, err := commsObj.Registry.Register(&models.DeviceInfo{
		ID:   deviceID,
		Name: "MCR Console (reconnected)",
		Type: string(models.DeviceTypeMCR),
	}, "session-2")
	require.NoError(t, err)
	assert.Equal(t, "session-2", second.SessionRef)

	var matched []models.Device
	for _, dev := range commsObj.Registry.ListOnline() {
		if dev.ID == deviceID {
			matched = append(matched, dev)
		}
	}
	require.Len(t, matched, 1)
	assert.Equal(t, "MCR Console (reconnected)", matched[0].Name)
	assert.Equal(t, "session-2", matched[0].SessionRef)

	assert.Equal(t, 2, recorder.Count(EventDeviceConnected))
}

func TestRegisterValidation(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, commsObj, recorder, _, _, _ := GetMockCommsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	cases := []*models.DeviceInfo{
		{ID: "", Name: "No ID", Type: string(models.DeviceTypeRemote)},
		{ID: uuid.NewString(), Name: "", Type: string(models.DeviceTypeRemote)},
		{ID: uuid.NewString(), Name: "Bad Type", Type: "drone"},
		{ID: "   ", Name: "Blank ID", Type: string(models.DeviceTypeRemote)},
	}

	for _, info := range cases {
		dev, err := commsObj.Registry.Register(info, "session-x")
		assert.Nil(t, dev)
		require.Error(t, err)
		assert.True(t, IsValidationError(err), "expected ValidationError, got %v", err)
	}

	assert.Equal(t, 0, recorder.Count(EventDeviceConnected))
}

func TestHeartbeatUnknownDeviceIsNoop(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, commsObj, _, _, _, _ := GetMockCommsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	deviceID := uuid.NewString()

	// must not panic, error, or create an entry
	commsObj.Registry.Heartbeat(deviceID)

	for _, dev := range commsObj.Registry.ListOnline() {
		assert.NotEqual(t, deviceID, dev.ID)
	}
}

func TestHeartbeatRefreshesLastSeen(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, commsObj, _, _, _, _ := GetMockCommsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	deviceID := uuid.NewString()

	_, err := commsObj.Registry.Register(&models.DeviceInfo{
		ID:   deviceID,
		Name: "Engine Room",
		Type: string(models.DeviceTypeEngine),
	}, "session-1")
	require.NoError(t, err)

	stale := time.Now().Add(-5 * time.Minute)
	commsObj.devices[deviceID].LastSeen = stale

	commsObj.Registry.Heartbeat(deviceID)

	assert.True(t, commsObj.devices[deviceID].LastSeen.After(stale))
}

func TestMarkOffline(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, commsObj, recorder, _, _, _ := GetMockCommsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	deviceID := uuid.NewString()

	_, err := commsObj.Registry.Register(&models.DeviceInfo{
		ID:   deviceID,
		Name: "Handheld A",
		Type: string(models.DeviceTypeHandheld),
	}, "session-1")
	require.NoError(t, err)

	before := recorder.Count(EventDeviceDisconnected)

	dev, err := commsObj.Registry.MarkOffline(deviceID)
	require.NoError(t, err)
	assert.Equal(t, models.DeviceStatusOffline, dev.Status)
	assert.Empty(t, dev.SessionRef)

	// already offline: benign NotFound
	_, err = commsObj.Registry.MarkOffline(deviceID)
	require.Error(t, err)
	assert.True(t, IsNotFoundError(err))

	_, err = commsObj.Registry.MarkOffline(uuid.NewString())
	require.Error(t, err)
	assert.True(t, IsNotFoundError(err))

	assert.Equal(t, before+1, recorder.Count(EventDeviceDisconnected))
}

func TestListOnlineOrdering(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, commsObj, _, _, _, _ := GetMockCommsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	older := uuid.NewString()
	newer := uuid.NewString()

	for _, id := range []string{older, newer} {
		_, err := commsObj.Registry.Register(&models.DeviceInfo{
			ID:   id,
			Name: "Device " + id,
			Type: string(models.DeviceTypeRemote),
		}, "session-"+id)
		require.NoError(t, err)
	}

	now := time.Now()
	commsObj.devices[older].LastSeen = now.Add(-30 * time.Second)
	commsObj.devices[newer].LastSeen = now

	online := commsObj.Registry.ListOnline()

	olderIdx, newerIdx := -1, -1
	for i, dev := range online {
		switch dev.ID {
		case older:
			olderIdx = i
		case newer:
			newerIdx = i
		}
	}
	require.NotEqual(t, -1, olderIdx)
	require.NotEqual(t, -1, newerIdx)
	assert.Less(t, newerIdx, olderIdx, "most recently seen should come first")
}

func TestSweepStale(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, commsObj, recorder, _, _, _ := GetMockCommsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	staleID := uuid.NewString()
	freshID := uuid.NewString()

	for _, id := range []string{staleID, freshID} {
		_, err := commsObj.Registry.Register(&models.DeviceInfo{
			ID:   id,
			Name: "Device " + id,
			Type: string(models.DeviceTypeRemote),
		}, "session-"+id)
		require.NoError(t, err)
	}

	now := time.Now()
	threshold := 60 * time.Second
	commsObj.devices[staleID].LastSeen = now.Add(-2 * threshold)

	before := recorder.Count(EventDeviceDisconnected)

	evicted := commsObj.Registry.SweepStale(now, threshold)

	assert.Equal(t, []string{staleID}, evicted)
	assert.Equal(t, models.DeviceStatusOffline, commsObj.devices[staleID].Status)
	assert.Equal(t, models.DeviceStatusOnline, commsObj.devices[freshID].Status)
	assert.Equal(t, before+1, recorder.Count(EventDeviceDisconnected))

	// already offline devices are not swept again
	evicted = commsObj.Registry.SweepStale(now, threshold)
	assert.Empty(t, evicted)
}

func TestSweepStale_ConcurrentHeartbeats(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, commsObj, _, _, _, _ := GetMockCommsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	deviceID := uuid.NewString()

	_, err := commsObj.Registry.Register(&models.DeviceInfo{
		ID:   deviceID,
		Name: "Busy Handheld",
		Type: string(models.DeviceTypeHandheld),
	}, "session-1")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for n := 0; n < 50; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			commsObj.Registry.Heartbeat(deviceID)
			commsObj.Registry.SweepStale(time.Now(), 60*time.Second)
		}()
	}
	wg.Wait()

	// a device heartbeating right now must never end up offline
	found := false
	for _, dev := range commsObj.Registry.ListOnline() {
		if dev.ID == deviceID {
			found = true
		}
	}
	assert.True(t, found, "expected heartbeating device to stay online through sweeps")
}

func TestRegister_WithLog(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	ctrl, commsObj, _, _, _, _ := GetMockCommsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	deviceID := uuid.NewString()

	_, err := commsObj.Registry.Register(&models.DeviceInfo{
		ID:   deviceID,
		Name: "MCR Console",
		Type: string(models.DeviceTypeMCR),
	}, "session-1")
	require.NoError(t, err)

	logs := ParseLogs(buf)

	found := false
	for _, log := range logs {
		lobj := log.(map[string]any)
		// zap.Reflect serializes through the models' json tags
		if lobj["category"] == "registry" &&
			lobj["logger"] == "comms_core" &&
			lobj["msg"] == "Device registered" &&
			lobj["device"].(map[string]any)["id"] == deviceID &&
			lobj["device"].(map[string]any)["name"] == "MCR Console" {
			found = true
		}
	}
	assert.True(t, found, "log not found")
}
