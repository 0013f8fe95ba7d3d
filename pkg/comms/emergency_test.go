package comms

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sol9x-harsh/industrial-communication-system/pkg/common"
	"github.com/sol9x-harsh/industrial-communication-system/pkg/models"
	_ "github.com/sol9x-harsh/industrial-communication-system/pkg/testing"
)

func publishEmergency(t *testing.T, commsObj *Comms, source string) *models.Message {
	t.Helper()
	msg, err := commsObj.Router.Publish(&models.Message{
		Text:   "HELP",
		Source: source,
		Type:   models.MessageTypeEmergency,
	})
	require.NoError(t, err)
	return msg
}

func TestEmergencyActivation(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, commsObj, recorder, _, _, _ := GetMockCommsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	source := uuid.NewString()
	beforeAlerts := recorder.Count(EventEmergencyAlert)
	beforeMessages := recorder.Count(EventNewMessage)

	first := publishEmergency(t, commsObj, source)
	assert.True(t, commsObj.Alert.Activate(first))
	assert.True(t, commsObj.Alert.Active())
	assert.Equal(t, beforeAlerts+1, recorder.Count(EventEmergencyAlert))

	// a second emergency while active is still delivered as a message but
	// does not open a second alert slot
	second := publishEmergency(t, commsObj, source)
	assert.False(t, commsObj.Alert.Activate(second))
	assert.True(t, commsObj.Alert.Active())
	assert.Equal(t, beforeAlerts+1, recorder.Count(EventEmergencyAlert))
	assert.Equal(t, beforeMessages+2, recorder.Count(EventNewMessage))

	last, ok := recorder.Last(EventEmergencyAlert)
	require.True(t, ok)
	assert.Equal(t, first, last.Payload)

	commsObj.Alert.Stop(source)
}

func TestStopWhileIdleIsNoop(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, commsObj, recorder, _, _, _ := GetMockCommsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	before := recorder.Count(EventEmergencyStopped)

	note, stopped := commsObj.Alert.Stop(uuid.NewString())
	assert.Nil(t, note)
	assert.False(t, stopped)
	assert.Equal(t, before, recorder.Count(EventEmergencyStopped))
}

func TestStopCancelsExpiry(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, commsObj, recorder, _, _, _ := GetMockCommsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	commsObj.Settings.AlertWindow = 60 * time.Millisecond

	source := uuid.NewString()
	stopper := uuid.NewString()
	before := recorder.Count(EventEmergencyStopped)

	require.True(t, commsObj.Alert.Activate(publishEmergency(t, commsObj, source)))

	note, stopped := commsObj.Alert.Stop(stopper)
	require.True(t, stopped)
	require.NotNil(t, note)
	assert.Equal(t, models.SourceSystem, note.Source)
	assert.Equal(t, stopper, note.DeviceID)
	assert.False(t, commsObj.Alert.Active())

	// the synthetic stop record is persisted like any other message
	var saved models.Message
	require.NoError(t, commsObj.Db.Conn.Where("id = ?", note.ID).First(&saved).Error)

	// wait past the original window: the cancelled timer must not fire
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, before+1, recorder.Count(EventEmergencyStopped))
	assert.False(t, commsObj.Alert.Active())
}

func TestAutoExpiry(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, commsObj, recorder, _, _, _ := GetMockCommsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	commsObj.Settings.AlertWindow = 40 * time.Millisecond

	source := uuid.NewString()
	before := recorder.Count(EventEmergencyStopped)

	require.True(t, commsObj.Alert.Activate(publishEmergency(t, commsObj, source)))

	time.Sleep(150 * time.Millisecond)

	assert.False(t, commsObj.Alert.Active())
	assert.Equal(t, before+1, recorder.Count(EventEmergencyStopped))

	last, ok := recorder.Last(EventEmergencyStopped)
	require.True(t, ok)
	payload := last.Payload.(*EmergencyStoppedPayload)
	assert.Equal(t, models.SourceSystem, payload.DeviceID)

	// a stop after expiry is a no-op
	_, stopped := commsObj.Alert.Stop(source)
	assert.False(t, stopped)
	assert.Equal(t, before+1, recorder.Count(EventEmergencyStopped))
}

func TestStaleExpiryTimerIgnoresNewActivation(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, commsObj, recorder, _, _, _ := GetMockCommsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	commsObj.Settings.AlertWindow = time.Hour

	source := uuid.NewString()

	// first activation, then an explicit stop
	require.True(t, commsObj.Alert.Activate(publishEmergency(t, commsObj, source)))
	firstGen := commsObj.alert.gen
	_, stopped := commsObj.Alert.Stop(source)
	require.True(t, stopped)

	require.True(t, commsObj.Alert.Activate(publishEmergency(t, commsObj, source)))
	before := recorder.Count(EventEmergencyStopped)

	// the first activation's timer fires after its slot was already cleared
	// and replaced; it must not touch the current activation
	commsObj.expireAlert(firstGen)

	assert.True(t, commsObj.Alert.Active(), "a stale expiry must not clear a newer activation")
	assert.Equal(t, before, recorder.Count(EventEmergencyStopped))

	commsObj.Alert.Stop(source)
}

func TestReactivationAfterClear(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, commsObj, recorder, _, _, _ := GetMockCommsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	source := uuid.NewString()
	before := recorder.Count(EventEmergencyAlert)

	require.True(t, commsObj.Alert.Activate(publishEmergency(t, commsObj, source)))
	_, stopped := commsObj.Alert.Stop(source)
	require.True(t, stopped)

	// once cleared, the slot can be armed again
	require.True(t, commsObj.Alert.Activate(publishEmergency(t, commsObj, source)))
	assert.Equal(t, before+2, recorder.Count(EventEmergencyAlert))

	commsObj.Alert.Stop(source)
}
