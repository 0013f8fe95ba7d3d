package comms

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/sol9x-harsh/industrial-communication-system/pkg/comms/mocks"
	"github.com/sol9x-harsh/industrial-communication-system/pkg/db"
)

// eventRecorder is a Broadcaster that remembers every emitted event, so tests
// can assert on what connected sessions would have received.
type recordedEvent struct {
	Event   string
	Payload any
}

type eventRecorder struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (r *eventRecorder) BroadcastAll(event string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{Event: event, Payload: payload})
}

func (r *eventRecorder) Count(event string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Event == event {
			n++
		}
	}
	return n
}

func (r *eventRecorder) Last(event string) (recordedEvent, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Event == event {
			return r.events[i], true
		}
	}
	return recordedEvent{}, false
}

func GetMockCommsWithMemorySqliteDialector(t *testing.T, useMockRegistry, useMockRouter, useMockAlert bool) (
	*gomock.Controller,
	*Comms,
	*eventRecorder,
	*mocks.MockIRegistry,
	*mocks.MockIRouter,
	*mocks.MockIAlert,
) {
	ctrl := gomock.NewController(t)

	mockIRegistry := mocks.NewMockIRegistry(ctrl)
	mockIRouter := mocks.NewMockIRouter(ctrl)
	mockIAlert := mocks.NewMockIAlert(ctrl)

	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	commsInstance := NewComms(*dbInstance, DefaultSettings())

	recorder := &eventRecorder{}
	commsInstance.WithBroadcaster(recorder)

	registryService := commsInstance.GetIRegistry()
	if useMockRegistry {
		registryService = mockIRegistry
	}

	routerService := commsInstance.GetIRouter()
	if useMockRouter {
		routerService = mockIRouter
	}

	alertService := commsInstance.GetIAlert()
	if useMockAlert {
		alertService = mockIAlert
	}

	commsInstance.WithServices(ServiceOpts{
		Registry: registryService,
		Router:   routerService,
		Alert:    alertService,
		Store:    commsInstance.GetIStore(),
	})

	return ctrl, commsInstance, recorder, mockIRegistry, mockIRouter, mockIAlert
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
