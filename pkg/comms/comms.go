package comms

import (
	"sync"
	"time"

	"github.com/sol9x-harsh/industrial-communication-system/pkg/db"
	"github.com/sol9x-harsh/industrial-communication-system/pkg/models"
)

//go:generate mockgen -source=comms.go -destination=mocks/mock_comms.go -package=mocks

type IRegistry interface {
	Register(info *models.DeviceInfo, sessionRef string) (*models.Device, error)
	Heartbeat(deviceID string)
	MarkOffline(deviceID string) (*models.Device, error)
	ListOnline() []models.Device
	SweepStale(now time.Time, threshold time.Duration) []string
}

type IRouter interface {
	Publish(input *models.Message) (*models.Message, error)
}

type IAlert interface {
	Activate(trigger *models.Message) bool
	Stop(deviceID string) (*models.Message, bool)
	Active() bool
}

type IStore interface {
	RecentMessages(q models.MessageQuery) ([]models.Message, error)
	FreshDevices(now time.Time) ([]models.Device, error)
	UpsertStoredDevice(dev *models.Device) error
	OfflineStoredDevice(deviceID string) error
}

// Broadcaster is the transport-side port the core emits events through.
// The websocket hub implements it; tests use a recorder.
type Broadcaster interface {
	BroadcastAll(event string, payload any)
}

// Comms owns the coordinator state: the authoritative in-memory device map
// and the single emergency alert slot. Both are guarded by their own mutex;
// every read-modify-write on them is a critical section.
type Comms struct {
	Db       db.DB
	Settings Settings

	Broadcaster Broadcaster

	Registry IRegistry
	Router   IRouter
	Alert    IAlert
	Store    IStore

	mu      sync.Mutex
	devices map[string]*models.Device

	alertMu  sync.Mutex
	alert    alertSlot
	alertGen uint64

	storeMu sync.Mutex
}

func NewComms(dbInstance db.DB, settings Settings) *Comms {
	return &Comms{
		Db:       dbInstance,
		Settings: settings,
		devices:  make(map[string]*models.Device),
	}
}

type ServiceOpts struct {
	Registry IRegistry
	Router   IRouter
	Alert    IAlert
	Store    IStore
}

func (c *Comms) WithServices(opts ServiceOpts) *Comms {
	if opts.Registry != nil {
		c.Registry = opts.Registry
	}
	if opts.Router != nil {
		c.Router = opts.Router
	}
	if opts.Alert != nil {
		c.Alert = opts.Alert
	}
	if opts.Store != nil {
		c.Store = opts.Store
	}
	return c
}

func (c *Comms) WithBroadcaster(b Broadcaster) *Comms {
	c.Broadcaster = b
	return c
}

func (c *Comms) broadcast(event string, payload any) {
	if c.Broadcaster == nil {
		return
	}
	c.Broadcaster.BroadcastAll(event, payload)
}
