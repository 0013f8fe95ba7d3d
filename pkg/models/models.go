package models

import "time"

type DeviceType string

const (
	DeviceTypeMCR      DeviceType = "mcr"
	DeviceTypeEngine   DeviceType = "engine"
	DeviceTypeRemote   DeviceType = "remote"
	DeviceTypeHandheld DeviceType = "handheld"
)

type DeviceStatus string

const (
	DeviceStatusOnline  DeviceStatus = "online"
	DeviceStatusOffline DeviceStatus = "offline"
)

type MessageType string

const (
	MessageTypeNormal    MessageType = "normal"
	MessageTypeEmergency MessageType = "emergency"
)

// ChannelBroadcast is the all-stations topic. Channels are advisory routing
// metadata for the receiving terminals; the coordinator delivers every
// message to every session regardless of channel.
const ChannelBroadcast = "broadcast"

// SourceSystem marks synthetic messages written by the coordinator itself,
// e.g. the record of an emergency alert being cleared.
const SourceSystem = "system"

type Device struct {
	ID       string       `gorm:"primaryKey" json:"id"`
	Name     string       `json:"name"`
	Type     DeviceType   `gorm:"type:varchar(20);check:type IN ('mcr','engine','remote','handheld')" json:"type"`
	Status   DeviceStatus `gorm:"type:varchar(10)" json:"status"`
	LastSeen time.Time    `gorm:"index" json:"lastSeen"`
	Language string       `json:"language,omitempty"`

	// SessionRef links to the current transport session. It is owned by the
	// in-memory registry and never persisted.
	SessionRef string `gorm:"-" json:"-"`
}

type Message struct {
	ID        string      `gorm:"primaryKey" json:"id"`
	Text      string      `json:"text"`
	Timestamp time.Time   `gorm:"index" json:"timestamp"`
	Channel   string      `gorm:"index" json:"channel"`
	Source    string      `json:"source"`
	Type      MessageType `gorm:"type:varchar(10)" json:"type"`
	DeviceID  string      `gorm:"index" json:"deviceId,omitempty"`
}

// DeviceInfo is the payload of a register command before admission.
type DeviceInfo struct {
	ID       string
	Name     string
	Type     string
	Language string
}

// MessageQuery filters the recent-messages read. A DeviceID filter also
// matches broadcast-channel and emergency messages regardless of channel,
// since every terminal is expected to see those.
type MessageQuery struct {
	Limit    int
	Channel  string
	DeviceID string
}
