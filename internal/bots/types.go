package bots

import (
	"github.com/ziadkadry99/menubot/internal/router"
	"github.com/ziadkadry99/menubot/internal/screen"
)

// Platform identifies the messaging platform.
type Platform string

const (
	PlatformTelegram Platform = "telegram"
	PlatformWeb      Platform = "web"
)

// IncomingMessage represents a message or button click received from any
// platform. Callback is set for clicks and carries the action id.
type IncomingMessage struct {
	Platform   Platform
	ChannelID  string
	UserID     string
	UserName   string
	Text       string
	Callback   string
	CallbackID string // platform id of the click, used to acknowledge it
	MessageID  string // message holding the clicked keyboard
	Timestamp  string // platform send time, unix seconds
}

// IsCallback reports whether the message is a button click.
func (m IncomingMessage) IsCallback() bool { return m.Callback != "" }

// OutgoingMessage represents a response to send back. A nil Screen keeps
// the current screen and only shows Notice.
type OutgoingMessage struct {
	ChannelID  string
	MessageID  string // set when Screen replaces the clicked message
	CallbackID string
	Screen     *screen.Screen
	Notice     string
	Event      router.Event
}
