package bots

import (
	"context"
	"strings"

	"github.com/ziadkadry99/menubot/internal/router"
)

// Handler is the part of the router the processor depends on.
type Handler interface {
	Handle(ctx context.Context, in router.Input) (*router.Response, error)
}

// Processor connects incoming bot messages to the menu router.
type Processor struct {
	router Handler
}

// NewProcessor creates a new message processor.
func NewProcessor(r Handler) *Processor {
	return &Processor{router: r}
}

// HandleMessage classifies the message and passes it to the router:
//   - a button click -> action
//   - "/name" or "/name@bot args" -> command "name"
//   - anything else -> free text
func (p *Processor) HandleMessage(ctx context.Context, msg IncomingMessage) (*OutgoingMessage, error) {
	resp, err := p.router.Handle(ctx, toInput(msg))
	if err != nil {
		return nil, err
	}

	out := &OutgoingMessage{
		ChannelID:  msg.ChannelID,
		CallbackID: msg.CallbackID,
		Screen:     resp.Screen,
		Notice:     resp.Notice,
		Event:      resp.Event,
	}
	if msg.IsCallback() {
		out.MessageID = msg.MessageID
	}
	return out, nil
}

// toInput keys the user by platform, so equal ids on different platforms
// never share a session or an interaction history.
func toInput(msg IncomingMessage) router.Input {
	user := sessionKey(msg)
	if msg.IsCallback() {
		return router.Input{UserID: user, Kind: router.InputAction, Payload: msg.Callback}
	}
	if name, ok := parseCommand(msg.Text); ok {
		return router.Input{UserID: user, Kind: router.InputCommand, Payload: name}
	}
	return router.Input{UserID: user, Kind: router.InputText, Payload: msg.Text}
}

func sessionKey(msg IncomingMessage) string {
	return string(msg.Platform) + ":" + msg.UserID
}

// parseCommand extracts the command name from "/name@bot args".
func parseCommand(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") || len(text) < 2 {
		return "", false
	}
	name := strings.Fields(text[1:])[0]
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		return "", false
	}
	return name, true
}
