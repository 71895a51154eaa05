package bots

import (
	"context"

	"github.com/ziadkadry99/menubot/internal/logging"
	"github.com/ziadkadry99/menubot/internal/router"
)

// MessageHandler processes incoming messages and produces responses.
type MessageHandler interface {
	HandleMessage(ctx context.Context, msg IncomingMessage) (*OutgoingMessage, error)
}

// Recorder persists interaction events.
type Recorder interface {
	Record(ctx context.Context, platform string, ev router.Event) error
}

// Gateway is the platform-agnostic bot gateway that routes messages
// to a handler and logs every handled interaction.
type Gateway struct {
	handler  MessageHandler
	log      *logging.Logger
	recorder Recorder
}

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway)

// WithLogger sets the interaction logger.
func WithLogger(l *logging.Logger) GatewayOption {
	return func(g *Gateway) { g.log = l }
}

// WithRecorder stores every interaction event through rec.
func WithRecorder(rec Recorder) GatewayOption {
	return func(g *Gateway) { g.recorder = rec }
}

// NewGateway creates a new Gateway with the given message handler.
func NewGateway(handler MessageHandler, opts ...GatewayOption) *Gateway {
	g := &Gateway{handler: handler, log: logging.Nop()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Process routes an incoming message through the handler.
func (g *Gateway) Process(ctx context.Context, msg IncomingMessage) (*OutgoingMessage, error) {
	resp, err := g.handler.HandleMessage(ctx, msg)
	if err != nil {
		g.log.Error("handling message", "platform", msg.Platform, "user_id", msg.UserID, "error", err)
		return nil, err
	}

	ev := resp.Event
	g.log.Info("user interaction",
		"platform", msg.Platform,
		"user_id", ev.UserID,
		"user_name", msg.UserName,
		"sent_at", msg.Timestamp,
		"action", ev.Action,
		"payload", ev.Payload,
	)
	if g.recorder != nil && ev.Action != "" {
		if err := g.recorder.Record(ctx, string(msg.Platform), ev); err != nil {
			g.log.Warn("recording interaction", "user_id", ev.UserID, "error", err)
		}
	}
	return resp, nil
}
