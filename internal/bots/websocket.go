package bots

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/menubot/internal/logging"
	"github.com/ziadkadry99/menubot/internal/screen"
)

// wsRequest is the incoming WebSocket frame. Type is "message" for typed
// text and "action" for a button click; Content carries the text or the
// action id.
type wsRequest struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// wsResponse is the outgoing WebSocket frame.
type wsResponse struct {
	Type   string            `json:"type"` // "screen", "notice" or "error"
	UserID string            `json:"user_id,omitempty"`
	Text   string            `json:"text,omitempty"`
	HTML   bool              `json:"html,omitempty"`
	Rows   [][]screen.Action `json:"rows,omitempty"`
	Notice string            `json:"notice,omitempty"`
}

// WebSocketHandler serves the bot to browser clients. Each connection is
// one user with a server-generated id, echoed as user_id in every frame.
type WebSocketHandler struct {
	gateway  *Gateway
	log      *logging.Logger
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates a handler. With allowAllOrigins unset only
// same-origin browser connections are accepted.
func NewWebSocketHandler(gateway *Gateway, log *logging.Logger, allowAllOrigins bool) *WebSocketHandler {
	if log == nil {
		log = logging.Nop()
	}
	h := &WebSocketHandler{gateway: gateway, log: log}
	if allowAllOrigins {
		h.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}
	return h
}

// HandleWebSocket upgrades the connection and serves frames until the
// client disconnects.
func (h *WebSocketHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade", "error", err)
		return
	}
	defer conn.Close()

	user := uuid.New().String()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn("websocket read", "error", err)
			}
			return
		}

		var req wsRequest
		if err := json.Unmarshal(data, &req); err != nil {
			h.send(conn, wsResponse{Type: "error", Notice: "invalid message format"})
			continue
		}

		msg := IncomingMessage{
			Platform:  PlatformWeb,
			ChannelID: user,
			UserID:    user,
		}
		switch req.Type {
		case "message":
			if req.Content == "" {
				h.send(conn, wsResponse{Type: "error", UserID: user, Notice: "content is required"})
				continue
			}
			msg.Text = req.Content
		case "action":
			if req.Content == "" {
				h.send(conn, wsResponse{Type: "error", UserID: user, Notice: "content is required"})
				continue
			}
			msg.Callback = req.Content
		default:
			h.send(conn, wsResponse{Type: "error", UserID: user, Notice: "unknown message type: " + req.Type})
			continue
		}

		resp, err := h.gateway.Process(r.Context(), msg)
		if err != nil {
			h.send(conn, wsResponse{Type: "error", UserID: user, Notice: "processing error"})
			continue
		}
		h.send(conn, toWSResponse(user, resp))
	}
}

func toWSResponse(userID string, resp *OutgoingMessage) wsResponse {
	if resp.Screen == nil {
		return wsResponse{Type: "notice", UserID: userID, Notice: resp.Notice}
	}
	return wsResponse{
		Type:   "screen",
		UserID: userID,
		Text:   resp.Screen.Text,
		HTML:   resp.Screen.HTML,
		Rows:   resp.Screen.Rows,
		Notice: resp.Notice,
	}
}

func (h *WebSocketHandler) send(conn *websocket.Conn, resp wsResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		h.log.Warn("websocket write", "error", err)
	}
}
