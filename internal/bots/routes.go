package bots

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the Telegram webhook and the browser WebSocket
// endpoint. A nil handler leaves its route unmounted.
func RegisterRoutes(r chi.Router, webhookPath string, tg *TelegramHandler, ws *WebSocketHandler) {
	if tg != nil {
		if webhookPath == "" {
			webhookPath = "/webhook"
		}
		r.Post(webhookPath, tg.HandleUpdate)
	}
	if ws != nil {
		r.Get("/api/bots/ws", ws.HandleWebSocket)
	}
}
