// Package interactions keeps a durable log of handled bot events.
package interactions

import "time"

// Entry is a single logged interaction.
type Entry struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Platform  string         `json:"platform"`
	UserID    string         `json:"user_id"`
	Action    string         `json:"action"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// ActionCount is the number of entries logged for one action.
type ActionCount struct {
	Action string `json:"action"`
	Count  int    `json:"count"`
}
