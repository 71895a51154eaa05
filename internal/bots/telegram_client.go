package bots

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const telegramAPIURL = "https://api.telegram.org"

// CallbackAnswerer acknowledges a button click so the client stops showing
// its loading indicator.
type CallbackAnswerer interface {
	AnswerCallbackQuery(ctx context.Context, callbackID string) error
}

// TelegramClient calls Bot API methods that cannot ride on the webhook
// reply, which carries at most one method.
type TelegramClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewTelegramClient creates a client for the bot with the given token.
func NewTelegramClient(token string) *TelegramClient {
	return &TelegramClient{
		baseURL: telegramAPIURL,
		token:   token,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// AnswerCallbackQuery sends answerCallbackQuery without a text.
func (c *TelegramClient) AnswerCallbackQuery(ctx context.Context, callbackID string) error {
	return c.call(ctx, "answerCallbackQuery", map[string]string{"callback_query_id": callbackID})
}

func (c *TelegramClient) call(ctx context.Context, method string, params any) error {
	payload, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", method, err)
	}
	endpoint := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		// The URL carries the token and must stay out of the error.
		if uerr, ok := err.(*url.Error); ok {
			err = uerr.Err
		}
		return fmt.Errorf("calling %s: %w", method, err)
	}
	defer resp.Body.Close()

	var result struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%s returned status %d", method, resp.StatusCode)
	}
	if !result.OK {
		return fmt.Errorf("%s failed: %s", method, result.Description)
	}
	return nil
}
