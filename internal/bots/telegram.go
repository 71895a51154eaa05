package bots

import (
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/ziadkadry99/menubot/internal/logging"
	"github.com/ziadkadry99/menubot/internal/menu"
	"github.com/ziadkadry99/menubot/internal/screen"
)

// secretTokenHeader carries the secret set with setWebhook.
const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// TelegramHandler handles incoming Telegram webhook updates. Replies are
// returned in the webhook response body as a Bot API method call.
type TelegramHandler struct {
	gateway     *Gateway
	secretToken string
	answerer    CallbackAnswerer
	log         *logging.Logger
}

// TelegramOption configures a TelegramHandler.
type TelegramOption func(*TelegramHandler)

// WithCallbackAnswerer acknowledges clicks whose reply edits the message.
// Without it Telegram shows a loading indicator until its own timeout.
func WithCallbackAnswerer(a CallbackAnswerer) TelegramOption {
	return func(h *TelegramHandler) { h.answerer = a }
}

// WithTelegramLogger sets the logger for Bot API call failures.
func WithTelegramLogger(l *logging.Logger) TelegramOption {
	return func(h *TelegramHandler) { h.log = l }
}

// NewTelegramHandler creates a new Telegram update handler.
func NewTelegramHandler(gateway *Gateway, secretToken string, opts ...TelegramOption) *TelegramHandler {
	h := &TelegramHandler{
		gateway:     gateway,
		secretToken: secretToken,
		log:         logging.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// telegramUpdate is the subset of a Bot API Update the bot reads.
type telegramUpdate struct {
	UpdateID      int64                  `json:"update_id"`
	Message       *telegramMessage       `json:"message"`
	CallbackQuery *telegramCallbackQuery `json:"callback_query"`
}

type telegramMessage struct {
	MessageID int64        `json:"message_id"`
	From      telegramUser `json:"from"`
	Chat      telegramChat `json:"chat"`
	Date      int64        `json:"date"`
	Text      string       `json:"text"`
}

type telegramCallbackQuery struct {
	ID      string           `json:"id"`
	From    telegramUser     `json:"from"`
	Message *telegramMessage `json:"message"`
	Data    string           `json:"data"`
}

type telegramUser struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot"`
	FirstName string `json:"first_name"`
	Username  string `json:"username"`
}

type telegramChat struct {
	ID int64 `json:"id"`
}

// telegramReply is a Bot API method invocation sent as the webhook reply.
type telegramReply struct {
	Method          string          `json:"method"`
	ChatID          int64           `json:"chat_id,omitempty"`
	MessageID       int64           `json:"message_id,omitempty"`
	Text            string          `json:"text,omitempty"`
	ParseMode       string          `json:"parse_mode,omitempty"`
	ReplyMarkup     *inlineKeyboard `json:"reply_markup,omitempty"`
	CallbackQueryID string          `json:"callback_query_id,omitempty"`
}

type inlineKeyboard struct {
	InlineKeyboard [][]inlineButton `json:"inline_keyboard"`
}

type inlineButton struct {
	Text         string `json:"text"`
	URL          string `json:"url,omitempty"`
	CallbackData string `json:"callback_data,omitempty"`
}

// HandleUpdate handles incoming Telegram updates (HTTP POST).
func (h *TelegramHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if h.secretToken != "" {
		got := r.Header.Get(secretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secretToken)) != 1 {
			http.Error(w, "invalid secret token", http.StatusUnauthorized)
			return
		}
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var update telegramUpdate
	if err := json.Unmarshal(body, &update); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	var msg IncomingMessage
	switch {
	case update.CallbackQuery != nil:
		cq := update.CallbackQuery
		msg = IncomingMessage{
			Platform:   PlatformTelegram,
			UserID:     strconv.FormatInt(cq.From.ID, 10),
			UserName:   displayName(cq.From),
			Callback:   cq.Data,
			CallbackID: cq.ID,
		}
		if cq.Message != nil {
			msg.ChannelID = strconv.FormatInt(cq.Message.Chat.ID, 10)
			msg.MessageID = strconv.FormatInt(cq.Message.MessageID, 10)
		} else {
			// Too old or inline: reply in the user's private chat.
			msg.ChannelID = msg.UserID
		}
		if msg.Callback == "" {
			msg.Callback = menu.PaginationInfo
		}

	case update.Message != nil && update.Message.Text != "" && !update.Message.From.IsBot:
		m := update.Message
		msg = IncomingMessage{
			Platform:  PlatformTelegram,
			ChannelID: strconv.FormatInt(m.Chat.ID, 10),
			UserID:    strconv.FormatInt(m.From.ID, 10),
			UserName:  displayName(m.From),
			Text:      m.Text,
			Timestamp: strconv.FormatInt(m.Date, 10),
		}

	default:
		// Edits, stickers, joins and other updates are ignored.
		w.WriteHeader(http.StatusOK)
		return
	}

	resp, err := h.gateway.Process(r.Context(), msg)
	if err != nil {
		http.Error(w, "processing error", http.StatusInternalServerError)
		return
	}

	// The webhook reply carries the screen; the click is acknowledged separately.
	if msg.CallbackID != "" && resp.Screen != nil && h.answerer != nil {
		if err := h.answerer.AnswerCallbackQuery(r.Context(), msg.CallbackID); err != nil {
			h.log.Warn("answering callback query", "user_id", msg.UserID, "error", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(formatTelegramReply(resp))
}

func displayName(u telegramUser) string {
	if u.Username != "" {
		return u.Username
	}
	return u.FirstName
}

// formatTelegramReply picks the Bot API method for resp: a notice answers
// the click, a screen for a click edits the clicked message, and anything
// else is sent as a new message.
func formatTelegramReply(resp *OutgoingMessage) *telegramReply {
	chatID, _ := strconv.ParseInt(resp.ChannelID, 10, 64)

	if resp.Screen == nil {
		return &telegramReply{
			Method:          "answerCallbackQuery",
			CallbackQueryID: resp.CallbackID,
			Text:            resp.Notice,
		}
	}

	reply := &telegramReply{
		Method:      "sendMessage",
		ChatID:      chatID,
		Text:        resp.Screen.Text,
		ReplyMarkup: toInlineKeyboard(resp.Screen),
	}
	if resp.Screen.HTML {
		reply.ParseMode = "HTML"
	}
	if resp.MessageID != "" {
		reply.Method = "editMessageText"
		reply.MessageID, _ = strconv.ParseInt(resp.MessageID, 10, 64)
	}
	return reply
}

// toInlineKeyboard converts screen rows to Telegram buttons. Telegram
// requires every inline button to do something, so inert labels send the
// pagination_info callback, which the router acknowledges silently.
func toInlineKeyboard(s *screen.Screen) *inlineKeyboard {
	if len(s.Rows) == 0 {
		return nil
	}
	kb := &inlineKeyboard{InlineKeyboard: make([][]inlineButton, 0, len(s.Rows))}
	for _, row := range s.Rows {
		buttons := make([]inlineButton, 0, len(row))
		for _, a := range row {
			b := inlineButton{Text: a.Label, URL: a.URL, CallbackData: a.Callback}
			if a.Inert() {
				b.CallbackData = menu.PaginationInfo
			}
			buttons = append(buttons, b)
		}
		kb.InlineKeyboard = append(kb.InlineKeyboard, buttons)
	}
	return kb
}
