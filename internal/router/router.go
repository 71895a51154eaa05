// Package router interprets commands, free text and button clicks against
// the content tree and the user's session, and produces the next screen.
package router

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ziadkadry99/menubot/internal/content"
	"github.com/ziadkadry99/menubot/internal/menu"
	"github.com/ziadkadry99/menubot/internal/paging"
	"github.com/ziadkadry99/menubot/internal/screen"
	"github.com/ziadkadry99/menubot/internal/search"
	"github.com/ziadkadry99/menubot/internal/session"
)

// InputKind distinguishes the three kinds of inbound events.
type InputKind string

const (
	InputCommand InputKind = "command"
	InputText    InputKind = "text"
	InputAction  InputKind = "action"
)

// Input is one inbound event. Payload is the command name without the
// leading slash, the message text, or the clicked action id.
type Input struct {
	UserID  string
	Kind    InputKind
	Payload string
}

// Response describes what the transport should do. A nil Screen leaves the
// current screen as it is; Notice is a transient message for the user.
type Response struct {
	Screen *screen.Screen
	Notice string
	Event  Event
}

// Unchanged reports whether the response keeps the current screen.
func (r *Response) Unchanged() bool { return r.Screen == nil }

// Event is the structured description of a handled input, for logging.
type Event struct {
	UserID  string         `json:"user_id"`
	Action  string         `json:"action"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Source provides the current content tree.
type Source interface {
	Tree(ctx context.Context) *content.Tree
}

// minFallbackQueryLen is the length free text must exceed to be treated as
// a search query outside search mode.
const minFallbackQueryLen = 3

// Router is the session state machine and callback dispatcher.
type Router struct {
	content  Source
	sessions session.Store
	pageSize int
	welcome  string
}

// Option configures a Router.
type Option func(*Router)

// WithPageSize sets the number of documents per page.
func WithPageSize(n int) Option {
	return func(r *Router) {
		if n > 0 {
			r.pageSize = n
		}
	}
}

// WithWelcome replaces the /start greeting.
func WithWelcome(text string) Option {
	return func(r *Router) {
		if text != "" {
			r.welcome = text
		}
	}
}

// New creates a Router.
func New(src Source, sessions session.Store, opts ...Option) *Router {
	r := &Router{
		content:  src,
		sessions: sessions,
		pageSize: paging.DefaultPageSize,
		welcome:  msgWelcome,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handle processes one input. Errors come only from the session store;
// missing content is reported through Response.Notice.
func (r *Router) Handle(ctx context.Context, in Input) (*Response, error) {
	switch in.Kind {
	case InputCommand:
		return r.handleCommand(ctx, in)
	case InputText:
		return r.handleText(ctx, in)
	case InputAction:
		return r.handleAction(ctx, in)
	default:
		return nil, fmt.Errorf("unknown input kind %q", in.Kind)
	}
}

func (r *Router) handleCommand(ctx context.Context, in Input) (*Response, error) {
	tree := r.content.Tree(ctx)
	switch strings.ToLower(in.Payload) {
	case "start", "help":
		if err := r.setMode(ctx, in.UserID, session.ModeMain); err != nil {
			return nil, err
		}
		return &Response{
			Screen: mainMenuScreen(tree, r.welcome),
			Event:  event(in.UserID, "start_command", nil),
		}, nil
	case "menu":
		if err := r.setMode(ctx, in.UserID, session.ModeMain); err != nil {
			return nil, err
		}
		return &Response{
			Screen: mainMenuScreen(tree, msgMainMenu),
			Event:  event(in.UserID, "menu_command", nil),
		}, nil
	case "search":
		if err := r.setMode(ctx, in.UserID, session.ModeSearch); err != nil {
			return nil, err
		}
		return &Response{
			Screen: screen.New(msgSearchPrompt),
			Event:  event(in.UserID, "search_command", nil),
		}, nil
	case "faq":
		return &Response{
			Screen: faqListScreen(tree),
			Event:  event(in.UserID, "faq_command", nil),
		}, nil
	default:
		// Unknown commands are ordinary text.
		return r.handleText(ctx, Input{UserID: in.UserID, Kind: InputText, Payload: "/" + in.Payload})
	}
}

func (r *Router) handleText(ctx context.Context, in Input) (*Response, error) {
	sess, err := r.sessions.Get(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(in.Payload)
	tree := r.content.Tree(ctx)

	explicit := sess.Mode == session.ModeSearch && text != ""
	if explicit || utf8.RuneCountInString(text) > minFallbackQueryLen {
		if err := r.setMode(ctx, in.UserID, session.ModeMain); err != nil {
			return nil, err
		}
		query := strings.ToLower(text)
		return &Response{
			Screen: searchScreen(query, search.Search(query, tree)),
			Event:  event(in.UserID, "search", map[string]any{"query": query, "explicit": explicit}),
		}, nil
	}

	if err := r.setMode(ctx, in.UserID, session.ModeMain); err != nil {
		return nil, err
	}
	return &Response{
		Screen: mainMenuScreen(tree, msgNotUnderstood),
		Event:  event(in.UserID, "unknown_message", map[string]any{"text": in.Payload}),
	}, nil
}

func (r *Router) handleAction(ctx context.Context, in Input) (*Response, error) {
	id := in.Payload
	tree := r.content.Tree(ctx)
	res := menu.NewResolver(tree)
	ev := event(in.UserID, "callback", map[string]any{"data": id})

	if id == menu.PaginationInfo {
		return &Response{Event: ev}, nil
	}

	if id == menu.BackToMain {
		if err := r.setMode(ctx, in.UserID, session.ModeMain); err != nil {
			return nil, err
		}
		return &Response{Screen: mainMenuScreen(tree, msgMainMenu), Event: ev}, nil
	}

	if id == menu.BackToFAQ {
		return &Response{Screen: faqListScreen(tree), Event: ev}, nil
	}

	if _, ok := menu.ParseFAQ(id); ok {
		idx, entry, err := res.FAQ(id)
		ev = event(in.UserID, "faq_item", map[string]any{"index": idx})
		if err != nil {
			return &Response{Notice: noticeFAQNotFound, Event: ev}, nil
		}
		return &Response{Screen: faqEntryScreen(idx, entry, len(tree.FAQ)), Event: ev}, nil
	}

	if target, ok := menu.ParseBack(id); ok {
		loc, err := res.Resolve(target)
		if err != nil || loc.Node == nil {
			return &Response{Screen: mainMenuScreen(tree, msgMainMenu), Event: ev}, nil
		}
		return &Response{Screen: r.nodeScreen(loc), Event: ev}, nil
	}

	if parentID, page, ok := menu.ParsePage(id); ok {
		loc, err := res.Resolve(parentID)
		list, isList := loc.Node.(*content.DocumentListNode)
		if err != nil || !isList {
			return &Response{Notice: noticeDocumentsMissing, Event: ev}, nil
		}
		return &Response{Screen: r.documentsScreen(list, loc.ParentID(), page), Event: ev}, nil
	}

	loc, err := res.Resolve(id)
	switch {
	case errors.Is(err, menu.ErrNotFound):
		return &Response{Notice: noticeNotFound, Event: ev}, nil
	case loc.Node == nil:
		// Matched only a document callback that no node answers to.
		return &Response{Notice: noticeInProgress, Event: ev}, nil
	}
	return &Response{Screen: r.nodeScreen(loc), Event: ev}, nil
}

func (r *Router) setMode(ctx context.Context, userID string, mode session.Mode) error {
	if err := r.sessions.Put(ctx, session.Session{UserID: userID, Mode: mode}); err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	return nil
}

func event(userID, action string, payload map[string]any) Event {
	return Event{UserID: userID, Action: action, Payload: payload}
}
