package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/menubot/internal/content"
	"github.com/ziadkadry99/menubot/internal/menu"
	"github.com/ziadkadry99/menubot/internal/search"
)

const defaultSearchLimit = 20

func (s *Server) handleSearchContent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil || strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", defaultSearchLimit)
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	hits := search.Search(strings.TrimSpace(query), s.content.Tree(ctx))
	if len(hits) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No results for %q.", query)), nil
	}
	return mcp.NewToolResultText(formatHits(hits, limit)), nil
}

// handleGetMenuItem resolves an action id and returns the item as stored
// in the content file.
func (s *Server) handleGetMenuItem(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("action_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: action_id"), nil
	}

	tree := s.content.Tree(ctx)
	res := menu.NewResolver(tree)

	if _, ok := menu.ParseFAQ(id); ok {
		idx, entry, err := res.FAQ(id)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("FAQ entry %d does not exist", idx)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("FAQ %s\n\nQ: %s\nA: %s", id, entry.Question, entry.Answer)), nil
	}

	loc, err := res.Resolve(id)
	if errors.Is(err, menu.ErrNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("no menu item with action id %q", id)), nil
	}
	if loc.Node == nil {
		return mcp.NewToolResultText(fmt.Sprintf("%q is a document in a document list: %s", id, loc.Document.Text)), nil
	}

	text, err := describeNode(loc)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode menu item: %v", err)), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleListFAQ(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	faq := s.content.Tree(ctx).FAQ
	if len(faq) == 0 {
		return mcp.NewToolResultText("The FAQ is empty."), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d question(s):\n", len(faq))
	for i, f := range faq {
		fmt.Fprintf(&sb, "\n[%s] %s\n%s\n", menu.FAQID(i), f.Question, f.Answer)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatHits(hits []search.Hit, limit int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d result(s):\n", len(hits))
	for i, h := range hits {
		if i == limit {
			fmt.Fprintf(&sb, "\n... %d more\n", len(hits)-limit)
			break
		}
		target := "action " + h.ActionID
		if h.URL != "" {
			target = "url " + h.URL
		}
		fmt.Fprintf(&sb, "\n%d. %s (%s)", i+1, h.Label, target)
	}
	sb.WriteString("\n")
	return sb.String()
}

func describeNode(loc menu.Location) (string, error) {
	raw, err := content.NodeList{loc.Node}.MarshalJSON()
	if err != nil {
		return "", err
	}
	// Drop the enclosing list brackets.
	item := bytes.TrimSuffix(bytes.TrimPrefix(bytes.TrimSpace(raw), []byte("[")), []byte("]"))
	var body bytes.Buffer
	if err := json.Indent(&body, item, "", "  "); err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\nKind: %s\n", loc.Node.Label(), menu.Classify(loc.Node))
	if parent := loc.ParentID(); parent != "" {
		fmt.Fprintf(&sb, "Parent: %s\n", parent)
	}
	fmt.Fprintf(&sb, "\n```json\n%s\n```\n", body.String())
	return sb.String(), nil
}
