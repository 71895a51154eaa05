// Package search finds content tree entries by case-insensitive substring.
package search

import (
	"strings"

	"github.com/ziadkadry99/menubot/internal/content"
	"github.com/ziadkadry99/menubot/internal/menu"
)

// Label prefixes for hits that are not menu items.
const (
	DocumentPrefix = "📄 "
	FAQPrefix      = "❓ "
)

// Hit is one search result. Exactly one of URL or ActionID is set.
type Hit struct {
	Label    string `json:"label"`
	URL      string `json:"url,omitempty"`
	ActionID string `json:"action_id,omitempty"`
}

// Search returns every match of query, unranked, in tree order: a node's
// text, its description, then its documents or children; FAQ entries come
// last. A node matching on both text and description appears twice.
func Search(query string, t *content.Tree) []Hit {
	q := strings.ToLower(query)
	var hits []Hit
	for _, n := range t.MainMenu {
		hits = searchNode(n, q, hits)
	}
	for i, f := range t.FAQ {
		if contains(f.Question, q) || contains(f.Answer, q) {
			hits = append(hits, Hit{Label: FAQPrefix + f.Question, ActionID: menu.FAQID(i)})
		}
	}
	return hits
}

func searchNode(n content.Node, q string, hits []Hit) []Hit {
	if contains(n.Label(), q) {
		hits = append(hits, nodeHit(n))
	}
	if n.Summary() != "" && contains(n.Summary(), q) {
		hits = append(hits, nodeHit(n))
	}

	switch v := n.(type) {
	case *content.SubmenuNode:
		for _, child := range v.Children {
			hits = searchNode(child, q, hits)
		}
	case *content.DocumentListNode:
		for _, d := range v.Documents {
			if !contains(d.Text, q) {
				continue
			}
			h := Hit{Label: DocumentPrefix + d.Text}
			if d.IsLink() {
				h.URL = d.URL
			} else {
				h.ActionID = d.CallbackData
			}
			hits = append(hits, h)
		}
	}
	return hits
}

// nodeHit targets the node itself. Links without an action id are reached
// through their URL.
func nodeHit(n content.Node) Hit {
	if link, ok := n.(*content.LinkNode); ok && n.ActionID() == "" {
		return Hit{Label: n.Label(), URL: link.URL}
	}
	return Hit{Label: n.Label(), ActionID: n.ActionID()}
}

func contains(s, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(s), lowerQuery)
}
