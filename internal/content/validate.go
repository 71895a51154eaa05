package content

import (
	"fmt"
	"strings"
)

// Problem is one validation finding.
type Problem struct {
	ActionID string `json:"action_id,omitempty"`
	Message  string `json:"message"`
}

func (p Problem) String() string {
	if p.ActionID == "" {
		return p.Message
	}
	return fmt.Sprintf("%s: %s", p.ActionID, p.Message)
}

// Validate checks the invariants the router relies on: action ids are
// unique across the whole tree, every node reachable by callback has one
// (links inside submenus render as plain URL buttons and may omit it), and
// every document callback points at an existing node.
func Validate(t *Tree) []Problem {
	var problems []Problem
	seen := make(map[string]int)
	var docRefs []Document

	t.Walk(func(n, parent Node) bool {
		id := n.ActionID()
		if strings.TrimSpace(n.Label()) == "" {
			problems = append(problems, Problem{ActionID: id, Message: "empty button text"})
		}
		_, isLink := n.(*LinkNode)
		if id == "" && !(isLink && parent != nil) {
			where := "main menu"
			if parent != nil {
				where = "submenu " + parent.ActionID()
			}
			problems = append(problems, Problem{Message: fmt.Sprintf("item %q in %s has no callback_data", n.Label(), where)})
		} else if id != "" {
			seen[id]++
			if seen[id] == 2 {
				problems = append(problems, Problem{ActionID: id, Message: "duplicate callback_data"})
			}
		}
		if reserved(id) {
			problems = append(problems, Problem{ActionID: id, Message: "callback_data collides with a reserved identifier"})
		}
		if docs, ok := n.(*DocumentListNode); ok {
			for _, d := range docs.Documents {
				if d.URL == "" && d.CallbackData == "" {
					problems = append(problems, Problem{ActionID: id, Message: fmt.Sprintf("document %q has neither url nor callback_data", d.Text)})
				}
				if d.CallbackData != "" {
					docRefs = append(docRefs, d)
				}
			}
		}
		return true
	})

	for _, d := range docRefs {
		if seen[d.CallbackData] == 0 {
			problems = append(problems, Problem{ActionID: d.CallbackData, Message: fmt.Sprintf("document %q points at a missing item", d.Text)})
		}
	}

	for i, f := range t.FAQ {
		if strings.TrimSpace(f.Question) == "" {
			problems = append(problems, Problem{ActionID: fmt.Sprintf("faq_%d", i), Message: "empty question"})
		}
	}
	return problems
}

var reservedPrefixes = []string{"back_to_", "doc_page_", "faq_", "pagination_info"}

// reserved reports whether id would be shadowed by one of the router's
// synthetic callbacks.
func reserved(id string) bool {
	for _, p := range reservedPrefixes {
		if strings.HasPrefix(id, p) {
			return true
		}
	}
	return false
}
