// Package menu locates nodes in the content tree by action id and decodes
// the synthetic callback identifiers the router emits.
package menu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ziadkadry99/menubot/internal/content"
)

// Reserved callback identifiers.
const (
	BackToMain     = "back_to_main"
	BackToFAQ      = "back_to_faq"
	PaginationInfo = "pagination_info"

	backPrefix = "back_to_"
	pagePrefix = "doc_page_"
	faqPrefix  = "faq_"
)

var (
	// ErrNotFound means no node, document or FAQ entry has the identifier.
	ErrNotFound = errors.New("menu item not found")
	// ErrFAQIndexOutOfRange means a faq_<i> identifier points past the list.
	ErrFAQIndexOutOfRange = errors.New("faq index out of range")
)

// Location is the result of a lookup. Node is nil when the identifier only
// matched a document's callback; Parent is nil for main menu items.
type Location struct {
	Node     content.Node
	Parent   content.Node
	Document *content.Document
}

// ParentID returns the action id of the parent node, or "" at the top level.
func (l Location) ParentID() string {
	if l.Parent == nil {
		return ""
	}
	return l.Parent.ActionID()
}

// Resolver looks up identifiers in one tree snapshot.
type Resolver struct {
	tree *content.Tree
}

// NewResolver creates a Resolver over t.
func NewResolver(t *content.Tree) *Resolver {
	return &Resolver{tree: t}
}

// Resolve finds the node whose action id is id. Nodes are matched in
// depth-first file order before document callbacks, so with unique ids the
// first match is the only one.
func (r *Resolver) Resolve(id string) (Location, error) {
	if id == "" {
		return Location{}, ErrNotFound
	}
	var (
		loc   Location
		found bool
		doc   *content.Document
	)
	r.tree.Walk(func(n, parent content.Node) bool {
		if n.ActionID() == id {
			loc = Location{Node: n, Parent: parent}
			found = true
			return false
		}
		if dl, ok := n.(*content.DocumentListNode); ok && doc == nil {
			for i := range dl.Documents {
				if dl.Documents[i].CallbackData == id {
					doc = &dl.Documents[i]
					break
				}
			}
		}
		return true
	})
	if found {
		return loc, nil
	}
	if doc != nil {
		return Location{Document: doc}, nil
	}
	return Location{}, ErrNotFound
}

// Classify returns the kind of n.
func Classify(n content.Node) content.Kind {
	return n.Kind()
}

// FAQ returns the entry addressed by a faq_<index> identifier.
func (r *Resolver) FAQ(id string) (int, content.FAQEntry, error) {
	idx, ok := ParseFAQ(id)
	if !ok {
		return 0, content.FAQEntry{}, ErrNotFound
	}
	if idx < 0 || idx >= len(r.tree.FAQ) {
		return idx, content.FAQEntry{}, ErrFAQIndexOutOfRange
	}
	return idx, r.tree.FAQ[idx], nil
}

// FAQID returns the callback identifier of the FAQ entry at idx.
func FAQID(idx int) string { return faqPrefix + strconv.Itoa(idx) }

// ParseFAQ decodes faq_<index>. Identifiers with a non-numeric suffix are
// not FAQ references.
func ParseFAQ(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, faqPrefix)
	if !ok || rest == "" {
		return 0, false
	}
	idx, err := strconv.Atoi(rest)
	if err != nil || strings.HasPrefix(rest, "+") {
		return 0, false
	}
	return idx, true
}

// BackID returns the back action identifier for a screen whose parent has
// action id parentID. The top level always goes back to the main menu.
func BackID(parentID string) string {
	if parentID == "" {
		return BackToMain
	}
	return backPrefix + parentID
}

// ParseBack extracts the target of a back_to_<id> identifier. It returns
// false for back_to_main and back_to_faq, which are handled separately.
func ParseBack(id string) (string, bool) {
	if id == BackToMain || id == BackToFAQ {
		return "", false
	}
	rest, ok := strings.CutPrefix(id, backPrefix)
	if !ok || rest == "" {
		return "", false
	}
	return rest, true
}

// PageID returns the callback identifier for page n of the document list
// with action id parentID.
func PageID(parentID string, n int) string {
	return fmt.Sprintf("%s%s_%d", pagePrefix, parentID, n)
}

// ParsePage decodes doc_page_<parent>_<n>. The page number follows the last
// underscore, so parent ids may themselves contain underscores.
func ParsePage(id string) (parentID string, page int, ok bool) {
	rest, ok := strings.CutPrefix(id, pagePrefix)
	if !ok {
		return "", 0, false
	}
	i := strings.LastIndexByte(rest, '_')
	if i <= 0 || i == len(rest)-1 {
		return "", 0, false
	}
	n, err := strconv.Atoi(rest[i+1:])
	if err != nil {
		return "", 0, false
	}
	return rest[:i], n, true
}
