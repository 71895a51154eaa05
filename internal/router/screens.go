package router

import (
	"fmt"
	"strings"

	"github.com/ziadkadry99/menubot/internal/content"
	"github.com/ziadkadry99/menubot/internal/menu"
	"github.com/ziadkadry99/menubot/internal/paging"
	"github.com/ziadkadry99/menubot/internal/screen"
	"github.com/ziadkadry99/menubot/internal/search"
)

func mainMenuScreen(t *content.Tree, text string) *screen.Screen {
	s := screen.New(text)
	for _, n := range t.MainMenu {
		s.Add(screen.Callback(n.Label(), n.ActionID()))
	}
	return s
}

// nodeScreen renders a resolved node. Every screen closes with a back
// action to the node's parent, or to the main menu at the top level.
func (r *Router) nodeScreen(loc menu.Location) *screen.Screen {
	back := screen.Callback(labelBack, menu.BackID(loc.ParentID()))

	switch n := loc.Node.(type) {
	case *content.SubmenuNode:
		s := screen.New(orDefault(n.Text, msgSubmenuDefault))
		for _, child := range n.Children {
			if link, ok := child.(*content.LinkNode); ok {
				s.Add(screen.Link(link.Text, link.URL))
				continue
			}
			s.Add(screen.Callback(child.Label(), child.ActionID()))
		}
		return s.Add(back)

	case *content.LinkNode:
		s := screen.New(joinText(n.Text, n.Description))
		return s.Add(screen.Link(labelOpenLink, n.URL), back)

	case *content.DocumentListNode:
		return r.documentsScreen(n, loc.ParentID(), 1)

	case *content.DataNode:
		s := screen.New(joinText(n.Text, screen.FormatData(n.Data)))
		s.HTML = true
		return s.Add(back)

	case *content.TextNode:
		return screen.New(joinText(n.Text, n.Content())).Add(back)

	default:
		panic(fmt.Sprintf("router: unhandled node type %T", loc.Node))
	}
}

func (r *Router) documentsScreen(n *content.DocumentListNode, parentID string, number int) *screen.Screen {
	s := screen.New(joinText(orDefault(n.Text, msgDocuments), n.Description))
	page := paging.Paginate(n.Documents, r.pageSize, number)

	for _, d := range page.Items {
		label := search.DocumentPrefix + orDefault(d.Text, labelDocument)
		switch {
		case d.IsLink():
			s.Add(screen.Link(label, d.URL))
		case d.CallbackData != "":
			s.Add(screen.Callback(label, d.CallbackData))
		}
	}

	if page.Paged() {
		var row []screen.Action
		if page.HasPrev() {
			row = append(row, screen.Callback(labelPrevPage, menu.PageID(n.ID, page.Number-1)))
		}
		row = append(row, screen.Label(page.Indicator()))
		if page.HasNext() {
			row = append(row, screen.Callback(labelNextPage, menu.PageID(n.ID, page.Number+1)))
		}
		s.AddRow(row...)
	}

	return s.Add(screen.Callback(labelBack, menu.BackID(parentID)))
}

func searchScreen(query string, hits []search.Hit) *screen.Screen {
	if len(hits) == 0 {
		return screen.New(fmt.Sprintf(msgNothingFound, query)).
			Add(screen.Callback(labelToMain, menu.BackToMain))
	}
	s := screen.New(fmt.Sprintf(msgSearchResults, query))
	for _, h := range hits {
		if h.URL != "" {
			s.Add(screen.Link(h.Label, h.URL))
		} else {
			s.Add(screen.Callback(h.Label, h.ActionID))
		}
	}
	return s.Add(screen.Callback(labelToMain, menu.BackToMain))
}

func faqListScreen(t *content.Tree) *screen.Screen {
	if len(t.FAQ) == 0 {
		return screen.New(msgFAQEmpty)
	}
	s := screen.New(msgFAQTitle)
	for i, f := range t.FAQ {
		s.Add(screen.Callback(orDefault(f.Question, fmt.Sprintf(msgFAQQuestion, i+1)), menu.FAQID(i)))
	}
	return s.Add(screen.Callback(labelMainMenu, menu.BackToMain))
}

func faqEntryScreen(idx int, f content.FAQEntry, count int) *screen.Screen {
	s := screen.New(fmt.Sprintf("<b>❓ %s</b>\n\n%s", f.Question, f.Answer))
	s.HTML = true

	var nav []screen.Action
	if idx > 0 {
		nav = append(nav, screen.Callback(labelFAQPrev, menu.FAQID(idx-1)))
	}
	nav = append(nav, screen.Callback(labelBackToFAQ, menu.BackToFAQ))
	if idx < count-1 {
		nav = append(nav, screen.Callback(labelFAQNext, menu.FAQID(idx+1)))
	}
	return s.AddRow(nav...).Add(screen.Callback(labelMainMenu, menu.BackToMain))
}

func joinText(title, body string) string {
	if strings.TrimSpace(body) == "" {
		return title
	}
	return title + "\n\n" + body
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
