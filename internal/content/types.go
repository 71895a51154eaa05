package content

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind classifies a menu node by the screen it renders as.
type Kind string

const (
	KindSubmenu      Kind = "submenu"
	KindLink         Kind = "link"
	KindDocumentList Kind = "documents"
	KindData         Kind = "data"
	KindText         Kind = "text"
)

// Tree is the root of the content file.
type Tree struct {
	Title    string     `json:"title"`
	MainMenu NodeList   `json:"main_menu"`
	FAQ      []FAQEntry `json:"faq"`
}

// FAQEntry is a question/answer pair. Entries are addressed by position.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Document is one entry of a document list. Exactly one of URL or
// CallbackData is expected to be set.
type Document struct {
	Text         string `json:"text"`
	URL          string `json:"url,omitempty"`
	CallbackData string `json:"callback_data,omitempty"`
}

// IsLink reports whether the document opens an external URL.
func (d Document) IsLink() bool { return d.URL != "" }

// Data holds the ordered key/value payload of a DataNode.
type Data = orderedmap.OrderedMap[string, any]

// NewData returns an empty ordered payload.
func NewData() *Data { return orderedmap.New[string, any]() }

// Node is a menu tree node. The concrete types are SubmenuNode, LinkNode,
// DocumentListNode, DataNode and TextNode; the set is closed.
type Node interface {
	ActionID() string
	Label() string
	Summary() string
	Kind() Kind
	sealed()
}

// Base carries the fields every node shape shares.
type Base struct {
	ID          string
	Text        string
	Description string
}

func (b Base) ActionID() string { return b.ID }
func (b Base) Label() string    { return b.Text }
func (b Base) Summary() string  { return b.Description }
func (Base) sealed()            {}

// SubmenuNode opens a nested menu.
type SubmenuNode struct {
	Base
	Children NodeList
}

func (*SubmenuNode) Kind() Kind { return KindSubmenu }

// LinkNode points at an external URL.
type LinkNode struct {
	Base
	URL string
}

func (*LinkNode) Kind() Kind { return KindLink }

// DocumentListNode shows a paginated list of documents.
type DocumentListNode struct {
	Base
	Documents []Document
}

func (*DocumentListNode) Kind() Kind { return KindDocumentList }

// DataNode renders a formatted key/value payload.
type DataNode struct {
	Base
	Data *Data
}

func (*DataNode) Kind() Kind { return KindData }

// TextNode shows a block of text. Body is empty when the node only has a
// description.
type TextNode struct {
	Base
	Body string
}

func (*TextNode) Kind() Kind { return KindText }

// Content returns the text shown under the node title.
func (n *TextNode) Content() string {
	if n.Body != "" {
		return n.Body
	}
	return n.Description
}

// NodeList is an ordered sequence of nodes with the content file encoding.
type NodeList []Node

// EmptyTree returns the tree served when the content file cannot be read.
func EmptyTree(title string) *Tree {
	return &Tree{Title: title, MainMenu: NodeList{}, FAQ: []FAQEntry{}}
}

// Walk visits every node depth-first in file order. parent is nil for
// main menu items. Returning false from fn stops the walk.
func (t *Tree) Walk(fn func(n, parent Node) bool) {
	walkList(t.MainMenu, nil, fn)
}

func walkList(list NodeList, parent Node, fn func(n, parent Node) bool) bool {
	for _, n := range list {
		if !fn(n, parent) {
			return false
		}
		if sub, ok := n.(*SubmenuNode); ok {
			if !walkList(sub.Children, sub, fn) {
				return false
			}
		}
	}
	return true
}
