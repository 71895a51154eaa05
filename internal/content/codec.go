package content

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// wireNode mirrors a menu item as it appears in the content file. Pointer
// fields distinguish an absent shape marker from an empty one.
type wireNode struct {
	Text         string      `json:"text"`
	CallbackData string      `json:"callback_data,omitempty"`
	Description  string      `json:"description,omitempty"`
	URL          string      `json:"url,omitempty"`
	TextContent  string      `json:"text_content,omitempty"`
	Data         *Data       `json:"data,omitempty"`
	Documents    *[]Document `json:"documents,omitempty"`
	Submenu      *NodeList   `json:"submenu,omitempty"`
}

// UnmarshalJSON decodes menu items, choosing the node shape by marker
// precedence: submenu, documents, url, data, then text.
func (l *NodeList) UnmarshalJSON(b []byte) error {
	var raw []wireNode
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make(NodeList, 0, len(raw))
	for i := range raw {
		out = append(out, fromWire(&raw[i]))
	}
	*l = out
	return nil
}

// MarshalJSON encodes the list with the content file keys.
func (l NodeList) MarshalJSON() ([]byte, error) {
	raw := make([]wireNode, 0, len(l))
	for _, n := range l {
		w, err := toWire(n)
		if err != nil {
			return nil, err
		}
		raw = append(raw, w)
	}
	return marshalNoEscape(raw)
}

func fromWire(w *wireNode) Node {
	base := Base{ID: w.CallbackData, Text: w.Text, Description: w.Description}
	switch {
	case w.Submenu != nil:
		return &SubmenuNode{Base: base, Children: *w.Submenu}
	case w.Documents != nil:
		return &DocumentListNode{Base: base, Documents: *w.Documents}
	case w.URL != "":
		return &LinkNode{Base: base, URL: w.URL}
	case w.Data != nil:
		return &DataNode{Base: base, Data: w.Data}
	default:
		return &TextNode{Base: base, Body: w.TextContent}
	}
}

func toWire(n Node) (wireNode, error) {
	w := wireNode{Text: n.Label(), CallbackData: n.ActionID(), Description: n.Summary()}
	switch v := n.(type) {
	case *SubmenuNode:
		children := v.Children
		if children == nil {
			children = NodeList{}
		}
		w.Submenu = &children
	case *DocumentListNode:
		docs := v.Documents
		if docs == nil {
			docs = []Document{}
		}
		w.Documents = &docs
	case *LinkNode:
		w.URL = v.URL
	case *DataNode:
		w.Data = v.Data
		if w.Data == nil {
			w.Data = NewData()
		}
	case *TextNode:
		w.TextContent = v.Body
	default:
		return w, fmt.Errorf("unsupported node type %T", n)
	}
	return w, nil
}

// Decode parses a content file.
func Decode(b []byte) (*Tree, error) {
	var t Tree
	if err := json.Unmarshal(b, &t); err != nil {
		return nil, err
	}
	if t.MainMenu == nil {
		t.MainMenu = NodeList{}
	}
	if t.FAQ == nil {
		t.FAQ = []FAQEntry{}
	}
	return &t, nil
}

// Encode renders the tree as indented JSON with non-ASCII text and HTML
// characters kept literal.
func Encode(t *Tree) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
