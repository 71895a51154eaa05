package content

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// previewMarkdown renders text bodies and FAQ answers. Raw HTML in the
// content file is escaped rather than passed through.
var previewMarkdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
	),
)

// previewNode is the template view of one menu node.
type previewNode struct {
	ID        string
	Kind      Kind
	Text      string
	Body      template.HTML
	URL       string
	Documents []Document
	Fields    []previewField
	Children  []previewNode
}

type previewField struct {
	Key   string
	Value string
}

type previewFAQ struct {
	ID       string
	Question string
	Answer   template.HTML
}

type previewPage struct {
	Title string
	Menu  []previewNode
	FAQ   []previewFAQ
}

var previewTemplate = template.Must(template.New("preview").Parse(previewHTML))

// RenderPreview renders the whole tree as a single HTML page for content
// editors.
func RenderPreview(t *Tree) ([]byte, error) {
	page := previewPage{Title: t.Title}

	var err error
	if page.Menu, err = previewNodes(t.MainMenu); err != nil {
		return nil, err
	}
	for i, f := range t.FAQ {
		answer, err := markdown(f.Answer)
		if err != nil {
			return nil, err
		}
		page.FAQ = append(page.FAQ, previewFAQ{
			ID:       fmt.Sprintf("faq_%d", i),
			Question: f.Question,
			Answer:   answer,
		})
	}

	var buf bytes.Buffer
	if err := previewTemplate.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("rendering preview: %w", err)
	}
	return buf.Bytes(), nil
}

func previewNodes(list NodeList) ([]previewNode, error) {
	out := make([]previewNode, 0, len(list))
	for _, n := range list {
		v := previewNode{ID: n.ActionID(), Kind: n.Kind(), Text: n.Label()}
		body := n.Summary()

		switch n := n.(type) {
		case *SubmenuNode:
			children, err := previewNodes(n.Children)
			if err != nil {
				return nil, err
			}
			v.Children = children
		case *LinkNode:
			v.URL = n.URL
		case *DocumentListNode:
			v.Documents = n.Documents
		case *DataNode:
			if n.Data != nil {
				for pair := n.Data.Oldest(); pair != nil; pair = pair.Next() {
					v.Fields = append(v.Fields, previewField{Key: pair.Key, Value: fieldValue(pair.Value)})
				}
			}
		case *TextNode:
			body = n.Content()
		}

		rendered, err := markdown(body)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", v.ID, err)
		}
		v.Body = rendered
		out = append(out, v)
	}
	return out, nil
}

func fieldValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := marshalNoEscape(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

func markdown(src string) (template.HTML, error) {
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := previewMarkdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

const previewHTML = `<!DOCTYPE html>
<html lang="ru">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>
    body { font-family: system-ui, sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; color: #222; }
    section { border-left: 3px solid #d0d7de; margin: 0.75rem 0; padding-left: 1rem; }
    .id { font-family: monospace; font-size: 0.8rem; color: #57606a; }
    .kind { font-size: 0.75rem; text-transform: uppercase; color: #0969da; margin-left: 0.5rem; }
    dl { display: grid; grid-template-columns: max-content auto; gap: 0.25rem 1rem; }
    dt { font-weight: 600; }
  </style>
</head>
<body>
  <h1>{{.Title}}</h1>
  <h2>Главное меню</h2>
  {{range .Menu}}{{template "node" .}}{{end}}
  {{if .FAQ}}
  <h2>FAQ</h2>
  {{range .FAQ}}
  <section id="{{.ID}}">
    <h3>❓ {{.Question}} <span class="id">{{.ID}}</span></h3>
    {{.Answer}}
  </section>
  {{end}}
  {{end}}
</body>
</html>
{{define "node"}}
<section{{if .ID}} id="{{.ID}}"{{end}}>
  <h3>{{.Text}}<span class="kind">{{.Kind}}</span> <span class="id">{{.ID}}</span></h3>
  {{.Body}}
  {{if .URL}}<p>🔗 <a href="{{.URL}}">{{.URL}}</a></p>{{end}}
  {{if .Documents}}
  <ul>
    {{range .Documents}}
    <li>📄 {{if .URL}}<a href="{{.URL}}">{{.Text}}</a>{{else}}{{.Text}} <span class="id">&rarr; {{.CallbackData}}</span>{{end}}</li>
    {{end}}
  </ul>
  {{end}}
  {{if .Fields}}
  <dl>{{range .Fields}}<dt>{{.Key}}</dt><dd>{{.Value}}</dd>{{end}}</dl>
  {{end}}
  {{range .Children}}{{template "node" .}}{{end}}
</section>
{{end}}`
