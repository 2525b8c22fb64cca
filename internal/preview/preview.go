// Package preview renders note items from markdown to HTML.
package preview

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	ghhtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer converts note content to HTML.
type Renderer struct {
	md   goldmark.Markdown
	page *template.Template
}

type pageData struct {
	Title   string
	Content template.HTML
}

// New creates a Renderer. Raw HTML in notes is escaped, not passed through.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Table,
				extension.TaskList,
				extension.Strikethrough,
				extension.Linkify,
				extension.Typographer,
			),
			goldmark.WithRendererOptions(
				ghhtml.WithHardWraps(),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
		page: template.Must(template.New("note").Parse(pageTemplate)),
	}
}

// Render converts markdown to an HTML fragment.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

// RenderPage writes a standalone HTML page for a note.
func (r *Renderer) RenderPage(w io.Writer, title, markdown string) error {
	body, err := r.Render(markdown)
	if err != nil {
		return err
	}
	if title == "" {
		title = "Note"
	}
	return r.page.Execute(w, pageData{Title: title, Content: template.HTML(body)})
}

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 820px;
      line-height: 1.7;
      background: #f8fafc;
      color: #1e293b;
    }
    @media (prefers-color-scheme: dark) {
      body { background: #0f172a; color: #e2e8f0; }
      pre { background: #1e293b; }
    }
    h1.title {
      margin-top: 0;
      border-bottom: 1px solid rgba(148, 163, 184, 0.3);
      padding-bottom: 1rem;
    }
    pre {
      background: #e2e8f0;
      padding: 1rem;
      overflow-x: auto;
      border-radius: 8px;
    }
    code {
      font-family: 'SFMono-Regular', Consolas, 'Liberation Mono', Menlo, monospace;
    }
    blockquote {
      border-left: 4px solid #6366f1;
      padding-left: 1rem;
      margin-left: 0;
    }
    a { color: #4f46e5; }
  </style>
</head>
<body>
  <h1 class="title">{{.Title}}</h1>
  <article>{{.Content}}</article>
</body>
</html>`
