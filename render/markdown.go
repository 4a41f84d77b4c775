// Package render turns file content into display-ready form: markdown and
// excalidraw documents into themed HTML for the embedded webview, and source
// text into styled highlight spans. Renderers are pure functions of their
// inputs; the webview itself is owned by the interactive shell.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ThemeColors is the palette injected into generated HTML documents.
type ThemeColors struct {
	BgBase        string
	BgSurface     string
	TextPrimary   string
	TextSecondary string
	Accent        string
	Border        string
	CodeBg        string
}

// DarkTheme returns the dark palette.
func DarkTheme() ThemeColors {
	return ThemeColors{
		BgBase:        "#1e1e2e",
		BgSurface:     "#181825",
		TextPrimary:   "#cdd6f4",
		TextSecondary: "#6c7086",
		Accent:        "#89b4fa",
		Border:        "#45475a",
		CodeBg:        "#11111b",
	}
}

// LightTheme returns the light palette.
func LightTheme() ThemeColors {
	return ThemeColors{
		BgBase:        "#eff1f5",
		BgSurface:     "#e6e9ef",
		TextPrimary:   "#4c4f69",
		TextSecondary: "#8c8fa1",
		Accent:        "#1e66f5",
		Border:        "#ccd0da",
		CodeBg:        "#dce0e8",
	}
}

// markdown is configured once: GFM tables, strikethrough, task lists and
// footnotes, with raw HTML allowed so mermaid blocks pass through.
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		extension.TaskList,
		extension.Footnote,
	),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// RenderMarkdownHTML renders markdown content into a complete themed HTML
// document. Mermaid fenced blocks become <pre class="mermaid"> elements and
// the mermaid initializer is injected only when at least one is present.
func RenderMarkdownHTML(content string, dark bool) string {
	processed, hasMermaid := extractMermaidBlocks(content)

	var body bytes.Buffer
	if err := markdown.Convert([]byte(processed), &body); err != nil {
		// Render the raw content rather than nothing.
		body.Reset()
		body.WriteString("<pre>")
		body.WriteString(escapeHTML(content))
		body.WriteString("</pre>")
	}

	theme := LightTheme()
	if dark {
		theme = DarkTheme()
	}
	return buildHTMLDocument(body.String(), theme, hasMermaid, dark)
}

// extractMermaidBlocks rewrites ```mermaid fences as raw <pre class="mermaid">
// blocks so the markdown renderer leaves them alone.
func extractMermaidBlocks(content string) (string, bool) {
	var result strings.Builder
	var mermaid strings.Builder
	inBlock := false
	hasMermaid := false

	for _, line := range strings.Split(content, "\n") {
		switch {
		case strings.TrimSpace(line) == "```mermaid":
			inBlock = true
			hasMermaid = true
			mermaid.Reset()
		case inBlock && strings.TrimSpace(line) == "```":
			inBlock = false
			result.WriteString("\n<pre class=\"mermaid\">\n")
			result.WriteString(escapeHTML(mermaid.String()))
			result.WriteString("</pre>\n\n")
		case inBlock:
			mermaid.WriteString(line)
			mermaid.WriteByte('\n')
		default:
			result.WriteString(line)
			result.WriteByte('\n')
		}
	}
	return result.String(), hasMermaid
}

func escapeHTML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

func buildHTMLDocument(body string, theme ThemeColors, hasMermaid, dark bool) string {
	mermaidScript := ""
	if hasMermaid {
		mermaidTheme := "default"
		if dark {
			mermaidTheme = "dark"
		}
		mermaidScript = fmt.Sprintf(`
    <script src="https://cdn.jsdelivr.net/npm/mermaid@10/dist/mermaid.min.js"></script>
    <script>mermaid.initialize({ startOnLoad: true, theme: '%s' });</script>`, mermaidTheme)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body {
    background: %s;
    color: %s;
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif;
    line-height: 1.6;
    max-width: 860px;
    margin: 0 auto;
    padding: 24px;
}
h1, h2 { border-bottom: 1px solid %s; padding-bottom: 0.3em; }
a { color: %s; }
blockquote { color: %s; border-left: 4px solid %s; margin: 0; padding: 0 1em; }
code { background: %s; padding: 0.2em 0.4em; border-radius: 4px; font-size: 0.9em; }
pre { background: %s; padding: 12px; border-radius: 6px; overflow-x: auto; }
pre code { background: none; padding: 0; }
pre.mermaid { background: %s; }
table { border-collapse: collapse; }
th, td { border: 1px solid %s; padding: 6px 12px; }
img { max-width: 100%%; }
</style>%s
</head>
<body>
%s
</body>
</html>`,
		theme.BgBase, theme.TextPrimary, theme.Border, theme.Accent,
		theme.TextSecondary, theme.Border, theme.CodeBg, theme.CodeBg,
		theme.BgSurface, theme.Border, mermaidScript, body)
}
