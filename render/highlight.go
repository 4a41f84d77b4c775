package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/traceyt-cree8/gitterm-sub000/snapshot"
)

const (
	darkHighlightStyle  = "catppuccin-mocha"
	lightHighlightStyle = "catppuccin-latte"
)

// HighlightLines tokenizes content into styled line spans using a lexer
// matched from the file name. When no lexer matches, lines is nil and notice
// explains why; any tokenizer error is likewise reported as a notice.
func HighlightLines(path, content string, dark bool) ([]snapshot.HighlightedLine, string) {
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		return nil, fmt.Sprintf("No syntax definition for %q.", filepath.Base(path))
	}
	lexer = chroma.Coalesce(lexer)

	styleName := lightHighlightStyle
	if dark {
		styleName = darkHighlightStyle
	}
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return nil, fmt.Sprintf("Highlighting failed: %v.", err)
	}

	lines := []snapshot.HighlightedLine{{}}
	for token := iterator(); token != chroma.EOF; token = iterator() {
		entry := style.Get(token.Type)
		for i, part := range strings.Split(token.Value, "\n") {
			if i > 0 {
				lines = append(lines, snapshot.HighlightedLine{})
			}
			if part == "" {
				continue
			}
			span := snapshot.StyledSpan{
				Text:   part,
				Bold:   entry.Bold == chroma.Yes,
				Italic: entry.Italic == chroma.Yes,
			}
			if entry.Colour.IsSet() {
				span.Color = entry.Colour.String()
			}
			last := len(lines) - 1
			lines[last].Spans = append(lines[last].Spans, span)
		}
	}

	// Tokenizing "a\n" yields a trailing empty line that the source text
	// does not have.
	if n := len(lines); n > 0 && len(lines[n-1].Spans) == 0 && strings.HasSuffix(content, "\n") {
		lines = lines[:n-1]
	}
	return lines, ""
}
