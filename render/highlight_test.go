package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlightLines(t *testing.T) {
	t.Run("go source", func(t *testing.T) {
		content := "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n"
		lines, notice := HighlightLines("main.go", content, true)
		require.Empty(t, notice)
		require.Len(t, lines, 5)

		var keyword bool
		for _, span := range lines[0].Spans {
			if span.Text == "package" && span.Color != "" {
				keyword = true
			}
		}
		assert.True(t, keyword, "expected a colored keyword span on line 1")
	})

	t.Run("line count matches input", func(t *testing.T) {
		content := "a = 1\nb = 2\nc = 3"
		lines, notice := HighlightLines("script.py", content, false)
		require.Empty(t, notice)
		assert.Len(t, lines, strings.Count(content, "\n")+1)
	})

	t.Run("unknown extension yields notice", func(t *testing.T) {
		lines, notice := HighlightLines("data.zzzunknown", "some text", true)
		assert.Nil(t, lines)
		assert.NotEmpty(t, notice)
	})
}
