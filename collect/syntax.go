package collect

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/traceyt-cree8/gitterm-sub000/render"
	"github.com/traceyt-cree8/gitterm-sub000/snapshot"
)

// CollectFileSyntax tokenizes the first maxLines lines of already-loaded text
// into highlighted spans. Blank content and markdown paths are skipped;
// markdown is already rendered richly and re-tokenizing it is wasted work.
// The caller-supplied signature is forwarded unchanged so the consumer can
// correlate this result with the file load it was derived from.
func CollectFileSyntax(tabID int, path, content string, dark bool, sig *snapshot.FileVersionSignature, maxLines int) snapshot.FileSyntaxSnapshot {
	started := time.Now()
	snap := snapshot.FileSyntaxSnapshot{
		TabID:         tabID,
		Path:          path,
		FileSignature: sig,
	}

	var prefix string
	if maxLines > 0 {
		lines := splitLines(content)
		if len(lines) > maxLines {
			lines = lines[:maxLines]
		}
		prefix = strings.Join(lines, "\n")
	}

	if strings.TrimSpace(prefix) != "" && classifyFile(path) != kindMarkdown {
		snap.Lines, snap.Notice = render.HighlightLines(path, prefix, dark)
	}

	log.WithFields(logrus.Fields{
		"tab":         tabID,
		"path":        path,
		"bytes":       len(prefix),
		"max_lines":   maxLines,
		"highlighted": len(snap.Lines),
		"notice":      snap.Notice != "",
		"took_ms":     time.Since(started).Milliseconds(),
	}).Debug("syntax highlight collected")

	return snap
}
