package collect

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/traceyt-cree8/gitterm-sub000/config"
	"github.com/traceyt-cree8/gitterm-sub000/render"
	"github.com/traceyt-cree8/gitterm-sub000/snapshot"
)

// fileKind is the closed classifier for file-load dispatch, computed once per
// request and matched exhaustively.
type fileKind int

const (
	kindText fileKind = iota
	kindMarkdown
	kindHTML
	kindImage
	kindExcalidraw
)

func classifyFile(path string) fileKind {
	if render.IsExcalidrawFile(path) {
		return kindExcalidraw
	}
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "md", "markdown":
		return kindMarkdown
	case "html", "htm":
		return kindHTML
	case "png", "jpg", "jpeg", "gif", "webp", "bmp", "ico":
		return kindImage
	}
	return kindText
}

// CollectFileLoad decides how the file at path should be represented and
// loads it accordingly. Exactly one of FileContent, ImagePath or
// WebviewContent carries the live representation; read failures leave all of
// them empty. The on-disk signature is attached whenever metadata is
// available.
func CollectFileLoad(tabID int, path string, dark bool, limits config.Limits) snapshot.FileLoadSnapshot {
	started := time.Now()
	snap := snapshot.FileLoadSnapshot{TabID: tabID, Path: path}

	var fileSize int64
	if info, err := os.Stat(path); err == nil {
		fileSize = info.Size()
		snap.FileSignature = &snapshot.FileVersionSignature{
			ModifiedUnixNanos: info.ModTime().UnixNano(),
			FileLen:           info.Size(),
		}
	}

	kind := classifyFile(path)
	switch kind {
	case kindExcalidraw:
		if fileSize > limits.InlineWebviewBytes {
			snap.FilePreviewNotice = inlineSkipNotice("Excalidraw", fileSize)
			break
		}
		if content, err := os.ReadFile(path); err == nil {
			if render.ValidateExcalidraw(string(content)) {
				snap.WebviewContent = render.RenderExcalidrawHTML(string(content), dark)
			}
		}

	case kindMarkdown:
		if fileSize > limits.InlineWebviewBytes {
			snap.FilePreviewNotice = inlineSkipNotice("Markdown", fileSize)
			break
		}
		if content, err := os.ReadFile(path); err == nil {
			snap.WebviewContent = render.RenderMarkdownHTML(string(content), dark)
		}

	case kindHTML:
		if fileSize > limits.InlineWebviewBytes {
			snap.FilePreviewNotice = inlineSkipNotice("HTML", fileSize)
			break
		}
		if content, err := os.ReadFile(path); err == nil {
			snap.WebviewContent = string(content)
		}

	case kindImage:
		// The shell loads image data itself; no content is read here.
		snap.ImagePath = path

	case kindText:
		if fileSize > limits.FullTextLoadBytes {
			if preview, err := readTextPreview(path, limits.LargeTextPreviewBytes, limits.LargeTextPreviewLines); err == nil {
				snap.FileContent = preview
			} else if content, err := os.ReadFile(path); err == nil {
				snap.FileContent = string(content)
			}
			snap.FilePreviewNotice = fmt.Sprintf("Large file (%s): showing first %d lines (~%d KB).",
				humanize.Bytes(uint64(fileSize)),
				limits.LargeTextPreviewLines,
				limits.LargeTextPreviewBytes/1024)
		} else if content, err := os.ReadFile(path); err == nil {
			snap.FileContent = string(content)
		}
	}

	log.WithFields(logrus.Fields{
		"tab":     tabID,
		"path":    path,
		"kind":    loadKindLabel(&snap),
		"size":    fileSize,
		"text":    len(snap.FileContent),
		"webview": len(snap.WebviewContent),
		"notice":  snap.FilePreviewNotice != "",
		"took_ms": time.Since(started).Milliseconds(),
	}).Debug("file load collected")

	return snap
}

func inlineSkipNotice(format string, size int64) string {
	return fmt.Sprintf("Inline preview skipped for large %s file (%s). Click \"View in Browser\".",
		format, humanize.Bytes(uint64(size)))
}

func loadKindLabel(snap *snapshot.FileLoadSnapshot) string {
	switch {
	case snap.ImagePath != "":
		return "image"
	case snap.WebviewContent != "":
		return "inline_webview"
	case snap.FilePreviewNotice != "":
		return "text_preview"
	}
	return "text"
}

// readTextPreview reads a prefix of the file bounded by both a byte ceiling
// and a line-count ceiling, whichever is hit first.
func readTextPreview(path string, maxBytes int64, maxLines int) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var sb strings.Builder
	reader := bufio.NewReader(file)
	var read int64
	for lines := 0; lines < maxLines && read < maxBytes; lines++ {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			remaining := maxBytes - read
			if int64(len(line)) > remaining {
				line = line[:remaining]
			}
			sb.WriteString(line)
			read += int64(len(line))
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", err
		}
	}
	return sb.String(), nil
}
