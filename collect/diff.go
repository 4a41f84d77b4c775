package collect

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/traceyt-cree8/gitterm-sub000/git"
	"github.com/traceyt-cree8/gitterm-sub000/snapshot"
)

// MaxUntrackedDiffPreviewLines caps the synthetic all-additions diff built
// for untracked files.
const MaxUntrackedDiffPreviewLines = 3000

// CollectDiff computes the line-classified diff of one file: HEAD↔index when
// isStaged, index↔worktree otherwise. Untracked files get an all-additions
// preview instead of a patch. Repository or patch failures yield empty lines.
func CollectDiff(ctx context.Context, tabID int, repoPath, filePath string, isStaged bool) snapshot.DiffSnapshot {
	started := time.Now()
	snap := snapshot.DiffSnapshot{
		TabID:    tabID,
		FilePath: filePath,
		IsStaged: isStaged,
	}

	repo, err := git.Open(repoPath)
	if err != nil {
		logDiff(tabID, &snap, started, "repo open failed")
		return snap
	}

	if untracked, err := repo.IsUntracked(ctx, filePath); err == nil && untracked {
		snap.Lines = untrackedPreview(filepath.Join(repo.Root(), filePath))
		logDiff(tabID, &snap, started, "untracked preview")
		return snap
	}

	patch, err := repo.FilePatch(ctx, filePath, isStaged)
	if err != nil {
		logDiff(tabID, &snap, started, "patch failed")
		return snap
	}

	for _, pl := range patch {
		switch pl.Origin {
		case 'H':
			snap.Lines = append(snap.Lines, snapshot.DiffLine{
				Content: fmt.Sprintf("@@ -%d,%d +%d,%d @@",
					pl.Hunk.OldStart, pl.Hunk.OldLines, pl.Hunk.NewStart, pl.Hunk.NewLines),
				Type: snapshot.DiffHeader,
			})
		case '+':
			snap.Lines = append(snap.Lines, snapshot.DiffLine{
				Content:    strings.TrimRight(pl.Content, " \t\r"),
				Type:       snapshot.DiffAddition,
				NewLineNum: pl.NewLine,
			})
		case '-':
			snap.Lines = append(snap.Lines, snapshot.DiffLine{
				Content:    strings.TrimRight(pl.Content, " \t\r"),
				Type:       snapshot.DiffDeletion,
				OldLineNum: pl.OldLine,
			})
		case ' ':
			snap.Lines = append(snap.Lines, snapshot.DiffLine{
				Content:    strings.TrimRight(pl.Content, " \t\r"),
				Type:       snapshot.DiffContext,
				OldLineNum: pl.OldLine,
				NewLineNum: pl.NewLine,
			})
		}
	}

	addWordDiffs(snap.Lines)
	logDiff(tabID, &snap, started, "")
	return snap
}

// untrackedPreview renders a new file as one header plus capped addition
// lines; oversized files get a trailing header encoding the true total.
func untrackedPreview(fullPath string) []snapshot.DiffLine {
	content, err := os.ReadFile(fullPath)
	if err != nil {
		return nil
	}

	sourceLines := splitLines(string(content))
	totalLines := len(sourceLines)

	lines := []snapshot.DiffLine{{
		Content: fmt.Sprintf("@@ -0,0 +1,%d @@ (new file)", totalLines),
		Type:    snapshot.DiffHeader,
	}}

	shown := sourceLines
	if len(shown) > MaxUntrackedDiffPreviewLines {
		shown = shown[:MaxUntrackedDiffPreviewLines]
	}
	for i, line := range shown {
		lines = append(lines, snapshot.DiffLine{
			Content:    line,
			Type:       snapshot.DiffAddition,
			NewLineNum: i + 1,
		})
	}

	if totalLines > MaxUntrackedDiffPreviewLines {
		lines = append(lines, snapshot.DiffLine{
			Content: fmt.Sprintf("... truncated to first %d lines (%d total)",
				MaxUntrackedDiffPreviewLines, totalLines),
			Type: snapshot.DiffHeader,
		})
	}
	return lines
}

func logDiff(tabID int, snap *snapshot.DiffSnapshot, started time.Time, note string) {
	fields := logrus.Fields{
		"tab":     tabID,
		"file":    snap.FilePath,
		"staged":  snap.IsStaged,
		"lines":   len(snap.Lines),
		"took_ms": time.Since(started).Milliseconds(),
	}
	if note != "" {
		fields["note"] = note
	}
	log.WithFields(fields).Debug("diff collected")
}
