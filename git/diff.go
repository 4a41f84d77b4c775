package git

import (
	"bufio"
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/traceyt-cree8/gitterm-sub000/command"
)

// HunkHeader carries the four coordinates of a change region.
type HunkHeader struct {
	OldStart int
	OldLines int
	NewStart int
	NewLines int
}

// PatchLine is one emitted line of a patch. Origin is the unified-diff origin
// character: 'H' for hunk headers, '+', '-' and ' ' for content lines.
// OldLine/NewLine are 1-based and zero when the line has no number on that
// side. Hunk is set only on 'H' lines.
type PatchLine struct {
	Origin  byte
	Content string
	OldLine int
	NewLine int
	Hunk    *HunkHeader
}

var hunkRe = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// FilePatch computes the patch for a single file: HEAD-tree vs index when
// staged is true, index vs working tree otherwise. An unchanged file yields
// no lines.
func (r *Repository) FilePatch(ctx context.Context, path string, staged bool) ([]PatchLine, error) {
	if err := command.ValidatePathspec(path); err != nil {
		return nil, err
	}
	args := []string{"diff", "--no-color", "--no-ext-diff"}
	if staged {
		args = append(args, "--cached")
	}
	args = append(args, "--", path)

	out, err := r.runner.Git(ctx, r.root, args...)
	if err != nil {
		return nil, err
	}
	return parseUnifiedPatch(out), nil
}

// parseUnifiedPatch walks unified diff output and numbers each content line.
func parseUnifiedPatch(out string) []PatchLine {
	var lines []PatchLine
	var oldNo, newNo int
	inHunk := false

	scanner := bufio.NewScanner(strings.NewReader(out))
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if m := hunkRe.FindStringSubmatch(line); m != nil {
			hunk := &HunkHeader{
				OldStart: atoiDefault(m[1], 0),
				OldLines: atoiDefault(m[2], 1),
				NewStart: atoiDefault(m[3], 0),
				NewLines: atoiDefault(m[4], 1),
			}
			oldNo, newNo = hunk.OldStart, hunk.NewStart
			inHunk = true
			lines = append(lines, PatchLine{Origin: 'H', Content: line, Hunk: hunk})
			continue
		}
		if !inHunk || line == "" {
			continue
		}
		switch line[0] {
		case '+':
			lines = append(lines, PatchLine{Origin: '+', Content: line[1:], NewLine: newNo})
			newNo++
		case '-':
			lines = append(lines, PatchLine{Origin: '-', Content: line[1:], OldLine: oldNo})
			oldNo++
		case ' ':
			lines = append(lines, PatchLine{Origin: ' ', Content: line[1:], OldLine: oldNo, NewLine: newNo})
			oldNo++
			newNo++
		case '\\':
			// "\ No newline at end of file"
		default:
			// Start of the next file section ("diff --git", "index", ...).
			inHunk = false
		}
	}
	return lines
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
