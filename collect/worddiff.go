package collect

import (
	"strings"
	"unicode"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/traceyt-cree8/gitterm-sub000/snapshot"
)

// addWordDiffs scans the classified lines for "change" hunks (a contiguous
// run of deletions immediately followed by a contiguous run of additions)
// and attaches word-level spans to positionally paired lines. Pairing stops
// at the shorter run; leftover lines keep InlineChanges nil. The pass is
// purely additive: it never alters line classification, ordering or counts.
func addWordDiffs(lines []snapshot.DiffLine) {
	i := 0
	for i < len(lines) {
		if lines[i].Type != snapshot.DiffDeletion {
			i++
			continue
		}

		delEnd := i + 1
		for delEnd < len(lines) && lines[delEnd].Type == snapshot.DiffDeletion {
			delEnd++
		}
		addEnd := delEnd
		for addEnd < len(lines) && lines[addEnd].Type == snapshot.DiffAddition {
			addEnd++
		}

		pairs := delEnd - i
		if addCount := addEnd - delEnd; addCount < pairs {
			pairs = addCount
		}

		for j := 0; j < pairs; j++ {
			delIdx, addIdx := i+j, delEnd+j
			changes := computeWordDiff(lines[delIdx].Content, lines[addIdx].Content)

			// Lines with no common word render better as plain
			// add/delete; skip attaching spans.
			hasEqual := false
			for _, c := range changes {
				if c.Kind == snapshot.ChangeEqual {
					hasEqual = true
					break
				}
			}
			if !hasEqual {
				continue
			}

			var delInline, addInline []snapshot.InlineChange
			for _, c := range changes {
				if c.Kind == snapshot.ChangeEqual || c.Kind == snapshot.ChangeDelete {
					delInline = append(delInline, c)
				}
				if c.Kind == snapshot.ChangeEqual || c.Kind == snapshot.ChangeInsert {
					addInline = append(addInline, c)
				}
			}
			lines[delIdx].InlineChanges = delInline
			lines[addIdx].InlineChanges = addInline
		}

		i = addEnd
	}
}

// maxWordVocab keeps placeholder runes below the surrogate range (U+D800);
// diffmatchpatch round-trips its input through string conversion internally,
// which corrupts surrogate code points. Lines with more distinct tokens fall
// back to whole-line highlighting.
const maxWordVocab = 0xD7FF

// computeWordDiff produces the minimal edit script between two lines at word
// granularity. Words (and the whitespace runs between them) are mapped to
// placeholder runes so the rune-level differ operates on whole tokens, the
// same trick diffmatchpatch uses for its line mode.
func computeWordDiff(oldText, newText string) []snapshot.InlineChange {
	tokens := map[string]rune{}
	var vocab []string

	encode := func(text string) ([]rune, bool) {
		var encoded []rune
		for _, tok := range tokenizeWords(text) {
			r, ok := tokens[tok]
			if !ok {
				if len(vocab) >= maxWordVocab {
					return nil, false
				}
				vocab = append(vocab, tok)
				r = rune(len(vocab)) // rune 0 is reserved
				tokens[tok] = r
			}
			encoded = append(encoded, r)
		}
		return encoded, true
	}

	oldRunes, ok := encode(oldText)
	if !ok {
		return nil
	}
	newRunes, ok := encode(newText)
	if !ok {
		return nil
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMainRunes(oldRunes, newRunes, false)

	var changes []snapshot.InlineChange
	for _, d := range diffs {
		var sb strings.Builder
		for _, r := range d.Text {
			sb.WriteString(vocab[int(r)-1])
		}
		changes = append(changes, snapshot.InlineChange{
			Kind: changeKind(d.Type),
			Text: sb.String(),
		})
	}
	return changes
}

func changeKind(op diffmatchpatch.Operation) snapshot.ChangeKind {
	switch op {
	case diffmatchpatch.DiffInsert:
		return snapshot.ChangeInsert
	case diffmatchpatch.DiffDelete:
		return snapshot.ChangeDelete
	}
	return snapshot.ChangeEqual
}

// tokenizeWords splits text into alternating runs of whitespace and
// non-whitespace, so joining the tokens reproduces the input exactly.
func tokenizeWords(text string) []string {
	var tokens []string
	start := 0
	var inSpace bool
	for i, r := range text {
		isSpace := unicode.IsSpace(r)
		if i == 0 {
			inSpace = isSpace
			continue
		}
		if isSpace != inSpace {
			tokens = append(tokens, text[start:i])
			start = i
			inSpace = isSpace
		}
	}
	if start < len(text) {
		tokens = append(tokens, text[start:])
	}
	return tokens
}
