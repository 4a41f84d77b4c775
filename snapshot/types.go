// Package snapshot defines the immutable value types produced by the
// collectors. Every type here is a point-in-time result scoped to one tab;
// consumers replace a held snapshot wholesale, never merge it field-by-field.
package snapshot

// StatusCode is the single-character display code for a file's git status.
type StatusCode string

const (
	StatusAdded    StatusCode = "A"
	StatusModified StatusCode = "M"
	StatusDeleted  StatusCode = "D"
	StatusRenamed  StatusCode = "R"
	StatusUnknown  StatusCode = "?"
)

// FileEntry is one categorized path from a status poll.
type FileEntry struct {
	Path     string     `json:"path"`
	Status   StatusCode `json:"status"`
	IsStaged bool       `json:"is_staged"`
}

// GitStatusSnapshot is the full result of one status poll. The same path may
// appear in more than one list (e.g. staged-modified and then modified again
// in the working tree).
type GitStatusSnapshot struct {
	TabID      int         `json:"tab_id"`
	RepoName   string      `json:"repo_name"`
	RepoPath   string      `json:"repo_path"`
	BranchName string      `json:"branch_name"`
	IsGitRepo  bool        `json:"is_git_repo"`
	Staged     []FileEntry `json:"staged"`
	Unstaged   []FileEntry `json:"unstaged"`
	Untracked  []FileEntry `json:"untracked"`
}

// FileTreeEntry is one immediate child of the listed directory.
type FileTreeEntry struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	IsDir bool   `json:"is_dir"`
}

// FileTreeSnapshot lists a directory's entries, directories first, each group
// sorted case-insensitively by name.
type FileTreeSnapshot struct {
	TabID      int             `json:"tab_id"`
	CurrentDir string          `json:"current_dir"`
	Entries    []FileTreeEntry `json:"entries"`
}

// DiffLineType classifies a line of a rendered patch.
type DiffLineType int

const (
	DiffContext DiffLineType = iota
	DiffAddition
	DiffDeletion
	DiffHeader
)

func (t DiffLineType) String() string {
	switch t {
	case DiffContext:
		return "context"
	case DiffAddition:
		return "addition"
	case DiffDeletion:
		return "deletion"
	case DiffHeader:
		return "header"
	}
	return "unknown"
}

// ChangeKind tags a word-level segment of a changed line.
type ChangeKind int

const (
	ChangeEqual ChangeKind = iota
	ChangeInsert
	ChangeDelete
)

// InlineChange is a sub-line segment tagged changed/unchanged, used for
// intra-line diff emphasis.
type InlineChange struct {
	Kind ChangeKind `json:"kind"`
	Text string     `json:"text"`
}

// DiffLine is one classified line of a diff. OldLineNum/NewLineNum are zero
// when the line has no number on that side. InlineChanges is nil unless the
// word-level pass paired this line with a counterpart.
type DiffLine struct {
	Content       string         `json:"content"`
	Type          DiffLineType   `json:"type"`
	OldLineNum    int            `json:"old_line_num,omitempty"`
	NewLineNum    int            `json:"new_line_num,omitempty"`
	InlineChanges []InlineChange `json:"inline_changes,omitempty"`
}

// DiffSnapshot is the full diff of one file, regenerated wholesale per request.
type DiffSnapshot struct {
	TabID    int        `json:"tab_id"`
	FilePath string     `json:"file_path"`
	IsStaged bool       `json:"is_staged"`
	Lines    []DiffLine `json:"lines"`
}

// FileLoadSnapshot is the loaded representation of one file. Exactly one of
// FileContent, ImagePath or WebviewContent is the live representation.
type FileLoadSnapshot struct {
	TabID             int                   `json:"tab_id"`
	Path              string                `json:"path"`
	FileContent       string                `json:"file_content"`
	ImagePath         string                `json:"image_path,omitempty"`
	WebviewContent    string                `json:"webview_content,omitempty"`
	FilePreviewNotice string                `json:"file_preview_notice,omitempty"`
	FileSignature     *FileVersionSignature `json:"file_signature,omitempty"`
}

// StyledSpan is a run of text with resolved highlight attributes. Color is a
// hex string like "#a6e3a1"; empty means the theme default.
type StyledSpan struct {
	Text   string `json:"text"`
	Color  string `json:"color,omitempty"`
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
}

// HighlightedLine is one tokenized source line.
type HighlightedLine struct {
	Spans []StyledSpan `json:"spans"`
}

// FileSyntaxSnapshot carries tokenized highlight lines for a previously loaded
// file. FileSignature is the signature of the load the tokens were derived
// from, forwarded unchanged so the consumer can correlate the two results.
type FileSyntaxSnapshot struct {
	TabID         int                   `json:"tab_id"`
	Path          string                `json:"path"`
	Lines         []HighlightedLine     `json:"lines,omitempty"`
	Notice        string                `json:"notice,omitempty"`
	FileSignature *FileVersionSignature `json:"file_signature,omitempty"`
}
