package tui

import "github.com/charmbracelet/lipgloss"

// palette is the set of raw colors a theme is built from. The hex values
// mirror the palettes used for generated HTML previews so the terminal and
// webview sides of a tab agree.
type palette struct {
	text      string
	muted     string
	accent    string
	border    string
	green     string
	red       string
	yellow    string
	selection string
}

func darkPalette() palette {
	return palette{
		text:      "#cdd6f4",
		muted:     "#6c7086",
		accent:    "#89b4fa",
		border:    "#45475a",
		green:     "#a6e3a1",
		red:       "#f38ba8",
		yellow:    "#f9e2af",
		selection: "#313244",
	}
}

func lightPalette() palette {
	return palette{
		text:      "#4c4f69",
		muted:     "#8c8fa1",
		accent:    "#1e66f5",
		border:    "#ccd0da",
		green:     "#40a02b",
		red:       "#d20f39",
		yellow:    "#df8e1d",
		selection: "#dce0e8",
	}
}

// Theme holds the pre-configured styles for the shell.
type Theme struct {
	Header       lipgloss.Style
	Branch       lipgloss.Style
	SectionTitle lipgloss.Style
	Normal       lipgloss.Style
	Muted        lipgloss.Style
	Selected     lipgloss.Style
	Notice       lipgloss.Style
	Border       lipgloss.Style

	Added      lipgloss.Style
	Removed    lipgloss.Style
	Context    lipgloss.Style
	HunkHeader lipgloss.Style

	// Intra-line emphasis for paired change lines.
	AddedEmphasis   lipgloss.Style
	RemovedEmphasis lipgloss.Style

	StatusAdded     lipgloss.Style
	StatusModified  lipgloss.Style
	StatusDeleted   lipgloss.Style
	StatusUntracked lipgloss.Style
}

// NewTheme builds the style set for a dark or light terminal.
func NewTheme(dark bool) *Theme {
	p := darkPalette()
	if !dark {
		p = lightPalette()
	}

	return &Theme{
		Header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.text)),
		Branch:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.accent)),
		SectionTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.yellow)),
		Normal:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)),
		Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),
		Selected:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)).Background(lipgloss.Color(p.selection)).Bold(true),
		Notice:       lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(p.yellow)),
		Border:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.border)),

		Added:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.green)),
		Removed:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.red)),
		Context:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)),
		HunkHeader: lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent)),

		AddedEmphasis:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.green)).Reverse(true),
		RemovedEmphasis: lipgloss.NewStyle().Foreground(lipgloss.Color(p.red)).Reverse(true),

		StatusAdded:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.green)),
		StatusModified:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.yellow)),
		StatusDeleted:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.red)),
		StatusUntracked: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.muted)),
	}
}
