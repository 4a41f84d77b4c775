// Package tui is the interactive shell. It is strictly a consumer of the
// snapshot pipeline: every key press turns into a dispatcher task, every
// rendered cell comes from a merged snapshot.
package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/traceyt-cree8/gitterm-sub000/config"
)

// InitializeTUI prepares the terminal environment. Environment variables
// that force color output (`CLICOLOR_FORCE`, `COLORTERM`) set the lipgloss
// color profile, so styling survives non-interactive runs and CI.
func InitializeTUI() {
	if os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor" {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// Run starts the shell for a single repository tab and blocks until quit.
func Run(cfg *config.Config, repoPath string) error {
	InitializeTUI()
	m := New(cfg, repoPath)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
