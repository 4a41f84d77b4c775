package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const maxWidth = 72
const minWidth = 40

var (
	helpTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fab387"))
	helpSection = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#fab387"))
	helpCommand = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa"))
	helpFlag    = lipgloss.NewStyle().Foreground(lipgloss.Color("#cba6f7"))
	helpMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
)

// getTerminalWidth returns the terminal width capped at maxWidth.
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < minWidth {
		return maxWidth
	}
	if width > maxWidth {
		return maxWidth
	}
	return width
}

// wrapText wraps text to the specified width, preserving existing line breaks.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = maxWidth
	}

	var result []string
	for _, paragraph := range strings.Split(text, "\n") {
		if len(paragraph) <= width {
			result = append(result, paragraph)
			continue
		}
		var line string
		for _, word := range strings.Fields(paragraph) {
			if line == "" {
				line = word
			} else if len(line)+1+len(word) <= width {
				line += " " + word
			} else {
				result = append(result, line)
				line = word
			}
		}
		if line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}

// SetStyledHelp applies styled help output to a command and its subcommands.
// Call this on the root command before Execute().
func SetStyledHelp(cmd *cobra.Command) {
	cmd.SetHelpFunc(styledHelpFunc)
	for _, sub := range cmd.Commands() {
		SetStyledHelp(sub)
	}
}

// parseDescription splits a command's long description into main text and examples.
func parseDescription(long string) (description string, examples string) {
	markers := []string{"\nExamples:\n", "\nExample:\n"}
	for _, marker := range markers {
		if idx := strings.Index(long, marker); idx != -1 {
			return strings.TrimSpace(long[:idx]), strings.TrimSpace(long[idx+len(marker):])
		}
	}
	return long, ""
}

func renderExamples(examples string) {
	for _, line := range strings.Split(examples, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			fmt.Println()
		case strings.HasPrefix(trimmed, "#"):
			fmt.Println("  " + helpMuted.Render(trimmed))
		default:
			fmt.Println("  " + styleCommandLine(trimmed))
		}
	}
}

// styleCommandLine colors the command word and flags of an example line.
func styleCommandLine(line string) string {
	parts := strings.Fields(line)
	var result []string
	for i, part := range parts {
		switch {
		case i == 0:
			result = append(result, helpCommand.Render(part))
		case strings.HasPrefix(part, "-"):
			result = append(result, helpFlag.Render(part))
		default:
			result = append(result, part)
		}
	}
	return strings.Join(result, " ")
}

func styledHelpFunc(cmd *cobra.Command, args []string) {
	width := getTerminalWidth() - 2

	fmt.Println(" " + helpTitle.Render(strings.ToUpper(cmd.CommandPath())))

	var description, examples string
	if cmd.Long != "" {
		description, examples = parseDescription(cmd.Long)
	} else {
		description = cmd.Short
	}
	if description != "" {
		for _, line := range strings.Split(wrapText(description, width), "\n") {
			fmt.Println(" " + line)
		}
	}

	fmt.Println()
	fmt.Println(" " + helpSection.Render("USAGE"))
	fmt.Println("  " + helpCommand.Render(cmd.UseLine()))

	if cmd.HasAvailableSubCommands() {
		fmt.Println()
		fmt.Println(" " + helpSection.Render("COMMANDS"))
		for _, sub := range cmd.Commands() {
			if sub.Hidden {
				continue
			}
			fmt.Printf("  %s  %s\n", helpCommand.Render(fmt.Sprintf("%-10s", sub.Name())), sub.Short)
		}
	}

	if cmd.HasAvailableFlags() {
		fmt.Println()
		fmt.Println(" " + helpSection.Render("FLAGS"))
		fmt.Print(cmd.Flags().FlagUsages())
	}

	if examples != "" {
		fmt.Println()
		fmt.Println(" " + helpSection.Render("EXAMPLES"))
		renderExamples(examples)
	}
}
