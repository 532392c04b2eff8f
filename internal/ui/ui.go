// Package ui provides the interactive pieces of the command line surface.
package ui

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/babarot/saidan/internal/ui/confirm"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Confirm asks the user a yes/no question and returns their decision.
// Denial is the default: hitting enter, or any key other than "y", refuses.
func Confirm(prompt string) bool {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return confirmFallback(prompt)
	}

	m := confirm.New()
	m.Prompt = prompt
	m.DefaultValue = confirm.Denied
	m.Immediately = true

	if termenv.EnvColorProfile() == termenv.Ascii {
		m.Styles = confirm.Styles{}
	}

	p := tea.NewProgram(&m)
	if _, err := p.Run(); err != nil {
		slog.Error("confirm failed", "error", err)
		return false
	}

	return m.Selected().IsAccepted()
}

// confirmFallback reads a plain line when stdin is not a terminal (piped
// input, scripts).
func confirmFallback(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(scanner.Text()), "y")
}
