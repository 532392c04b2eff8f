// Package confirm implements a small yes/no confirmation bubble used before
// anything irreversible happens.
package confirm

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jimschubert/answer/colors"
)

// Decision is an enumeration of decisions available in the confirmation
// bubble
type Decision int

const (
	// Undecided indicates the state in which a user has not made a
	// selection, and there is no default available
	Undecided Decision = iota

	// Accepted indicates the user has provided a positive response
	Accepted

	// Denied indicates the user has provided a negative response
	Denied
)

// String satisfies the fmt.Stringer interface
func (d Decision) String() string {
	return [...]string{
		"undecided",
		"accepted",
		"denied",
	}[d]
}

// IsAccepted is a helper to indicate the positive confirmation state was
// selected
func (d Decision) IsAccepted() bool {
	return d == Accepted
}

// Styles holds relevant styles used for rendering
type Styles struct {
	PromptPrefix lipgloss.Style
	Prompt       lipgloss.Style
	Text         lipgloss.Style
	Placeholder  lipgloss.Style
}

// Model represents the bubble tea model for the confirm bubble
type Model struct {
	// PromptPrefix is a character or other indicator existing before the
	// user prompt, separately styled
	PromptPrefix string

	// Prompt is the text to display to the user, prompting them for input
	Prompt string

	// DefaultValue allows the caller to define the initially selected
	// value, applied when the user hits enter without typing
	DefaultValue Decision

	// Immediately confirms on a single key press without waiting for
	// enter
	Immediately bool

	// Styles is the group of available styles
	Styles Styles

	decision Decision
	done     bool
	input    textinput.Model
}

// New creates a confirm Model with default styles
func New() Model {
	input := textinput.New()
	input.Placeholder = "y/N"
	input.CharLimit = 1
	input.Focus()

	return Model{
		PromptPrefix: "?",
		DefaultValue: Denied,
		Styles: Styles{
			PromptPrefix: lipgloss.NewStyle().Foreground(lipgloss.Color(colors.PromptPrefix)),
			Prompt:       lipgloss.NewStyle(),
			Text:         lipgloss.NewStyle(),
			Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Placeholder)),
		},
		decision: Undecided,
		input:    input,
	}
}

// Selected returns the user's decision
func (m *Model) Selected() Decision {
	if m.decision == Undecided {
		return m.DefaultValue
	}
	return m.decision
}

// SetDecision records the decision and marks the prompt as finished
func (m *Model) SetDecision(d Decision) {
	m.decision = d
}

func (m *Model) Init() tea.Cmd {
	m.input.PromptStyle = m.Styles.Prompt
	m.input.PlaceholderStyle = m.Styles.Placeholder
	m.input.TextStyle = m.Styles.Text
	if strings.HasSuffix(m.Prompt, " ") {
		m.input.Prompt = m.Prompt
	} else {
		m.input.Prompt = m.Prompt + " "
	}
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.SetDecision(Denied)
			m.done = true
			return m, tea.Quit

		case tea.KeyEnter:
			switch strings.ToLower(m.input.Value()) {
			case "y":
				m.SetDecision(Accepted)
			case "n":
				m.SetDecision(Denied)
			default:
				m.SetDecision(m.DefaultValue)
			}
			m.done = true
			return m, tea.Quit

		default:
			if m.Immediately {
				switch strings.ToLower(msg.String()) {
				case "y":
					m.SetDecision(Accepted)
				default:
					m.SetDecision(Denied)
				}
				m.done = true
				return m, tea.Quit
			}
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	var b strings.Builder

	if m.PromptPrefix != "" {
		promptPrefixRender := m.Styles.PromptPrefix.Inline(true).Render
		b.WriteString(promptPrefixRender(m.PromptPrefix))
		if !strings.HasSuffix(m.PromptPrefix, " ") {
			b.WriteString(promptPrefixRender(" "))
		}
	}

	if m.done {
		if m.Prompt != "" {
			promptRender := m.Styles.Prompt.Inline(true).Render
			b.WriteString(promptRender(m.Prompt))
			b.WriteString(promptRender(" "))
		}
		b.WriteString(m.Selected().String())
		b.WriteRune('\n')
		return b.String()
	}

	if m.Immediately {
		b.WriteString(m.Styles.Prompt.Inline(true).Render(m.Prompt))
		b.WriteString(" ")
		b.WriteString(m.Styles.Placeholder.Inline(true).Render("y/N"))
		return b.String()
	}

	b.WriteString(m.input.View())
	return b.String()
}
