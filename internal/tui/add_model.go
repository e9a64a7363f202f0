package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/punchtrack/punch/internal/models"
	"github.com/punchtrack/punch/internal/parser"
	"github.com/punchtrack/punch/internal/storage"
)

const (
	fieldDate = iota
	fieldIn
	fieldOut
	fieldCount
)

// AddSessionModel is the manual session entry form.
type AddSessionModel struct {
	width  int
	height int

	inputs  [fieldCount]textinput.Model
	focused int

	errMsg    string
	cancelled bool
	completed bool
	session   models.Session
}

// NewAddSessionModel creates the form with today's date prefilled.
func NewAddSessionModel() AddSessionModel {
	m := AddSessionModel{}

	date := textinput.New()
	date.Placeholder = "yyyy-mm-dd"
	date.SetValue(time.Now().Format(models.DateLayout))
	date.CharLimit = 10
	date.Width = 12
	date.Focus()
	m.inputs[fieldDate] = date

	in := textinput.New()
	in.Placeholder = "09:00"
	in.CharLimit = 5
	in.Width = 12
	m.inputs[fieldIn] = in

	out := textinput.New()
	out.Placeholder = "17:30"
	out.CharLimit = 5
	out.Width = 12
	m.inputs[fieldOut] = out

	return m
}

// Init implements tea.Model
func (m AddSessionModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AddSessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "tab", "down":
			return m.focusField((m.focused + 1) % fieldCount)

		case "shift+tab", "up":
			return m.focusField((m.focused + fieldCount - 1) % fieldCount)

		case "enter":
			if m.focused < fieldOut {
				return m.focusField(m.focused + 1)
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m AddSessionModel) focusField(i int) (tea.Model, tea.Cmd) {
	m.inputs[m.focused].Blur()
	m.focused = i
	return m, m.inputs[m.focused].Focus()
}

func (m AddSessionModel) submit() (tea.Model, tea.Cmd) {
	clockIn, clockOut, err := parser.ParseSessionTimes(
		strings.TrimSpace(m.inputs[fieldDate].Value()),
		strings.TrimSpace(m.inputs[fieldIn].Value()),
		strings.TrimSpace(m.inputs[fieldOut].Value()),
	)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.session = models.NewSession(clockIn, clockOut)
	m.completed = true
	return m, tea.Quit
}

// View renders the form
func (m AddSessionModel) View() string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Render("Add session")

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Width(10)
	activeLabel := labelStyle.
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	labels := [fieldCount]string{"Date", "In", "Out"}
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	for i := 0; i < fieldCount; i++ {
		style := labelStyle
		if i == m.focused {
			style = activeLabel
		}
		b.WriteString(style.Render(labels[i]))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Render("✗ " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Render("tab next field · enter save · esc cancel"))

	form := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1, 2).
		Render(b.String())

	if m.width == 0 || m.height == 0 {
		return form
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
}

// RunAddSessionTUI runs the manual entry form and saves the resulting session.
func RunAddSessionTUI(adapter *storage.Adapter) error {
	p := tea.NewProgram(NewAddSessionModel(), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	m, ok := finalModel.(AddSessionModel)
	if !ok || m.cancelled || !m.completed {
		fmt.Println("❌ Session entry cancelled.")
		return nil
	}

	if err := adapter.SaveSession(m.session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	fmt.Printf("✅ Session added: %s, %.2f hours\n", m.session.Date, m.session.Hours)
	return nil
}
