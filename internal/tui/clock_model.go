package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/punchtrack/punch/internal/models"
	"github.com/punchtrack/punch/internal/storage"
	"github.com/punchtrack/punch/internal/timecalc"
)

// ClockModel is the live clock shown while a session is open.
type ClockModel struct {
	width  int
	height int

	clockIn time.Time
	elapsed time.Duration

	// UI state
	clockingOut bool // True when user pressed O and we should clock out on exit
	exiting     bool // True when user pressed ESC/Q and the session keeps running
}

// clockTickMsg is sent every second to update the elapsed display
type clockTickMsg struct{}

// NewClockModel creates the clock model for a session opened at clockIn.
func NewClockModel(clockIn time.Time) ClockModel {
	return ClockModel{
		clockIn: clockIn,
		elapsed: time.Since(clockIn),
	}
}

// Init starts the per-second ticker
func (m ClockModel) Init() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg{}
	})
}

// Update handles messages
func (m ClockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clockTickMsg:
		m.elapsed = time.Since(m.clockIn)
		if !m.clockingOut && !m.exiting {
			return m, tea.Tick(time.Second, func(t time.Time) tea.Msg {
				return clockTickMsg{}
			})
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "o", "O":
			m.clockingOut = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.exiting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the clock screen
func (m ClockModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render("⏱  CLOCKED IN  ⏱")

	clock := m.renderBigClock()
	var clockBlock strings.Builder
	for _, line := range strings.Split(clock, "\n") {
		clockBlock.WriteString(lipgloss.NewStyle().
			Align(lipgloss.Center).
			Width(m.width).
			Render(line))
		clockBlock.WriteString("\n")
	}

	since := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render(fmt.Sprintf("Since %s", m.clockIn.Format("15:04:05")))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		strings.TrimRight(clockBlock.String(), "\n"),
		"",
		since,
	)

	body := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render("o clock out & save · esc/q exit (keep running) · ctrl+c force quit")

	return lipgloss.JoinVertical(lipgloss.Left, body, help)
}

// bigDigits is the 5-row ASCII art used for the elapsed clock.
var bigDigits = map[rune][5]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// renderBigClock renders the elapsed time as ASCII art digits
func (m ClockModel) renderBigClock() string {
	seconds := int(m.elapsed.Seconds())
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	timeStr := fmt.Sprintf("%02d:%02d", minutes, secs)
	if hours > 0 {
		timeStr = fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}

	var lines [5]strings.Builder
	for _, char := range timeStr {
		art, ok := bigDigits[char]
		if !ok {
			continue
		}
		for i := 0; i < 5; i++ {
			lines[i].WriteString(art[i])
			lines[i].WriteString(" ")
		}
	}

	digitStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	rows := make([]string, 5)
	for i := 0; i < 5; i++ {
		rows[i] = digitStyle.Render(lines[i].String())
	}
	return strings.Join(rows, "\n")
}

// RunClockTUI runs the live clock for the open session and clocks out when
// the user asks for it.
func RunClockTUI(adapter *storage.Adapter, clockIn time.Time) error {
	p := tea.NewProgram(NewClockModel(clockIn), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	m := finalModel.(ClockModel)
	if m.exiting {
		fmt.Println("\n💡 Still clocked in. Use 'punch status' to check or 'punch out' to stop.")
		return nil
	}
	if !m.clockingOut {
		return nil
	}

	clockOut := time.Now()
	session := models.NewSession(clockIn.Local(), clockOut)
	if err := adapter.BatchSaveClockOut(models.ClockedOut(), session); err != nil {
		return fmt.Errorf("failed to clock out: %w", err)
	}

	fmt.Printf("🕔 Clocked out at %s\n", clockOut.Format("15:04:05"))
	fmt.Printf("Session recorded: %s, %.2f hours (%s)\n",
		session.Date, session.Hours, timecalc.FormatElapsed(clockOut.Sub(clockIn)))
	return nil
}
