package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/punchtrack/punch/internal/filter"
	"github.com/punchtrack/punch/internal/models"
	"github.com/punchtrack/punch/internal/storage"
)

// filterTabs is the tab order in the history browser.
var filterTabs = []struct {
	label string
	typ   models.FilterType
}{
	{"All", models.FilterAll},
	{"This week", models.FilterThisWeek},
	{"Last 7 days", models.FilterLastWeek},
	{"Last month", models.FilterLastMonth},
}

// HistoryModel is the interactive session history browser.
type HistoryModel struct {
	width  int
	height int

	adapter   *storage.Adapter
	weekStart time.Weekday

	sessions []models.Session // full history, most recent first
	visible  []models.Session // current filter applied, sorted for display
	tab      int
	selected int

	status string // transient line shown after deletes
}

// NewHistoryModel creates the history browser over the stored sessions.
func NewHistoryModel(adapter *storage.Adapter, weekStart time.Weekday) HistoryModel {
	m := HistoryModel{adapter: adapter, weekStart: weekStart}
	_, m.sessions = adapter.LoadStoredData()
	m.refilter()
	return m
}

func (m *HistoryModel) refilter() {
	f := filter.New(filterTabs[m.tab].typ, time.Now(), m.weekStart)
	shown := filter.Apply(m.sessions, f)

	m.visible = make([]models.Session, len(shown))
	copy(m.visible, shown)
	sort.SliceStable(m.visible, func(i, j int) bool {
		return m.visible[i].Date > m.visible[j].Date
	})

	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// Init implements tea.Model
func (m HistoryModel) Init() tea.Cmd { return nil }

// Update handles messages
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		case "left", "h":
			m.tab = (m.tab + len(filterTabs) - 1) % len(filterTabs)
			m.selected = 0
			m.status = ""
			m.refilter()
		case "right", "l", "tab":
			m.tab = (m.tab + 1) % len(filterTabs)
			m.selected = 0
			m.status = ""
			m.refilter()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.visible)-1 {
				m.selected++
			}
		case "d":
			return m.deleteSelected()
		}
	}
	return m, nil
}

func (m HistoryModel) deleteSelected() (tea.Model, tea.Cmd) {
	if m.selected >= len(m.visible) {
		return m, nil
	}
	id := m.visible[m.selected].ID
	if err := m.adapter.DeleteSession(id); err != nil {
		m.status = fmt.Sprintf("Delete failed: %v", err)
		return m, nil
	}
	_, m.sessions = m.adapter.LoadStoredData()
	m.refilter()
	m.status = fmt.Sprintf("Deleted %s", id)
	return m, nil
}

// View renders the history browser
func (m HistoryModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(m.renderRows())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m HistoryModel) renderTabs() string {
	active := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Padding(0, 1)
	inactive := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Padding(0, 1)

	tabs := make([]string, len(filterTabs))
	for i, t := range filterTabs {
		if i == m.tab {
			tabs[i] = active.Render(t.label)
		} else {
			tabs[i] = inactive.Render(t.label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m HistoryModel) renderRows() string {
	if len(m.visible) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Render("  No sessions in this window.")
	}

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Bold(true).
		Render(fmt.Sprintf("  %-12s %-7s %-7s %7s", "DATE", "IN", "OUT", "HOURS"))

	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorBorder)).
		Bold(true)
	rowStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText))

	// Leave room for tabs, header, footer and help.
	maxRows := m.height - 8
	if maxRows < 1 {
		maxRows = 1
	}
	first := 0
	if m.selected >= maxRows {
		first = m.selected - maxRows + 1
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	for i := first; i < len(m.visible) && i < first+maxRows; i++ {
		s := m.visible[i]
		marker := "  "
		style := rowStyle
		if i == m.selected {
			marker = "› "
			style = selectedStyle
		}
		row := fmt.Sprintf("%s%-12s %-7s %-7s %7.2f",
			marker, s.Date, shortClock(s.ClockIn), shortClock(s.ClockOut), s.Hours)
		b.WriteString(style.Render(row))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m HistoryModel) renderFooter() string {
	counts := filter.CountSessions(m.sessions, time.Now())
	footer := fmt.Sprintf("%d all · %d last 7 days · %d last month",
		counts.All, counts.LastWeek, counts.LastMonth)

	lines := []string{
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render(footer),
	}
	if m.status != "" {
		lines = append(lines,
			lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Render(m.status))
	}
	lines = append(lines, lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Render("←/→ filter · ↑/↓ select · d delete · q quit"))
	return strings.Join(lines, "\n")
}

func shortClock(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return "?"
	}
	return t.Local().Format("15:04")
}

// RunHistoryTUI opens the interactive history browser.
func RunHistoryTUI(adapter *storage.Adapter, weekStart time.Weekday) error {
	p := tea.NewProgram(NewHistoryModel(adapter, weekStart), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
