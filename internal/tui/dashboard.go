package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/habitflare/internal/dateutil"
	"github.com/manav03panchal/habitflare/internal/habits"
	"github.com/manav03panchal/habitflare/internal/model"
	"github.com/manav03panchal/habitflare/internal/output"
	"github.com/manav03panchal/habitflare/internal/storage"
)

// tickMsg is sent when the timer ticks.
type tickMsg time.Time

// refreshMsg is sent when data needs to be refreshed.
type refreshMsg struct{}

// errMsg is sent when an error occurs.
type errMsg struct {
	err error
}

// DashboardModel is the main bubbletea model for the dashboard.
type DashboardModel struct {
	// Data
	habits []*model.Habit
	today  string

	// Repositories
	habitRepo *storage.HabitRepo

	// UI state
	cursor        int
	pendingDelete string
	width         int
	height        int
	err           error
	message       string
	messageExp    time.Time

	// Configuration
	refreshInterval time.Duration
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	HabitRepo       *storage.HabitRepo
	RefreshInterval time.Duration
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(config DashboardConfig) *DashboardModel {
	if config.RefreshInterval == 0 {
		config.RefreshInterval = time.Second
	}

	return &DashboardModel{
		habitRepo:       config.HabitRepo,
		refreshInterval: config.RefreshInterval,
		today:           dateutil.Today(),
	}
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.refreshCmd(),
	)
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// Clear expired messages and roll the day over at midnight.
		if !m.messageExp.IsZero() && time.Now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		if day := dateutil.Today(); day != m.today {
			m.today = day
			m.loadData()
		}
		return m, m.tickCmd()

	case refreshMsg:
		m.loadData()
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// A pending delete is confirmed with y and cancelled by anything else.
	if m.pendingDelete != "" {
		id := m.pendingDelete
		m.pendingDelete = ""
		if key == "y" {
			if _, err := m.habitRepo.Delete(id); err != nil {
				m.err = err
			} else {
				m.setMessage("Habit deleted", 2*time.Second)
				m.loadData()
			}
		} else {
			m.setMessage("Delete cancelled", 2*time.Second)
		}
		return m, nil
	}

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.habits)-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case " ", "enter":
		if h := m.selected(); h != nil {
			if err := m.toggleToday(h); err != nil {
				m.err = err
			}
		}
		return m, nil

	case "d":
		if h := m.selected(); h != nil {
			m.pendingDelete = h.ID
			m.setMessage(fmt.Sprintf("Delete %q? Press y to confirm", h.Name), 5*time.Second)
		}
		return m, nil

	case "r":
		m.loadData()
		m.setMessage("Refreshed", time.Second)
		return m, nil
	}

	return m, nil
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	if m.err != nil {
		sections = append(sections, StyleError.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	if m.message != "" {
		sections = append(sections, StyleWarning.Render(m.message))
	}

	sections = append(sections, m.renderWeekStrip())
	sections = append(sections, m.renderHabitList())
	sections = append(sections, m.renderStatsFooter())
	sections = append(sections, HelpBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the dashboard header.
func (m *DashboardModel) renderHeader() string {
	title := StyleTitle.Render("Habitflare Dashboard")
	now := time.Now().Format("Mon Jan 2, 15:04:05")
	timeStr := StyleSubtitle.Render(now)

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", timeStr) + "\n"
}

// renderWeekStrip renders the current week with one indicator per day.
func (m *DashboardModel) renderWeekStrip() string {
	week := dateutil.WeekOf(m.today)

	var names, dots strings.Builder
	for i, day := range week {
		name := dateutil.DayName(i)[:3]
		if day == m.today {
			name = StyleSelected.Render(strings.ToUpper(name))
		} else {
			name = StyleSubtitle.Render(name)
		}
		names.WriteString(name)
		names.WriteString("  ")

		var dot string
		switch habits.WeekDayIndicator(day, m.habits) {
		case habits.IndicatorComplete:
			dot = StyleDone.Render("●")
		case habits.IndicatorPartial:
			dot = StyleWarning.Render("◐")
		default:
			dot = StyleIdle.Render("·")
		}
		// Styled strings carry ANSI codes, so pad around them by hand.
		dots.WriteString(" " + dot + "   ")
	}

	return StyleWeekBox.Render(names.String() + "\n" + dots.String())
}

// renderHabitList renders the selectable habit rows.
func (m *DashboardModel) renderHabitList() string {
	if len(m.habits) == 0 {
		return StyleListBox.Render(StyleSubtitle.Render("No habits yet. Add one with 'habitflare add'."))
	}

	var rows []string
	for i, h := range m.habits {
		marker := StyleIdle.Render("○")
		if h.CompletedOn(m.today) {
			marker = StyleDone.Render("✓")
		} else if !h.ScheduledOn(dateutil.WeekdayOf(m.today)) {
			marker = StyleIdle.Render("-")
		}

		name := h.Name
		if i == m.cursor {
			name = StyleSelected.Render("> " + name)
		} else {
			name = StyleHabit.Render("  " + name)
		}

		streak := StyleStreak.Render(fmt.Sprintf("%3d🔥", habits.Streak(h.History, m.today)))
		rows = append(rows, fmt.Sprintf("%s %s %s  %s", marker, output.IconGlyph(h.Icon), name, streak))
	}

	return StyleListBox.Render(strings.Join(rows, "\n"))
}

// renderStatsFooter renders the aggregate stats line.
func (m *DashboardModel) renderStatsFooter() string {
	if len(m.habits) == 0 {
		return ""
	}

	overall := habits.OverallCompletionRate(m.habits, m.today)
	line := fmt.Sprintf("30-day rate %s %d%%", ProgressBar(overall, 15), overall)
	if best := habits.BestStreakHabit(m.habits, m.today); best != nil {
		line += StyleSubtitle.Render(fmt.Sprintf("   best: %s (%d days)",
			best.Name, habits.Streak(best.History, m.today)))
	}
	return line
}

// selected returns the habit under the cursor, or nil.
func (m *DashboardModel) selected() *model.Habit {
	if m.cursor < 0 || m.cursor >= len(m.habits) {
		return nil
	}
	return m.habits[m.cursor]
}

// toggleToday flips today's completion for the habit and persists it.
func (m *DashboardModel) toggleToday(h *model.Habit) error {
	updated := habits.Toggle(h, m.today)
	if err := m.habitRepo.Update(updated); err != nil {
		return err
	}
	if updated.CompletedOn(m.today) {
		m.setMessage(fmt.Sprintf("%s completed", updated.Name), 2*time.Second)
	} else {
		m.setMessage(fmt.Sprintf("%s unmarked", updated.Name), 2*time.Second)
	}
	m.loadData()
	return nil
}

// loadData loads all habits from the repository.
func (m *DashboardModel) loadData() {
	collection, err := m.habitRepo.List()
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.habits = collection
	if m.cursor >= len(m.habits) {
		m.cursor = len(m.habits) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// setMessage sets a transient status message.
func (m *DashboardModel) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = time.Now().Add(duration)
}

// tickCmd returns a command that ticks every second.
func (m *DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refreshCmd returns a command that triggers a data refresh.
func (m *DashboardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{}
	}
}

// Run starts the dashboard TUI.
func Run(config DashboardConfig) error {
	model := NewDashboardModel(config)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
