package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/routined/internal/rollover"
	"github.com/sandeepkv93/routined/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.Rollover != nil {
		return waitForRolloverCmd(m.Rollover.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		m.ensureTodayState()
		m.ensureCalendarState()

		if m.Palette.Active {
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			next, cmd := m.handlePaletteKey(typed)
			return next, cmd
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Today:
			m.CurrentView = ViewToday
			return m, nil
		case m.Keys.Calendar:
			m.CurrentView = ViewCalendar
			return m, nil
		case m.Keys.Stats:
			m.CurrentView = ViewStats
			return m, nil
		case m.Keys.Settings:
			m.CurrentView = ViewSettings
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown", IsError: false}
			} else {
				m.Status = StatusBar{Text: "help hidden", IsError: false}
			}
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewToday:
			return m.handleTodayKey(typed), nil
		case ViewCalendar:
			return m.handleCalendarKey(typed), nil
		case ViewStats:
			return m.handleStatsKey(typed), nil
		case ViewSettings:
			return m.handleSettingsKey(typed), nil
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	case DayRolloverMsg:
		return m.onDayRollover(typed)
	}

	return m, nil
}

func (m Model) onDayRollover(msg DayRolloverMsg) (tea.Model, tea.Cmd) {
	if err := m.Service.CloseDay(context.Background(), msg.Event.ClosedDate); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("day close failed: %v", err), IsError: true}
	} else {
		m.Status = StatusBar{Text: fmt.Sprintf("day closed: %s", msg.Event.ClosedDate), IsError: false}
	}
	m.Today.Cursor = 0
	if m.Calendar.FocusDate == msg.Event.ClosedDate {
		m.Calendar.FocusDate = msg.Event.NewDate
	}
	if m.Rollover != nil {
		return m, waitForRolloverCmd(m.Rollover.C())
	}
	return m, nil
}

func (m Model) View() string {
	m.syncBubbleData()

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewToday:
		leftPane = m.renderTodayView()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewCalendar:
		leftPane = m.renderCalendarView()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewStats:
		leftPane = m.renderStatsView()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewSettings:
		leftPane = m.renderSettingsView()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
	}

	streak := m.Service.Streak()
	return views.RenderApp(views.AppData{
		Header: fmt.Sprintf("routined | view: %s | %s | %s", m.CurrentView, m.Service.Today(), views.RenderStreakBadge(views.StreakBadgeData{
			Current:     streak.CurrentStreak,
			Best:        streak.BestStreak,
			FreezesUsed: len(streak.FreezeLedger),
		})),
		LeftPane:   leftPane,
		RightPane:  rightPane,
		StatusLine: status,
		Footer: fmt.Sprintf("keys: %s today | %s cal | %s stats | %s settings | / cmd | %s help | %s quit",
			m.Keys.Today, m.Keys.Calendar, m.Keys.Stats, m.Keys.Settings, m.Keys.Help, m.Keys.Quit),
		Theme: string(m.Service.Settings().Theme),
	})
}

func isKnownView(v View) bool {
	switch v {
	case ViewToday, ViewCalendar, ViewStats, ViewSettings:
		return true
	default:
		return false
	}
}

func waitForRolloverCmd(ch <-chan rollover.DayEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return DayRolloverMsg{Event: event}
	}
}
