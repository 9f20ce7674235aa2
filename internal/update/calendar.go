package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/routined/internal/model"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) Model {
	rows := m.taskRows(m.Calendar.FocusDate)
	switch msg.String() {
	case "left", m.Keys.PrevDay:
		m.shiftCalendarFocus(-1)
	case "right", m.Keys.NextDay:
		m.shiftCalendarFocus(1)
	case "t":
		m.Calendar.FocusDate = m.Service.Today()
		m.Calendar.Cursor = 0
		m.Status = StatusBar{Text: "calendar focus: today", IsError: false}
	case "up", m.Keys.Up:
		if m.Calendar.Cursor > 0 {
			m.Calendar.Cursor--
		}
		m.syncSelectedToCursor(rows, m.Calendar.Cursor)
	case "down", m.Keys.Down:
		if m.Calendar.Cursor < len(rows)-1 {
			m.Calendar.Cursor++
		}
		m.syncSelectedToCursor(rows, m.Calendar.Cursor)
	case m.Keys.Toggle:
		if m.Calendar.Cursor >= 0 && m.Calendar.Cursor < len(rows) {
			m = m.toggleTask(m.Calendar.FocusDate, rows[m.Calendar.Cursor].Task.ID)
		}
	}
	return m
}

// shiftCalendarFocus moves the focused day, never past today. History is
// editable; future days are not.
func (m *Model) shiftCalendarFocus(delta int) {
	next, err := model.AddDays(m.Calendar.FocusDate, delta)
	if err != nil {
		return
	}
	if next > m.Service.Today() {
		m.Status = StatusBar{Text: "cannot focus a future day", IsError: true}
		return
	}
	m.Calendar.FocusDate = next
	m.Calendar.Cursor = 0
	m.Status = StatusBar{Text: fmt.Sprintf("calendar focus: %s", next), IsError: false}
}

func (m *Model) ensureCalendarState() {
	if m.Calendar.FocusDate == "" || !model.IsValidDay(m.Calendar.FocusDate) {
		m.Calendar.FocusDate = m.Service.Today()
	}
	rows := m.taskRows(m.Calendar.FocusDate)
	if m.Calendar.Cursor < 0 {
		m.Calendar.Cursor = 0
	}
	if m.Calendar.Cursor >= len(rows) && len(rows) > 0 {
		m.Calendar.Cursor = len(rows) - 1
	}
}

func (m Model) renderCalendarView() string {
	return m.renderDayPanel("calendar", m.Calendar.FocusDate, m.Calendar.Cursor, "")
}
