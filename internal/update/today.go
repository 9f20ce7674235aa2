package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/routined/internal/views"
)

func (m Model) handleTodayKey(msg tea.KeyMsg) Model {
	rows := m.taskRows(m.Service.Today())
	switch msg.String() {
	case "up", m.Keys.Up:
		if m.Today.Cursor > 0 {
			m.Today.Cursor--
		}
		m.syncSelectedToCursor(rows, m.Today.Cursor)
	case "down", m.Keys.Down:
		if m.Today.Cursor < len(rows)-1 {
			m.Today.Cursor++
		}
		m.syncSelectedToCursor(rows, m.Today.Cursor)
	case m.Keys.Toggle:
		if m.Today.Cursor >= 0 && m.Today.Cursor < len(rows) {
			m = m.toggleTask(m.Service.Today(), rows[m.Today.Cursor].Task.ID)
		}
	}
	return m
}

// toggleTask flips taskID on date and reports the resulting evaluation in
// the status bar.
func (m Model) toggleTask(date, taskID string) Model {
	eval, err := m.Service.ToggleTask(context.Background(), date, taskID)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.LastError = err
		return m
	}
	kept := "not kept"
	if eval.IsKept {
		kept = "kept"
	}
	m.Status = StatusBar{
		Text:    fmt.Sprintf("%s: %d%% complete, day %s", date, int(eval.Rate), kept),
		IsError: false,
	}
	return m
}

func (m *Model) syncSelectedToCursor(rows []taskRow, cursor int) {
	if cursor >= 0 && cursor < len(rows) {
		m.SelectedTaskID = rows[cursor].Task.ID
	}
}

func (m *Model) ensureTodayState() {
	rows := m.taskRows(m.Service.Today())
	if m.Today.Cursor < 0 {
		m.Today.Cursor = 0
	}
	if m.Today.Cursor >= len(rows) && len(rows) > 0 {
		m.Today.Cursor = len(rows) - 1
	}
	if len(rows) > 0 && m.SelectedTaskID == "" {
		m.syncSelectedToCursor(rows, m.Today.Cursor)
	}
}

func (m Model) renderTodayView() string {
	today := m.Service.Today()
	return m.renderDayPanel("today", today, m.Today.Cursor, m.todayList.View())
}

// renderDayPanel is shared by the today and calendar views; both show a full
// day's routine with per-task checkboxes.
func (m Model) renderDayPanel(heading, date string, cursor int, listView string) string {
	rows := m.taskRows(date)
	eval := m.Service.Evaluate(date)

	selectedID := ""
	if cursor >= 0 && cursor < len(rows) {
		selectedID = rows[cursor].Task.ID
	}

	var blocks []views.BlockData
	done := 0
	for _, row := range rows {
		if row.Done {
			done++
		}
		if len(blocks) == 0 || blocks[len(blocks)-1].Name != row.BlockName {
			blocks = append(blocks, views.BlockData{Name: row.BlockName, Window: row.BlockWindow})
		}
		last := len(blocks) - 1
		blocks[last].Tasks = append(blocks[last].Tasks, views.TaskRowData{
			ID:     row.Task.ID,
			Title:  row.Task.Title,
			MustDo: row.Task.MustDo,
			Done:   row.Done,
		})
	}

	return views.RenderDayPanel(views.DayPanelData{
		Heading:      heading,
		Date:         date,
		Blocks:       blocks,
		SelectedID:   selectedID,
		Done:         done,
		Total:        len(rows),
		RatePct:      int(eval.Rate),
		Kept:         eval.IsKept,
		ProgressView: m.completionBar.ViewAs(eval.Rate / 100),
		ListView:     listView,
		Actions:      fmt.Sprintf("[%s/%s]move [%s]toggle", m.Keys.Up, m.Keys.Down, toggleKeyLabel(m.Keys.Toggle)),
	})
}

func toggleKeyLabel(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
