package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/routined/internal/model"
	"github.com/sandeepkv93/routined/internal/views"
)

const (
	settingsRowThreshold = 0
	settingsRowFreeze    = 1
	settingsRowTheme     = 2
	settingsRowReset     = 3
	settingsRowCount     = 4
)

const thresholdStep = 5

func (m Model) handleSettingsKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", m.Keys.Up:
		if m.Settings.Cursor > 0 {
			m.Settings.Cursor--
		}
	case "down", m.Keys.Down:
		if m.Settings.Cursor < settingsRowCount-1 {
			m.Settings.Cursor++
		}
	case "left", m.Keys.PrevDay:
		if m.Settings.Cursor == settingsRowThreshold {
			m = m.adjustThreshold(-thresholdStep)
		}
	case "right", m.Keys.NextDay:
		if m.Settings.Cursor == settingsRowThreshold {
			m = m.adjustThreshold(thresholdStep)
		}
	case "enter", m.Keys.Toggle:
		m = m.activateSettingsRow()
	}
	return m
}

func (m Model) adjustThreshold(delta int) Model {
	next := m.Service.Settings().CompletionThreshold + delta
	if next < 0 {
		next = 0
	}
	if next > 100 {
		next = 100
	}
	return m.patchSettings(model.SettingsPatch{CompletionThreshold: &next},
		fmt.Sprintf("completion threshold: %d%%", next))
}

func (m Model) activateSettingsRow() Model {
	settings := m.Service.Settings()
	switch m.Settings.Cursor {
	case settingsRowFreeze:
		enabled := !settings.StreakFreezeEnabled
		return m.patchSettings(model.SettingsPatch{StreakFreezeEnabled: &enabled},
			fmt.Sprintf("streak freeze: %s", onOff(enabled)))
	case settingsRowTheme:
		theme := model.ThemeDark
		if settings.Theme == model.ThemeDark {
			theme = model.ThemeLight
		}
		return m.patchSettings(model.SettingsPatch{Theme: &theme},
			fmt.Sprintf("theme: %s", theme))
	case settingsRowReset:
		m.Service.ResetSchedule(context.Background())
		m.Today.Cursor = 0
		m.Calendar.Cursor = 0
		m.Status = StatusBar{Text: "routine reset to default", IsError: false}
	}
	return m
}

func (m Model) patchSettings(patch model.SettingsPatch, okStatus string) Model {
	if err := m.Service.UpdateSettings(context.Background(), patch); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.LastError = err
		return m
	}
	m.Status = StatusBar{Text: okStatus, IsError: false}
	return m
}

func (m Model) renderSettingsView() string {
	settings := m.Service.Settings()
	rows := []views.SettingsRowData{
		{Label: "completion threshold", Value: fmt.Sprintf("%d%%", settings.CompletionThreshold)},
		{Label: "streak freeze", Value: onOff(settings.StreakFreezeEnabled)},
		{Label: "theme", Value: string(settings.Theme)},
		{Label: "reset routine", Value: "(press space)"},
	}
	return views.RenderSettingsPanel(views.SettingsPanelData{
		Rows:   rows,
		Cursor: m.Settings.Cursor,
	})
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
