package update

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/routined/internal/commands"
	"github.com/sandeepkv93/routined/internal/model"
	"github.com/sandeepkv93/routined/internal/stats"
	"github.com/sandeepkv93/routined/internal/storage"
	"github.com/sandeepkv93/routined/internal/views"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m, nil
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		m.Palette.Input = m.commandInput.Value()
		return m, cmd
	}
	return m, nil
}

func (m Model) executePaletteCommand() Model {
	cmd, err := commands.Parse(m.Palette.Input)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m
	}

	ctx := context.Background()
	res, err := commands.Execute(cmd, commands.Handlers{
		Toggle: func(a commands.ToggleArgs) (commands.Result, error) {
			date := a.Date
			if date == "" {
				date = m.Service.Today()
			}
			eval, err := m.Service.ToggleTask(ctx, date, a.TaskID)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			return commands.Result{Message: fmt.Sprintf("toggled %s on %s: %d%% complete", a.TaskID, date, int(eval.Rate))}, nil
		},
		Threshold: func(a commands.ThresholdArgs) (commands.Result, error) {
			pct := a.Percent
			if err := m.Service.UpdateSettings(ctx, model.SettingsPatch{CompletionThreshold: &pct}); err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			return commands.Result{Message: fmt.Sprintf("completion threshold set to %d%%", pct)}, nil
		},
		Freeze: func(a commands.FreezeArgs) (commands.Result, error) {
			enabled := a.Enabled
			if err := m.Service.UpdateSettings(ctx, model.SettingsPatch{StreakFreezeEnabled: &enabled}); err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			return commands.Result{Message: fmt.Sprintf("streak freeze %s", onOff(enabled))}, nil
		},
		Theme: func(a commands.ThemeArgs) (commands.Result, error) {
			theme := model.Theme(a.Name)
			if err := m.Service.UpdateSettings(ctx, model.SettingsPatch{Theme: &theme}); err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			return commands.Result{Message: fmt.Sprintf("theme set to %s", theme)}, nil
		},
		Goto: func(a commands.GotoArgs) (commands.Result, error) {
			date := a.Date
			if date == "today" {
				date = m.Service.Today()
			}
			if !model.IsValidDay(date) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid date: %s", a.Date)}
			}
			if date > m.Service.Today() {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "cannot focus a future day"}
			}
			m.Calendar.FocusDate = date
			m.Calendar.Cursor = 0
			m.CurrentView = ViewCalendar
			return commands.Result{Message: fmt.Sprintf("calendar focus: %s", date)}, nil
		},
		Period: func(a commands.PeriodArgs) (commands.Result, error) {
			p, err := stats.ParsePeriod(a.Name)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			m.Stats.Period = p
			m.CurrentView = ViewStats
			return commands.Result{Message: fmt.Sprintf("stats period: %s", p)}, nil
		},
		Reset: func() (commands.Result, error) {
			m.Service.ResetSchedule(ctx)
			m.Today.Cursor = 0
			m.Calendar.Cursor = 0
			return commands.Result{Message: "routine reset to default"}, nil
		},
		Export: func(a commands.ExportArgs) (commands.Result, error) {
			payload, err := storage.ExportBackup(m.Service.ExportBackup())
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			if err := os.WriteFile(a.Path, payload, 0o644); err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			return commands.Result{Message: fmt.Sprintf("backup written to %s", a.Path)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}
