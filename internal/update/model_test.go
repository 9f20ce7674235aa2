package update

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/routined/internal/engine"
	"github.com/sandeepkv93/routined/internal/model"
	"github.com/sandeepkv93/routined/internal/stats"
)

func testSchedule() model.Schedule {
	return model.Schedule{Blocks: []model.RoutineBlock{
		{
			ID: "morning", Name: "Morning", StartTime: "06:00", EndTime: "08:00", Order: 0,
			Tasks: []model.Task{
				{ID: "med", Title: "Meditate", MustDo: true, Order: 0},
				{ID: "run", Title: "Run", Order: 1},
			},
		},
		{
			ID: "evening", Name: "Evening", StartTime: "20:00", EndTime: "22:00", Order: 1,
			Tasks: []model.Task{
				{ID: "read", Title: "Read", Order: 0},
			},
		},
	}}
}

func newTestModel(t *testing.T, today string) Model {
	t.Helper()
	day, err := model.ParseDay(today)
	if err != nil {
		t.Fatalf("parse day %q: %v", today, err)
	}
	service := engine.NewService(nil, engine.WithClock(func() time.Time {
		return day.Add(9 * time.Hour)
	}))
	if err := service.SetSchedule(context.Background(), testSchedule()); err != nil {
		t.Fatalf("set schedule: %v", err)
	}
	return NewModel(service)
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t, "2024-03-11")
	if m.CurrentView != ViewToday {
		t.Fatalf("expected default view %q, got %q", ViewToday, m.CurrentView)
	}
	if m.Stats.Period != stats.PeriodDays {
		t.Fatalf("expected default period days, got %q", m.Stats.Period)
	}
	if m.Calendar.FocusDate != "2024-03-11" {
		t.Fatalf("expected calendar focus on today, got %q", m.Calendar.FocusDate)
	}
	if m.Keys.Quit != "q" {
		t.Fatalf("expected quit key q, got %q", m.Keys.Quit)
	}
}

func TestUpdateKeySwitchesView(t *testing.T) {
	m := newTestModel(t, "2024-03-11")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	next := updated.(Model)
	if next.CurrentView != ViewStats {
		t.Fatalf("expected stats view, got %q", next.CurrentView)
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	next = updated.(Model)
	if next.CurrentView != ViewCalendar {
		t.Fatalf("expected calendar view, got %q", next.CurrentView)
	}
}

func TestUpdateSwitchViewMsg(t *testing.T) {
	m := newTestModel(t, "2024-03-11")
	updated, _ := m.Update(SwitchViewMsg{View: ViewSettings})
	next := updated.(Model)
	if next.CurrentView != ViewSettings {
		t.Fatalf("expected settings view, got %q", next.CurrentView)
	}

	updated, _ = next.Update(SwitchViewMsg{View: View("Unknown")})
	next = updated.(Model)
	if next.CurrentView != ViewSettings {
		t.Fatalf("expected view unchanged for unknown view, got %q", next.CurrentView)
	}
}

func TestUpdateQuitKey(t *testing.T) {
	m := newTestModel(t, "2024-03-11")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	next := updated.(Model)
	if !next.Quitting {
		t.Fatal("expected quitting flag true")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestTodayToggleCompletesTask(t *testing.T) {
	m := newTestModel(t, "2024-03-11")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	next := updated.(Model)

	log, ok := next.Service.Log("2024-03-11")
	if !ok {
		t.Fatal("expected a log for today after toggling")
	}
	if !log.Completed("med") {
		t.Fatal("expected first task completed")
	}
	if next.Status.IsError {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}
	if want := "2024-03-11: 33% complete, day kept"; next.Status.Text != want {
		t.Fatalf("expected status %q, got %q", want, next.Status.Text)
	}

	eval := next.Service.Evaluate("2024-03-11")
	panel := next.renderTodayView()
	if !strings.Contains(panel, fmt.Sprintf("done: 1/3 (%d%%)", int(eval.Rate))) {
		t.Fatalf("expected day panel to show the evaluation rate, got: %q", panel)
	}
}

func TestTodayCursorMoves(t *testing.T) {
	m := newTestModel(t, "2024-03-11")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	next := updated.(Model)
	if next.Today.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", next.Today.Cursor)
	}
	if next.SelectedTaskID != "run" {
		t.Fatalf("expected selected run, got %q", next.SelectedTaskID)
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	next = updated.(Model)
	if next.Today.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", next.Today.Cursor)
	}
}

func TestCalendarNavigationClampsAtToday(t *testing.T) {
	m := newTestModel(t, "2024-03-11")
	m.CurrentView = ViewCalendar

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	next := updated.(Model)
	if next.Calendar.FocusDate != "2024-03-10" {
		t.Fatalf("expected focus 2024-03-10, got %q", next.Calendar.FocusDate)
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	next = updated.(Model)
	if next.Calendar.FocusDate != "2024-03-11" {
		t.Fatalf("expected focus back on today, got %q", next.Calendar.FocusDate)
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	next = updated.(Model)
	if next.Calendar.FocusDate != "2024-03-11" {
		t.Fatalf("expected focus clamped at today, got %q", next.Calendar.FocusDate)
	}
	if !next.Status.IsError {
		t.Fatal("expected error status for future focus")
	}
}

func TestCalendarToggleEditsPastDay(t *testing.T) {
	m := newTestModel(t, "2024-03-11")
	m.CurrentView = ViewCalendar
	m.Calendar.FocusDate = "2024-03-09"

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	next := updated.(Model)

	log, ok := next.Service.Log("2024-03-09")
	if !ok {
		t.Fatal("expected a log for the focused day")
	}
	if !log.Completed("med") {
		t.Fatal("expected task completed on past day")
	}
}

func TestStatsPeriodKeys(t *testing.T) {
	m := newTestModel(t, "2024-03-11")
	m.CurrentView = ViewStats

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	next := updated.(Model)
	if next.Stats.Period != stats.PeriodWeeks {
		t.Fatalf("expected weeks period, got %q", next.Stats.Period)
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	next = updated.(Model)
	if next.Stats.Period != stats.PeriodYears {
		t.Fatalf("expected years period, got %q", next.Stats.Period)
	}
}

func TestSettingsThresholdAdjust(t *testing.T) {
	m := newTestModel(t, "2024-03-11")
	m.CurrentView = ViewSettings

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	next := updated.(Model)
	if got := next.Service.Settings().CompletionThreshold; got != 85 {
		t.Fatalf("expected threshold 85, got %d", got)
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	next = updated.(Model)
	if got := next.Service.Settings().CompletionThreshold; got != 80 {
		t.Fatalf("expected threshold 80, got %d", got)
	}
}

func TestSettingsToggleFreezeAndTheme(t *testing.T) {
	m := newTestModel(t, "2024-03-11")
	m.CurrentView = ViewSettings
	m.Settings.Cursor = settingsRowFreeze

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	next := updated.(Model)
	if next.Service.Settings().StreakFreezeEnabled {
		t.Fatal("expected freeze disabled after toggle")
	}

	next.Settings.Cursor = settingsRowTheme
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeySpace})
	next = updated.(Model)
	if next.Service.Settings().Theme != model.ThemeLight {
		t.Fatalf("expected light theme, got %q", next.Service.Settings().Theme)
	}
}

func TestViewContainsCoreState(t *testing.T) {
	m := newTestModel(t, "2024-03-11")
	m.Status = StatusBar{Text: "all good"}
	out := m.View()
	if !strings.Contains(out, "view: Today") {
		t.Fatalf("expected view text in output: %q", out)
	}
	if !strings.Contains(out, "2024-03-11") {
		t.Fatalf("expected today date in output: %q", out)
	}
	if !strings.Contains(out, "status: all good") {
		t.Fatalf("expected status in output: %q", out)
	}
	if !strings.Contains(out, "Meditate") {
		t.Fatalf("expected task title in output: %q", out)
	}
}

func TestStatusAndErrorMessages(t *testing.T) {
	m := newTestModel(t, "2024-03-11")

	updated, _ := m.Update(SetStatusMsg{Text: "ready", IsError: false})
	next := updated.(Model)
	if next.Status.Text != "ready" || next.Status.IsError {
		t.Fatalf("unexpected status: %+v", next.Status)
	}

	updated, _ = next.Update(ClearStatusMsg{})
	next = updated.(Model)
	if next.Status.Text != "" {
		t.Fatalf("expected cleared status, got %+v", next.Status)
	}
}
