package update

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/routined/internal/rollover"
	"github.com/sandeepkv93/routined/internal/stats"
)

func typeCommand(t *testing.T, m Model, input string) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	next := updated.(Model)
	if !next.Palette.Active {
		t.Fatal("expected palette active after /")
	}
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(input)})
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model)
}

func TestPaletteThresholdCommand(t *testing.T) {
	m := newTestModel(t, "2024-03-11")
	next := typeCommand(t, m, "threshold 50")

	if got := next.Service.Settings().CompletionThreshold; got != 50 {
		t.Fatalf("expected threshold 50, got %d", got)
	}
	if next.Palette.Active {
		t.Fatal("expected palette closed after execution")
	}
	if next.Status.IsError {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}
}

func TestPaletteToggleCommand(t *testing.T) {
	m := newTestModel(t, "2024-03-11")
	next := typeCommand(t, m, "toggle run")

	log, ok := next.Service.Log("2024-03-11")
	if !ok || !log.Completed("run") {
		t.Fatal("expected run completed via palette command")
	}
	if want := "toggled run on 2024-03-11: 33% complete"; next.Status.Text != want {
		t.Fatalf("expected status %q, got %q", want, next.Status.Text)
	}
}

func TestPaletteGotoSwitchesToCalendar(t *testing.T) {
	m := newTestModel(t, "2024-03-11")
	next := typeCommand(t, m, "goto 2024-03-01")

	if next.CurrentView != ViewCalendar {
		t.Fatalf("expected calendar view, got %q", next.CurrentView)
	}
	if next.Calendar.FocusDate != "2024-03-01" {
		t.Fatalf("expected focus 2024-03-01, got %q", next.Calendar.FocusDate)
	}
}

func TestPaletteGotoFutureRejected(t *testing.T) {
	m := newTestModel(t, "2024-03-11")
	next := typeCommand(t, m, "goto 2024-03-12")

	if !next.Status.IsError {
		t.Fatal("expected error status for future goto")
	}
	if next.CurrentView == ViewCalendar {
		t.Fatal("expected view unchanged on rejected goto")
	}
}

func TestPalettePeriodCommand(t *testing.T) {
	m := newTestModel(t, "2024-03-11")
	next := typeCommand(t, m, "period months")

	if next.Stats.Period != stats.PeriodMonths {
		t.Fatalf("expected months period, got %q", next.Stats.Period)
	}
	if next.CurrentView != ViewStats {
		t.Fatalf("expected stats view, got %q", next.CurrentView)
	}
}

func TestPaletteUnknownCommand(t *testing.T) {
	m := newTestModel(t, "2024-03-11")
	next := typeCommand(t, m, "frobnicate now")

	if !next.Status.IsError {
		t.Fatal("expected error status for unknown command")
	}
	if !strings.Contains(next.Status.Text, "unknown_command") {
		t.Fatalf("expected unknown_command code in status, got %q", next.Status.Text)
	}
}

func TestPaletteEscCloses(t *testing.T) {
	m := newTestModel(t, "2024-03-11")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	next := updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	next = updated.(Model)

	if next.Palette.Active {
		t.Fatal("expected palette closed after esc")
	}
}

func TestDayRolloverClosesDay(t *testing.T) {
	m := newTestModel(t, "2024-03-11")

	updated, _ := m.Update(DayRolloverMsg{Event: rollover.DayEvent{
		ClosedDate: "2024-03-10",
		NewDate:    "2024-03-11",
	}})
	next := updated.(Model)

	if got := next.Service.Streak().LastClosedDate; got != "2024-03-10" {
		t.Fatalf("expected last closed 2024-03-10, got %q", got)
	}
	if !strings.Contains(next.Status.Text, "day closed") {
		t.Fatalf("expected close confirmation, got %q", next.Status.Text)
	}
}
