package engine

import (
	"testing"
	"time"

	"github.com/sandeepkv93/routined/internal/model"
)

func testSchedule() model.Schedule {
	return model.Schedule{Blocks: []model.RoutineBlock{
		{
			ID: "b1", Name: "Morning", StartTime: "06:00", EndTime: "09:00",
			Tasks: []model.Task{
				{ID: "must", Title: "Workout", MustDo: true},
				{ID: "opt", Title: "Coffee", Order: 1},
			},
		},
	}}
}

func logFor(date string, ids ...string) model.DailyLog {
	now := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	log := model.NewDailyLog(date, now)
	for _, id := range ids {
		log = log.Toggle(id, now)
	}
	return log
}

func TestCompletionRateBasics(t *testing.T) {
	s := testSchedule()
	if got := CompletionRate(logFor("2024-01-05"), s); got != 0 {
		t.Fatalf("empty log rate = %v, want 0", got)
	}
	if got := CompletionRate(logFor("2024-01-05", "must"), s); got != 50 {
		t.Fatalf("half rate = %v, want 50", got)
	}
	if got := CompletionRate(logFor("2024-01-05", "must", "opt"), s); got != 100 {
		t.Fatalf("full rate = %v, want 100", got)
	}
}

func TestCompletionRateIgnoresUnknownIDs(t *testing.T) {
	s := testSchedule()
	log := logFor("2024-01-05", "must", "removed-task")
	if got := CompletionRate(log, s); got != 50 {
		t.Fatalf("rate with unknown id = %v, want 50", got)
	}
}

func TestCompletionRateEmptySchedule(t *testing.T) {
	empty := model.Schedule{}
	log := logFor("2024-01-05", "anything")
	if got := CompletionRate(log, empty); got != 0 {
		t.Fatalf("empty schedule rate = %v, want 0", got)
	}
	if IsStreakKept(log, empty, 1) {
		t.Fatal("empty schedule must never keep with a positive threshold")
	}
}

func TestMustDoClauseOverridesThreshold(t *testing.T) {
	s := testSchedule()
	log := logFor("2024-01-05", "must")
	if !IsStreakKept(log, s, 100) {
		t.Fatal("all must-dos done should keep regardless of threshold")
	}
}

func TestNoMustDosReducesToThreshold(t *testing.T) {
	s := model.Schedule{Blocks: []model.RoutineBlock{
		{
			ID: "b1", Name: "Plain", StartTime: "06:00", EndTime: "09:00",
			Tasks: []model.Task{
				{ID: "a", Title: "A"},
				{ID: "b", Title: "B", Order: 1},
			},
		},
	}}
	for _, tc := range []struct {
		ids       []string
		threshold int
		want      bool
	}{
		{nil, 80, false},
		{[]string{"a"}, 50, true},
		{[]string{"a"}, 51, false},
		{[]string{"a", "b"}, 100, true},
	} {
		log := logFor("2024-01-05", tc.ids...)
		got := IsStreakKept(log, s, tc.threshold)
		if got != tc.want {
			t.Fatalf("ids=%v threshold=%d: kept=%v, want %v", tc.ids, tc.threshold, got, tc.want)
		}
		if got != (CompletionRate(log, s) >= float64(tc.threshold)) {
			t.Fatalf("ids=%v: kept must equal rate>=threshold when no must-dos", tc.ids)
		}
	}
}

func TestEvaluateDayIsOrderIndependent(t *testing.T) {
	s := testSchedule()
	first := EvaluateDay(logFor("2024-01-05", "opt", "must"), s, 80)
	second := EvaluateDay(logFor("2024-01-05", "must", "opt"), s, 80)
	if first != second {
		t.Fatalf("evaluation differs by insertion order: %+v vs %+v", first, second)
	}
}
