package engine

import "github.com/sandeepkv93/routined/internal/model"

// Evaluation is the day-level verdict for one log against a schedule.
type Evaluation struct {
	IsKept bool
	Rate   float64
}

// CompletionRate returns the percentage of the schedule's tasks completed in
// log, in [0, 100]. Completed ids that no longer resolve against the schedule
// are ignored so old logs stay readable after edits. An empty schedule rates 0.
func CompletionRate(log model.DailyLog, schedule model.Schedule) float64 {
	total := schedule.TaskCount()
	if total == 0 {
		return 0
	}
	known := 0
	for _, id := range log.CompletedTaskIDs {
		if _, ok := schedule.TaskByID(id); ok {
			known++
		}
	}
	return 100 * float64(known) / float64(total)
}

// IsStreakKept reports whether the day satisfies the streak-keeping
// condition: every must-do task completed (when at least one exists), or the
// completion rate meeting the threshold. A schedule with no must-do tasks can
// only qualify through the threshold clause.
func IsStreakKept(log model.DailyLog, schedule model.Schedule, threshold int) bool {
	mustDos := schedule.MustDoTasks()
	if len(mustDos) > 0 {
		allDone := true
		for _, task := range mustDos {
			if !log.Completed(task.ID) {
				allDone = false
				break
			}
		}
		if allDone {
			return true
		}
	}
	return CompletionRate(log, schedule) >= float64(threshold)
}

// EvaluateDay bundles both checks.
func EvaluateDay(log model.DailyLog, schedule model.Schedule, threshold int) Evaluation {
	return Evaluation{
		IsKept: IsStreakKept(log, schedule, threshold),
		Rate:   CompletionRate(log, schedule),
	}
}
