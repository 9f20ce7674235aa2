package stats

import (
	"sort"
	"time"

	"github.com/sandeepkv93/routined/internal/model"
)

const rankingLimit = 10

// Aggregator buckets historical logs and ranks tasks over date ranges. It
// reads the current schedule and the full log history and never mutates
// either; log entries with malformed date keys are skipped.
type Aggregator struct {
	schedule model.Schedule
	logs     model.LogMap
}

func NewAggregator(schedule model.Schedule, logs model.LogMap) *Aggregator {
	if logs == nil {
		logs = make(model.LogMap)
	}
	return &Aggregator{schedule: schedule, logs: logs}
}

// Bucket is one time-period grouping in a historical chart.
type Bucket struct {
	Label     string
	StartDate string
	EndDate   string
	// CompletedCount is the average completed tasks per calendar day in the
	// bucket; days without a log contribute zero.
	CompletedCount       float64
	CompletionPercentage float64
	IsCurrent            bool
}

// TaskMisses is one row of the most-missed ranking.
type TaskMisses struct {
	TaskID      string
	Title       string
	MissedCount int
}

// TaskRate is one row of the top-by-rate ranking.
type TaskRate struct {
	TaskID         string
	Title          string
	CompletedCount int
	RatePercent    float64
}

// knownCompleted counts the completed ids on date that resolve against the
// current schedule. Missing logs and stale ids both count zero.
func (a *Aggregator) knownCompleted(date string) int {
	log, ok := a.logs[date]
	if !ok {
		return 0
	}
	n := 0
	for _, id := range log.CompletedTaskIDs {
		if _, found := a.schedule.TaskByID(id); found {
			n++
		}
	}
	return n
}

// Buckets returns the period's bucket sequence anchored at ref, ascending,
// with the bucket containing ref last and flagged current.
func (a *Aggregator) Buckets(p Period, ref time.Time) []Bucket {
	count := p.BucketCount()
	out := make([]Bucket, 0, count)
	totalTasks := a.schedule.TaskCount()

	for index := count - 1; index >= 0; index-- {
		start, end := bucketBounds(p, ref, index)
		days := 0
		completed := 0
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			days++
			completed += a.knownCompleted(d.Format(model.DayLayout))
		}

		bucket := Bucket{
			Label:     bucketLabel(p, start),
			StartDate: start.Format(model.DayLayout),
			EndDate:   end.Format(model.DayLayout),
			IsCurrent: index == 0,
		}
		if days > 0 {
			bucket.CompletedCount = float64(completed) / float64(days)
		}
		if totalTasks > 0 {
			bucket.CompletionPercentage = 100 * bucket.CompletedCount / float64(totalTasks)
		}
		out = append(out, bucket)
	}
	return out
}

// MostMissed ranks tasks by how many days in the range they were not
// completed; a day with no log counts every task as missed. Only tasks with
// at least one miss appear, ties broken by schedule order, top 10.
func (a *Aggregator) MostMissed(dates []string) []TaskMisses {
	tasks := a.schedule.AllTasks()
	out := make([]TaskMisses, 0, len(tasks))
	for _, task := range tasks {
		missed := 0
		for _, date := range dates {
			if !model.IsValidDay(date) {
				continue
			}
			log, ok := a.logs[date]
			if !ok || !log.Completed(task.ID) {
				missed++
			}
		}
		if missed > 0 {
			out = append(out, TaskMisses{TaskID: task.ID, Title: task.Title, MissedCount: missed})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MissedCount > out[j].MissedCount })
	if len(out) > rankingLimit {
		out = out[:rankingLimit]
	}
	return out
}

// TopByRate ranks tasks by completed days over the range, descending, ties
// broken by schedule order, top 10.
func (a *Aggregator) TopByRate(dates []string) []TaskRate {
	valid := 0
	for _, date := range dates {
		if model.IsValidDay(date) {
			valid++
		}
	}
	tasks := a.schedule.AllTasks()
	out := make([]TaskRate, 0, len(tasks))
	for _, task := range tasks {
		completed := 0
		for _, date := range dates {
			if !model.IsValidDay(date) {
				continue
			}
			if log, ok := a.logs[date]; ok && log.Completed(task.ID) {
				completed++
			}
		}
		row := TaskRate{TaskID: task.ID, Title: task.Title, CompletedCount: completed}
		if valid > 0 {
			row.RatePercent = 100 * float64(completed) / float64(valid)
		}
		out = append(out, row)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].RatePercent > out[j].RatePercent })
	if len(out) > rankingLimit {
		out = out[:rankingLimit]
	}
	return out
}

// LifetimeCompleted is the all-time count of completed entries across every
// log, stale ids included, matching the historical totals shown on the
// insights screen.
func (a *Aggregator) LifetimeCompleted() int {
	total := 0
	for date, log := range a.logs {
		if !model.IsValidDay(date) {
			continue
		}
		total += len(log.CompletedTaskIDs)
	}
	return total
}
