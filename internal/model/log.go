package model

import "time"

// DailyLog records which tasks were completed on one calendar date.
// Logs are created lazily on the first toggle for a date and never deleted.
type DailyLog struct {
	Date             string    `json:"date"`
	CompletedTaskIDs []string  `json:"completedTaskIds"`
	LastUpdated      time.Time `json:"lastUpdated"`
}

// NewDailyLog returns an empty log for date.
func NewDailyLog(date string, now time.Time) DailyLog {
	return DailyLog{Date: date, CompletedTaskIDs: []string{}, LastUpdated: now}
}

// Completed reports whether taskID is in the completed set.
func (l DailyLog) Completed(taskID string) bool {
	for _, id := range l.CompletedTaskIDs {
		if id == taskID {
			return true
		}
	}
	return false
}

// Toggle flips taskID's membership in the completed set and returns the
// updated log. Toggling twice restores the prior set.
func (l DailyLog) Toggle(taskID string, now time.Time) DailyLog {
	out := l
	out.LastUpdated = now
	if l.Completed(taskID) {
		kept := make([]string, 0, len(l.CompletedTaskIDs)-1)
		for _, id := range l.CompletedTaskIDs {
			if id != taskID {
				kept = append(kept, id)
			}
		}
		out.CompletedTaskIDs = kept
		return out
	}
	out.CompletedTaskIDs = append(append([]string{}, l.CompletedTaskIDs...), taskID)
	return out
}

// LogMap is the append/update-only store of daily logs keyed by date.
type LogMap map[string]DailyLog

// Clone deep-copies the map and each log's completed set.
func (m LogMap) Clone() LogMap {
	out := make(LogMap, len(m))
	for date, log := range m {
		copied := log
		copied.CompletedTaskIDs = append([]string{}, log.CompletedTaskIDs...)
		out[date] = copied
	}
	return out
}
