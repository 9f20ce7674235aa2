package model

// StreakState is the cached streak derivation. It is a memoized function of
// (logs, schedule, settings) updated incrementally on each event, persisted
// verbatim, and re-derivable from the log history.
type StreakState struct {
	CurrentStreak int `json:"currentStreak"`
	BestStreak    int `json:"bestStreak"`
	// LastStreakDate is the most recent day key for which the keep condition
	// was satisfied and counted; empty when no day has counted yet.
	LastStreakDate string `json:"lastStreakDate,omitempty"`
	// FreezeLedger lists the skipped day keys bridged by a streak freeze,
	// one entry per skipped date.
	FreezeLedger []string `json:"freezeLedger"`
	// LastClosedDate is the most recent day key confirmed past; days up to
	// and including it have had their close transition applied.
	LastClosedDate string `json:"lastClosedDate,omitempty"`
}

// FreezeUsed reports whether a freeze was already consumed for date.
func (s StreakState) FreezeUsed(date string) bool {
	for _, used := range s.FreezeLedger {
		if used == date {
			return true
		}
	}
	return false
}

func DefaultStreak() StreakState {
	return StreakState{FreezeLedger: []string{}}
}
