package engine

import "github.com/sandeepkv93/routined/internal/model"

// freezeWindowDays is the rolling quota window: at most one freeze may be
// consumed per any 7 consecutive calendar days, measured over the ledger.
const freezeWindowDays = 7

// freezeAvailable reports whether a freeze may be consumed for the skipped
// date: freezes must be enabled, the date must not already be in the ledger,
// and no previously consumed freeze may fall within the rolling window.
func freezeAvailable(streak model.StreakState, settings model.Settings, skipped string) bool {
	if !settings.StreakFreezeEnabled {
		return false
	}
	if streak.FreezeUsed(skipped) {
		return false
	}
	for _, used := range streak.FreezeLedger {
		gap, err := model.DaysBetween(used, skipped)
		if err != nil {
			continue
		}
		if gap < 0 {
			gap = -gap
		}
		if gap < freezeWindowDays {
			return false
		}
	}
	return true
}

// recordKeptDay is the TaskToggled transition for a date whose log now keeps
// the streak. It returns the updated state; the caller has already verified
// the keep condition and that date is a valid day key.
//
// Continuity: the streak increments when date immediately follows
// LastStreakDate, or when exactly one day was skipped and a freeze bridges
// it. Any longer forward gap resets the streak to 1 at date. Qualifying
// toggles on dates at or before LastStreakDate leave the state untouched:
// editing history never rewinds a streak already counted.
func recordKeptDay(streak model.StreakState, settings model.Settings, date string) model.StreakState {
	if date == streak.LastStreakDate {
		return streak
	}

	out := streak
	continuation := false
	if streak.LastStreakDate != "" {
		gap, err := model.DaysBetween(streak.LastStreakDate, date)
		if err != nil {
			return streak
		}
		if gap <= 0 {
			return streak
		}
		switch gap {
		case 1:
			continuation = true
		case 2:
			skipped, skipErr := model.AddDays(streak.LastStreakDate, 1)
			if skipErr == nil && freezeAvailable(streak, settings, skipped) {
				continuation = true
				out.FreezeLedger = append(append([]string{}, streak.FreezeLedger...), skipped)
			}
		}
	}

	if continuation {
		out.CurrentStreak = streak.CurrentStreak + 1
	} else {
		out.CurrentStreak = 1
	}
	if out.CurrentStreak > out.BestStreak {
		out.BestStreak = out.CurrentStreak
	}
	out.LastStreakDate = date
	return out
}

// closeDay is the DayClosed transition: date has been confirmed past without
// a qualifying log. A miss that could still be bridged by a freeze tomorrow
// leaves the streak intact; any other miss beyond LastStreakDate zeroes the
// current streak. BestStreak and LastStreakDate are retained for history.
func closeDay(streak model.StreakState, settings model.Settings, date string, kept bool) model.StreakState {
	out := streak
	if model.IsValidDay(date) {
		if streak.LastClosedDate == "" || streak.LastClosedDate < date {
			out.LastClosedDate = date
		}
	}
	if kept {
		return out
	}
	if streak.LastStreakDate != "" {
		gap, err := model.DaysBetween(streak.LastStreakDate, date)
		if err != nil || gap <= 0 {
			return out
		}
		if gap == 1 && freezeAvailable(streak, settings, date) {
			return out
		}
	}
	out.CurrentStreak = 0
	return out
}
