package profile

import (
	"context"
	"time"
)

// TouchStreak advances the consecutive-day streak against now's calendar
// date. Run once when the profile becomes available and once per
// completion event:
//
//   - already counted today: no-op
//   - last active yesterday: streak grows by one
//   - gap of two or more days, or no history: streak restarts at one
//
// A single active session is assumed; concurrent processes are not
// coordinated.
func (m *Manager) TouchStreak(ctx context.Context, now time.Time) int {
	if m.current == nil {
		return 0
	}
	today := now.Format(DayLayout)
	if m.current.LastActiveDate == today {
		return m.current.Streak
	}

	yesterday := now.AddDate(0, 0, -1).Format(DayLayout)
	if m.current.LastActiveDate == yesterday {
		m.current.Streak++
	} else {
		m.current.Streak = 1
	}
	m.current.LastActiveDate = today
	m.persist(ctx)
	return m.current.Streak
}
