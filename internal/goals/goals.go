package goals

import (
	"context"

	"carddeck/internal/store"
)

// Goals are the study targets. All three are positive; absent or corrupt
// stored values fall back to these defaults.
type Goals struct {
	DailyCards  int `json:"dailyCards"`
	WeeklyCards int `json:"weeklyCards"`
	StreakGoal  int `json:"streakGoal"`
}

func DefaultGoals() Goals {
	return Goals{DailyCards: 3, WeeklyCards: 15, StreakGoal: 7}
}

// Patch is a partial goals update. Nil or non-positive fields are ignored.
type Patch struct {
	DailyCards  *int
	WeeklyCards *int
	StreakGoal  *int
}

// Report describes progress toward one target. Progress is clamped to
// 0..100.
type Report struct {
	Met      bool `json:"met"`
	Progress int  `json:"progress"`
	Target   int  `json:"target"`
	Current  int  `json:"current"`
}

type Tracker struct {
	store store.Store
	goals Goals
}

func NewTracker(ctx context.Context, s store.Store) *Tracker {
	t := &Tracker{store: s, goals: DefaultGoals()}
	s.Read(ctx, store.Goals, &t.goals)
	if t.goals.DailyCards <= 0 {
		t.goals.DailyCards = DefaultGoals().DailyCards
	}
	if t.goals.WeeklyCards <= 0 {
		t.goals.WeeklyCards = DefaultGoals().WeeklyCards
	}
	if t.goals.StreakGoal <= 0 {
		t.goals.StreakGoal = DefaultGoals().StreakGoal
	}
	return t
}

func (t *Tracker) Goals() Goals { return t.goals }

// Update merges positive fields and persists.
func (t *Tracker) Update(ctx context.Context, patch Patch) Goals {
	if patch.DailyCards != nil && *patch.DailyCards > 0 {
		t.goals.DailyCards = *patch.DailyCards
	}
	if patch.WeeklyCards != nil && *patch.WeeklyCards > 0 {
		t.goals.WeeklyCards = *patch.WeeklyCards
	}
	if patch.StreakGoal != nil && *patch.StreakGoal > 0 {
		t.goals.StreakGoal = *patch.StreakGoal
	}
	t.store.Write(ctx, store.Goals, t.goals)
	return t.goals
}

func (t *Tracker) CheckDaily(completedToday int) Report {
	return report(completedToday, t.goals.DailyCards)
}

func (t *Tracker) CheckWeekly(completedThisWeek int) Report {
	return report(completedThisWeek, t.goals.WeeklyCards)
}

func (t *Tracker) CheckStreak(streak int) Report {
	return report(streak, t.goals.StreakGoal)
}

func report(current, target int) Report {
	if current < 0 {
		current = 0
	}
	progress := 0
	if target > 0 {
		progress = 100 * current / target
	}
	if progress > 100 {
		progress = 100
	}
	return Report{
		Met:      current >= target,
		Progress: progress,
		Target:   target,
		Current:  current,
	}
}
