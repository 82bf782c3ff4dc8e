package goals

import (
	"context"
	"testing"

	"carddeck/internal/store"
)

func TestDefaultsWhenStoreEmpty(t *testing.T) {
	tr := NewTracker(context.Background(), store.NewMemory())
	if tr.Goals() != DefaultGoals() {
		t.Fatalf("expected defaults, got %#v", tr.Goals())
	}
}

func TestUpdateMergesAndPersists(t *testing.T) {
	s := store.NewMemory()
	ctx := context.Background()

	tr := NewTracker(ctx, s)
	daily := 5
	tr.Update(ctx, Patch{DailyCards: &daily})

	restored := NewTracker(ctx, s)
	if restored.Goals().DailyCards != 5 {
		t.Fatalf("expected daily target persisted, got %d", restored.Goals().DailyCards)
	}
	if restored.Goals().WeeklyCards != DefaultGoals().WeeklyCards {
		t.Fatalf("expected untouched weekly target, got %d", restored.Goals().WeeklyCards)
	}
}

func TestUpdateIgnoresNonPositiveTargets(t *testing.T) {
	tr := NewTracker(context.Background(), store.NewMemory())
	zero := 0
	tr.Update(context.Background(), Patch{DailyCards: &zero})
	if tr.Goals().DailyCards != DefaultGoals().DailyCards {
		t.Fatalf("expected non-positive target ignored, got %d", tr.Goals().DailyCards)
	}
}

func TestCheckDailyReports(t *testing.T) {
	tr := NewTracker(context.Background(), store.NewMemory())
	daily := 4
	tr.Update(context.Background(), Patch{DailyCards: &daily})

	cases := []struct {
		current      int
		wantMet      bool
		wantProgress int
	}{
		{0, false, 0},
		{1, false, 25},
		{4, true, 100},
		{9, true, 100},
	}
	for _, tc := range cases {
		got := tr.CheckDaily(tc.current)
		if got.Met != tc.wantMet || got.Progress != tc.wantProgress {
			t.Fatalf("CheckDaily(%d) = %#v, want met=%v progress=%d", tc.current, got, tc.wantMet, tc.wantProgress)
		}
		if got.Target != 4 || got.Current != tc.current {
			t.Fatalf("CheckDaily(%d) echoed wrong target/current: %#v", tc.current, got)
		}
	}
}

func TestCorruptGoalsFallBackToDefaults(t *testing.T) {
	s := store.NewMemory()
	ctx := context.Background()
	s.Write(ctx, store.Goals, Goals{DailyCards: -3, WeeklyCards: 0, StreakGoal: -1})

	tr := NewTracker(ctx, s)
	if tr.Goals() != DefaultGoals() {
		t.Fatalf("expected invalid stored goals replaced by defaults, got %#v", tr.Goals())
	}
}

func TestCheckStreakAgainstGoal(t *testing.T) {
	tr := NewTracker(context.Background(), store.NewMemory())
	got := tr.CheckStreak(7)
	if !got.Met || got.Progress != 100 {
		t.Fatalf("expected 7-day streak to meet default goal, got %#v", got)
	}
}
