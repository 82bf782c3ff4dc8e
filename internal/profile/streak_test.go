package profile

import (
	"context"
	"testing"
	"time"

	"carddeck/internal/store"
)

func loginAt(t *testing.T, last string, streak int) (*Manager, context.Context) {
	t.Helper()
	s := store.NewMemory()
	ctx := context.Background()
	s.Write(ctx, store.Profile, Profile{ID: "u-1", Streak: streak, LastActiveDate: last})
	m := NewManager(s, nil)
	m.Login(ctx, Seed{}, noon)
	return m, ctx
}

func TestTouchStreakFirstActivity(t *testing.T) {
	m, ctx := loginAt(t, "", 0)
	if got := m.TouchStreak(ctx, noon); got != 1 {
		t.Fatalf("expected streak 1 for new user, got %d", got)
	}
	if m.Current().LastActiveDate != noon.Format(DayLayout) {
		t.Fatalf("expected lastActiveDate stamped to today")
	}
}

func TestTouchStreakSameDayIsNoOp(t *testing.T) {
	m, ctx := loginAt(t, noon.Format(DayLayout), 4)
	if got := m.TouchStreak(ctx, noon); got != 4 {
		t.Fatalf("expected same-day no-op at 4, got %d", got)
	}
	// Repeated calls on the same day must not double count.
	if got := m.TouchStreak(ctx, noon.Add(3*time.Hour)); got != 4 {
		t.Fatalf("expected repeated same-day call to stay 4, got %d", got)
	}
}

func TestTouchStreakConsecutiveDayIncrements(t *testing.T) {
	yesterday := noon.AddDate(0, 0, -1).Format(DayLayout)
	m, ctx := loginAt(t, yesterday, 4)
	if got := m.TouchStreak(ctx, noon); got != 5 {
		t.Fatalf("expected streak 5 after consecutive day, got %d", got)
	}
}

func TestTouchStreakGapResets(t *testing.T) {
	threeDaysAgo := noon.AddDate(0, 0, -3).Format(DayLayout)
	m, ctx := loginAt(t, threeDaysAgo, 11)
	if got := m.TouchStreak(ctx, noon); got != 1 {
		t.Fatalf("expected streak reset to 1 after gap, got %d", got)
	}
}

func TestTouchStreakPersists(t *testing.T) {
	s := store.NewMemory()
	ctx := context.Background()
	m := NewManager(s, nil)
	m.Login(ctx, Seed{}, noon)
	m.TouchStreak(ctx, noon)

	var p Profile
	s.Read(ctx, store.Profile, &p)
	if p.Streak != 1 || p.LastActiveDate != noon.Format(DayLayout) {
		t.Fatalf("expected persisted streak state, got %#v", p)
	}
}
