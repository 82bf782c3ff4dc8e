package telemetry

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := NewJournal(filepath.Join(t.TempDir(), "activity.log"))
	if err != nil {
		t.Fatalf("new journal: %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })
	return j
}

var monday = time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)

func TestCompletedOnCountsNetCompletions(t *testing.T) {
	j := newTestJournal(t)

	j.Append(Event{TS: monday, Type: EventComplete, CardID: "a"})
	j.Append(Event{TS: monday.Add(time.Hour), Type: EventComplete, CardID: "b"})
	j.Append(Event{TS: monday.Add(2 * time.Hour), Type: EventUncomplete, CardID: "a"})
	j.Append(Event{TS: monday.AddDate(0, 0, 1), Type: EventComplete, CardID: "c"})
	j.Append(Event{TS: monday, Type: EventBookmark, CardID: "d"})

	if got := j.CompletedOn(monday); got != 1 {
		t.Fatalf("expected net 1 completion on monday, got %d", got)
	}
	if got := j.CompletedOn(monday.AddDate(0, 0, 1)); got != 1 {
		t.Fatalf("expected 1 completion on tuesday, got %d", got)
	}
}

func TestCompletedInWeekSpansDays(t *testing.T) {
	j := newTestJournal(t)

	j.Append(Event{TS: monday, Type: EventComplete, CardID: "a"})
	j.Append(Event{TS: monday.AddDate(0, 0, 3), Type: EventComplete, CardID: "b"})
	// Next ISO week must not count.
	j.Append(Event{TS: monday.AddDate(0, 0, 7), Type: EventComplete, CardID: "c"})

	if got := j.CompletedInWeek(monday); got != 2 {
		t.Fatalf("expected 2 completions in week, got %d", got)
	}
}

func TestCountNeverGoesNegative(t *testing.T) {
	j := newTestJournal(t)
	j.Append(Event{TS: monday, Type: EventUncomplete, CardID: "a"})
	if got := j.CompletedOn(monday); got != 0 {
		t.Fatalf("expected floor at 0, got %d", got)
	}
}

func TestEmptyPathJournalDiscards(t *testing.T) {
	j, err := NewJournal("")
	if err != nil {
		t.Fatalf("new journal: %v", err)
	}
	j.Append(Event{TS: monday, Type: EventComplete})
	if got := j.CompletedOn(monday); got != 0 {
		t.Fatalf("expected nop journal to count nothing, got %d", got)
	}
}
