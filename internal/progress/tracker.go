package progress

import (
	"context"
	"sort"
	"time"

	"carddeck/internal/store"
)

// XP awarded per toggle. Removing a card refunds the same amount; the
// profile floors the balance at zero.
const (
	CompletedXP  = 10
	BookmarkedXP = 5
)

// XPSink receives the XP delta for a toggle. Exactly one delta is applied
// per toggle call no matter how many observers watch the resulting state.
type XPSink interface {
	ApplyXPDelta(ctx context.Context, delta int) (xp, level int)
}

type persisted struct {
	CompletedCards []string `json:"completedCards"`
	Bookmarks      []string `json:"bookmarks"`
	LastUpdated    string   `json:"lastUpdated"`
}

// Tracker owns the completed and bookmarked card sets. Toggling is the
// only mutation path; there is no direct "set completed" to keep repeated
// calls from double counting rewards.
type Tracker struct {
	store      store.Store
	sink       XPSink
	completed  map[string]bool
	bookmarked map[string]bool
}

// NewTracker restores both sets from the progress collection. Corrupt or
// missing data degrades to empty sets.
func NewTracker(ctx context.Context, s store.Store, sink XPSink) *Tracker {
	var doc persisted
	s.Read(ctx, store.Progress, &doc)

	t := &Tracker{
		store:      s,
		sink:       sink,
		completed:  map[string]bool{},
		bookmarked: map[string]bool{},
	}
	for _, id := range doc.CompletedCards {
		t.completed[id] = true
	}
	for _, id := range doc.Bookmarks {
		t.bookmarked[id] = true
	}
	return t
}

// ToggleCompleted flips completion for id and reports the new membership.
func (t *Tracker) ToggleCompleted(ctx context.Context, id string, now time.Time) bool {
	added := t.flip(t.completed, id)
	if added {
		t.sink.ApplyXPDelta(ctx, CompletedXP)
	} else {
		t.sink.ApplyXPDelta(ctx, -CompletedXP)
	}
	t.persist(ctx, now)
	return added
}

// ToggleBookmarked flips the bookmark for id and reports the new membership.
func (t *Tracker) ToggleBookmarked(ctx context.Context, id string, now time.Time) bool {
	added := t.flip(t.bookmarked, id)
	if added {
		t.sink.ApplyXPDelta(ctx, BookmarkedXP)
	} else {
		t.sink.ApplyXPDelta(ctx, -BookmarkedXP)
	}
	t.persist(ctx, now)
	return added
}

func (t *Tracker) IsCompleted(id string) bool  { return t.completed[id] }
func (t *Tracker) IsBookmarked(id string) bool { return t.bookmarked[id] }
func (t *Tracker) CompletedCount() int         { return len(t.completed) }
func (t *Tracker) BookmarkedCount() int        { return len(t.bookmarked) }

// CompletedIDs returns the completed set as a sorted slice.
func (t *Tracker) CompletedIDs() []string {
	return sortedKeys(t.completed)
}

func (t *Tracker) BookmarkedIDs() []string {
	return sortedKeys(t.bookmarked)
}

func (t *Tracker) flip(set map[string]bool, id string) bool {
	if set[id] {
		delete(set, id)
		return false
	}
	set[id] = true
	return true
}

func (t *Tracker) persist(ctx context.Context, now time.Time) {
	t.store.Write(ctx, store.Progress, persisted{
		CompletedCards: sortedKeys(t.completed),
		Bookmarks:      sortedKeys(t.bookmarked),
		LastUpdated:    now.UTC().Format(time.RFC3339),
	})
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
