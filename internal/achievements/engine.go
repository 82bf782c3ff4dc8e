package achievements

import (
	"context"
	"sort"
	"time"

	"carddeck/internal/store"
)

// Engine tracks which definitions have fired. The persisted unlocked set
// is monotonically non-decreasing: evaluation can only append, never
// revoke or re-fire.
type Engine struct {
	store    store.Store
	defs     []Definition
	unlocked map[string]time.Time
}

// NewEngine restores the unlocked set from the achievements collection.
func NewEngine(ctx context.Context, s store.Store, defs []Definition) *Engine {
	var records []Unlock
	s.Read(ctx, store.Achievements, &records)

	e := &Engine{store: s, defs: defs, unlocked: map[string]time.Time{}}
	for _, r := range records {
		if r.ID != "" {
			e.unlocked[r.ID] = r.UnlockedAt
		}
	}
	return e
}

// Evaluate runs every not-yet-unlocked predicate against stats, persists
// any new unlocks and returns them as a one-shot batch. Calling again with
// the same stats returns nothing.
func (e *Engine) Evaluate(ctx context.Context, stats Stats, now time.Time) []Definition {
	var fired []Definition
	for _, def := range e.defs {
		if _, done := e.unlocked[def.ID]; done {
			continue
		}
		if def.Unlocked == nil || !def.Unlocked(stats) {
			continue
		}
		e.unlocked[def.ID] = now
		fired = append(fired, def)
	}
	if len(fired) > 0 {
		e.persist(ctx)
	}
	return fired
}

// Unlocked returns the unlock records sorted by moment, earliest first.
func (e *Engine) Unlocked() []Unlock {
	out := make([]Unlock, 0, len(e.unlocked))
	for id, at := range e.unlocked {
		out = append(out, Unlock{ID: id, UnlockedAt: at})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UnlockedAt.Equal(out[j].UnlockedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].UnlockedAt.Before(out[j].UnlockedAt)
	})
	return out
}

func (e *Engine) IsUnlocked(id string) bool {
	_, ok := e.unlocked[id]
	return ok
}

// Definitions returns the static table, for display alongside unlock state.
func (e *Engine) Definitions() []Definition { return e.defs }

func (e *Engine) persist(ctx context.Context) {
	e.store.Write(ctx, store.Achievements, e.Unlocked())
}
