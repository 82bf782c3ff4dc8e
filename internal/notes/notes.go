// Package notes keeps free-text annotations per card. Absence is the one
// canonical "no note" form: saving empty text removes the entry instead of
// leaving a blank string behind.
package notes

import (
	"context"
	"strings"

	"carddeck/internal/store"
)

type Notes struct {
	store store.Store
	byID  map[string]string
}

func New(ctx context.Context, s store.Store) *Notes {
	n := &Notes{store: s, byID: map[string]string{}}
	s.Read(ctx, store.Notes, &n.byID)
	return n
}

// Get returns the note for id, or "" when none exists.
func (n *Notes) Get(id string) string {
	return n.byID[id]
}

// Save upserts the note. Empty or whitespace-only text deletes the entry.
func (n *Notes) Save(ctx context.Context, id, text string) {
	if strings.TrimSpace(text) == "" {
		n.Delete(ctx, id)
		return
	}
	n.byID[id] = text
	n.persist(ctx)
}

// Delete removes the entry entirely rather than blanking it.
func (n *Notes) Delete(ctx context.Context, id string) {
	if _, ok := n.byID[id]; !ok {
		return
	}
	delete(n.byID, id)
	n.persist(ctx)
}

func (n *Notes) Count() int { return len(n.byID) }

func (n *Notes) persist(ctx context.Context) {
	n.store.Write(ctx, store.Notes, n.byID)
}
