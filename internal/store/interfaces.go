package store

import "context"

// Collection is a logical persistence namespace. Each collection holds one
// JSON document and is written by exactly one owning component.
type Collection string

const (
	Progress      Collection = "progress"
	Profile       Collection = "profile"
	Notes         Collection = "notes"
	Achievements  Collection = "achievements"
	Goals         Collection = "goals"
	Theme         Collection = "theme"
	SearchHistory Collection = "search-history"
	ExpandedState Collection = "expanded-state"
	Activity      Collection = "activity"
)

// Store persists whole collections. Read and Write are best-effort: a
// failed read leaves the caller's default in place, a failed write is
// logged and dropped. In-memory state stays authoritative for the session.
type Store interface {
	EnsureSchema(ctx context.Context) error
	Read(ctx context.Context, c Collection, out any)
	Write(ctx context.Context, c Collection, v any)
	Clear(ctx context.Context, c Collection)
	Close() error
}
