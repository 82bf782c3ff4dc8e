package achievements

import "time"

// Stats is the derived snapshot achievements are judged against. It is
// computed on demand from the live containers and never persisted, so it
// cannot drift from its inputs.
type Stats struct {
	CompletedCount           int
	BookmarkedCount          int
	TotalCards               int
	CategoriesFullyCompleted int
	Streak                   int
}

// Definition is one unlockable milestone. The predicate is a plain
// function over Stats; definitions are static data, registered once.
type Definition struct {
	ID          string
	Title       string
	Description string
	Icon        string
	XPReward    int
	Unlocked    func(Stats) bool
}

// Unlock records the moment a definition fired. Once present it is never
// removed.
type Unlock struct {
	ID         string    `json:"id"`
	UnlockedAt time.Time `json:"unlockedAt"`
}
