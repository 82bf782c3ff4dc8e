package session

import (
	"carddeck/internal/achievements"
	"carddeck/internal/profile"
)

// ToggleResult reports the outcome of one completion or bookmark toggle:
// the new membership, the net XP movement including achievement rewards,
// and any achievements unlocked by this very change.
type ToggleResult struct {
	CardID     string
	Added      bool
	XPDelta    int
	XP         int
	Level      int
	Streak     int
	NewUnlocks []achievements.Definition
}

// LoginResult carries the restored (or created) profile plus anything the
// login itself unlocked (streak achievements can fire here).
type LoginResult struct {
	Profile    *profile.Profile
	NewUnlocks []achievements.Definition
}
