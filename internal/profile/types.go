package profile

import "time"

// DayLayout is the calendar-date form used for streak accounting. Streaks
// compare whole days, never clock times.
const DayLayout = "2006-01-02"

// Profile is the persisted user record. Level is always derived from XP
// inside this package; a stored level that drifted from its XP is repaired
// on restore.
type Profile struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	AvatarRef      string    `json:"avatar"`
	XP             int       `json:"xp"`
	Level          int       `json:"level"`
	Streak         int       `json:"streak"`
	LastActiveDate string    `json:"lastActiveDate,omitempty"`
	JoinedAt       time.Time `json:"joinedAt"`
	LastLogin      time.Time `json:"lastLogin"`
}

// Seed carries the identity fields supplied at login. Everything is
// optional; a missing ID gets a generated one on first login.
type Seed struct {
	ID        string
	Name      string
	Email     string
	AvatarRef string
}

// FieldPatch is a partial identity update. Nil fields are left alone.
type FieldPatch struct {
	Name      *string
	Email     *string
	AvatarRef *string
}

// levelForXP derives level from experience: 100 XP per level, starting at 1.
func levelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/100 + 1
}
