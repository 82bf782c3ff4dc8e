package profile

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"carddeck/internal/store"
)

// Manager owns the user profile for the running session. It is the only
// writer of the profile collection and the only place XP and level change.
type Manager struct {
	store   store.Store
	logger  *log.Logger
	current *Profile
}

func NewManager(s store.Store, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &Manager{store: s, logger: logger.With("component", "profile")}
}

// Login restores the persisted profile or creates a fresh one from seed.
// LastLogin is stamped on every login, JoinedAt only the first time.
func (m *Manager) Login(ctx context.Context, seed Seed, now time.Time) *Profile {
	var p Profile
	m.store.Read(ctx, store.Profile, &p)

	if p.ID == "" {
		id := seed.ID
		if id == "" {
			id = uuid.NewString()
		}
		p = Profile{
			ID:        id,
			Name:      seed.Name,
			Email:     seed.Email,
			AvatarRef: seed.AvatarRef,
		}
		m.logger.Info("created profile", "id", p.ID)
	}
	if p.JoinedAt.IsZero() {
		p.JoinedAt = now
	}
	p.LastLogin = now
	p.Level = levelForXP(p.XP)

	m.current = &p
	m.persist(ctx)
	return m.snapshot()
}

// Logout drops the in-memory profile and removes the persisted record.
func (m *Manager) Logout(ctx context.Context) {
	m.current = nil
	m.store.Clear(ctx, store.Profile)
}

// Current returns a copy of the active profile, or nil when logged out.
func (m *Manager) Current() *Profile {
	return m.snapshot()
}

// ApplyXPDelta adjusts XP, floored at zero, rederives level and persists.
// Returns the resulting XP and level.
func (m *Manager) ApplyXPDelta(ctx context.Context, delta int) (xp, level int) {
	if m.current == nil {
		return 0, 0
	}
	m.current.XP += delta
	if m.current.XP < 0 {
		m.current.XP = 0
	}
	m.current.Level = levelForXP(m.current.XP)
	m.persist(ctx)
	return m.current.XP, m.current.Level
}

// UpdateFields merges identity fields. Derived fields are rederived before
// persisting so a patch can never leave level stale.
func (m *Manager) UpdateFields(ctx context.Context, patch FieldPatch) {
	if m.current == nil {
		return
	}
	if patch.Name != nil {
		m.current.Name = *patch.Name
	}
	if patch.Email != nil {
		m.current.Email = *patch.Email
	}
	if patch.AvatarRef != nil {
		m.current.AvatarRef = *patch.AvatarRef
	}
	m.current.Level = levelForXP(m.current.XP)
	m.persist(ctx)
}

func (m *Manager) persist(ctx context.Context) {
	if m.current == nil {
		return
	}
	m.store.Write(ctx, store.Profile, m.current)
}

func (m *Manager) snapshot() *Profile {
	if m.current == nil {
		return nil
	}
	p := *m.current
	return &p
}
