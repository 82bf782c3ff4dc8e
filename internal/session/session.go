// Package session wires the gamification containers into one engine and
// owns the control flow for every state change: mutate, derive dependents,
// persist, all before the call returns.
package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"carddeck/internal/achievements"
	"carddeck/internal/catalog"
	"carddeck/internal/goals"
	"carddeck/internal/notes"
	"carddeck/internal/profile"
	"carddeck/internal/progress"
	"carddeck/internal/store"
	"carddeck/internal/telemetry"
)

var ErrNotLoggedIn = errors.New("no active profile; log in first")

type Session struct {
	mu  sync.Mutex
	cfg Config

	logger  *log.Logger
	store   store.Store
	catalog *catalog.Catalog
	journal *telemetry.Journal

	profile *profile.Manager
	tracker *progress.Tracker
	notes   *notes.Notes
	engine  *achievements.Engine
	goals   *goals.Tracker
	prefs   *prefs

	sessionID string
	now       func() time.Time
}

// New opens the durable store under cfg.DataDir, loads the deck catalog
// and restores every container. Constructors fail closed: anything opened
// before an error is closed again.
func New(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	st, err := store.NewSQLite(filepath.Join(cfg.DataDir, "state.db"), logger)
	if err != nil {
		return nil, err
	}
	if err := st.EnsureSchema(context.Background()); err != nil {
		_ = st.Close()
		return nil, err
	}

	cat, err := catalog.Load(cfg.DecksDir)
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	journal, err := telemetry.NewJournal(cfg.JournalPath)
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	s := build(cfg, st, cat, journal, logger)
	return s, nil
}

// build assembles a session over already-opened collaborators. Tests use
// it with the in-memory store.
func build(cfg Config, st store.Store, cat *catalog.Catalog, journal *telemetry.Journal, logger *log.Logger) *Session {
	ctx := context.Background()
	sessionID := uuid.NewString()
	pm := profile.NewManager(st, logger)
	s := &Session{
		cfg:       cfg,
		logger:    logger.With("session", sessionID[:8]),
		store:     st,
		catalog:   cat,
		journal:   journal,
		profile:   pm,
		tracker:   progress.NewTracker(ctx, st, ctxSink{pm}),
		notes:     notes.New(ctx, st),
		engine:    achievements.NewEngine(ctx, st, achievements.Defaults()),
		goals:     goals.NewTracker(ctx, st),
		prefs:     newPrefs(ctx, st),
		sessionID: sessionID,
		now:       time.Now,
	}
	return s
}

// ctxSink adapts the profile manager to the tracker's XP sink.
type ctxSink struct{ pm *profile.Manager }

func (c ctxSink) ApplyXPDelta(ctx context.Context, delta int) (int, int) {
	return c.pm.ApplyXPDelta(ctx, delta)
}

func (s *Session) Close() error {
	var first error
	if err := s.journal.Close(); err != nil {
		first = err
	}
	if err := s.store.Close(); err != nil && first == nil {
		first = err
	}
	return first
}

// Login restores or creates the profile, advances the streak for today
// and evaluates achievements once against fresh stats.
func (s *Session) Login(ctx context.Context, seed profile.Seed) LoginResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.profile.Login(ctx, seed, now)
	s.profile.TouchStreak(ctx, now)
	s.journal.Append(telemetry.Event{TS: now, Type: telemetry.EventLogin, Ref: s.sessionID})

	unlocks := s.evaluateLocked(ctx, now)
	s.logger.Info("logged in", "profile", s.profile.Current().ID, "streak", s.profile.Current().Streak)
	return LoginResult{Profile: s.profile.Current(), NewUnlocks: unlocks}
}

// Logout drops the profile from memory and from the store. Progress,
// notes, achievements and goals stay.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Logout(ctx)
	s.logger.Info("logged out")
}

func (s *Session) Profile() *profile.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Current()
}

// CompleteCard toggles completion for id: XP moves once, the streak is
// touched on add, achievements are evaluated against fresh stats and
// their rewards applied, and every mutated container has persisted itself
// before this returns.
func (s *Session) CompleteCard(ctx context.Context, id string) (ToggleResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile.Current() == nil {
		return ToggleResult{}, ErrNotLoggedIn
	}

	now := s.now()
	xpBefore := s.profile.Current().XP
	added := s.tracker.ToggleCompleted(ctx, id, now)
	if added {
		s.profile.TouchStreak(ctx, now)
		s.journal.Append(telemetry.Event{TS: now, Type: telemetry.EventComplete, CardID: id})
	} else {
		s.journal.Append(telemetry.Event{TS: now, Type: telemetry.EventUncomplete, CardID: id})
	}

	unlocks := s.evaluateLocked(ctx, now)
	return s.toggleResult(id, added, xpBefore, unlocks), nil
}

// ToggleBookmark flips the bookmark for id. Bookmarks are not calendar
// activity, so the streak is left alone.
func (s *Session) ToggleBookmark(ctx context.Context, id string) (ToggleResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile.Current() == nil {
		return ToggleResult{}, ErrNotLoggedIn
	}

	now := s.now()
	xpBefore := s.profile.Current().XP
	added := s.tracker.ToggleBookmarked(ctx, id, now)
	evType := telemetry.EventUnbookmark
	if added {
		evType = telemetry.EventBookmark
	}
	s.journal.Append(telemetry.Event{TS: now, Type: evType, CardID: id})

	unlocks := s.evaluateLocked(ctx, now)
	return s.toggleResult(id, added, xpBefore, unlocks), nil
}

func (s *Session) toggleResult(id string, added bool, xpBefore int, unlocks []achievements.Definition) ToggleResult {
	p := s.profile.Current()
	return ToggleResult{
		CardID:     id,
		Added:      added,
		XPDelta:    p.XP - xpBefore,
		XP:         p.XP,
		Level:      p.Level,
		Streak:     p.Streak,
		NewUnlocks: unlocks,
	}
}

// evaluateLocked recomputes stats, unlocks newly satisfied achievements
// and pays their XP rewards through the profile.
func (s *Session) evaluateLocked(ctx context.Context, now time.Time) []achievements.Definition {
	fired := s.engine.Evaluate(ctx, s.statsLocked(), now)
	for _, def := range fired {
		s.profile.ApplyXPDelta(ctx, def.XPReward)
		s.journal.Append(telemetry.Event{TS: now, Type: telemetry.EventUnlock, Ref: def.ID})
		s.logger.Info("achievement unlocked", "id", def.ID, "xp", def.XPReward)
	}
	return fired
}

// Stats is computed on demand from the owned containers; it is never
// cached, so it cannot drift from its inputs.
func (s *Session) Stats() achievements.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statsLocked()
}

func (s *Session) statsLocked() achievements.Stats {
	streak := 0
	if p := s.profile.Current(); p != nil {
		streak = p.Streak
	}

	full := 0
	for _, ids := range s.catalog.CardIDsByCategory() {
		done := true
		for _, id := range ids {
			if !s.tracker.IsCompleted(id) {
				done = false
				break
			}
		}
		if done {
			full++
		}
	}

	return achievements.Stats{
		CompletedCount:           s.tracker.CompletedCount(),
		BookmarkedCount:          s.tracker.BookmarkedCount(),
		TotalCards:               s.catalog.TotalCards(),
		CategoriesFullyCompleted: full,
		Streak:                   streak,
	}
}

func (s *Session) IsCompleted(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.IsCompleted(id)
}

func (s *Session) IsBookmarked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.IsBookmarked(id)
}

func (s *Session) Note(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notes.Get(id)
}

func (s *Session) SaveNote(ctx context.Context, id, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes.Save(ctx, id, text)
}

func (s *Session) DeleteNote(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes.Delete(ctx, id)
}

func (s *Session) Goals() goals.Goals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goals.Goals()
}

func (s *Session) UpdateGoals(ctx context.Context, patch goals.Patch) goals.Goals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goals.Update(ctx, patch)
}

func (s *Session) DailyGoalReport() goals.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goals.CheckDaily(s.journal.CompletedOn(s.now()))
}

func (s *Session) WeeklyGoalReport() goals.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goals.CheckWeekly(s.journal.CompletedInWeek(s.now()))
}

func (s *Session) StreakGoalReport() goals.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	streak := 0
	if p := s.profile.Current(); p != nil {
		streak = p.Streak
	}
	return s.goals.CheckStreak(streak)
}

func (s *Session) Achievements() ([]achievements.Definition, []achievements.Unlock) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Definitions(), s.engine.Unlocked()
}

func (s *Session) Catalog() *catalog.Catalog { return s.catalog }
