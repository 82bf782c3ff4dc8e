package session

import (
	"context"
	"strings"

	"carddeck/internal/store"
)

const searchHistoryCap = 10

// prefs owns the small UI preference collections: theme, search history
// and which catalog sections are expanded. Same persistence discipline as
// the gamification containers, just nothing derived from them.
type prefs struct {
	store    store.Store
	theme    string
	history  []string
	expanded map[string]bool
}

func newPrefs(ctx context.Context, s store.Store) *prefs {
	p := &prefs{store: s, theme: "dark", expanded: map[string]bool{}}
	s.Read(ctx, store.Theme, &p.theme)
	s.Read(ctx, store.SearchHistory, &p.history)
	s.Read(ctx, store.ExpandedState, &p.expanded)
	return p
}

func (p *prefs) setTheme(ctx context.Context, theme string) {
	theme = strings.TrimSpace(theme)
	if theme == "" {
		return
	}
	p.theme = theme
	p.store.Write(ctx, store.Theme, p.theme)
}

// recordSearch moves term to the front, dropping duplicates and anything
// past the cap.
func (p *prefs) recordSearch(ctx context.Context, term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}
	next := []string{term}
	for _, old := range p.history {
		if old == term {
			continue
		}
		next = append(next, old)
		if len(next) == searchHistoryCap {
			break
		}
	}
	p.history = next
	p.store.Write(ctx, store.SearchHistory, p.history)
}

func (p *prefs) setExpanded(ctx context.Context, section string, open bool) {
	if open {
		p.expanded[section] = true
	} else {
		delete(p.expanded, section)
	}
	p.store.Write(ctx, store.ExpandedState, p.expanded)
}

// Session passthroughs.

func (s *Session) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs.theme
}

func (s *Session) SetTheme(ctx context.Context, theme string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.setTheme(ctx, theme)
}

func (s *Session) SearchHistory() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.prefs.history...)
}

func (s *Session) RecordSearch(ctx context.Context, term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.recordSearch(ctx, term)
}

func (s *Session) ExpandedState() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]bool, len(s.prefs.expanded))
	for k, v := range s.prefs.expanded {
		out[k] = v
	}
	return out
}

func (s *Session) SetExpanded(ctx context.Context, section string, open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.setExpanded(ctx, section, open)
}
