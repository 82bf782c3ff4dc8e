package catalog

import (
	"fmt"
	"strings"
)

// Card is one learning unit. IDs come from deck files and are stable
// across sessions; the rest is display metadata the engine never
// interprets.
type Card struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
	Summary  string `yaml:"summary"`
}

type Deck struct {
	DeckID  string `yaml:"deck_id"`
	Title   string `yaml:"title"`
	Version string `yaml:"version"`
	Cards   []Card `yaml:"cards"`

	Path string `yaml:"-"`
}

func (d Deck) Validate() error {
	if strings.TrimSpace(d.DeckID) == "" {
		return fmt.Errorf("deck_id is required")
	}
	if len(d.Cards) == 0 {
		return fmt.Errorf("deck %s has no cards", d.DeckID)
	}
	seen := map[string]bool{}
	for i, c := range d.Cards {
		id := strings.TrimSpace(c.ID)
		if id == "" {
			return fmt.Errorf("deck %s: card %d has empty id", d.DeckID, i)
		}
		if seen[id] {
			return fmt.Errorf("deck %s: duplicate card id %q", d.DeckID, id)
		}
		seen[id] = true
	}
	return nil
}
