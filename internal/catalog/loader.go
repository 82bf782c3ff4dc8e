package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Catalog is the read-only card universe the engine derives totals and
// category membership from. It is loaded once at startup.
type Catalog struct {
	decks      []Deck
	byID       map[string]Card
	byCategory map[string][]string
}

// Load scans root for deck directories containing a deck.yaml and builds
// the merged catalog. Directories without a manifest are skipped; a
// manifest that fails validation aborts the load.
func Load(root string) (*Catalog, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	decks := make([]Deck, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		deckPath := filepath.Join(root, entry.Name())
		deckYAML := filepath.Join(deckPath, "deck.yaml")
		if _, err := os.Stat(deckYAML); err != nil {
			continue
		}
		deck, err := readDeck(deckYAML)
		if err != nil {
			return nil, fmt.Errorf("load deck %s: %w", deckPath, err)
		}
		deck.Path = deckPath
		decks = append(decks, deck)
	}
	if len(decks) == 0 {
		return nil, fmt.Errorf("no decks available under %s", root)
	}
	sort.Slice(decks, func(i, j int) bool { return decks[i].DeckID < decks[j].DeckID })

	c := &Catalog{
		decks:      decks,
		byID:       map[string]Card{},
		byCategory: map[string][]string{},
	}
	for _, deck := range decks {
		for _, card := range deck.Cards {
			if _, dup := c.byID[card.ID]; dup {
				return nil, fmt.Errorf("card id %q appears in more than one deck", card.ID)
			}
			c.byID[card.ID] = card
			cat := card.Category
			if cat == "" {
				cat = "general"
			}
			c.byCategory[cat] = append(c.byCategory[cat], card.ID)
		}
	}
	return c, nil
}

func readDeck(path string) (Deck, error) {
	var deck Deck
	b, err := os.ReadFile(path)
	if err != nil {
		return deck, err
	}
	if err := yaml.Unmarshal(b, &deck); err != nil {
		return deck, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := deck.Validate(); err != nil {
		return deck, fmt.Errorf("validate %s: %w", path, err)
	}
	return deck, nil
}

func (c *Catalog) TotalCards() int { return len(c.byID) }

func (c *Catalog) Card(id string) (Card, bool) {
	card, ok := c.byID[id]
	return card, ok
}

func (c *Catalog) Decks() []Deck { return c.decks }

func (c *Catalog) Categories() []string {
	cats := make([]string, 0, len(c.byCategory))
	for cat := range c.byCategory {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

// CardIDsByCategory returns category -> member card ids. Callers must not
// mutate the returned slices.
func (c *Catalog) CardIDsByCategory() map[string][]string {
	return c.byCategory
}
