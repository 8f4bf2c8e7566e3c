// Package deck models an MTG Arena deck and its derived views: colour
// identity, missing wildcards, tile rendering and text exports.
package deck

import (
	"fmt"
	"slices"

	"github.com/hyf4053/MTG-Arena-Tool/internal/cardlist"
	"github.com/hyf4053/MTG-Arena-Tool/internal/cards"
	"github.com/hyf4053/MTG-Arena-Tool/internal/colors"
	"github.com/hyf4053/MTG-Arena-Tool/internal/wildcards"
)

// DefaultTile is the art shown for decks without a deckTileId.
const DefaultTile = 67003

// RecordEntry is a card line as it appears in a deck record. Mensurable
// defaults to true when absent.
type RecordEntry struct {
	ID         int   `json:"id"`
	Quantity   int   `json:"quantity"`
	Mensurable *bool `json:"mensurable,omitempty"`
}

// Record is a deck as stored by the game client.
type Record struct {
	MainDeck    []RecordEntry `json:"mainDeck"`
	Sideboard   []RecordEntry `json:"sideboard"`
	Name        string        `json:"name"`
	ID          string        `json:"id"`
	LastUpdated string        `json:"lastUpdated"`
	DeckTileID  int           `json:"deckTileId"`
	Tags        []string      `json:"tags"`
	Format      string        `json:"format"`
	Custom      bool          `json:"custom"`
}

func toEntries(rs []RecordEntry) []cardlist.Entry {
	out := make([]cardlist.Entry, 0, len(rs))
	for _, r := range rs {
		m := true
		if r.Mensurable != nil {
			m = *r.Mensurable
		}
		out = append(out, cardlist.Entry{ID: r.ID, Quantity: r.Quantity, Mensurable: m})
	}
	return out
}

type Deck struct {
	Mainboard   *cardlist.List
	Sideboard   *cardlist.List
	Name        string
	ID          string
	LastUpdated string
	Tile        int
	Tags        []string
	Custom      bool

	db     cards.Database
	colors *colors.Profile
}

// New builds a deck from a record. A board missing from the record (nil,
// not empty) is taken from the matching fallback. Both boards are sorted
// once here with cards.Compare; later edits are not re-sorted.
func New(rec Record, fallbackMain, fallbackSide []cardlist.Entry, db cards.Database) *Deck {
	main := fallbackMain
	if rec.MainDeck != nil {
		main = toEntries(rec.MainDeck)
	}
	side := fallbackSide
	if rec.Sideboard != nil {
		side = toEntries(rec.Sideboard)
	}

	d := &Deck{
		Mainboard:   cardlist.New(main),
		Sideboard:   cardlist.New(side),
		Name:        rec.Name,
		ID:          rec.ID,
		LastUpdated: rec.LastUpdated,
		Tile:        rec.DeckTileID,
		Tags:        rec.Tags,
		Custom:      rec.Custom,
		db:          db,
	}
	if d.Tile == 0 {
		d.Tile = DefaultTile
	}
	if d.Tags == nil {
		d.Tags = []string{rec.Format}
	}

	cmp := cards.Compare(db)
	byCard := func(a, b cardlist.Entry) int { return cmp(a.ID, b.ID) }
	slices.SortStableFunc(d.Mainboard.Get(), byCard)
	slices.SortStableFunc(d.Sideboard.Get(), byCard)
	return d
}

// GetColors computes the colour profile of the chosen boards and caches it.
func (d *Deck) GetColors(countMainboard, countSideboard bool) (*colors.Profile, error) {
	p := colors.New()
	if countMainboard {
		mc, err := d.Mainboard.Colors(d.db)
		if err != nil {
			return nil, fmt.Errorf("mainboard colors: %w", err)
		}
		p.AddFromProfile(mc)
	}
	if countSideboard {
		sc, err := d.Sideboard.Colors(d.db)
		if err != nil {
			return nil, fmt.Errorf("sideboard colors: %w", err)
		}
		p.AddFromProfile(sc)
	}
	d.colors = p
	return p, nil
}

// Colors returns the cached profile, computing the mainboard's on first use.
// Editing the boards does not refresh the cache; call InvalidateColors or
// GetColors after a change.
func (d *Deck) Colors() (*colors.Profile, error) {
	if d.colors != nil {
		return d.colors, nil
	}
	return d.GetColors(true, false)
}

func (d *Deck) InvalidateColors() {
	d.colors = nil
}

// MissingWildcards sums the policy's shortfall per rarity over the chosen
// boards. The result always carries every key of wildcards.Rarities.
func (d *Deck) MissingWildcards(policy wildcards.Policy, countMainboard, countSideboard bool) (wildcards.Counts, error) {
	missing := wildcards.NewCounts()
	var boards []*cardlist.List
	if countMainboard {
		boards = append(boards, d.Mainboard)
	}
	if countSideboard {
		boards = append(boards, d.Sideboard)
	}
	for _, b := range boards {
		for _, e := range b.Get() {
			c, err := d.db.Get(e.ID)
			if err != nil {
				return nil, err
			}
			missing.Add(c.Rarity, policy.Missing(e.ID, e.Quantity))
		}
	}
	return missing, nil
}
