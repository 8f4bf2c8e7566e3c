package deck

import (
	"strings"

	"github.com/google/uuid"
	"github.com/hyf4053/MTG-Arena-Tool/internal/cards"
)

// TileSink receives the visual layout of a deck.
type TileSink interface {
	Reset()
	AddSeparator(rank, count int)
	AddTile(cardID int, key string, quantity int)
}

// sessionKey returns a short random prefix so two renders of the same deck
// never share tile keys.
func sessionKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// Draw resets sink and writes the deck into it. A separator opens every run
// of mainboard cards with the same type rank, labelled with how many copies
// of that exact type the mainboard holds. Entries with zero quantity draw no
// tile but still count as the previous card for rank changes.
func (d *Deck) Draw(sink TileSink) error {
	unique := sessionKey()
	sink.Reset()

	prevRank, first := 0, true
	for _, e := range d.Mainboard.Get() {
		c, err := d.db.Get(e.ID)
		if err != nil {
			return err
		}
		rank := cards.TypeRank(c.Type)
		if first || rank != prevRank {
			q, err := d.Mainboard.CountType(d.db, c.Type)
			if err != nil {
				return err
			}
			sink.AddSeparator(rank, q)
		}
		if e.Quantity > 0 {
			sink.AddTile(e.ID, unique+"a", e.Quantity)
		}
		prevRank, first = rank, false
	}

	if d.Sideboard.Len() > 0 {
		sink.AddSeparator(cards.SideboardRank, d.Sideboard.Count())
		for _, e := range d.Sideboard.Get() {
			if e.Quantity > 0 {
				sink.AddTile(e.ID, unique+"b", e.Quantity)
			}
		}
	}
	return nil
}

// LayoutItem is one drawn element: a separator or a card tile.
type LayoutItem struct {
	Kind     string `json:"kind"`
	Rank     int    `json:"rank,omitempty"`
	Count    int    `json:"count,omitempty"`
	CardID   int    `json:"card_id,omitempty"`
	Key      string `json:"key,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
}

// Layout is a TileSink that records what was drawn.
type Layout struct {
	Items []LayoutItem `json:"items"`
}

func (l *Layout) Reset() {
	l.Items = []LayoutItem{}
}

func (l *Layout) AddSeparator(rank, count int) {
	l.Items = append(l.Items, LayoutItem{Kind: "separator", Rank: rank, Count: count})
}

func (l *Layout) AddTile(cardID int, key string, quantity int) {
	l.Items = append(l.Items, LayoutItem{Kind: "tile", CardID: cardID, Key: key, Quantity: quantity})
}
