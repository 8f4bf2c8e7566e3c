package cards

import (
	"errors"
	"fmt"
)

// ErrUnknownCard is returned when a card id has no entry in the database.
var ErrUnknownCard = errors.New("unknown card")

// MythicEdition is a virtual printing; exports redirect it to its first reprint.
const MythicEdition = "Mythic Edition"

type Card struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Rarity   string   `json:"rarity"`
	Set      string   `json:"set"`
	CID      string   `json:"cid"`
	CMC      int      `json:"cmc"`
	Colors   []string `json:"colors"`
	Reprints []int    `json:"reprints"`
	ImageURL string   `json:"image_url"`
}

// Database looks up static card metadata by Arena id.
type Database interface {
	Get(id int) (Card, error)
}

// MemoryDatabase is a Database held entirely in memory.
type MemoryDatabase struct {
	byID  map[int]Card
	cards []Card
}

func NewMemoryDatabase(cs []Card) *MemoryDatabase {
	db := &MemoryDatabase{byID: make(map[int]Card, len(cs))}
	for _, c := range cs {
		if _, dup := db.byID[c.ID]; dup {
			continue
		}
		db.byID[c.ID] = c
		db.cards = append(db.cards, c)
	}
	return db
}

func (db *MemoryDatabase) Get(id int) (Card, error) {
	c, ok := db.byID[id]
	if !ok {
		return Card{}, fmt.Errorf("card %d: %w", id, ErrUnknownCard)
	}
	return c, nil
}

// All returns every card in load order.
func (db *MemoryDatabase) All() []Card {
	return db.cards
}

func (db *MemoryDatabase) Len() int {
	return len(db.cards)
}
