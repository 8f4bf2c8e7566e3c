// Package wildcards computes how many wildcards a player needs to finish a deck.
package wildcards

import (
	"strings"

	"github.com/hyf4053/MTG-Arena-Tool/internal/cards"
)

// Rarities are the wildcard buckets every count reports.
var Rarities = []string{"rare", "common", "uncommon", "mythic", "token", "land"}

// Other collects shortfall for cards whose rarity is not in Rarities.
const Other = "other"

// MaxCopies is the most copies of one card a deck needs to own.
const MaxCopies = 4

// Policy reports the wildcard shortfall for quantity copies of a card.
type Policy interface {
	Missing(cardID, quantity int) int
}

// Counts maps a rarity bucket to a number of wildcards.
type Counts map[string]int

// NewCounts returns counts with every rarity set to zero.
func NewCounts() Counts {
	c := Counts{}
	for _, r := range Rarities {
		c[r] = 0
	}
	return c
}

// Add adds n to the bucket for rarity; unknown rarities go to Other.
func (c Counts) Add(rarity string, n int) {
	rarity = strings.ToLower(rarity)
	if _, ok := c[rarity]; !ok {
		rarity = Other
	}
	c[rarity] += n
}

func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Collection is the set of cards a player owns.
type Collection struct {
	db    cards.Database
	owned map[int]int
}

func NewCollection(db cards.Database, owned map[int]int) *Collection {
	if owned == nil {
		owned = map[int]int{}
	}
	return &Collection{db: db, owned: owned}
}

func (c *Collection) Owned(cardID int) int {
	return c.owned[cardID]
}

// Missing returns how many more copies are needed, capped at MaxCopies.
// Basic lands are free and unknown cards cost nothing.
func (c *Collection) Missing(cardID, quantity int) int {
	card, err := c.db.Get(cardID)
	if err != nil || strings.HasPrefix(card.Type, "Basic Land") {
		return 0
	}
	need := min(quantity, MaxCopies) - c.owned[cardID]
	return max(need, 0)
}
