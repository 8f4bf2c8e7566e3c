package testutil

import "github.com/hyf4053/MTG-Arena-Tool/internal/cards"

// Card ids used by TestDatabase.
const (
	Bolt         = 1
	Bear         = 2
	Counterspell = 3
	Forest       = 4
	Jace         = 5
	Elk          = 6
	MythicJace   = 7
	Duress       = 8
	Island       = 9
	Oddity       = 10
)

// TestCards returns a small card pool covering every type rank, both
// mythic-edition redirects and an out-of-band rarity.
func TestCards() []cards.Card {
	return []cards.Card{
		{ID: Bolt, Name: "Bolt", Type: "Instant", Rarity: "common", Set: "Core Set 2020", CID: "152", CMC: 1, Colors: []string{"R"}},
		{ID: Bear, Name: "Grizzly Bears", Type: "Creature — Bear", Rarity: "common", Set: "Core Set 2020", CID: "170", CMC: 2, Colors: []string{"G"}},
		{ID: Counterspell, Name: "Counterspell", Type: "Instant", Rarity: "uncommon", Set: "Dominaria", CID: "45", CMC: 2, Colors: []string{"U"}},
		{ID: Forest, Name: "Forest", Type: "Basic Land — Forest", Rarity: "land", Set: "Core Set 2020", CID: "277"},
		{ID: Jace, Name: "Jace, Wielder of Mysteries", Type: "Legendary Planeswalker — Jace", Rarity: "rare", Set: "War of the Spark", CID: "54", CMC: 3, Colors: []string{"U"}},
		{ID: Elk, Name: "Elk", Type: "Creature — Elk", Rarity: "mythic", Set: "Core Set 2020", CID: "171", CMC: 2, Colors: []string{"G"}},
		{ID: MythicJace, Name: "Jace, Mythic Edition Art", Type: "Legendary Planeswalker — Jace", Rarity: "mythic", Set: cards.MythicEdition, CID: "3", CMC: 3, Colors: []string{"U"}, Reprints: []int{Jace}},
		{ID: Duress, Name: "Duress", Type: "Sorcery", Rarity: "common", Set: "Dominaria", CID: "86", CMC: 1, Colors: []string{"B"}},
		{ID: Island, Name: "Island", Type: "Basic Land — Island", Rarity: "land", Set: "Core Set 2020", CID: "264"},
		{ID: Oddity, Name: "Oddity", Type: "Conspiracy", Rarity: "special", Set: "Conspiracy", CID: "1", Colors: []string{"W"}},
	}
}

// TestDatabase returns an in-memory database of TestCards.
func TestDatabase() *cards.MemoryDatabase {
	return cards.NewMemoryDatabase(TestCards())
}
