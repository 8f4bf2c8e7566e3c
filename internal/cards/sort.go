package cards

import "strings"

// SideboardRank is the separator category used for the sideboard block.
const SideboardRank = 99

var typeRanks = []struct {
	word string
	rank int
}{
	{"Creature", 1},
	{"Planeswalker", 2},
	{"Instant", 3},
	{"Sorcery", 4},
	{"Artifact", 5},
	{"Enchantment", 6},
	{"Land", 7},
}

// TypeRank returns the display category of a type line. The first matching
// word wins, so "Artifact Creature" ranks as a creature.
func TypeRank(typeLine string) int {
	for _, tr := range typeRanks {
		if strings.Contains(typeLine, tr.word) {
			return tr.rank
		}
	}
	return 8
}

// Compare returns a comparator over card ids ordering by type rank, mana
// value, name and finally id. Unknown ids sort after known ones.
func Compare(db Database) func(a, b int) int {
	return func(a, b int) int {
		ca, errA := db.Get(a)
		cb, errB := db.Get(b)
		switch {
		case errA != nil && errB != nil:
			return a - b
		case errA != nil:
			return 1
		case errB != nil:
			return -1
		}
		if ra, rb := TypeRank(ca.Type), TypeRank(cb.Type); ra != rb {
			return ra - rb
		}
		if ca.CMC != cb.CMC {
			return ca.CMC - cb.CMC
		}
		if c := strings.Compare(ca.Name, cb.Name); c != 0 {
			return c
		}
		return a - b
	}
}
