// Package cardlist holds an ordered list of card entries such as a mainboard.
package cardlist

import (
	"github.com/hyf4053/MTG-Arena-Tool/internal/cards"
	"github.com/hyf4053/MTG-Arena-Tool/internal/colors"
)

// Entry is one line of a list. Quantity is ignored on export when the card
// is not Mensurable.
type Entry struct {
	ID         int  `json:"id"`
	Quantity   int  `json:"quantity"`
	Mensurable bool `json:"mensurable"`
}

type List struct {
	entries []Entry
}

// New copies entries into a list. Negative quantities are clamped to zero.
func New(entries []Entry) *List {
	l := &List{entries: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		if e.Quantity < 0 {
			e.Quantity = 0
		}
		l.entries = append(l.entries, e)
	}
	return l
}

// Get returns the backing slice; sorting it reorders the list.
func (l *List) Get() []Entry {
	return l.entries
}

func (l *List) Len() int {
	return len(l.entries)
}

// Add appends a mensurable entry.
func (l *List) Add(id, quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	l.entries = append(l.entries, Entry{ID: id, Quantity: quantity, Mensurable: true})
}

// Count returns the total quantity across all entries.
func (l *List) Count() int {
	total := 0
	for _, e := range l.entries {
		total += e.Quantity
	}
	return total
}

// CountType returns the total quantity of entries whose type line is
// exactly typeLine.
func (l *List) CountType(db cards.Database, typeLine string) (int, error) {
	total := 0
	for _, e := range l.entries {
		c, err := db.Get(e.ID)
		if err != nil {
			return 0, err
		}
		if c.Type == typeLine {
			total += e.Quantity
		}
	}
	return total, nil
}

// RemoveDuplicates returns a new list with entries for the same card merged.
// Order follows first occurrence; the merged entry keeps the first entry's
// Mensurable flag. The receiver is not modified.
func (l *List) RemoveDuplicates() *List {
	out := &List{}
	pos := map[int]int{}
	for _, e := range l.entries {
		if i, ok := pos[e.ID]; ok {
			out.entries[i].Quantity += e.Quantity
			continue
		}
		pos[e.ID] = len(out.entries)
		out.entries = append(out.entries, e)
	}
	return out
}

// Colors returns the colour profile of every card in the list.
func (l *List) Colors(db cards.Database) (*colors.Profile, error) {
	p := colors.New()
	for _, e := range l.entries {
		c, err := db.Get(e.ID)
		if err != nil {
			return nil, err
		}
		for _, col := range c.Colors {
			p.Add(col)
		}
	}
	return p, nil
}
