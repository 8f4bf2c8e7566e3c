package deck

import (
	"fmt"
	"strings"

	"github.com/hyf4053/MTG-Arena-Tool/internal/cardlist"
	"github.com/hyf4053/MTG-Arena-Tool/internal/cards"
	"github.com/hyf4053/MTG-Arena-Tool/internal/sets"
)

// LineEnd terminates every exported line regardless of platform.
const LineEnd = "\r\n"

func exportQuantity(e cardlist.Entry) int {
	if e.Mensurable {
		return e.Quantity
	}
	return 1
}

// writeBoards writes the mainboard, a blank line, then the sideboard. Each
// board is deduplicated first and zero-quantity entries are skipped.
func (d *Deck) writeBoards(line func(e cardlist.Entry) (string, error)) (string, error) {
	var b strings.Builder
	for i, board := range []*cardlist.List{d.Mainboard, d.Sideboard} {
		if i == 1 {
			b.WriteString(LineEnd)
		}
		for _, e := range board.RemoveDuplicates().Get() {
			if e.Quantity <= 0 {
				continue
			}
			s, err := line(e)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		}
	}
	return b.String(), nil
}

// ExportTxt returns the deck as "<quantity> <name>" lines.
func (d *Deck) ExportTxt() (string, error) {
	return d.writeBoards(func(e cardlist.Entry) (string, error) {
		c, err := d.db.Get(e.ID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d %s%s", exportQuantity(e), c.Name, LineEnd), nil
	})
}

// ExportArena returns the deck in the Arena import format:
// "<quantity> <name> (<set code>) <collector number> ".
func (d *Deck) ExportArena(reg *sets.Registry) (string, error) {
	return d.writeBoards(func(e cardlist.Entry) (string, error) {
		c, err := d.printing(e.ID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d %s (%s) %s %s", exportQuantity(e), c.Name, reg.ArenaCode(c.Set), c.CID, LineEnd), nil
	})
}

// printing resolves the card to export, following Mythic Edition cards to
// their first reprint.
func (d *Deck) printing(id int) (cards.Card, error) {
	c, err := d.db.Get(id)
	if err != nil {
		return cards.Card{}, err
	}
	if c.Set != cards.MythicEdition {
		return c, nil
	}
	if len(c.Reprints) == 0 {
		return cards.Card{}, fmt.Errorf("card %d: %s printing has no reprint to export", id, cards.MythicEdition)
	}
	return d.db.Get(c.Reprints[0])
}
