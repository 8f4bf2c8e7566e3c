package cardlist_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/hyf4053/MTG-Arena-Tool/internal/cardlist"
	"github.com/hyf4053/MTG-Arena-Tool/internal/cards"
	"github.com/hyf4053/MTG-Arena-Tool/testutil"
)

func TestNewClampsNegativeQuantities(t *testing.T) {
	l := cardlist.New([]cardlist.Entry{{ID: testutil.Bolt, Quantity: -2}})
	if l.Get()[0].Quantity != 0 {
		t.Errorf("quantity = %d, want 0", l.Get()[0].Quantity)
	}
}

func TestCount(t *testing.T) {
	l := cardlist.New([]cardlist.Entry{
		{ID: testutil.Bolt, Quantity: 4},
		{ID: testutil.Forest, Quantity: 0},
	})
	l.Add(testutil.Bear, 3)
	if got := l.Count(); got != 7 {
		t.Errorf("Count() = %d, want 7", got)
	}
	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
}

func TestCountTypeIsExact(t *testing.T) {
	db := testutil.TestDatabase()
	l := cardlist.New([]cardlist.Entry{
		{ID: testutil.Bear, Quantity: 4},
		{ID: testutil.Elk, Quantity: 2},
		{ID: testutil.Bear, Quantity: 1},
	})

	got, err := l.CountType(db, "Creature — Bear")
	if err != nil {
		t.Fatalf("CountType: %v", err)
	}
	if got != 5 {
		t.Errorf("CountType() = %d, want 5", got)
	}

	l.Add(999, 1)
	if _, err := l.CountType(db, "Creature — Bear"); !errors.Is(err, cards.ErrUnknownCard) {
		t.Errorf("expected ErrUnknownCard, got %v", err)
	}
}

func TestRemoveDuplicates(t *testing.T) {
	l := cardlist.New([]cardlist.Entry{
		{ID: testutil.Bolt, Quantity: 2, Mensurable: true},
		{ID: testutil.Bear, Quantity: 1, Mensurable: true},
		{ID: testutil.Bolt, Quantity: 2, Mensurable: false},
	})

	got := l.RemoveDuplicates().Get()
	want := []cardlist.Entry{
		{ID: testutil.Bolt, Quantity: 4, Mensurable: true},
		{ID: testutil.Bear, Quantity: 1, Mensurable: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RemoveDuplicates() = %v, want %v", got, want)
	}
	if l.Len() != 3 {
		t.Error("RemoveDuplicates must not modify the receiver")
	}
}

func TestColors(t *testing.T) {
	db := testutil.TestDatabase()
	l := cardlist.New([]cardlist.Entry{
		{ID: testutil.Bolt, Quantity: 1},
		{ID: testutil.Forest, Quantity: 1},
		{ID: testutil.Bear, Quantity: 0},
	})
	p, err := l.Colors(db)
	if err != nil {
		t.Fatalf("Colors: %v", err)
	}
	if p.String() != "RG" {
		t.Errorf("Colors() = %q, want RG", p.String())
	}
}
