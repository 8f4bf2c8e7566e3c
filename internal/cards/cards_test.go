package cards_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/hyf4053/MTG-Arena-Tool/internal/cards"
	"github.com/hyf4053/MTG-Arena-Tool/testutil"
)

func TestMemoryDatabaseGet(t *testing.T) {
	db := testutil.TestDatabase()

	c, err := db.Get(testutil.Bolt)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if c.Name != "Bolt" {
		t.Errorf("Name = %q, want Bolt", c.Name)
	}

	_, err = db.Get(999)
	if !errors.Is(err, cards.ErrUnknownCard) {
		t.Errorf("expected ErrUnknownCard, got %v", err)
	}
}

func TestMemoryDatabaseKeepsFirstDuplicate(t *testing.T) {
	db := cards.NewMemoryDatabase([]cards.Card{
		{ID: 1, Name: "first"},
		{ID: 1, Name: "second"},
	})
	c, _ := db.Get(1)
	if c.Name != "first" || db.Len() != 1 {
		t.Errorf("got %q with %d cards", c.Name, db.Len())
	}
}

func TestTypeRank(t *testing.T) {
	tests := []struct {
		typeLine string
		want     int
	}{
		{"Creature — Bear", 1},
		{"Artifact Creature — Golem", 1},
		{"Legendary Planeswalker — Jace", 2},
		{"Instant", 3},
		{"Sorcery", 4},
		{"Artifact — Equipment", 5},
		{"Enchantment — Aura", 6},
		{"Basic Land — Forest", 7},
		{"Conspiracy", 8},
		{"", 8},
	}
	for _, tt := range tests {
		if got := cards.TypeRank(tt.typeLine); got != tt.want {
			t.Errorf("TypeRank(%q) = %d, want %d", tt.typeLine, got, tt.want)
		}
	}
}

func TestCompareOrdersByRankCostName(t *testing.T) {
	db := testutil.TestDatabase()
	ids := []int{testutil.Forest, testutil.Counterspell, testutil.Elk, testutil.Bolt, testutil.Bear, testutil.Jace, 999}

	slices.SortFunc(ids, cards.Compare(db))

	want := []int{testutil.Elk, testutil.Bear, testutil.Jace, testutil.Bolt, testutil.Counterspell, testutil.Forest, 999}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("sorted = %v, want %v", ids, want)
	}
}

func TestReadCSV(t *testing.T) {
	in := "id,name,type,rarity,set,cid,cmc,colors,reprints\n" +
		"70,Teferi,Legendary Planeswalker — Teferi,Mythic,Dominaria,207,5,W/U,\n" +
		"71,Teferi ME,Legendary Planeswalker — Teferi,mythic,Mythic Edition,1,5,W/U,70\n"

	got, err := cards.ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(got))
	}
	if got[0].Rarity != "mythic" {
		t.Errorf("rarity should be lowercased, got %q", got[0].Rarity)
	}
	if !reflect.DeepEqual(got[0].Colors, []string{"W", "U"}) {
		t.Errorf("Colors = %v", got[0].Colors)
	}
	if !reflect.DeepEqual(got[1].Reprints, []int{70}) {
		t.Errorf("Reprints = %v", got[1].Reprints)
	}
	if got[0].CMC != 5 {
		t.Errorf("CMC = %d", got[0].CMC)
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := map[string]string{
		"missing id column": "name\nBolt\n",
		"bad id":            "id,name\nx,Bolt\n",
		"bad reprint":       "id,name,reprints\n1,Bolt,abc\n",
		"empty":             "",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := cards.ReadCSV(strings.NewReader(in)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadDatabase(t *testing.T) {
	dir := t.TempDir()
	if _, err := cards.LoadDatabase(dir); err == nil {
		t.Fatal("expected error for empty data dir")
	}

	if err := os.WriteFile(filepath.Join(dir, "cards.csv"), []byte("id,name\n1,Bolt\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "custom_cards.csv"), []byte("id,name\n2,Proxy\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	db, err := cards.LoadDatabase(dir)
	if err != nil {
		t.Fatalf("LoadDatabase: %v", err)
	}
	if db.Len() != 2 {
		t.Errorf("expected 2 cards, got %d", db.Len())
	}
}

func TestFilter(t *testing.T) {
	all := testutil.TestCards()
	names := func(cs []cards.Card) []string {
		var out []string
		for _, c := range cs {
			out = append(out, c.Name)
		}
		return out
	}

	tests := []struct {
		name string
		opt  cards.FilterOptions
		want []string
	}{
		{"colors", cards.FilterOptions{Colors: []string{"r"}}, []string{"Bolt"}},
		{"types", cards.FilterOptions{Types: []string{"land"}}, []string{"Forest", "Island"}},
		{"rarity and set", cards.FilterOptions{Rarities: []string{"common"}, Sets: []string{"Dominaria"}}, []string{"Duress"}},
		{"cmc", cards.FilterOptions{CMCs: []int{3}, Types: []string{"Planeswalker"}}, []string{"Jace, Wielder of Mysteries", "Jace, Mythic Edition Art"}},
		{"free words ignore accents", cards.FilterOptions{FreeWords: "grízzly BEAR"}, []string{"Grizzly Bears"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := names(cards.Filter(all, tt.opt)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}
