package cards

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

func parseListCell(s string) []string {
	parts := strings.Split(s, "/")
	out := []string{}
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" && t != "-" {
			out = append(out, t)
		}
	}
	return out
}

// LoadDatabase loads cards.csv from a data directory, plus the optional
// custom_cards.csv next to it.
func LoadDatabase(dataDir string) (*MemoryDatabase, error) {
	files := []string{
		filepath.Join(dataDir, "cards.csv"),
		filepath.Join(dataDir, "custom_cards.csv"),
	}

	var all []Card
	var found bool
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		found = true
		cs, err := loadSingleCSV(f)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
		all = append(all, cs...)
	}
	if !found {
		return nil, fmt.Errorf("no card CSVs found in %s", dataDir)
	}
	return NewMemoryDatabase(all), nil
}

func loadSingleCSV(path string) ([]Card, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ReadCSV(fp)
}

// ReadCSV parses a card table. The header row names the columns; id and name
// are required, everything else is optional.
func ReadCSV(r io.Reader) ([]Card, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv has no header")
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"id", "name"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("csv is missing column %q", required)
		}
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := []Card{}
	for n, row := range rows[1:] {
		id, err := strconv.Atoi(get(row, "id"))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad id: %w", n+2, err)
		}
		c := Card{
			ID:       id,
			Name:     get(row, "name"),
			Type:     get(row, "type"),
			Rarity:   strings.ToLower(get(row, "rarity")),
			Set:      get(row, "set"),
			CID:      get(row, "cid"),
			ImageURL: get(row, "image_url"),
			Colors:   parseListCell(get(row, "colors")),
		}
		if v, err := strconv.Atoi(get(row, "cmc")); err == nil {
			c.CMC = v
		}
		for _, s := range parseListCell(get(row, "reprints")) {
			rid, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad reprint id %q: %w", n+2, s, err)
			}
			c.Reprints = append(c.Reprints, rid)
		}
		out = append(out, c)
	}
	return out, nil
}
