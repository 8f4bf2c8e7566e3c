package cards

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

type FilterOptions struct {
	Colors    []string `json:"colors"`
	Types     []string `json:"types"`
	Rarities  []string `json:"rarities"`
	Sets      []string `json:"sets"`
	CMCs      []int    `json:"cmcs"`
	FreeWords string   `json:"free_words"`
}

// fold lowercases s and strips diacritics so "Séance" matches "seance".
func fold(s string) string {
	var b strings.Builder
	for _, r := range norm.NFD.String(strings.ToLower(s)) {
		if !unicode.Is(unicode.Mn, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func containsAny(hay []string, needles []string) bool {
	for _, n := range needles {
		for _, h := range hay {
			if strings.EqualFold(h, n) {
				return true
			}
		}
	}
	return false
}

func Filter(cards []Card, opt FilterOptions) []Card {
	var out []Card
	for _, c := range cards {
		if len(opt.Colors) > 0 && !containsAny(c.Colors, opt.Colors) {
			continue
		}
		if len(opt.Types) > 0 {
			matched := false
			for _, t := range opt.Types {
				if strings.Contains(fold(c.Type), fold(t)) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		if len(opt.Rarities) > 0 && !containsAny([]string{c.Rarity}, opt.Rarities) {
			continue
		}
		if len(opt.Sets) > 0 && !containsAny([]string{c.Set}, opt.Sets) {
			continue
		}
		if len(opt.CMCs) > 0 {
			matched := false
			for _, v := range opt.CMCs {
				if c.CMC == v {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		if opt.FreeWords != "" {
			hay := fold(c.Name + " " + c.Type)
			ok := true
			for _, k := range strings.Fields(opt.FreeWords) {
				if !strings.Contains(hay, fold(k)) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}
