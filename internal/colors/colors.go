// Package colors tracks the colour identity of a group of cards.
package colors

import "strings"

// Order is the canonical WUBRG order colours are reported in.
var Order = []string{"W", "U", "B", "R", "G"}

// Profile is the set of colours seen across some cards. The zero value is
// an empty profile ready to use.
type Profile struct {
	seen map[string]bool
}

func New() *Profile {
	return &Profile{seen: map[string]bool{}}
}

// Add records a colour. Adding a colour twice has no further effect.
// Symbols outside WUBRG are ignored.
func (p *Profile) Add(color string) {
	color = strings.ToUpper(strings.TrimSpace(color))
	if !isColor(color) {
		return
	}
	if p.seen == nil {
		p.seen = map[string]bool{}
	}
	p.seen[color] = true
}

// AddFromProfile merges other into p.
func (p *Profile) AddFromProfile(other *Profile) {
	if other == nil {
		return
	}
	for c := range other.seen {
		p.Add(c)
	}
}

func (p *Profile) Has(color string) bool {
	return p.seen[strings.ToUpper(color)]
}

// Get returns the colours in WUBRG order.
func (p *Profile) Get() []string {
	out := []string{}
	for _, c := range Order {
		if p.seen[c] {
			out = append(out, c)
		}
	}
	return out
}

func (p *Profile) Len() int {
	return len(p.seen)
}

func (p *Profile) String() string {
	return strings.Join(p.Get(), "")
}

func isColor(c string) bool {
	for _, o := range Order {
		if c == o {
			return true
		}
	}
	return false
}
