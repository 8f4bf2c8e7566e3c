// Package sets resolves set names to the codes used by deck exports.
package sets

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/unicode/norm"
)

type Set struct {
	Name      string `toml:"name" json:"name"`
	Code      string `toml:"code" json:"code"`
	ArenaCode string `toml:"arenacode" json:"arenacode,omitempty"`
}

type registryFile struct {
	Sets []Set `toml:"set"`
}

// Registry maps set names to their codes.
type Registry struct {
	byName map[string]Set
}

func NewRegistry(sets []Set) *Registry {
	r := &Registry{byName: make(map[string]Set, len(sets))}
	for _, s := range sets {
		r.byName[s.Name] = s
	}
	return r
}

// LoadRegistry reads a sets.toml file made of [[set]] tables.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sets: %w", err)
	}
	return ParseRegistry(string(data))
}

func ParseRegistry(data string) (*Registry, error) {
	var f registryFile
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("decode sets: %w", err)
	}
	for i, s := range f.Sets {
		if s.Name == "" {
			return nil, fmt.Errorf("set %d has no name", i)
		}
	}
	return NewRegistry(f.Sets), nil
}

func (r *Registry) Lookup(name string) (Set, bool) {
	if r == nil {
		return Set{}, false
	}
	s, ok := r.byName[name]
	return s, ok
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.byName)
}

// ArenaCode returns the explicit Arena code of a set, falling back to
// DeriveCode when the registry has none.
func (r *Registry) ArenaCode(name string) string {
	if s, ok := r.Lookup(name); ok && s.ArenaCode != "" {
		return s.ArenaCode
	}
	return r.DeriveCode(name)
}

// DeriveCode returns the registry code of a set in upper case. Unknown sets
// get an acronym of their name: the initial of each word, numbers kept whole.
func (r *Registry) DeriveCode(name string) string {
	if s, ok := r.Lookup(name); ok && s.Code != "" {
		return strings.ToUpper(s.Code)
	}
	var b strings.Builder
	for _, w := range strings.Fields(stripAccents(name)) {
		runes := []rune(w)
		switch {
		case isNumber(w):
			b.WriteString(w)
		case unicode.IsLetter(runes[0]):
			b.WriteRune(unicode.ToUpper(runes[0]))
		}
	}
	return b.String()
}

func isNumber(w string) bool {
	for _, r := range w {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func stripAccents(s string) string {
	var b strings.Builder
	for _, r := range norm.NFD.String(s) {
		if !unicode.Is(unicode.Mn, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
