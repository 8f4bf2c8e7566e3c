package sets

import (
	"os"
	"path/filepath"
	"testing"
)

const testSets = `
[[set]]
name = "Core Set 2020"
code = "m20"
arenacode = "M20"

[[set]]
name = "Dominaria"
code = "dom"
arenacode = "DAR"

[[set]]
name = "War of the Spark"
code = "war"
`

func TestArenaCode(t *testing.T) {
	r, err := ParseRegistry(testSets)
	if err != nil {
		t.Fatalf("ParseRegistry: %v", err)
	}

	tests := []struct {
		set  string
		want string
	}{
		{"Core Set 2020", "M20"},
		{"Dominaria", "DAR"},
		{"War of the Spark", "WAR"},
		{"Ravnica Allegiance", "RA"},
		{"Édition 2 Spéciale", "E2S"},
	}
	for _, tt := range tests {
		if got := r.ArenaCode(tt.set); got != tt.want {
			t.Errorf("ArenaCode(%q) = %q, want %q", tt.set, got, tt.want)
		}
	}
}

func TestNilRegistryDerives(t *testing.T) {
	var r *Registry
	if got := r.ArenaCode("Guilds of Ravnica"); got != "GOR" {
		t.Errorf("got %q, want GOR", got)
	}
	if r.Len() != 0 {
		t.Error("nil registry should be empty")
	}
}

func TestParseRegistryErrors(t *testing.T) {
	if _, err := ParseRegistry("[[set]]\ncode = \"x\"\n"); err == nil {
		t.Error("expected error for nameless set")
	}
	if _, err := ParseRegistry("not toml ="); err == nil {
		t.Error("expected decode error")
	}
}

func TestLoadRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sets.toml")
	if err := os.WriteFile(path, []byte(testSets), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
	if _, err := LoadRegistry(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
