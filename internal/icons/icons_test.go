package icons

import (
	"strings"
	"testing"
)

func TestCatalogEntriesAreComplete(t *testing.T) {
	seen := make(map[Icon]struct{})
	for _, def := range Catalog() {
		if _, ok := seen[def.ID]; ok {
			t.Errorf("duplicate icon in catalog: %s", def.ID)
		}
		seen[def.ID] = struct{}{}
		if strings.TrimSpace(def.Lucide) == "" {
			t.Errorf("icon %s missing Lucide name", def.ID)
		}
		if strings.TrimSpace(def.Glyph) == "" {
			t.Errorf("icon %s missing glyph", def.ID)
		}
	}
}

func TestLucideName(t *testing.T) {
	name, ok := LucideName(BookOpen)
	if !ok || name != "book-open" {
		t.Fatalf("LucideName(BookOpen) = %q, %v", name, ok)
	}
	if _, ok := LucideName(Icon("rocket")); ok {
		t.Fatal("expected unknown icon to be unmapped")
	}
	if got := LucideNameOrDefault(Icon("rocket")); got != "sparkle" {
		t.Fatalf("expected sparkle fallback, got %q", got)
	}
}

func TestValidAndGlyph(t *testing.T) {
	if !Cloud.Valid() {
		t.Fatal("expected cloud to be valid")
	}
	if Icon("").Valid() {
		t.Fatal("expected empty icon to be invalid")
	}
	if Glyph(Icon("rocket")) != "•" {
		t.Fatal("expected bullet fallback glyph")
	}
}
