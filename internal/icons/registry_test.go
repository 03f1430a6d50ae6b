package icons

import (
	"errors"
	"testing"
)

func TestRegistryResolve(t *testing.T) {
	registry := NewRegistry(
		WithFallback("dot", "·"),
		WithAliases(map[string]string{"house": "home"}),
	)
	if err := registry.Register("home", "⌂"); err != nil {
		t.Fatalf("register: %v", err)
	}

	cases := []struct {
		ref      string
		glyph    string
		fallback bool
	}{
		{ref: "home", glyph: "⌂"},
		{ref: "  HOME ", glyph: "⌂"},
		{ref: "house", glyph: "⌂"},
		{ref: "rocket", glyph: "·", fallback: true},
		{ref: "", glyph: "·", fallback: true},
	}
	for _, tc := range cases {
		icon := registry.Resolve(tc.ref)
		if icon.Glyph != tc.glyph || icon.Fallback != tc.fallback {
			t.Fatalf("resolve %q: unexpected icon %+v", tc.ref, icon)
		}
	}
	if registry.Known("rocket") {
		t.Fatal("expected unknown icon to report false")
	}
}

func TestRegistryRejectsInvalidAndDuplicates(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(" ", "x"); !errors.Is(err, ErrInvalidIcon) {
		t.Fatalf("expected ErrInvalidIcon, got %v", err)
	}
	if err := registry.Register("star", "★"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register("Star", "☆"); !errors.Is(err, ErrDuplicateIcon) {
		t.Fatalf("expected ErrDuplicateIcon, got %v", err)
	}
}

func TestDefaultRegistryHasBuiltins(t *testing.T) {
	registry := DefaultRegistry()
	if !registry.Known("home") || !registry.Known("settings") {
		t.Fatalf("expected builtin icons, got %v", registry.Names())
	}
	if registry.Resolve("unknown").Glyph != "•" {
		t.Fatal("expected default fallback glyph")
	}
}
