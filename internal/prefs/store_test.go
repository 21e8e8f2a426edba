package prefs

import (
	"context"
	"testing"

	"github.com/akashgh003/gen-ai-asgn/internal/db"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestGetSet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, ok, err := s.Get(ctx, "c1", "theme"); err != nil || ok {
		t.Fatalf("Get unset = ok %v, err %v", ok, err)
	}

	if err := s.Set(ctx, "c1", "theme", "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, "c1", "theme", "light"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}

	v, ok, err := s.Get(ctx, "c1", "theme")
	if err != nil || !ok || v != "light" {
		t.Errorf("Get = %q, %v, %v; want light, true, nil", v, ok, err)
	}

	if _, ok, _ := s.Get(ctx, "c2", "theme"); ok {
		t.Error("preferences should be per client")
	}
}

func TestNextTheme(t *testing.T) {
	tests := map[string]string{
		"":      ThemeLight,
		"light": ThemeDark,
		"dark":  ThemeLight,
		"blue":  ThemeLight,
	}
	for in, want := range tests {
		if got := NextTheme(in); got != want {
			t.Errorf("NextTheme(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToggleTheme(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if theme, err := s.Theme(ctx, "c1"); err != nil || theme != "" {
		t.Fatalf("initial theme = %q, %v", theme, err)
	}

	for _, want := range []string{ThemeLight, ThemeDark, ThemeLight} {
		got, err := s.ToggleTheme(ctx, "c1")
		if err != nil {
			t.Fatalf("ToggleTheme: %v", err)
		}
		if got != want {
			t.Errorf("ToggleTheme = %q, want %q", got, want)
		}
		stored, err := s.Theme(ctx, "c1")
		if err != nil || stored != want {
			t.Errorf("stored theme = %q, %v; want %q", stored, err, want)
		}
	}
}
