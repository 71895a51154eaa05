package content

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "missing.json"), nil)

	tree := s.Load()
	if tree.Title != FallbackTitle {
		t.Errorf("Title = %q, want fallback title", tree.Title)
	}
	if len(tree.MainMenu) != 0 || len(tree.FAQ) != 0 {
		t.Errorf("expected empty tree, got %d items and %d faq", len(tree.MainMenu), len(tree.FAQ))
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot_data.json")
	if err := os.WriteFile(path, []byte(`{"title": "x", "main_menu": [`), 0o644); err != nil {
		t.Fatal(err)
	}

	tree := NewStore(path, nil).Load()
	if tree.Title != FallbackTitle || len(tree.MainMenu) != 0 {
		t.Errorf("expected fallback tree for corrupt file, got %+v", tree)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "bot_data.json")
	original := SampleTree()

	if err := NewStore(path, nil).Save(original); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := NewStore(path, nil).Load()
	want, err := Encode(original)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Encode(loaded)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("round trip mismatch:\n got: %s\nwant: %s", got, want)
	}

	if loaded.Title != original.Title || len(loaded.MainMenu) != len(original.MainMenu) || len(loaded.FAQ) != len(original.FAQ) {
		t.Errorf("loaded tree differs from saved tree")
	}
	for i := range original.MainMenu {
		if loaded.MainMenu[i].Kind() != original.MainMenu[i].Kind() {
			t.Errorf("item %d kind = %s, want %s", i, loaded.MainMenu[i].Kind(), original.MainMenu[i].Kind())
		}
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bot_data.json")
	s := NewStore(path, nil)

	for i := 0; i < 3; i++ {
		if err := s.Save(SampleTree()); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "bot_data.json" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only bot_data.json, got %v", names)
	}
}

func TestSaveFailureKeepsExistingTarget(t *testing.T) {
	dir := t.TempDir()
	// A non-empty directory at the target path cannot be replaced by rename.
	path := filepath.Join(dir, "bot_data.json")
	if err := os.MkdirAll(filepath.Join(path, "keep"), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := NewStore(path, nil).Save(SampleTree()); err == nil {
		t.Fatal("expected Save to fail")
	}

	if _, err := os.Stat(filepath.Join(path, "keep")); err != nil {
		t.Errorf("existing target was disturbed: %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected temp file cleanup, found %d entries", len(entries))
	}
}

func TestLoadReflectsFileChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot_data.json")
	s := NewStore(path, nil)
	if err := s.Save(SampleTree()); err != nil {
		t.Fatal(err)
	}

	first := s.Load()
	if again := s.Load(); again != first {
		t.Error("expected cached tree for an unchanged file")
	}

	if err := os.WriteFile(path, []byte(`{"title":"Новый","main_menu":[],"faq":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := s.Tree(context.Background()); got.Title != "Новый" {
		t.Errorf("Title = %q, want reloaded title", got.Title)
	}
}

func TestSaveInvalidatesCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot_data.json")
	s := NewStore(path, nil)
	if err := s.Save(SampleTree()); err != nil {
		t.Fatal(err)
	}
	_ = s.Load()

	updated := SampleTree()
	updated.Title = "Изменено"
	if err := s.Save(updated); err != nil {
		t.Fatal(err)
	}
	if got := s.Load().Title; got != "Изменено" {
		t.Errorf("Title = %q after Save, want Изменено", got)
	}
}
