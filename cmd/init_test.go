package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ziadkadry99/menubot/internal/content"
)

func TestWriteSampleContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "bot_data.json")

	if err := writeSampleContent(path); err != nil {
		t.Fatalf("writeSampleContent: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, content.SampleJSON()) {
		t.Error("written file differs from the sample content")
	}
}

func TestWriteSampleContentKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot_data.json")
	if err := os.WriteFile(path, []byte(`{"title":"mine"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := writeSampleContent(path); err != nil {
		t.Fatalf("writeSampleContent: %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != `{"title":"mine"}` {
		t.Errorf("existing content overwritten: %s", got)
	}
}
