package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "interactions.log")

	log, err := New(Options{Mode: "production", File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.With("platform", "telegram").Info("user interaction", "user_id", "42", "action", "start_command")
	log.Debug("dropped at info level")
	log.Sync()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	out := string(b)
	for _, want := range []string{`"msg":"user interaction"`, `"user_id":"42"`, `"platform":"telegram"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s: %s", want, out)
		}
	}
	if strings.Contains(out, "dropped at info level") {
		t.Error("production logger emitted a debug line")
	}
}

func TestNopDiscards(t *testing.T) {
	log := Nop()
	log.Error("nothing", "k", "v")
	log.With("a", 1).Warn("still nothing")
	log.Sync()
}
