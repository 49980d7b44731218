package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withTempLogPath(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), LogFileName)
	orig := getLogPath
	getLogPath = func() (string, error) { return path, nil }
	t.Cleanup(func() {
		Close()
		getLogPath = orig
		enabled = false
	})
	return path
}

func TestInitDisabled(t *testing.T) {
	path := withTempLogPath(t)
	if err := Init(false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Enabled() {
		t.Error("expected disabled")
	}
	Log("dropped")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected no log file when disabled")
	}
}

func TestInitEnabled(t *testing.T) {
	path := withTempLogPath(t)
	if err := Init(true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Enabled() {
		t.Error("expected enabled")
	}
	Logf("added %d tags", 3)
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "added 3 tags") {
		t.Errorf("log missing entry: %q", string(data))
	}
}

func TestInitTruncatesExistingLog(t *testing.T) {
	path := withTempLogPath(t)
	if err := os.WriteFile(path, []byte("stale\n"), 0600); err != nil {
		t.Fatalf("seed log: %v", err)
	}
	if err := Init(true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(data), "stale") {
		t.Error("expected log truncated on init")
	}
}
