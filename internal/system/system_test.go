package system

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFindLatestSession(t *testing.T) {
	dir := t.TempDir()

	files := []string{
		filepath.Join(dir, "session_2026-08-12.yaml"),
		filepath.Join(dir, "session_2026-08-13.json"),
		filepath.Join(dir, "session_2026-08-11.yml"),
	}

	for i, f := range files {
		if err := os.WriteFile(f, []byte("title: test"), 0644); err != nil {
			t.Fatal(err)
		}
		modTime := time.Now().Add(time.Duration(i) * time.Hour)
		if err := os.Chtimes(f, modTime, modTime); err != nil {
			t.Fatal(err)
		}
	}

	// Не-сессии игнорируются даже со свежим временем
	noise := filepath.Join(dir, "readme.txt")
	os.WriteFile(noise, []byte("x"), 0644)
	newest := time.Now().Add(48 * time.Hour)
	os.Chtimes(noise, newest, newest)

	latest, err := FindLatestSession(dir)
	if err != nil {
		t.Fatalf("FindLatestSession failed: %v", err)
	}

	if latest != files[len(files)-1] {
		t.Errorf("expected latest to be %s, got %s", files[len(files)-1], latest)
	}
}

func TestFindLatestSessionEmptyDir(t *testing.T) {
	if _, err := FindLatestSession(t.TempDir()); err == nil {
		t.Error("expected error for directory without session files")
	}
}
