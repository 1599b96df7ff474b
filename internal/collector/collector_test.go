package collector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ivlev/demo2gif/internal/session"
)

func writeFile(t *testing.T, path string) string {
	t.Helper()
	if err := os.WriteFile(path, []byte("fake-png"), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestCollectSkipsMissingAndEmpty(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, filepath.Join(dir, "step-1.png"))
	third := writeFile(t, filepath.Join(dir, "step-3.png"))

	s := &session.DemoSession{
		Title: "Checkout demo",
		Steps: []session.Step{
			{Description: "Open page", Evidence: session.Evidence{ScreenshotPath: first}},
			{Description: "Click button", Evidence: session.Evidence{ScreenshotPath: filepath.Join(dir, "gone.png")}},
			{Description: "Submit form", Evidence: session.Evidence{ScreenshotPath: third}},
			{Description: "No capture here"},
		},
	}

	got := Collect(s, dir)
	want := []Frame{
		{Path: first, Description: "Open page"},
		{Path: third, Description: "Submit form"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Collect mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	abs := writeFile(t, filepath.Join(dir, "shot.png"))

	s := &session.DemoSession{
		Steps: []session.Step{
			{Description: "relative", Evidence: session.Evidence{ScreenshotPath: "shot.png"}},
		},
	}

	got := Collect(s, dir)
	if len(got) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(got))
	}
	if got[0].Path != abs {
		t.Errorf("expected resolved path %s, got %s", abs, got[0].Path)
	}
}

func TestCollectEmptySession(t *testing.T) {
	s := &session.DemoSession{Title: "empty"}
	if got := Collect(s, t.TempDir()); len(got) != 0 {
		t.Errorf("expected no frames, got %d", len(got))
	}
}
