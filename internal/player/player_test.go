package player

import (
	"errors"
	"strings"
	"testing"

	"github.com/ivlev/demo2gif/internal/collector"
)

func threeFrames() []collector.Frame {
	return []collector.Frame{
		{Path: "/out/assets/01-open.png", Description: "Open the page"},
		{Path: "/out/assets/02-click.png", Description: "Click the button"},
		{Path: "/out/assets/03-done.png", Description: "See the result"},
	}
}

func TestRenderEmbedsFramesAndDescriptions(t *testing.T) {
	doc, err := Render("Checkout demo", threeFrames(), 1500, "")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	checks := []string{
		"<title>Checkout demo</title>",
		"<h1>Checkout demo</h1>",
		`src="assets/01-open.png"`,
		`["01-open.png","02-click.png","03-done.png"]`,
		`["Open the page","Click the button","See the result"]`,
		"var delay = 1500;",
		"ArrowLeft",
		"ArrowRight",
	}
	for _, c := range checks {
		if !strings.Contains(doc, c) {
			t.Errorf("document missing %q", c)
		}
	}
}

func TestRenderEmptyFrames(t *testing.T) {
	_, err := Render("Empty", nil, 1500, "")
	if !errors.Is(err, ErrNoFrames) {
		t.Errorf("expected ErrNoFrames, got %v", err)
	}
}

func TestRenderShareQR(t *testing.T) {
	doc, err := Render("Shared", threeFrames(), 1000, "https://example.com/demos/42")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(doc, "https://example.com/demos/42") {
		t.Error("share URL not present in footer")
	}
	if !strings.Contains(doc, "data:image/png;base64,") {
		t.Error("QR code data URI not embedded")
	}
}

func TestRenderWithoutShareURL(t *testing.T) {
	doc, err := Render("Plain", threeFrames(), 1000, "")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(doc, "<footer>") {
		t.Error("footer should be omitted without a share URL")
	}
}

func TestRenderEscapesTitle(t *testing.T) {
	doc, err := Render(`<script>alert("x")</script>`, threeFrames(), 1000, "")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(doc, `<title><script>`) {
		t.Error("title must be HTML-escaped")
	}
}
