package player

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"path/filepath"
	"strconv"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/ivlev/demo2gif/internal/collector"
)

// ErrNoFrames is returned when Render is asked to build a player for an
// empty frame list. A document with a dangling initial image reference is
// never produced.
var ErrNoFrames = errors.New("no frames to render")

type pageData struct {
	Title        string
	InitialSrc   string
	FrameDelayMs template.JS
	Frames       template.JS
	Descriptions template.JS
	ShareURL     string
	ShareQR      template.URL
}

// Render builds a fully self-contained HTML slideshow for the given frames.
// Frame images are referenced as assets/<basename> relative to the document;
// the frame and description lists are embedded as literal JSON so the player
// needs no server besides the image assets themselves. When shareURL is
// non-empty a QR code pointing at it is embedded in the footer.
func Render(title string, frames []collector.Frame, frameDelayMs int, shareURL string) (string, error) {
	if len(frames) == 0 {
		return "", ErrNoFrames
	}

	names := make([]string, len(frames))
	descriptions := make([]string, len(frames))
	for i, f := range frames {
		names[i] = filepath.Base(f.Path)
		descriptions[i] = f.Description
	}

	namesJSON, err := json.Marshal(names)
	if err != nil {
		return "", err
	}
	descriptionsJSON, err := json.Marshal(descriptions)
	if err != nil {
		return "", err
	}

	data := pageData{
		Title:      title,
		InitialSrc: "assets/" + names[0],
		// Готовый литерал: экранирование html/template окружает числа
		// пробелами внутри script, что ломает побайтовую стабильность вывода.
		FrameDelayMs: template.JS(strconv.Itoa(frameDelayMs)),
		Frames:       template.JS(namesJSON),
		Descriptions: template.JS(descriptionsJSON),
		ShareURL:     shareURL,
	}

	if shareURL != "" {
		qr, err := qrcode.Encode(shareURL, qrcode.Medium, 128)
		if err == nil {
			data.ShareQR = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(qr))
		}
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("player template error: %w", err)
	}
	return buf.String(), nil
}

var pageTemplate = template.Must(template.New("player").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; background: #1e1e2e; color: #e0e0e8; margin: 0; padding: 24px; text-align: center; }
  h1 { font-size: 20px; margin: 0 0 16px; }
  #frame { max-width: 100%; border: 1px solid #44455a; border-radius: 6px; background: #fff; }
  .controls { margin: 16px 0 8px; }
  .controls button { font-size: 16px; padding: 6px 18px; margin: 0 4px; border: 1px solid #565770; border-radius: 4px; background: #2c2c3c; color: #e0e0e8; cursor: pointer; }
  .controls button:hover { background: #3a3a50; }
  #counter { color: #9a9ab0; font-size: 13px; }
  #description { min-height: 1.4em; margin-top: 8px; font-size: 15px; }
  footer { margin-top: 24px; color: #70718a; font-size: 12px; }
  footer img { display: block; margin: 8px auto 0; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<img id="frame" src="{{.InitialSrc}}" alt="demo frame">
<div class="controls">
  <button id="prev" title="Previous frame">&#9664;</button>
  <button id="toggle" title="Play/pause">&#9616;&#9616;</button>
  <button id="next" title="Next frame">&#9654;</button>
</div>
<div id="counter"></div>
<div id="description"></div>
{{if .ShareURL}}<footer>{{.ShareURL}}{{if .ShareQR}}<img src="{{.ShareQR}}" alt="share QR" width="128" height="128">{{end}}</footer>{{end}}
<script>
var frames = {{.Frames}};
var descriptions = {{.Descriptions}};
var delay = {{.FrameDelayMs}};
var current = 0;
var timer = null;

function show(i) {
  current = (i + frames.length) % frames.length;
  document.getElementById("frame").src = "assets/" + frames[current];
  document.getElementById("counter").textContent = "Step " + (current + 1) + " of " + frames.length;
  document.getElementById("description").textContent = descriptions[current];
}

function play() {
  if (timer) return;
  timer = setInterval(function () { show(current + 1); }, delay);
  document.getElementById("toggle").innerHTML = "&#9616;&#9616;";
}

function pause() {
  clearInterval(timer);
  timer = null;
  document.getElementById("toggle").innerHTML = "&#9654;";
}

document.getElementById("prev").addEventListener("click", function () { pause(); show(current - 1); });
document.getElementById("next").addEventListener("click", function () { pause(); show(current + 1); });
document.getElementById("toggle").addEventListener("click", function () { timer ? pause() : play(); });

document.addEventListener("keydown", function (e) {
  if (e.key === "ArrowLeft") { pause(); show(current - 1); }
  else if (e.key === "ArrowRight") { pause(); show(current + 1); }
  else if (e.key === " ") { e.preventDefault(); timer ? pause() : play(); }
});

show(0);
play();
</script>
</body>
</html>
`))
