package preview

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ivlev/demo2gif/internal/assets"
	"github.com/ivlev/demo2gif/internal/collector"
	"github.com/ivlev/demo2gif/internal/config"
	"github.com/ivlev/demo2gif/internal/gif"
	"github.com/ivlev/demo2gif/internal/player"
	"github.com/ivlev/demo2gif/internal/poster"
	"github.com/ivlev/demo2gif/internal/session"
	"github.com/ivlev/demo2gif/internal/system"
)

const (
	HTMLName   = "animated-preview.html"
	PosterName = "demo-poster.png"
)

type Generator struct {
	Encoder *gif.Encoder
	Poster  bool // писать статичный постер первого кадра
}

func New() *Generator {
	return &Generator{
		Encoder: gif.NewEncoder(system.FindFFmpeg, gif.ExecRunner{}),
		Poster:  true,
	}
}

// Generate собирает превью сессии: всегда пишет HTML-плеер, затем пытается
// закодировать GIF. Возвращает путь к GIF при успехе, иначе путь к HTML.
// Пустой путь без ошибки означает, что в сессии не нашлось ни одного снимка.
func (g *Generator) Generate(ctx context.Context, s *session.DemoSession, outputDir string, opts config.GifOptions) (string, error) {
	opts.Normalize()

	frames := collector.Collect(s, outputDir)
	if len(frames) == 0 {
		log.Printf("[!] В сессии %q нет ни одного снимка — превью не создано", s.Title)
		return "", nil
	}

	// Кадры переносятся в <out>/assets, чтобы относительные ссылки плеера
	// разрешались; GIF кодируется из тех же перенесённых файлов, порядок
	// и задержка кадров у обоих артефактов совпадают.
	staged, err := assets.Stage(ctx, frames, outputDir)
	if err != nil {
		return "", fmt.Errorf("ошибка подготовки кадров: %w", err)
	}

	doc, err := player.Render(s.Title, staged, opts.FrameDelay, s.URL)
	if err != nil {
		return "", err
	}

	htmlPath := filepath.Join(outputDir, HTMLName)
	if err := os.WriteFile(htmlPath, []byte(doc), 0644); err != nil {
		return "", fmt.Errorf("ошибка записи HTML-превью: %w", err)
	}

	if g.Poster {
		if err := poster.Write(staged[0].Path, filepath.Join(outputDir, PosterName), opts.Width); err != nil {
			log.Printf("[!] Не удалось создать постер: %v", err)
		}
	}

	gifPath, err := g.Encoder.Encode(ctx, staged, outputDir, opts)
	if err != nil {
		log.Printf("[!] GIF не создан, остаётся HTML-превью: %v", err)
		return htmlPath, nil
	}

	return gifPath, nil
}
