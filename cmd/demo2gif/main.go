package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ivlev/demo2gif/internal/config"
	"github.com/ivlev/demo2gif/internal/preview"
	"github.com/ivlev/demo2gif/internal/session"
	"github.com/ivlev/demo2gif/internal/system"
)

func main() {
	// Создаем нужные директории, если их нет
	dirs := []string{"input/sessions", "output"}
	for _, d := range dirs {
		os.MkdirAll(d, 0755)
	}

	sessionPtr := flag.String("session", "", "Путь к файлу сессии YAML/JSON (по умолчанию: самый свежий файл в input/sessions/)")
	outputPtr := flag.String("output", "output", "Директория для артефактов превью")
	delayPtr := flag.Int("delay", config.DefaultFrameDelay, "Задержка показа кадра (мс)")
	widthPtr := flag.Int("width", config.DefaultWidth, "Ширина GIF (высота подбирается по аспекту)")
	loopsPtr := flag.Int("loops", config.DefaultLoops, "Число повторов GIF (0 - бесконечно)")
	qualityPtr := flag.Int("quality", 0, "Качество палитры 1-100 (0 - палитра по умолчанию)")
	posterPtr := flag.Bool("poster", true, "Создавать постер первого кадра")

	flag.Parse()

	system.LogResources()

	sessionPath := *sessionPtr
	if sessionPath == "" {
		latest, err := system.FindLatestSession("input/sessions")
		if err != nil {
			log.Fatalf("[-] Ошибка: %v. Положите файл сессии в input/sessions/", err)
		}
		sessionPath = latest
		fmt.Printf("[*] Выбрана сессия: %s\n", sessionPath)
	}

	s, err := session.Read(sessionPath)
	if err != nil {
		log.Fatalf("[-] Ошибка чтения сессии: %v", err)
	}

	fmt.Println("--- [DEMO PREVIEW GENERATOR] ---")
	fmt.Printf("[*] Сессия: %s | Шагов: %d\n", s.Title, len(s.Steps))
	fmt.Printf("[*] Кадр: %d мс | Ширина: %d px\n", *delayPtr, *widthPtr)
	fmt.Println("--------------------------------")

	opts := config.GifOptions{
		FrameDelay: *delayPtr,
		Width:      *widthPtr,
		Quality:    *qualityPtr,
		Loops:      *loopsPtr,
	}

	gen := preview.New()
	gen.Poster = *posterPtr

	result, err := gen.Generate(context.Background(), s, *outputPtr, opts)
	if err != nil {
		log.Fatalf("[-] Ошибка генерации превью: %v", err)
	}
	if result == "" {
		os.Exit(1)
	}

	fmt.Printf("[+++] Успех! Результат: %s\n", result)
}
