package gif

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ivlev/demo2gif/internal/collector"
	"github.com/ivlev/demo2gif/internal/config"
)

const (
	// OutputName is the fixed name of the animated image inside the output directory.
	OutputName = "demo.gif"

	manifestName = "frames.txt"
	paletteName  = "palette.png"
)

// ErrEncoderUnavailable means the encoder binary could not be located.
var ErrEncoderUnavailable = errors.New("encoder binary not found")

// Runner runs an external command to completion and returns its combined output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// Locator resolves the path to the encoder binary.
type Locator func() (string, error)

type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}

type Encoder struct {
	Locate Locator
	Runner Runner
}

func NewEncoder(locate Locator, runner Runner) *Encoder {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Encoder{Locate: locate, Runner: runner}
}

// Encode собирает анимированный GIF из кадров в два прохода ffmpeg:
// сначала генерация палитры по всем кадрам, затем кодирование с её
// применением. Проходы строго последовательны — второй читает файл палитры,
// созданный первым.
func (e *Encoder) Encode(ctx context.Context, frames []collector.Frame, outputDir string, opts config.GifOptions) (string, error) {
	bin, err := e.Locate()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoderUnavailable, err)
	}

	manifest := filepath.Join(outputDir, manifestName)
	palette := filepath.Join(outputDir, paletteName)
	output := filepath.Join(outputDir, OutputName)

	if err := writeManifest(manifest, frames, opts.FrameDelay); err != nil {
		return "", err
	}

	// Общая часть цепочки фильтров: частота кадров и масштабирование по
	// ширине, высота подбирается ffmpeg-ом с сохранением аспекта.
	filters := fmt.Sprintf("fps=%.2f,scale=%d:-1:flags=lanczos", opts.FPS(), opts.Width)

	gen := "palettegen"
	if opts.Quality > 0 {
		gen = fmt.Sprintf("palettegen=max_colors=%d", maxColors(opts.Quality))
	}

	// Проход 1: палитра
	args := []string{
		"-y",
		"-f", "concat", "-safe", "0",
		"-i", manifest,
		"-vf", filters + "," + gen,
		palette,
	}
	if out, err := e.Runner.Run(ctx, bin, args...); err != nil {
		os.Remove(manifest)
		return "", fmt.Errorf("ffmpeg palettegen error: %v, output: %s", err, out)
	}

	// Проход 2: кодирование с применением палитры
	args = []string{
		"-y",
		"-f", "concat", "-safe", "0",
		"-i", manifest,
		"-i", palette,
		"-lavfi", filters + "[x];[x][1:v]paletteuse",
		"-loop", strconv.Itoa(opts.Loops),
		output,
	}
	if out, err := e.Runner.Run(ctx, bin, args...); err != nil {
		os.Remove(manifest)
		return "", fmt.Errorf("ffmpeg paletteuse error: %v, output: %s", err, out)
	}

	os.Remove(manifest)
	os.Remove(palette)
	return output, nil
}

// writeManifest пишет concat-манифест: каждый кадр с длительностью показа в
// секундах. Разделители путей приводятся к '/' независимо от платформы.
func writeManifest(path string, frames []collector.Frame, frameDelayMs int) error {
	duration := float64(frameDelayMs) / 1000.0

	var b strings.Builder
	for _, f := range frames {
		fmt.Fprintf(&b, "file '%s'\n", filepath.ToSlash(f.Path))
		fmt.Fprintf(&b, "duration %.3f\n", duration)
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}

// maxColors отображает качество 1..100 в размер палитры GIF (16..256).
func maxColors(quality int) int {
	colors := quality * 256 / 100
	if colors < 16 {
		colors = 16
	}
	if colors > 256 {
		colors = 256
	}
	return colors
}
