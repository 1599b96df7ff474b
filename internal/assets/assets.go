package assets

import (
	"context"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
	"golang.org/x/sync/errgroup"

	"github.com/ivlev/demo2gif/internal/collector"
)

// Dir is the subdirectory of the output directory the HTML player expects
// its frame images under.
const Dir = "assets"

// Захваты страниц в PDF растеризуются при этом DPI.
const pdfDPI = 144

// Stage copies the collected frames into <outputDir>/assets so the player's
// relative references resolve, rendering PDF captures to PNG along the way.
// The returned list carries the staged absolute paths in the original order.
func Stage(ctx context.Context, frames []collector.Frame, outputDir string) ([]collector.Frame, error) {
	dir := filepath.Join(outputDir, Dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	staged := make([]collector.Frame, len(frames))
	used := make(map[string]bool)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i, f := range frames {
		base := filepath.Base(f.Path)
		isPDF := strings.EqualFold(filepath.Ext(base), ".pdf")
		if isPDF {
			base = strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
		}
		// Одинаковые имена из разных директорий не должны затирать друг друга
		if used[base] {
			base = fmt.Sprintf("%02d-%s", i+1, base)
		}
		used[base] = true

		dst := filepath.Join(dir, base)
		staged[i] = collector.Frame{Path: dst, Description: f.Description}

		src := f.Path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if isPDF {
				return renderPDF(src, dst)
			}
			return copyFile(src, dst)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return staged, nil
}

func renderPDF(src, dst string) error {
	doc, err := fitz.New(src)
	if err != nil {
		return fmt.Errorf("pdf open error %s: %w", src, err)
	}
	defer doc.Close()

	img, err := doc.ImageDPI(0, pdfDPI)
	if err != nil {
		return fmt.Errorf("pdf render error %s: %w", src, err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	return png.Encode(out, img)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
