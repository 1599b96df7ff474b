package collector

import (
	"os"
	"path/filepath"

	"github.com/ivlev/demo2gif/internal/session"
)

// Frame is one renderable screenshot together with the description of the
// step it came from. Keeping both in a single record guarantees the frame
// list and the description list can never drift out of alignment.
type Frame struct {
	Path        string // resolved absolute path
	Description string
}

// Collect resolves the screenshots referenced by a session into an ordered
// frame list. Steps without a screenshot path are skipped, as are paths whose
// file does not exist on disk; neither case is an error. Relative paths are
// resolved against outputDir.
func Collect(s *session.DemoSession, outputDir string) []Frame {
	var frames []Frame
	for _, step := range s.Steps {
		p := step.Evidence.ScreenshotPath
		if p == "" {
			continue
		}
		if !filepath.IsAbs(p) {
			p = filepath.Join(outputDir, p)
		}
		if _, err := os.Stat(p); err != nil {
			continue
		}
		frames = append(frames, Frame{Path: p, Description: step.Description})
	}
	return frames
}
