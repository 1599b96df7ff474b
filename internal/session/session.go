package session

// DemoSession is a recording of a scripted browser demo, one step per
// user-visible action. It is produced by an external recorder; this module
// only reads it.
type DemoSession struct {
	Title string `yaml:"title" json:"title"`
	URL   string `yaml:"url,omitempty" json:"url,omitempty"`
	Steps []Step `yaml:"steps" json:"steps"`
}

// Step is a single recorded action with its optional captured evidence.
type Step struct {
	Description string   `yaml:"description" json:"description"`
	Evidence    Evidence `yaml:"evidence" json:"evidence"`
}

// Evidence holds the artifacts captured for a step. ScreenshotPath is either
// absolute or relative to the preview output directory; it may also point at
// a single-page PDF capture.
type Evidence struct {
	ScreenshotPath string `yaml:"screenshotPath,omitempty" json:"screenshotPath,omitempty"`
}
