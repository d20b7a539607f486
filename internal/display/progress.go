package display

import (
	"io"
	"os"
	"time"

	"github.com/backmassage/svg2asset/internal/term"
	"github.com/schollz/progressbar/v3"
)

// Progress is a batch progress bar on stderr. A Progress created disabled
// (or for an empty batch) ignores every call, so callers need not check.
type Progress struct {
	bar *progressbar.ProgressBar
}

// NewProgress returns a bar for total items. It is only drawn when enabled
// and stderr is a terminal.
func NewProgress(total int, enabled bool) *Progress {
	if !enabled || total == 0 || !term.IsTerminal(os.Stderr) {
		return &Progress{}
	}
	return newProgress(os.Stderr, total, renderThrottle)
}

// renderThrottle limits redraws of the bar.
const renderThrottle = 65 * time.Millisecond

func newProgress(w io.Writer, total int, throttle time.Duration) *Progress {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Converting"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(throttle),
		progressbar.OptionClearOnFinish(),
	)
	return &Progress{bar: bar}
}

// Advance marks one item finished.
func (p *Progress) Advance() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Add(1)
}

// Clear erases the bar so a log line can be printed on stderr. The bar
// is redrawn on the next Advance.
func (p *Progress) Clear() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Clear()
}

// Finish completes and clears the bar.
func (p *Progress) Finish() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
}
