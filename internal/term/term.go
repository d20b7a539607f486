// Package term provides color state and terminal detection.
//
// Color styles are package-level because multiple packages (logging,
// display) format output with them. [Configure] is called once during
// startup; when colors are disabled every style renders its input
// unchanged.
package term

import (
	"os"
	"strings"

	"github.com/backmassage/svg2asset/internal/config"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// Styles used across the CLI.
var (
	Red     = color.New(color.FgHiRed, color.Bold)
	Green   = color.New(color.FgHiGreen, color.Bold)
	Yellow  = color.New(color.FgHiYellow, color.Bold)
	Blue    = color.New(color.FgHiBlue, color.Bold)
	Cyan    = color.New(color.FgHiCyan, color.Bold)
	Magenta = color.New(color.FgHiMagenta, color.Bold)
)

// Configure resolves the color mode and toggles color output globally.
// Call once during startup (from [logging.NewLoggerTo]).
func Configure(mode config.ColorMode) {
	enable := resolve(mode)
	color.NoColor = !enable
	for _, c := range []*color.Color{Red, Green, Yellow, Blue, Cyan, Magenta} {
		if enable {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
