package display

import (
	"os"
	"time"

	"github.com/backmassage/svg2asset/internal/term"
	"github.com/briandowns/spinner"
)

// Spinner shows activity on stderr while a single long step runs.
// Like Progress, a disabled Spinner ignores every call.
type Spinner struct {
	s *spinner.Spinner
}

// StartSpinner starts a spinner with the given label when enabled and
// stderr is a terminal.
func StartSpinner(label string, enabled bool) *Spinner {
	if !enabled || !term.IsTerminal(os.Stderr) {
		return &Spinner{}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + label
	s.Start()
	return &Spinner{s: s}
}

// Stop halts the spinner and erases it.
func (s *Spinner) Stop() {
	if s.s == nil {
		return
	}
	s.s.Stop()
}
