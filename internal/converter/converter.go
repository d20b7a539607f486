package converter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"
)

// ErrTimeout marks a conversion killed by the per-file timeout.
var ErrTimeout = errors.New("conversion timed out")

// waitDelay bounds how long Wait keeps draining stderr after the process
// was killed (grandchildren may hold the pipe open).
const waitDelay = 2 * time.Second

// Converter runs svg2pdf. A zero Timeout disables the per-file limit.
type Converter struct {
	Path    string
	Timeout time.Duration
}

// ExecResult holds the outcome of a single converter invocation.
type ExecResult struct {
	Stderr   string
	Err      error
	TimedOut bool
	Elapsed  time.Duration
}

// Args returns the converter arguments for one file.
func Args(src, dst string) []string {
	return []string{src, dst}
}

// Convert runs the converter for src, writing dst, and waits for it to exit.
// Cancelling ctx kills the process.
func (c Converter) Convert(ctx context.Context, src, dst string) ExecResult {
	runCtx := ctx
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, c.Path, Args(src, dst)...)
	cmd.WaitDelay = waitDelay

	var stderrBuf bytes.Buffer
	cmd.Stderr = &stderrBuf

	start := time.Now()
	err := cmd.Run()
	res := ExecResult{
		Stderr:  stderrBuf.String(),
		Err:     err,
		Elapsed: time.Since(start),
	}
	if err == nil {
		return res
	}
	switch {
	case ctx.Err() != nil:
		res.Err = fmt.Errorf("%s: %w", src, ctx.Err())
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		res.TimedOut = true
		res.Err = fmt.Errorf("%w after %s", ErrTimeout, c.Timeout)
	}
	return res
}

// Diagnostic returns the converter's stderr trimmed for display, or "" when
// it is empty or not valid UTF-8 (callers then fall back to a generic
// message built from the exit error).
func Diagnostic(stderr string) string {
	if !utf8.ValidString(stderr) {
		return ""
	}
	return strings.TrimSpace(stderr)
}
