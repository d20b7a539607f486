package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/backmassage/svg2asset/internal/config"
	"github.com/backmassage/svg2asset/internal/converter"
	"github.com/backmassage/svg2asset/internal/display"
	"github.com/backmassage/svg2asset/internal/logging"
	"github.com/backmassage/svg2asset/internal/validate"
	"golang.org/x/sync/errgroup"
)

// stderrTailLines caps how much converter output is echoed per failure.
const stderrTailLines = 20

// Run is the top-level batch entry point. It discovers the SVG files in
// paths.Input, converts each into paths.Catalog on a pool of
// cfg.Workers() goroutines, and returns aggregate stats once every
// dispatched task has finished. Only an enumeration failure is returned as
// an error; per-file failures are logged and counted.
//
// Cancelling ctx stops dispatching new files and kills running converters.
func Run(ctx context.Context, cfg *config.Config, paths validate.Paths, log *logging.Logger) (RunStats, error) {
	start := time.Now()

	files, err := Discover(paths.Input, cfg.IconNames)
	if err != nil {
		return RunStats{}, fmt.Errorf("listing %s: %w", paths.Input, err)
	}
	stats := RunStats{Total: len(files)}

	logBatchHeader(cfg, log, paths, &stats)

	conv := converter.Converter{Path: cfg.ConverterPath, Timeout: cfg.ItemTimeout}
	outcomes := make(chan Outcome)
	go dispatch(ctx, cfg, log, conv, paths.Catalog, files, outcomes)

	progress := display.NewProgress(len(files), !cfg.Verbose)
	for o := range outcomes {
		stats.Dispatched++
		stats.record(o)
		if o.Err != nil {
			progress.Clear()
		}
		report(cfg, log, o)
		progress.Advance()
	}
	progress.Finish()

	stats.Elapsed = time.Since(start)
	stats.Interrupted = ctx.Err() != nil
	logSummary(cfg, log, &stats)
	return stats, nil
}

// dispatch feeds files to a bounded errgroup in sorted order and closes out
// once all tasks have reported. With a limit of one, tasks run strictly in
// order.
func dispatch(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	conv converter.Converter,
	catalog string,
	files []string,
	out chan<- Outcome,
) {
	defer close(out)

	var g errgroup.Group
	g.SetLimit(cfg.Workers())
	for _, path := range files {
		if ctx.Err() != nil {
			break
		}
		item := NewItem(path, catalog, cfg.TemplateRendering)
		log.Debug(cfg.Verbose, "Processing %s", item.Source)
		g.Go(func() error {
			out <- convertItem(ctx, conv, item)
			return nil
		})
	}
	_ = g.Wait()
}

// report logs one finished task.
func report(cfg *config.Config, log *logging.Logger, o Outcome) {
	if o.Err == nil {
		log.Debug(cfg.Verbose, "Converted %s (%s in %s)",
			o.Item.Name, display.FormatBytes(o.Size), display.FormatDuration(o.Elapsed))
		return
	}
	log.Error("%v", o.Err)

	var te *TaskError
	if !cfg.Verbose || !errors.As(o.Err, &te) {
		return
	}
	if diag := converter.Diagnostic(te.Stderr); strings.Contains(diag, "\n") {
		logStderr(log, diag)
	}
}

func logStderr(log *logging.Logger, stderr string) {
	if stderr == "" {
		return
	}
	log.Error("Last svg2pdf output:")
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	start := 0
	if len(lines) > stderrTailLines {
		start = len(lines) - stderrTailLines
	}
	for _, l := range lines[start:] {
		log.Error("  %s", l)
	}
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, paths validate.Paths, stats *RunStats) {
	log.Info("Converting SVG images at %s to assets at %s", paths.Input, paths.Catalog)
	mode := fmt.Sprintf("%d workers", cfg.Workers())
	if cfg.Workers() == 1 {
		mode = "serial"
	}
	log.Debug(cfg.Verbose, "Found %d SVG files (%s)", stats.Total, mode)
	if len(cfg.IconNames) > 0 {
		log.Debug(cfg.Verbose, "Restricted to: %s", strings.Join(cfg.IconNames, ", "))
	}
	if !cfg.TemplateRendering {
		log.Debug(cfg.Verbose, "Template rendering disabled")
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	if stats.Interrupted {
		log.Warn("Interrupted: %d of %d files not started", stats.Skipped(), stats.Total)
	}
	switch {
	case stats.Failed > 0:
		log.Warn("Processed %d assets (%d failed)", stats.Converted, stats.Failed)
	default:
		log.Success("Processed %d assets", stats.Converted)
	}
	if stats.TimedOut > 0 {
		log.Warn("%d conversions exceeded the %s timeout", stats.TimedOut, cfg.ItemTimeout)
	}
	log.Debug(cfg.Verbose, "Wrote %s of PDF in %s",
		display.FormatBytes(stats.Bytes), display.FormatDuration(stats.Elapsed))
}
