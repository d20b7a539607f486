// Command svg2asset converts a directory of SVG files into an Xcode asset
// catalog of PDF image sets, optionally running SwiftGen on the result.
// It layers config (defaults, YAML file, environment, flags), checks the
// converter and paths, and runs the conversion pipeline.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/svg2asset/internal/assetcatalog"
	"github.com/backmassage/svg2asset/internal/check"
	"github.com/backmassage/svg2asset/internal/codegen"
	"github.com/backmassage/svg2asset/internal/config"
	"github.com/backmassage/svg2asset/internal/display"
	"github.com/backmassage/svg2asset/internal/logging"
	"github.com/backmassage/svg2asset/internal/pipeline"
	"github.com/backmassage/svg2asset/internal/validate"
	"github.com/spf13/cobra"
)

// version and commit are set at build time via -ldflags (e.g. Makefile).
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

// errInterrupted makes run exit non-zero after a clean shutdown on SIGINT.
var errInterrupted = errors.New("interrupted")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	// 1. Layer config: defaults, then YAML file and environment. Flags are
	// bound on top with these values as their defaults.
	cfg := config.DefaultConfig()
	if err := config.Load(&cfg, args); err != nil {
		fmt.Fprintf(stderr, "svg2asset: %v\n", err)
		return 1
	}

	// SIGINT/SIGTERM stop dispatch and kill running converters.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand(&cfg)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errInterrupted) {
			fmt.Fprintf(stderr, "svg2asset: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "svg2asset [flags] [icon-name ...]",
		Short:         "Convert SVG files into an Xcode asset catalog",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	flags := config.BindFlags(cmd.Flags(), cfg)
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		config.PrintUsage(c.OutOrStdout(), version)
	})
	cmd.RunE = func(c *cobra.Command, positional []string) error {
		flags.Apply(positional)
		if err := cfg.Validate(); err != nil {
			return err
		}
		return convert(c.Context(), cfg, c.OutOrStdout(), c.ErrOrStderr())
	}
	return cmd
}

// convert runs one batch: checks, catalog creation, conversion, summary and
// the optional SwiftGen hook.
func convert(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) error {
	log, err := logging.NewLoggerTo(cfg, stdout, stderr)
	if err != nil {
		return err
	}
	defer log.Close()

	if cfg.Verbose {
		display.PrintBanner(stdout, version)
	}

	// 2. System check mode: report tools and exit.
	if cfg.CheckOnly {
		if !check.RunCheck(cfg, log) {
			return errors.New("system check failed")
		}
		return nil
	}

	// 3. The converter must exist before anything is written to disk.
	if err := check.CheckConverter(cfg.ConverterPath); err != nil {
		return err
	}

	// 4. Validate paths and create the catalog directory.
	paths, err := validate.New(log).Validate(validate.Request{
		InputDir:     cfg.InputDir,
		AssetCatalog: cfg.AssetCatalog,
		Force:        cfg.Force,
		Verbose:      cfg.Verbose,
	})
	if err != nil {
		return err
	}
	if err := assetcatalog.WriteContainer(paths.Catalog); err != nil {
		return fmt.Errorf("%s: %w", paths.Catalog, err)
	}

	// 5. Convert every SVG; per-file failures are logged, not returned.
	stats, err := pipeline.Run(ctx, cfg, paths, log)
	if err != nil {
		return err
	}
	if stats.Interrupted {
		return errInterrupted
	}

	// 6. Optional code generation; its exit status is not checked.
	if cfg.SwiftGen {
		runSwiftGen(ctx, cfg, log, paths.Catalog)
	}
	return nil
}

func runSwiftGen(ctx context.Context, cfg *config.Config, log *logging.Logger, catalog string) {
	bin, ok := check.LocateSwiftGen(cfg.SwiftGenPath)
	if !ok {
		log.Debug(cfg.Verbose, "swiftgen not found at %s, skipping code generation", cfg.SwiftGenPath)
		return
	}
	gen := codegen.Generator{Path: bin, Template: cfg.SwiftGenTemplate}
	log.Info("Generating Swift code via SwiftGen at %s", codegen.OutputPath(catalog))

	spin := display.StartSpinner("Running SwiftGen", !cfg.Verbose)
	res := gen.Run(ctx, catalog)
	spin.Stop()

	if res.Err != nil {
		log.Debug(cfg.Verbose, "swiftgen exited with %v", res.Err)
	}
	if res.Output != "" {
		log.Debug(cfg.Verbose, "swiftgen: %s", res.Output)
	}
}
