package config

// This file implements CLI flag binding and help text.
// Flags are grouped into paths, behavior, workers, tools, and display.
// Negated flags (e.g. --no-template) are applied after parsing so the layered
// defaults hold unless the flag is passed.

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// Flags ties a parsed flag set back to the Config it was bound to.
type Flags struct {
	cfg     *Config
	negated negatedFlags
}

// negatedFlags holds boolean flags that are applied after parsing because
// they invert a default (e.g. noTemplate -> TemplateRendering=false).
type negatedFlags struct {
	noTemplate bool
	noSerial   bool
	forceColor bool
	noColor    bool
}

// BindFlags registers every flag on fs. Current cfg values become the flag
// defaults, so call it after [Load]. Call [Flags.Apply] once fs is parsed.
func BindFlags(fs *pflag.FlagSet, cfg *Config) *Flags {
	f := &Flags{cfg: cfg}
	definePathFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg, &f.negated)
	defineWorkerFlags(fs, cfg)
	defineToolFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &f.negated)
	return f
}

// Apply copies negated flag values into the config, appends positional
// arguments to the icon name allow-list, and normalizes paths.
func (f *Flags) Apply(positional []string) {
	applyNegatedFlags(f.cfg, &f.negated)
	f.cfg.IconNames = append(f.cfg.IconNames, positional...)
	f.cfg.InputDir = NormalizeDirArg(f.cfg.InputDir)
	f.cfg.AssetCatalog = NormalizeDirArg(f.cfg.AssetCatalog)
}

// definePathFlags registers -i/--input-dir, -a/--asset-catalog and --config.
func definePathFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.InputDir, "input-dir", "i", cfg.InputDir, "Input directory containing SVGs")
	fs.StringVarP(&cfg.AssetCatalog, "asset-catalog", "a", cfg.AssetCatalog, "Path to output asset catalog")
	// Consumed by FilePath before binding; registered so the parse accepts it.
	fs.String("config", "", "YAML config file")
}

// defineBehaviorFlags registers force, serial, icon names and template flags.
func defineBehaviorFlags(fs *pflag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVarP(&cfg.Force, "force", "f", cfg.Force, "Overwrite an asset catalog at the destination, if it exists")
	fs.BoolVar(&cfg.Serial, "serial", cfg.Serial, "Require serial processing instead of concurrent")
	fs.StringSliceVar(&cfg.IconNames, "icon-names", cfg.IconNames, "File names to convert (default: all)")
	fs.BoolVar(&n.noSerial, "no-serial", false, "Allow concurrent processing (overrides config file and environment)")
	fs.BoolVar(&n.noTemplate, "no-template", false, "Do not mark images as template (tintable) assets")
}

// defineWorkerFlags registers -j/--jobs and --timeout.
func defineWorkerFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.IntVarP(&cfg.Jobs, "jobs", "j", cfg.Jobs, "Concurrent conversions (default: number of CPUs)")
	fs.DurationVar(&cfg.ItemTimeout, "timeout", cfg.ItemTimeout, "Per-file conversion timeout (0 disables)")
}

// defineToolFlags registers the external tool locations and --swiftgen.
func defineToolFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.ConverterPath, "converter", cfg.ConverterPath, "Path to the svg2pdf binary")
	fs.BoolVar(&cfg.SwiftGen, "swiftgen", cfg.SwiftGen, "Use SwiftGen to generate code for the asset catalog (if installed)")
	fs.StringVar(&cfg.SwiftGenPath, "swiftgen-path", cfg.SwiftGenPath, "Path to the swiftgen binary")
	fs.StringVar(&cfg.SwiftGenTemplate, "swiftgen-template", cfg.SwiftGenTemplate, "SwiftGen xcassets template name")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Print verbose output")
	fs.BoolVarP(&cfg.CheckOnly, "check", "c", false, "Run system diagnostics and exit")
	fs.StringVarP(&cfg.LogFile, "log", "l", cfg.LogFile, "Append logs to file")
}

// applyNegatedFlags copies negated and override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noTemplate {
		cfg.TemplateRendering = false
	}
	if n.noSerial {
		cfg.Serial = false
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// PrintUsage writes the help text to w. Column-aligned for readability.
func PrintUsage(w io.Writer, version string) {
	const col1 = 32 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "svg2asset v" + version + " - convert SVGs to a PDF asset catalog"},
		{"", ""},
		{"  svg2asset [OPTIONS] [icon-name ...]", ""},
		{"", ""},
		{"Paths", ""},
		{"  -i, --input-dir <dir>", "Input directory containing SVGs (default: .)"},
		{"  -a, --asset-catalog <path>", "Output asset catalog (default: ./Assets.xcassets)"},
		{"  --config <file>", "YAML config file (or $SVG2ASSET_CONFIG)"},
		{"", ""},
		{"Conversion", ""},
		{"  -f, --force", "Overwrite an existing asset catalog"},
		{"  --icon-names <a.svg,...>", "Only convert these files (default: all)"},
		{"  --no-template", "Do not mark images as template assets"},
		{"  --serial", "Convert one file at a time"},
		{"  --no-serial", "Convert concurrently (overrides config)"},
		{"  -j, --jobs <n>", "Concurrent conversions (default: CPUs)"},
		{"  --timeout <duration>", "Per-file timeout, 0 disables (default: 2m)"},
		{"  --converter <path>", "svg2pdf binary (default: " + DefaultConverterPath + ")"},
		{"", ""},
		{"Code generation", ""},
		{"  --swiftgen", "Run SwiftGen on the finished catalog"},
		{"  --swiftgen-path <path>", "swiftgen binary (default: " + DefaultSwiftGenPath + ")"},
		{"  --swiftgen-template <name>", "SwiftGen template (default: swift4)"},
		{"", ""},
		{"Display", ""},
		{"  -v, --verbose", "Print verbose output"},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (svg2pdf, swiftgen)"},
		{"  --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", strings.TrimSpace(l.desc))
	}
}
