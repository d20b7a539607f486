// Package config holds runtime configuration: defaults, config file and
// environment layering, CLI flag binding, and validation.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Known install locations of the external tools.
const (
	DefaultConverterPath = "/usr/local/bin/svg2pdf"
	DefaultSwiftGenPath  = "/usr/local/bin/swiftgen"
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then overlaid by [LoadFile], [LoadEnv] and the CLI flags (in that order)
// before being passed by pointer to the packages that need it.
type Config struct {
	// Paths.
	InputDir     string `yaml:"input_dir" envconfig:"INPUT_DIR"`         // Default: ".".
	AssetCatalog string `yaml:"asset_catalog" envconfig:"ASSET_CATALOG"` // Default: "./Assets.xcassets".

	// Behavior flags.
	Force             bool     `yaml:"force" envconfig:"FORCE"`
	Serial            bool     `yaml:"serial" envconfig:"SERIAL"`
	IconNames         []string `yaml:"icon_names" envconfig:"ICON_NAMES"`
	TemplateRendering bool     `yaml:"template_rendering" envconfig:"TEMPLATE_RENDERING"` // Default: true.

	// Worker pool.
	Jobs        int           `yaml:"jobs" envconfig:"JOBS"`       // 0 means runtime.NumCPU().
	ItemTimeout time.Duration `yaml:"timeout" envconfig:"TIMEOUT"` // Default: 2m. 0 disables.

	// External tools.
	ConverterPath    string `yaml:"converter" envconfig:"CONVERTER"`
	SwiftGen         bool   `yaml:"swiftgen" envconfig:"SWIFTGEN"`
	SwiftGenPath     string `yaml:"swiftgen_path" envconfig:"SWIFTGEN_PATH"`
	SwiftGenTemplate string `yaml:"swiftgen_template" envconfig:"SWIFTGEN_TEMPLATE"` // Default: "swift4".

	// Display and logging.
	Verbose   bool      `yaml:"verbose" envconfig:"VERBOSE"`
	ColorMode ColorMode `yaml:"color" envconfig:"COLOR"` // Default: "auto".
	LogFile   string    `yaml:"log_file" envconfig:"LOG_FILE"`
	CheckOnly bool      `yaml:"-" ignored:"true"` // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// file, environment and CLI overrides are applied.
func DefaultConfig() Config {
	return Config{
		InputDir:          ".",
		AssetCatalog:      "./Assets.xcassets",
		TemplateRendering: true,
		ItemTimeout:       2 * time.Minute,
		ConverterPath:     DefaultConverterPath,
		SwiftGenPath:      DefaultSwiftGenPath,
		SwiftGenTemplate:  "swift4",
		ColorMode:         ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum and numeric fields. When not in CheckOnly mode it
// also requires non-empty input and catalog paths.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative (got %d)", c.Jobs)
	}
	if c.ItemTimeout < 0 {
		return fmt.Errorf("timeout must not be negative (got %s)", c.ItemTimeout)
	}
	if c.ConverterPath == "" {
		return errors.New("converter path must not be empty")
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" || c.AssetCatalog == "" {
		return errors.New("need both an input directory and an asset catalog path")
	}
	return nil
}

// Workers returns the effective worker pool size: 1 in serial mode,
// otherwise Jobs, falling back to the number of CPUs.
func (c *Config) Workers() int {
	if c.Serial {
		return 1
	}
	if c.Jobs > 0 {
		return c.Jobs
	}
	return runtime.NumCPU()
}
