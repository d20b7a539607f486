package config

// This file implements the non-flag configuration layers: an optional YAML
// file and SVG2ASSET_* environment variables (optionally seeded from .env).
// Flags are bound afterwards with the layered values as their defaults, so
// the precedence is defaults < file < environment < flags.

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for every environment override.
const EnvPrefix = "SVG2ASSET"

// FilePath returns the config file requested by --config in args, falling
// back to $SVG2ASSET_CONFIG. Unknown flags are ignored; they are reported
// later by the real flag parse.
func FilePath(args []string) string {
	fs := pflag.NewFlagSet("config", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	path := fs.String("config", "", "")
	// -h/--help must not abort the pre-scan.
	fs.BoolP("help", "h", false, "")
	_ = fs.Parse(args)
	if *path != "" {
		return *path
	}
	return os.Getenv(EnvPrefix + "_CONFIG")
}

// LoadFile overlays the YAML file at path onto cfg. Unknown keys are an
// error so typos do not silently fall back to defaults.
func LoadFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// LoadEnv loads .env from the working directory (if present) and overlays
// SVG2ASSET_* variables onto cfg. Variables already set in the process
// environment win over .env entries.
func LoadEnv(cfg *Config) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return fmt.Errorf("parsing environment variables: %w", err)
	}
	return nil
}

// Load applies the file and environment layers to cfg.
func Load(cfg *Config, args []string) error {
	if err := LoadFile(cfg, FilePath(args)); err != nil {
		return err
	}
	return LoadEnv(cfg)
}
