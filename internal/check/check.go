// Package check provides system diagnostics (--check mode) and the
// pre-run dependency check for the svg2pdf converter and the optional
// swiftgen code generator.
package check

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/backmassage/svg2asset/internal/config"
	"golang.org/x/sys/unix"
)

// ErrConverterNotFound is returned by CheckConverter when svg2pdf is missing.
var ErrConverterNotFound = errors.New("Could not find svg2pdf. Please install it via HomeBrew")

// versionTimeout bounds the "--version" probe in RunCheck.
const versionTimeout = 5 * time.Second

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// CheckConverter verifies the converter binary exists at path and is
// executable. Returns ErrConverterNotFound (wrapped with the path) otherwise.
func CheckConverter(path string) error {
	if !isExecutable(path) {
		return fmt.Errorf("%w (looked at %s)", ErrConverterNotFound, path)
	}
	return nil
}

// LocateSwiftGen reports whether the generator exists at path. A missing
// generator is not an error: code generation is simply skipped.
func LocateSwiftGen(path string) (string, bool) {
	if path == "" || !isExecutable(path) {
		return "", false
	}
	return path, true
}

// RunCheck runs the --check flow: reports the converter, the code
// generator and the effective worker count. Returns false when the
// converter is missing, since no conversion could run.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	ok := true
	if err := CheckConverter(cfg.ConverterPath); err != nil {
		log.Error("%v", err)
		ok = false
	} else {
		log.Success("svg2pdf: %s", describe(cfg.ConverterPath))
	}

	if path, found := LocateSwiftGen(cfg.SwiftGenPath); found {
		log.Success("swiftgen: %s", describe(path))
	} else {
		log.Warn("swiftgen not found at %s (code generation unavailable)", cfg.SwiftGenPath)
	}

	log.Info("Workers: %d", cfg.Workers())
	if cfg.ItemTimeout > 0 {
		log.Info("Per-file timeout: %s", cfg.ItemTimeout)
	} else {
		log.Info("Per-file timeout: disabled")
	}
	return ok
}

// describe returns the path plus the first line of "<path> --version" when
// the tool answers within versionTimeout.
func describe(path string) string {
	ctx, cancel := context.WithTimeout(context.Background(), versionTimeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return path
	}
	first := strings.TrimSpace(string(out))
	if idx := strings.Index(first, "\n"); idx > 0 {
		first = first[:idx]
	}
	if first == "" {
		return path
	}
	return path + " (" + first + ")"
}

// isExecutable reports whether path is a regular file the process may execute.
func isExecutable(path string) bool {
	fi, err := os.Stat(path)
	if err != nil || fi.IsDir() {
		return false
	}
	return unix.Access(path, unix.X_OK) == nil
}
