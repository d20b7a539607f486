// Package validate checks and prepares the input directory and the output
// asset catalog before any conversion starts.
//
// A [Validator] runs its checks once. After success it returns the cached
// paths without touching the filesystem again (the last step creates the
// catalog, so repeating it would fail); after failure it keeps returning
// the recorded error.
package validate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/svg2asset/internal/assetcatalog"
	"golang.org/x/sys/unix"
)

// State is the lifecycle of a Validator.
type State int

const (
	Unvalidated State = iota
	Validated
	Failed
)

func (s State) String() string {
	switch s {
	case Unvalidated:
		return "unvalidated"
	case Validated:
		return "validated"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("validate.State(%d)", int(s))
}

// ErrRequestChanged is returned when a validated Validator is asked to check
// a different request.
var ErrRequestChanged = errors.New("validator already ran for a different request")

// Logger is the logging surface the validator needs.
type Logger interface {
	Warn(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// Request names the directories to check.
type Request struct {
	InputDir     string
	AssetCatalog string
	Force        bool
	Verbose      bool
}

// Paths are the absolute, symlink-resolved locations to work with.
type Paths struct {
	Input   string
	Catalog string
}

// Validator checks a Request once and caches the outcome.
type Validator struct {
	log   Logger
	state State
	req   Request
	paths Paths
	err   error
}

// New returns an unvalidated Validator.
func New(log Logger) *Validator {
	return &Validator{log: log}
}

// State reports where the validator is in its lifecycle.
func (v *Validator) State() State { return v.state }

// Validate runs the directory checks in order, stopping at the first
// failure. On success the catalog directory exists and is empty.
func (v *Validator) Validate(req Request) (Paths, error) {
	switch v.state {
	case Validated:
		if req != v.req {
			return Paths{}, ErrRequestChanged
		}
		return v.paths, nil
	case Failed:
		return Paths{}, v.err
	}

	v.req = req
	paths, err := v.run(req)
	if err != nil {
		v.state, v.err = Failed, err
		return Paths{}, err
	}
	v.state, v.paths = Validated, paths
	return paths, nil
}

func (v *Validator) run(req Request) (Paths, error) {
	if !assetcatalog.HasExtension(req.AssetCatalog) {
		return Paths{}, newError(InvalidCatalogName, req.AssetCatalog, nil)
	}

	input, err := filepath.Abs(req.InputDir)
	if err != nil {
		return Paths{}, newError(InputStatUnavailable, req.InputDir, err)
	}
	catalog, err := filepath.Abs(req.AssetCatalog)
	if err != nil {
		return Paths{}, newError(OutputStatUnavailable, req.AssetCatalog, err)
	}
	parent := filepath.Dir(catalog)

	if !exists(input) || !exists(parent) {
		return Paths{}, newError(MissingDirectories, "", nil)
	}

	if req.Force && exists(catalog) {
		v.log.Warn("Overwriting existing asset catalog at destination.")
		if err := os.RemoveAll(catalog); err != nil {
			return Paths{}, fmt.Errorf("removing %s: %w", catalog, err)
		}
	}

	resolvedInput, err := checkDir(input, unix.R_OK, InputStatUnavailable, InputDirectoryInvalid)
	if err != nil {
		return Paths{}, err
	}
	resolvedParent, err := checkDir(parent, unix.W_OK, OutputStatUnavailable, OutputDirectoryInvalid)
	if err != nil {
		return Paths{}, err
	}
	catalog = filepath.Join(resolvedParent, filepath.Base(catalog))

	if _, err := os.Lstat(catalog); err == nil {
		return Paths{}, newError(CatalogAlreadyExists, catalog, nil)
	}
	if err := os.Mkdir(catalog, 0o755); err != nil {
		return Paths{}, newError(CatalogCreationFailed, catalog, err)
	}
	v.log.Debug(req.Verbose, "Created asset catalog at %s", catalog)

	return Paths{Input: resolvedInput, Catalog: catalog}, nil
}

// checkDir resolves symlinks in path and requires a directory the process
// can access with mode. Stat problems map to statKind, everything else to
// invalidKind.
func checkDir(path string, mode uint32, statKind, invalidKind Kind) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", newError(statKind, path, err)
	}
	fi, err := os.Stat(resolved)
	if err != nil {
		return "", newError(statKind, resolved, err)
	}
	if !fi.IsDir() {
		return "", newError(invalidKind, resolved, nil)
	}
	if err := unix.Access(resolved, mode); err != nil {
		return "", newError(invalidKind, resolved, err)
	}
	return resolved, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
