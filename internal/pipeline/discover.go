package pipeline

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/backmassage/svg2asset/internal/assetcatalog"
)

// Discover lists inputDir (non-recursively) and returns the SVG files to
// convert, sorted by path. When allow is non-empty only entries whose full
// file name (extension included) appears in it are kept. The extension
// match is exact and case-sensitive; directories and other files are
// skipped silently, as is a hidden file named exactly ".svg".
func Discover(inputDir string, allow []string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, err
	}

	allowed := make(map[string]bool, len(allow))
	for _, name := range allow {
		allowed[name] = true
	}

	var files []string
	for _, e := range entries {
		if len(allowed) > 0 && !allowed[e.Name()] {
			continue
		}
		if e.IsDir() || !isSource(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(inputDir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// isSource reports whether name ends in ".svg" after a non-empty base name;
// a bare ".svg" is a hidden file without extension.
func isSource(name string) bool {
	ext := filepath.Ext(name)
	return ext == assetcatalog.SourceExtension && len(name) > len(ext)
}
