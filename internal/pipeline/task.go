package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/backmassage/svg2asset/internal/assetcatalog"
	"github.com/backmassage/svg2asset/internal/converter"
)

// Item is one SVG file and where its image set goes.
type Item struct {
	Name     string // source file name, e.g. "arrow.svg"
	Base     string // "arrow"
	Source   string // absolute source path
	Dir      string // <catalog>/arrow.imageset
	Target   string // <catalog>/arrow.imageset/arrow.pdf
	Template bool
}

// NewItem derives the image set locations for source inside catalog.
func NewItem(source, catalog string, template bool) Item {
	base := assetcatalog.BaseName(source)
	dir := filepath.Join(catalog, assetcatalog.ItemDirName(base))
	return Item{
		Name:     filepath.Base(source),
		Base:     base,
		Source:   source,
		Dir:      dir,
		Target:   filepath.Join(dir, assetcatalog.ConvertedName(base)),
		Template: template,
	}
}

// TaskErrorKind classifies a failed conversion task.
type TaskErrorKind int

const (
	ItemDirFailed TaskErrorKind = iota + 1
	MetadataFailed
	ConversionFailed
	Timeout
)

func (k TaskErrorKind) String() string {
	switch k {
	case ItemDirFailed:
		return "item-dir"
	case MetadataFailed:
		return "metadata"
	case ConversionFailed:
		return "conversion"
	case Timeout:
		return "timeout"
	}
	return fmt.Sprintf("pipeline.TaskErrorKind(%d)", int(k))
}

// TaskError reports why one item failed. Stderr holds the converter's
// captured standard error for conversion failures.
type TaskError struct {
	Kind   TaskErrorKind
	Item   string
	Err    error
	Stderr string
}

func (e *TaskError) Error() string {
	switch e.Kind {
	case ItemDirFailed:
		return fmt.Sprintf("Could not create asset folder for %s, skipping: %v", e.Item, e.Err)
	case MetadataFailed:
		return fmt.Sprintf("Could not write asset metadata for %s: %v", e.Item, e.Err)
	case Timeout:
		return fmt.Sprintf("Conversion to PDF failed for %s: %v", e.Item, e.Err)
	}
	detail := lastLine(converter.Diagnostic(e.Stderr))
	if detail == "" {
		detail = fmt.Sprintf("svg2pdf exited with %v", e.Err)
	}
	return fmt.Sprintf("Conversion to PDF failed for %s: %s", e.Item, detail)
}

func (e *TaskError) Unwrap() error { return e.Err }

// Outcome is what a task reports to the collector.
type Outcome struct {
	Item    Item
	Err     error
	Size    int64
	Elapsed time.Duration
}

// TimedOut reports whether the item failed on the per-file timeout.
func (o Outcome) TimedOut() bool {
	var te *TaskError
	return errors.As(o.Err, &te) && te.Kind == Timeout
}

// convertItem runs one conversion task. Partial artifacts (the image set
// directory and its Contents.json) stay in place on failure; a partial PDF
// left by a failed converter is removed.
func convertItem(ctx context.Context, conv converter.Converter, item Item) Outcome {
	start := time.Now()
	fail := func(kind TaskErrorKind, err error, stderr string) Outcome {
		return Outcome{
			Item:    item,
			Err:     &TaskError{Kind: kind, Item: item.Name, Err: err, Stderr: stderr},
			Elapsed: time.Since(start),
		}
	}

	if err := os.Mkdir(item.Dir, 0o755); err != nil {
		return fail(ItemDirFailed, err, "")
	}
	set := assetcatalog.NewImageSet(filepath.Base(item.Target), item.Template)
	if err := assetcatalog.WriteContents(item.Dir, set); err != nil {
		return fail(MetadataFailed, err, "")
	}

	res := conv.Convert(ctx, item.Source, item.Target)
	if res.Err != nil {
		_ = os.Remove(item.Target)
		kind := ConversionFailed
		if res.TimedOut {
			kind = Timeout
		}
		return fail(kind, res.Err, res.Stderr)
	}

	out := Outcome{Item: item, Elapsed: time.Since(start)}
	if fi, err := os.Stat(item.Target); err == nil {
		out.Size = fi.Size()
	}
	return out
}

func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[i+1:])
	}
	return s
}
