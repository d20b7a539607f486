// Package pipeline discovers the SVG files to convert, runs one conversion
// task per file on a bounded worker pool, and reports the batch result.
//
// Each task creates "<catalog>/<base>.imageset", writes its Contents.json
// and runs the converter. A failed task is logged and counted; it never
// stops the batch. [Run] returns only after every dispatched task has
// finished.
package pipeline
