// Package converter runs the external svg2pdf binary for one file.
//
// The converter is invoked as "<path> <source.svg> <target.pdf>". Its
// standard error is captured in full and surfaced when it exits non-zero.
// An optional per-file timeout kills a hung process so the batch barrier
// cannot block forever.
package converter
