// Package filecmp compares two files byte by byte.
package filecmp

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrIOFailure wraps any failure to open or read an input
var ErrIOFailure = errors.New("file comparison I/O failure")

// Result describes the differences between two byte sequences
type Result struct {
	LenA       int
	LenB       int
	Mismatches int

	// Offsets lists every mismatching offset when requested
	Offsets []int
}

// OK reports whether the inputs are identical
func (r *Result) OK() bool {
	return r.Mismatches == 0 && r.LenA == r.LenB
}

// CompareBytes compares a and b over their common prefix length. A length
// difference alone is not counted as a mismatch but makes OK false.
func CompareBytes(a, b []byte, recordOffsets bool) *Result {
	r := &Result{LenA: len(a), LenB: len(b)}
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			r.Mismatches++
			if recordOffsets {
				r.Offsets = append(r.Offsets, i)
			}
		}
	}
	return r
}

// CompareFiles reads both files fully and compares them
func CompareFiles(pathA, pathB string, recordOffsets bool) (*Result, error) {
	a, err := readFile(pathA)
	if err != nil {
		return nil, err
	}
	b, err := readFile(pathB)
	if err != nil {
		return nil, err
	}
	return CompareBytes(a, b, recordOffsets), nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrIOFailure, path, err)
	}
	return data, nil
}

// WriteTo prints the human-readable verdict to w
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	var total int64
	write := func(format string, args ...interface{}) error {
		n, err := fmt.Fprintf(w, format, args...)
		total += int64(n)
		return err
	}

	if err := write("len: %d (first) VS %d (second)\n", r.LenA, r.LenB); err != nil {
		return total, err
	}
	for _, off := range r.Offsets {
		if err := write("mismatch at offset %d / %x\n", off, off); err != nil {
			return total, err
		}
	}
	if r.OK() {
		return total, write("Files are identical.\n")
	}
	if err := write("Files differ.\n"); err != nil {
		return total, err
	}
	return total, write("Total mismatches: %d\n", r.Mismatches)
}
