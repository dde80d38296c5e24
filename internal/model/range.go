package model

import (
	"fmt"
	"os"
	"strconv"
)

// Range bounds processing within a single item. End == 0 means through the
// last available scanline. A validated Range is immutable and shared
// read-only by every item of a run.
type Range struct {
	Start int
	End   int
}

// ParseScanline converts a raw CLI argument into a scanline index.
// Zero is valid, both as a real start and as the "through the last
// scanline" end sentinel.
func ParseScanline(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("scanline %q is not an integer: %w", raw, ErrArgument)
	}
	if n < 0 {
		return 0, fmt.Errorf("scanline %d is negative: %w", n, ErrArgument)
	}
	return n, nil
}

// NewRange validates the pair. Only a nonzero end can invert the range.
func NewRange(start, end int) (Range, error) {
	if end > 0 && start > end {
		return Range{}, fmt.Errorf("start line %d is past end line %d: %w", start, end, ErrValidation)
	}
	return Range{Start: start, End: end}, nil
}

// ValidateConfigPath checks that an optional configuration path resolves to
// an existing regular file. An empty path means no configuration and is
// valid. It runs at startup, before any item is discovered.
func ValidateConfigPath(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", path, ErrConfigNotFound)
	}
	return nil
}
