// Package avhrr carries the default processing callable for the batch
// front-end: it reads one swath payload, checks the requested scanline
// window against the record stream and reports what it saw. The full
// calibration and navigation chain lives downstream and is not part of
// this tool.
package avhrr

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nordsat/swathbatch/internal/model"
)

// Process reads the payload for name and validates the scanline window
// against it. When stream is nil the payload is opened from the filesystem
// by name; archive members hand their stream over directly.
func Process(ctx context.Context, name string, stream io.Reader, rng model.Range) error {
	if stream == nil {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("opening %s: %w", name, err)
		}
		defer func() {
			_ = f.Close()
		}()
		stream = f
	}
	slog.DebugContext(ctx, "processing item", "item", name)

	cfg := current
	records, err := countRecords(stream, cfg.RecordBytes)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if records == 0 {
		return fmt.Errorf("%s holds no scanline records", name)
	}
	if rng.Start > records {
		return fmt.Errorf("start line %d is past the last record %d of %s", rng.Start, records, name)
	}

	last := records
	if rng.End > 0 && rng.End < records {
		last = rng.End
	}
	slog.InfoContext(ctx, "processed item",
		"item", name,
		"records", records,
		"first_line", rng.Start,
		"last_line", last,
	)
	return nil
}

// countRecords counts whole fixed-size scanline records in the stream.
// A trailing partial record means a truncated payload.
func countRecords(r io.Reader, recordBytes int) (int, error) {
	n, err := io.Copy(io.Discard, r)
	if err != nil {
		return 0, err
	}
	if n%int64(recordBytes) != 0 {
		return 0, fmt.Errorf("truncated scanline record, %d trailing bytes", n%int64(recordBytes))
	}
	return int(n / int64(recordBytes)), nil
}
