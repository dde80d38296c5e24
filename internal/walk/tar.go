package walk

import (
	"archive/tar"
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"

	"github.com/klauspost/compress/gzip"
)

// Tar opens the archive at path and yields (member name, stream) pairs for
// every member that is a regular file, in archive order. Directories,
// symlinks and other special members are skipped. A gzip layer around the
// tar stream is handled transparently.
//
// The sequence is forward-only and single pass: the archive is opened when
// iteration starts and closed when it stops, so consuming it twice means
// reopening, and each yielded stream must be used before the walk advances.
func Tar(ctx context.Context, path string) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		f, err := os.Open(path)
		if err != nil {
			yield(nil, fmt.Errorf("opening archive: %w", err))
			return
		}
		defer func() {
			_ = f.Close()
		}()

		br := bufio.NewReader(f)
		var r io.Reader = br
		if head, err := br.Peek(2); err == nil && head[0] == 0x1f && head[1] == 0x8b {
			gz, err := gzip.NewReader(br)
			if err != nil {
				yield(nil, fmt.Errorf("opening archive %s: %w", path, err))
				return
			}
			defer func() {
				_ = gz.Close()
			}()
			r = gz
		}

		tr := tar.NewReader(r)
		for {
			if ctx.Err() != nil {
				return
			}
			hdr, err := tr.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				// the tar stream is not recoverable past a read error
				yield(nil, fmt.Errorf("reading archive %s: %w", path, err))
				return
			}
			if hdr.Typeflag != tar.TypeReg {
				slog.DebugContext(ctx, "skipping non-regular archive member", "member", hdr.Name)
				continue
			}
			if !yield(tarEntry{name: hdr.Name, r: tr}, nil) {
				return
			}
		}
	}
}

// tarEntry implements Entry for one archive member. The stream reads the
// current member of the shared tar reader, so it expires when the walk
// moves to the next member.
type tarEntry struct {
	name string
	r    io.Reader
}

func (e tarEntry) Path() string {
	return e.name
}

func (e tarEntry) Stream() io.Reader {
	return e.r
}
