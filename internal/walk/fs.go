package walk

import (
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
)

// File yields exactly one entry whose payload is read from the filesystem.
func File(path string) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		yield(fsEntry{path: path}, nil)
	}
}

// Dir yields one entry per direct child of dir, in whatever order the
// filesystem returns them; callers must not depend on it. Children are not
// filtered by kind or content: an unreadable or non-regular child surfaces
// as a processing failure, not a discovery one. It does not recurse.
func Dir(ctx context.Context, dir string) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		children, err := os.ReadDir(dir)
		if err != nil {
			yield(nil, fmt.Errorf("listing directory: %w", err))
			return
		}
		for _, d := range children {
			if ctx.Err() != nil {
				return
			}
			if !yield(fsEntry{path: filepath.Join(dir, d.Name())}, nil) {
				return
			}
		}
	}
}

// fsEntry implements Entry for an item living on the filesystem.
// The payload is opened by the consumer, so Stream is nil.
type fsEntry struct {
	path string
}

func (e fsEntry) Path() string {
	return e.path
}

func (e fsEntry) Stream() io.Reader {
	return nil
}
