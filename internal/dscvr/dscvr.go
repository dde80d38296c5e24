// Package dscvr classifies a processing target path into a run mode.
package dscvr

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/nordsat/swathbatch/internal/model"

	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/gzip"
)

// Classify decides how the target at path is dispatched: a directory is a
// batch of its children, a file recognized as a tar container is a batch of
// its members, any other file is processed alone in strict mode.
func Classify(path string) (model.Mode, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, fmt.Errorf("%s: %w", path, model.ErrPathNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("inspecting %s: %w", path, err)
	}
	if info.IsDir() {
		return model.ModeDirectory, nil
	}
	if isArchive(path) {
		return model.ModeArchive, nil
	}
	return model.ModeFileStrict, nil
}

const mimeTar = "application/x-tar"

// isArchive reports whether the file content is a tar archive, possibly
// behind a gzip layer. Recognition is structural, by magic bytes; the
// filename suffix plays no part.
func isArchive(path string) bool {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return false
	}
	switch {
	case mt.Is(mimeTar):
		return true
	case mt.Is("application/gzip"):
		return tarInsideGzip(path)
	}
	return false
}

// tarInsideGzip sniffs the first block of the decompressed stream for a
// tar header.
func tarInsideGzip(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer func() {
		_ = f.Close()
	}()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return false
	}
	defer func() {
		_ = gz.Close()
	}()

	// one tar block is enough for the ustar magic at offset 257
	head := make([]byte, 512)
	n, _ := io.ReadFull(gz, head)
	return mimetype.Detect(head[:n]).Is(mimeTar)
}
