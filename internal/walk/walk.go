// Package walk provides lazy iterators over the items of a processing
// target: a single file, the direct children of a directory, or the
// regular-file members of a tar archive.
package walk

import "io"

// Entry is a handle for one processable item.
type Entry interface {
	// Path returns the item identifier: a filesystem path, or a member
	// name for items coming out of an archive.
	Path() string
	// Stream returns the already-open payload for archive members, or nil
	// when the payload should be read from the filesystem by Path. Archive
	// streams are owned by the walk and stay valid only until it advances.
	Stream() io.Reader
}
