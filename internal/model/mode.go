package model

// Mode is the dispatch strategy derived once per invocation from the
// filesystem kind of the target path.
type Mode int

const (
	// ModeFileStrict processes exactly one plain file; a failure propagates
	// to the caller.
	ModeFileStrict Mode = iota
	// ModeArchive iterates the regular-file members of a tar archive.
	ModeArchive
	// ModeDirectory iterates the direct children of a directory.
	ModeDirectory
)

func (m Mode) String() string {
	switch m {
	case ModeFileStrict:
		return "file"
	case ModeArchive:
		return "archive"
	case ModeDirectory:
		return "directory"
	default:
		return "unknown"
	}
}
