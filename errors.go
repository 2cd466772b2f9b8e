package polylla

import "errors"

var (
	// ErrNotOFF indicates the input does not start with the OFF magic.
	ErrNotOFF = errors.New("polylla: file is not an OFF file")
	// ErrBadCounts indicates a malformed vertex/face count line.
	ErrBadCounts = errors.New("polylla: malformed vertex/face counts")
	// ErrBadVertex indicates a malformed vertex line.
	ErrBadVertex = errors.New("polylla: malformed vertex line")
	// ErrBadFace indicates a malformed face line.
	ErrBadFace = errors.New("polylla: malformed face line")
	// ErrTruncated indicates the file ended before the announced
	// vertex and face counts were satisfied.
	ErrTruncated = errors.New("polylla: unexpected end of file")
)
