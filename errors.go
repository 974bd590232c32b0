package binio

import "github.com/pkg/errors"

var (
	// ErrOutOfBounds is returned when a read would consume bytes past the
	// end of the buffer. The reader's position is left unchanged, so the
	// caller may inspect state or abort the whole decode.
	ErrOutOfBounds = errors.New("read out of bounds")

	// ErrNegativeLength is returned when a negative length is passed to
	// ReadBytes.
	ErrNegativeLength = errors.New("negative length")
)
