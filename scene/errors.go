package scene

import "errors"

var (
	ErrAttributeMismatch = errors.New("vertex attribute counts differ")
	ErrIndexCount        = errors.New("index count does not form whole primitives")
	ErrIndexRange        = errors.New("index out of range")
)
