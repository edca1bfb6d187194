package flatten

import "errors"

var (
	// ErrUndecodable is returned when no decoder in the chain accepts the content.
	ErrUndecodable = errors.New("content cannot be decoded with any configured encoding")

	// ErrUnknownEncoding is returned for encoding names that cannot be resolved.
	ErrUnknownEncoding = errors.New("unknown encoding")

	// ErrNotDirectory is returned when the root to flatten is not a directory.
	ErrNotDirectory = errors.New("root is not a directory")

	errInvalidUTF8 = errors.New("invalid UTF-8 sequence")
)
