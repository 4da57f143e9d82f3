package uuid

import "errors"

var (
	// ErrInvalidFormat indicates that the UUID string format is invalid
	ErrInvalidFormat = errors.New("uuid: invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte buffer has incorrect length
	ErrInvalidLength = errors.New("uuid: invalid UUID length (expected 16 bytes)")

	// ErrEntropyUnavailable indicates that the random source failed to
	// provide the 16 bytes required by version 4 generation
	ErrEntropyUnavailable = errors.New("uuid: random source unavailable")

	// ErrDigestUnavailable indicates that the digest primitive could not be
	// initialized for version 5 generation
	ErrDigestUnavailable = errors.New("uuid: digest primitive unavailable")

	// ErrDigestFailed indicates a fault inside the digest computation
	ErrDigestFailed = errors.New("uuid: digest computation failed")

	// ErrUnsupportedDigest indicates that the digest primitive produced a
	// result this package cannot use (a sum shorter than 16 bytes)
	ErrUnsupportedDigest = errors.New("uuid: digest not supported")
)
