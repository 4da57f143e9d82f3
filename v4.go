package uuid

import (
	"crypto/rand"
	"crypto/sha1"
	"fmt"
	"hash"
	"io"
)

// Generator produces version 4 and version 5 UUIDs. The entropy source and
// the digest primitive are injectable, which allows deterministic fakes in
// tests; the defaults are crypto/rand and SHA-1.
//
// A Generator is safe for concurrent use as long as its random reader is
// (crypto/rand.Reader is).
type Generator struct {
	randReader io.Reader
	newDigest  func() hash.Hash
}

// NewGenerator creates a new generator with crypto/rand as the random source
// and SHA-1 as the digest primitive.
func NewGenerator() *Generator {
	return &Generator{
		randReader: rand.Reader,
		newDigest:  sha1.New,
	}
}

// NewGeneratorWithReader creates a new generator with a custom random source.
// This is primarily useful for testing with deterministic random sources.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return &Generator{
		randReader: r,
		newDigest:  sha1.New,
	}
}

func (g *Generator) reader() io.Reader {
	if g.randReader != nil {
		return g.randReader
	}
	return rand.Reader
}

// overwriteVersionAndVariant clears the 'ver' nibble of byte 6 and the 'var'
// bits of byte 8, then stamps the given version and the RFC 9562 variant
// (binary 10) into them. Bit positions per RFC 9562 section 4.
func overwriteVersionAndVariant(u UUID, version Version) UUID {
	u[6] = (u[6] &^ 0xf0) | (byte(version) << 4)
	u[8] = (u[8] &^ 0xc0) | 0x80
	return u
}

// NewV4 generates a version 4 (random) UUID: 16 bytes from the generator's
// random source with the version and variant fields overwritten.
func (g *Generator) NewV4() (UUID, error) {
	var uuid UUID
	if _, err := io.ReadFull(g.reader(), uuid[:]); err != nil {
		return Nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return overwriteVersionAndVariant(uuid, VersionRandom), nil
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = uuid.Must(uuid.New())
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}

// defaultGenerator is the package-level generator used by the New* functions
var defaultGenerator = NewGenerator()

// New generates a new version 4 UUID using the default generator.
// This is a convenience function that uses the package-level generator.
func New() (UUID, error) {
	return defaultGenerator.NewV4()
}

// NewV4 is an alias for New() for explicit version specification
func NewV4() (UUID, error) {
	return defaultGenerator.NewV4()
}
