package uuid

import (
	"crypto/sha1"
	"fmt"
	"hash"
)

// Well-known namespace UUIDs for version 5 generation, per RFC 9562.
var (
	NamespaceDNS  = MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	NamespaceURL  = MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")
	NamespaceOID  = MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8")
	NamespaceX500 = MustParse("6ba7b814-9dad-11d1-80b4-00c04fd430c8")
)

func (g *Generator) digest() hash.Hash {
	if g.newDigest != nil {
		return g.newDigest()
	}
	return sha1.New()
}

// NewV5 generates a version 5 (namespace-hash) UUID: SHA-1 over the 16
// namespace bytes followed by data, truncated to the first 16 digest bytes,
// with the version and variant fields overwritten. The result is fully
// deterministic: identical (namespace, data) pairs always yield the same
// UUID. data may be empty.
func (g *Generator) NewV5(namespace UUID, data []byte) (UUID, error) {
	h := g.digest()
	if h == nil {
		return Nil, ErrDigestUnavailable
	}
	if h.Size() < Size {
		return Nil, ErrUnsupportedDigest
	}
	if _, err := h.Write(namespace[:]); err != nil {
		return Nil, fmt.Errorf("%w: %v", ErrDigestFailed, err)
	}
	if _, err := h.Write(data); err != nil {
		return Nil, fmt.Errorf("%w: %v", ErrDigestFailed, err)
	}
	sum := h.Sum(nil)

	var uuid UUID
	copy(uuid[:], sum[:Size])
	return overwriteVersionAndVariant(uuid, VersionNameBasedSHA1), nil
}

// NewV5 generates a version 5 UUID using the default generator.
func NewV5(namespace UUID, data []byte) (UUID, error) {
	return defaultGenerator.NewV5(namespace, data)
}
