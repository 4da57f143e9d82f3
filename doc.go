// Package uuid provides generation, parsing and formatting of Universally
// Unique Identifiers (UUIDs) compliant with RFC 9562, with support for
// version 4 (random) and version 5 (namespace-hash) generation.
//
// Version 4 UUIDs are filled with cryptographically random data. Version 5
// UUIDs are deterministic: the SHA-1 hash of a namespace UUID and arbitrary
// data, so the same (namespace, data) pair always yields the same identifier.
// This makes v5 a fit for stable, reproducible IDs derived from names:
//   - content-addressed identifiers
//   - DNS names, URLs, OIDs (well-known namespaces are provided)
//   - idempotency keys derived from request payloads
//
// Basic Usage:
//
//	// Generate a random UUID
//	id, err := uuid.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.String())
//
//	// Derive a deterministic UUID from a name
//	id, err := uuid.NewV5(uuid.NamespaceDNS, []byte("www.example.com"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Parse a UUID from its canonical string form
//	id, err := uuid.Parse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Encodings:
//
// Besides the canonical 36-character hyphenated form, a UUID can be encoded
// as 32-character hex, 24-character padded base64, or 22-character unpadded
// URL-safe base64 (RFC 4648 section 5). Binary import accepts both the
// big-endian RFC 9562 byte order and the little-endian Microsoft COM GUID
// order (FromBytesLE); export is always big-endian.
//
// Custom Generator:
//
//	// Inject a deterministic random source, e.g. in tests
//	gen := uuid.NewGeneratorWithReader(myReader)
//	id, err := gen.NewV4()
//
// Thread Safety:
//
// All operations are pure transformations over the 16-byte value type and
// are safe for unrestricted concurrent use. The default generator reads from
// crypto/rand and can be shared across goroutines without synchronization.
//
// Error Handling:
//
// Every operation that can fail returns an error and a Nil UUID; no partial
// result is ever produced. Errors are surfaced immediately to the caller,
// never logged or retried, and a failed Parse must not be treated as the
// zero UUID.
package uuid
