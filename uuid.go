package uuid

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"
)

// UUID represents a Universally Unique Identifier as defined by RFC 9562.
// The UUID is a 128-bit (16 byte) value stored in big-endian field order:
// time_low, time_mid, time_hi_and_version, clock_seq, node.
type UUID [16]byte

// Size is the number of bytes in the binary representation of a UUID.
const Size = 16

// Version represents the UUID version
type Version byte

const (
	_ Version = iota
	VersionTimeBased
	VersionDCESecurity
	VersionNameBasedMD5
	VersionRandom        // UUIDv4
	VersionNameBasedSHA1 // UUIDv5
)

// Variant represents the UUID variant
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

// Nil is the nil UUID (all zeros)
var Nil UUID

// Version returns the version of the UUID
func (u UUID) Version() Version {
	return Version(u[6] >> 4)
}

// Variant returns the variant of the UUID
func (u UUID) Variant() Variant {
	switch {
	case (u[8] & 0x80) == 0x00:
		return VariantNCS
	case (u[8] & 0xc0) == 0x80:
		return VariantRFC4122
	case (u[8] & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// String returns the canonical string representation of the UUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (36 characters,
// lowercase hex)
func (u UUID) String() string {
	var buf [36]byte
	encodeHex(buf[:], u)
	return string(buf[:])
}

// encodeHex encodes UUID to its canonical hex representation
func encodeHex(dst []byte, u UUID) {
	hex.Encode(dst[0:8], u[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], u[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], u[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], u[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], u[10:16])
}

// isHyphenPosition reports whether index i in the canonical form holds a
// group separator.
func isHyphenPosition(i int) bool {
	return i == 8 || i == 13 || i == 18 || i == 23
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// Parse parses a UUID from its canonical string representation:
// xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx, exactly 36 characters with hyphens
// at positions 8, 13, 18 and 23 and case-insensitive hex digits everywhere
// else. Any other form (braces, urn:uuid: prefix, missing hyphens) is
// rejected with ErrInvalidFormat. On error the returned UUID is Nil and
// must not be used.
func Parse(s string) (UUID, error) {
	var uuid UUID

	if len(s) != 36 {
		return uuid, ErrInvalidFormat
	}

	// Validation pass: hyphens in the right places, hex everywhere else.
	for i := 0; i < 36; i++ {
		if isHyphenPosition(i) {
			if s[i] != '-' {
				return uuid, ErrInvalidFormat
			}
			continue
		}
		if !isHexDigit(s[i]) {
			return uuid, ErrInvalidFormat
		}
	}

	// Decode each segment
	if err := decodeHexSegment(uuid[0:4], s[0:8]); err != nil {
		return Nil, err
	}
	if err := decodeHexSegment(uuid[4:6], s[9:13]); err != nil {
		return Nil, err
	}
	if err := decodeHexSegment(uuid[6:8], s[14:18]); err != nil {
		return Nil, err
	}
	if err := decodeHexSegment(uuid[8:10], s[19:23]); err != nil {
		return Nil, err
	}
	if err := decodeHexSegment(uuid[10:16], s[24:36]); err != nil {
		return Nil, err
	}
	return uuid, nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) UUID {
	uuid, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("uuid: Parse(%q): %v", s, err))
	}
	return uuid
}

// decodeHexSegment decodes a hex string segment into a byte slice
func decodeHexSegment(dst []byte, src string) error {
	if _, err := hex.Decode(dst, []byte(src)); err != nil {
		return ErrInvalidFormat
	}
	return nil
}

// Bytes returns the UUID as a byte slice in big-endian (RFC 9562) order
func (u UUID) Bytes() []byte {
	return u[:]
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u == Nil
}

// Equal returns true if u and other represent the same UUID
func (u UUID) Equal(other UUID) bool {
	return u == other
}

// MarshalText implements the encoding.TextMarshaler interface
func (u UUID) MarshalText() ([]byte, error) {
	var buf [36]byte
	encodeHex(buf[:], u)
	return buf[:], nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (u UUID) MarshalBinary() ([]byte, error) {
	return u[:], nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (u *UUID) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return ErrInvalidLength
	}
	copy(u[:], data)
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility
func (u *UUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		id, err := Parse(src)
		if err != nil {
			return err
		}
		*u = id
		return nil
	case []byte:
		if len(src) == Size {
			copy(u[:], src)
			return nil
		}
		if len(src) == 0 {
			return nil
		}
		id, err := Parse(string(src))
		if err != nil {
			return err
		}
		*u = id
		return nil
	default:
		return fmt.Errorf("uuid: cannot scan type %T into UUID", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}
