package uuid

// FromBytes creates a UUID from a 16-byte buffer in big-endian (RFC 9562)
// field order. The bytes are copied verbatim.
func FromBytes(b []byte) (UUID, error) {
	var uuid UUID
	if len(b) != Size {
		return uuid, ErrInvalidLength
	}
	copy(uuid[:], b)
	return uuid, nil
}

// FromBytesLE creates a UUID from a 16-byte buffer in Microsoft COM GUID
// byte order: time_low (4 bytes), time_mid (2 bytes) and time_hi_and_version
// (2 bytes) are each stored little-endian, the remaining 8 bytes match the
// big-endian layout. For example the buffer
// 33221100-5544-7766-8899-aabbccddeeff decodes to the UUID
// 00112233-4455-6677-8899-aabbccddeeff.
func FromBytesLE(b []byte) (UUID, error) {
	uuid, err := FromBytes(b)
	if err != nil {
		return uuid, err
	}
	uuid[0], uuid[1], uuid[2], uuid[3] = uuid[3], uuid[2], uuid[1], uuid[0]
	uuid[4], uuid[5] = uuid[5], uuid[4]
	uuid[6], uuid[7] = uuid[7], uuid[6]
	return uuid, nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) UUID {
	uuid, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return uuid
}
