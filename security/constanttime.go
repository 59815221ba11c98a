package security

import "crypto/subtle"

// Constant-time equality for secret-derived values (signatures, digests,
// tokens): running time depends only on the input lengths, never on where the
// first mismatch sits.

// SecureEqual compares two byte slices in constant time. Slices of different
// length compare unequal immediately; length is not secret here.
func SecureEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// SecureEqualString compares two strings in constant time.
func SecureEqualString(a, b string) bool {
	return SecureEqual([]byte(a), []byte(b))
}

// SecureEqual32 compares two 32-byte arrays in constant time.
func SecureEqual32(a, b [32]byte) bool {
	return SecureEqual(a[:], b[:])
}

// SecureEqual64 compares two 64-byte arrays in constant time.
func SecureEqual64(a, b [64]byte) bool {
	return SecureEqual(a[:], b[:])
}
