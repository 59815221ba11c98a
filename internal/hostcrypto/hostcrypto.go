// Package hostcrypto holds the native implementations of the cryptographic
// host capabilities. The mock host backend answers hash and signature imports
// with these; on a real chain the node runs the equivalent code on its side of
// the boundary.
package hostcrypto

import (
	"crypto/ed25519"

	"filippo.io/edwards25519"
	"lukechampine.com/blake3"

	"github.com/silicalabs/silica-sdk/types"
)

// Blake3Sum returns the 32-byte BLAKE3 digest of data.
func Blake3Sum(data []byte) [32]byte {
	return blake3.Sum256(data)
}

// VerifyEd25519 reports whether signature is a valid Ed25519 signature over
// message under pubkey. A signature that fails verification is (false, nil);
// the only error is a public key that does not decode to a curve point.
func VerifyEd25519(pubkey [32]byte, message []byte, signature [64]byte) (bool, error) {
	if _, err := new(edwards25519.Point).SetBytes(pubkey[:]); err != nil {
		return false, types.ErrInvalidSignature
	}
	return ed25519.Verify(ed25519.PublicKey(pubkey[:]), message, signature[:]), nil
}
