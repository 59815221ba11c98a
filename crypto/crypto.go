// Package crypto exposes the host's hashing and signature-verification
// capabilities with typed wrappers, plus scalar fallbacks for the batched
// forms. Both batch paths must produce identical output for identical input;
// the tests check that equivalence directly.
package crypto

import (
	"github.com/silicalabs/silica-sdk/host"
	"github.com/silicalabs/silica-sdk/types"
)

// Verifier binds the crypto capabilities to a host backend.
type Verifier struct {
	h host.Host
}

// NewVerifier returns a Verifier over h.
func NewVerifier(h host.Host) *Verifier {
	return &Verifier{h: h}
}

// HashBlake3 returns the 32-byte BLAKE3 digest of data, computed by the host.
func (v *Verifier) HashBlake3(data []byte) [32]byte {
	return v.h.HashBlake3(data)
}

// VerifySignature checks an Ed25519 signature over message. A signature that
// is well-formed but cryptographically invalid returns (false, nil); a
// malformed public key is the only error path, ErrInvalidSignature.
func (v *Verifier) VerifySignature(pubkey [32]byte, message []byte, signature [64]byte) (bool, error) {
	return v.h.VerifySignature(pubkey, message, signature)
}

// BatchHashBlake3 hashes every input through the host-accelerated path.
func (v *Verifier) BatchHashBlake3(inputs [][]byte) ([][32]byte, error) {
	return v.h.BatchHashBlake3(inputs)
}

// BatchHashBlake3Fallback hashes element by element through the scalar path.
func (v *Verifier) BatchHashBlake3Fallback(inputs [][]byte) ([][32]byte, error) {
	outputs := make([][32]byte, len(inputs))
	for i, input := range inputs {
		outputs[i] = v.HashBlake3(input)
	}
	return outputs, nil
}

// BatchVerifySignatures verifies triple i of the three slices into result i
// through the host-accelerated path. Slices of unequal length fail with
// InvalidArgument.
func (v *Verifier) BatchVerifySignatures(pubkeys [][32]byte, messages [][]byte, signatures [][64]byte) ([]bool, error) {
	if len(pubkeys) != len(messages) || len(pubkeys) != len(signatures) {
		return nil, types.InvalidArgument("batch input length mismatch")
	}
	return v.h.BatchVerifySignatures(pubkeys, messages, signatures)
}

// BatchVerifySignaturesFallback performs the same verification element by
// element through the scalar path. For any input it returns exactly what
// BatchVerifySignatures returns.
func (v *Verifier) BatchVerifySignaturesFallback(pubkeys [][32]byte, messages [][]byte, signatures [][64]byte) ([]bool, error) {
	if len(pubkeys) != len(messages) || len(pubkeys) != len(signatures) {
		return nil, types.InvalidArgument("batch input length mismatch")
	}
	results := make([]bool, len(pubkeys))
	for i := range pubkeys {
		ok, err := v.VerifySignature(pubkeys[i], messages[i], signatures[i])
		if err != nil {
			return nil, err
		}
		results[i] = ok
	}
	return results, nil
}
