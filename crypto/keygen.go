package crypto

import (
	"crypto/ed25519"
	"encoding/binary"

	"github.com/silicalabs/silica-sdk/internal/hostcrypto"
	"github.com/silicalabs/silica-sdk/types"
)

// keygenDomain separates keygen digests from any other BLAKE3 use of the
// same index values.
const keygenDomain = "silica-contract-sdk-keygen"

// maxKeypairBatch bounds a single GenerateKeypairs call.
const maxKeypairBatch = 1024

// Keypair is a deterministic test keypair: the Ed25519 public key and the
// 32-byte seed it was expanded from.
type Keypair struct {
	Public [32]byte
	Seed   [32]byte
}

// GenerateKeypairs derives count deterministic Ed25519 keypairs, seeded by
// BLAKE3 over a fixed domain string and the pair index. Intended for tests
// and benchmarks only; the seeds are public by construction. Counts above 1024
// fail with InvalidArgument.
func GenerateKeypairs(count int) ([]Keypair, error) {
	if count > maxKeypairBatch {
		return nil, types.InvalidArgument("keypair batch exceeds static bound")
	}

	pairs := make([]Keypair, 0, count)
	for index := 0; index < count; index++ {
		material := make([]byte, 0, len(keygenDomain)+8)
		material = append(material, keygenDomain...)
		material = binary.LittleEndian.AppendUint64(material, uint64(index))

		var pair Keypair
		pair.Seed = hostcrypto.Blake3Sum(material)
		private := ed25519.NewKeyFromSeed(pair.Seed[:])
		copy(pair.Public[:], private.Public().(ed25519.PublicKey))
		pairs = append(pairs, pair)
	}
	return pairs, nil
}
