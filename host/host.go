// Package host defines the boundary between contract code and the chain that
// runs it. Every capability the chain offers (storage, logging, events,
// transfers, block metadata, call data, crypto) is one method on the Host
// interface, and everything above this package works against that interface.
//
// Two backends implement it. The production backend (host/wasm.go, wasm
// builds only) marshals pointer/length pairs across the guest/host memory
// boundary. Mock implements the same surface over an in-memory table so
// contracts can be exercised natively with exact-output assertions. Which one
// a contract runs against is decided where the contract is composed, never by
// build configuration in contract code.
package host

// MaxValueSize caps the size of a single storage record the production
// backend will read, in bytes. Reads of larger records fail with
// ErrStorageReadFailed. The bound caps guest-side buffer allocation; hosts
// that store larger records need a wider build of the SDK.
const MaxValueSize = 64 * 1024

// Host is the full capability surface of the chain.
//
// Storage is a flat byte-oriented key-value namespace scoped per contract
// account. A missing key is not an error: reads return an empty payload, and
// writing an empty payload is how an entry is deleted. Empty and absent are
// indistinguishable by contract.
type Host interface {
	// StorageRead returns the payload stored under (account, key), or an
	// empty payload if there is none. A non-nil error means the host itself
	// signaled failure.
	StorageRead(account, key string) ([]byte, error)

	// StorageWrite stores value under (account, key). An empty value deletes
	// the entry.
	StorageWrite(account, key string, value []byte) error

	// Log records a debug message on the host side.
	Log(msg string)

	// EmitEvent publishes an event for off-chain indexing.
	EmitEvent(topic string, data []byte)

	// Transfer moves amount tokens from the executing contract to the
	// recipient address.
	Transfer(to string, amount uint64) error

	BlockHeight() uint64
	BlockTimestamp() uint64
	Sender() string
	ContractAddress() string

	// Value is the amount of tokens attached to the current call.
	Value() uint64

	// CallData returns the raw invocation payload.
	CallData() ([]byte, error)

	// WriteReturnData hands the call's result bytes back to the host.
	WriteReturnData(data []byte) error

	// HashBlake3 returns the 32-byte BLAKE3 digest of data.
	HashBlake3(data []byte) [32]byte

	// VerifySignature checks an Ed25519 signature. An invalid signature is
	// (false, nil); a malformed public key is the only error.
	VerifySignature(pubkey [32]byte, message []byte, signature [64]byte) (bool, error)

	// BatchHashBlake3 hashes each input. Inputs of any length are accepted;
	// output order matches input order.
	BatchHashBlake3(inputs [][]byte) ([][32]byte, error)

	// BatchVerifySignatures verifies triple i of (pubkeys, messages,
	// signatures) into result i. Slices must be equal length.
	BatchVerifySignatures(pubkeys [][32]byte, messages [][]byte, signatures [][64]byte) ([]bool, error)
}
