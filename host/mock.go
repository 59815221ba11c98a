package host

import (
	"sync"

	dbm "github.com/cometbft/cometbft-db"

	"github.com/silicalabs/silica-sdk/internal/hostcrypto"
	"github.com/silicalabs/silica-sdk/types"
)

// Mock is the in-memory stand-in for the chain host. It implements the exact
// capability set of the production backend over an ordered in-memory table
// and captures everything a contract pushes outward (logs, events, return
// data) so tests can make exact-output assertions without a live node.
//
// The zero block parameters of a fresh Mock do not pass context validation;
// tests set them explicitly (see SetBlockHeight, SetBlockTimestamp).
type Mock struct {
	mu sync.Mutex
	db *dbm.MemDB

	sender          string
	contractAddress string
	blockHeight     uint64
	blockTimestamp  uint64
	value           uint64
	callData        []byte

	returnData []byte
	events     []types.Event
	logs       []string

	failReads     bool
	failWrites    bool
	failTransfers bool
}

var _ Host = (*Mock)(nil)

// NewMock returns a pristine mock host with empty storage and zeroed call
// facts.
func NewMock() *Mock {
	return &Mock{db: dbm.NewMemDB()}
}

// storageKey flattens the (account, key) pair into one table key. The '/'
// separator cannot collide: account strings are validated addresses.
func storageKey(account, key string) []byte {
	return []byte(account + "/" + key)
}

func (m *Mock) StorageRead(account, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failReads {
		return nil, types.ErrStorageReadFailed
	}
	value, err := m.db.Get(storageKey(account, key))
	if err != nil {
		return nil, types.ErrStorageReadFailed
	}
	if value == nil {
		return []byte{}, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *Mock) StorageWrite(account, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWrites {
		return types.ErrStorageWriteFailed
	}
	// Empty payload is the tombstone: drop the entry so empty and absent
	// stay indistinguishable.
	if len(value) == 0 {
		if err := m.db.Delete(storageKey(account, key)); err != nil {
			return types.ErrStorageWriteFailed
		}
		return nil
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	if err := m.db.Set(storageKey(account, key), stored); err != nil {
		return types.ErrStorageWriteFailed
	}
	return nil
}

func (m *Mock) Log(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, msg)
}

func (m *Mock) EmitEvent(topic string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	m.events = append(m.events, types.Event{Topic: topic, Data: stored})
}

// Transfer is a no-op in the mock: balances live on the host side and the
// mock does not model them.
func (m *Mock) Transfer(string, uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failTransfers {
		return types.ErrTransferFailed
	}
	return nil
}

func (m *Mock) BlockHeight() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.blockHeight
}

func (m *Mock) BlockTimestamp() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.blockTimestamp
}

func (m *Mock) Sender() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sender
}

func (m *Mock) ContractAddress() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.contractAddress
}

func (m *Mock) Value() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value
}

func (m *Mock) CallData() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]byte, len(m.callData))
	copy(out, m.callData)
	return out, nil
}

func (m *Mock) WriteReturnData(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.returnData = make([]byte, len(data))
	copy(m.returnData, data)
	return nil
}

func (m *Mock) HashBlake3(data []byte) [32]byte {
	return hostcrypto.Blake3Sum(data)
}

func (m *Mock) VerifySignature(pubkey [32]byte, message []byte, signature [64]byte) (bool, error) {
	return hostcrypto.VerifyEd25519(pubkey, message, signature)
}

func (m *Mock) BatchHashBlake3(inputs [][]byte) ([][32]byte, error) {
	outputs := make([][32]byte, len(inputs))
	for i, input := range inputs {
		outputs[i] = hostcrypto.Blake3Sum(input)
	}
	return outputs, nil
}

func (m *Mock) BatchVerifySignatures(pubkeys [][32]byte, messages [][]byte, signatures [][64]byte) ([]bool, error) {
	if len(pubkeys) != len(messages) || len(pubkeys) != len(signatures) {
		return nil, types.InvalidArgument("batch input length mismatch")
	}
	results := make([]bool, len(pubkeys))
	for i := range pubkeys {
		ok, err := hostcrypto.VerifyEd25519(pubkeys[i], messages[i], signatures[i])
		if err != nil {
			return nil, err
		}
		results[i] = ok
	}
	return results, nil
}

// Reset restores the pristine state: empty storage, cleared captures, zeroed
// call facts.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.db = dbm.NewMemDB()
	m.sender = ""
	m.contractAddress = ""
	m.blockHeight = 0
	m.blockTimestamp = 0
	m.value = 0
	m.callData = nil
	m.returnData = nil
	m.events = nil
	m.logs = nil
	m.failReads = false
	m.failWrites = false
	m.failTransfers = false
}

// SetSender sets the sender address for subsequent calls.
func (m *Mock) SetSender(sender string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sender = sender
}

// SetContractAddress sets the executing contract's address.
func (m *Mock) SetContractAddress(address string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contractAddress = address
}

// SetBlockHeight sets the reported block height.
func (m *Mock) SetBlockHeight(height uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blockHeight = height
}

// SetBlockTimestamp sets the reported block timestamp.
func (m *Mock) SetBlockTimestamp(timestamp uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blockTimestamp = timestamp
}

// SetValue sets the token amount attached to the call.
func (m *Mock) SetValue(amount uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = amount
}

// SetCallData sets the raw invocation payload.
func (m *Mock) SetCallData(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callData = make([]byte, len(data))
	copy(m.callData, data)
}

// FailStorageReads makes every subsequent StorageRead fail until cleared.
func (m *Mock) FailStorageReads(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failReads = fail
}

// FailStorageWrites makes every subsequent StorageWrite fail until cleared.
func (m *Mock) FailStorageWrites(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWrites = fail
}

// FailTransfers makes every subsequent Transfer fail until cleared.
func (m *Mock) FailTransfers(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failTransfers = fail
}

// TakeEvents drains and returns the captured events.
func (m *Mock) TakeEvents() []types.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	drained := m.events
	m.events = nil
	return drained
}

// TakeLogs drains and returns the captured log lines.
func (m *Mock) TakeLogs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	drained := m.logs
	m.logs = nil
	return drained
}

// TakeReturnData drains and returns the last written return data.
func (m *Mock) TakeReturnData() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	drained := m.returnData
	m.returnData = nil
	return drained
}

// InspectStorage returns the raw stored payload for (account, key), or an
// empty slice if there is none.
func (m *Mock) InspectStorage(account, key string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, err := m.db.Get(storageKey(account, key))
	if err != nil || value == nil {
		return []byte{}
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out
}
