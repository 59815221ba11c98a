// Package storage gives contracts typed access to their persistent key-value
// namespace: raw Storage for single keys, Map for hashed-key collections,
// Vector for length-tracked sequences. All of it sits directly on the host
// boundary; there is no guest-side caching, so a write is visible to the next
// read in the same call graph.
package storage

import (
	"github.com/silicalabs/silica-sdk/codec"
	"github.com/silicalabs/silica-sdk/host"
)

// Storage is raw keyed access to the contract's own namespace. Values are
// codec-encoded. Deleting is writing the empty tombstone payload: at the host
// level, empty and absent are the same thing.
type Storage struct {
	h       host.Host
	account string
}

// New binds a Storage to the executing contract's namespace.
func New(h host.Host) *Storage {
	return &Storage{h: h, account: h.ContractAddress()}
}

// Get decodes the value under key into out. It reports false when the key is
// absent (or holds the empty tombstone), leaving out untouched. Bytes that do
// not decode into out's type fail with ErrDeserializationFailed.
func (s *Storage) Get(key string, out any) (bool, error) {
	data, err := s.h.StorageRead(s.account, key)
	if err != nil {
		return false, err
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := codec.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}

// Set encodes value and writes it under key.
func (s *Storage) Set(key string, value any) error {
	data, err := codec.Marshal(value)
	if err != nil {
		return err
	}
	return s.h.StorageWrite(s.account, key, data)
}

// Remove deletes the entry under key by writing the empty payload.
func (s *Storage) Remove(key string) error {
	return s.h.StorageWrite(s.account, key, nil)
}

// Has reports whether key holds a non-empty payload. Any underlying read
// failure degrades to false: callers cannot distinguish absence from a host
// error through Has; use Get where that distinction matters.
func (s *Storage) Has(key string) bool {
	data, err := s.h.StorageRead(s.account, key)
	return err == nil && len(data) > 0
}
