package storage

import (
	"encoding/hex"

	"github.com/silicalabs/silica-sdk/codec"
	"github.com/silicalabs/silica-sdk/internal/hostcrypto"
)

// Map is a typed key-value collection under a caller-chosen prefix. The
// physical key is "<prefix>:" + hex(blake3(codec(K))): deterministic encoding
// makes identical logical keys land on identical physical keys, and the
// 256-bit digest keeps distinct keys apart with overwhelming probability.
// The digest is one-way, so a Map supports point lookups only; keys cannot
// be enumerated.
type Map[K any, V any] struct {
	prefix string
	store  *Storage
}

// NewMap creates a Map over store. Two Maps with the same prefix address the
// same entries; prefixes are the only namespacing, so choose them uniquely
// per logical collection.
func NewMap[K any, V any](store *Storage, prefix string) *Map[K, V] {
	return &Map[K, V]{prefix: prefix, store: store}
}

func (m *Map[K, V]) storageKey(key K) (string, error) {
	raw, err := codec.Marshal(key)
	if err != nil {
		return "", err
	}
	sum := hostcrypto.Blake3Sum(raw)
	return m.prefix + ":" + hex.EncodeToString(sum[:]), nil
}

// Get returns the value under key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool, error) {
	var out V
	storageKey, err := m.storageKey(key)
	if err != nil {
		return out, false, err
	}
	ok, err := m.store.Get(storageKey, &out)
	if err != nil {
		var zero V
		return zero, false, err
	}
	return out, ok, nil
}

// Set stores value under key.
func (m *Map[K, V]) Set(key K, value V) error {
	storageKey, err := m.storageKey(key)
	if err != nil {
		return err
	}
	return m.store.Set(storageKey, value)
}

// Remove deletes the entry under key.
func (m *Map[K, V]) Remove(key K) error {
	storageKey, err := m.storageKey(key)
	if err != nil {
		return err
	}
	return m.store.Remove(storageKey)
}

// ContainsKey reports whether key is present. Like Storage.Has, read failures
// degrade to false.
func (m *Map[K, V]) ContainsKey(key K) (bool, error) {
	storageKey, err := m.storageKey(key)
	if err != nil {
		return false, err
	}
	return m.store.Has(storageKey), nil
}
