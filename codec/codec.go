// Package codec pins down the one wire encoding used for persisted values and
// event payloads: msgpack. The encoding must be deterministic (identical
// logical values always produce identical bytes) because Map key derivation
// hashes encoded keys. Struct fields are encoded in declaration order, so that
// holds for every type without map fields; contracts should not use Go maps in
// stored types.
package codec

import (
	"github.com/shamaton/msgpack/v2"

	"github.com/silicalabs/silica-sdk/types"
)

// Marshal encodes value, mapping any encoder failure to ErrSerializationFailed.
func Marshal(value any) ([]byte, error) {
	data, err := msgpack.Marshal(value)
	if err != nil {
		return nil, types.ErrSerializationFailed
	}
	return data, nil
}

// Unmarshal decodes data into out, mapping any decoder failure to
// ErrDeserializationFailed.
func Unmarshal(data []byte, out any) error {
	if err := msgpack.Unmarshal(data, out); err != nil {
		return types.ErrDeserializationFailed
	}
	return nil
}
