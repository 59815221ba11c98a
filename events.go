package silica

import (
	"github.com/silicalabs/silica-sdk/codec"
	"github.com/silicalabs/silica-sdk/host"
)

// Emit encodes value and publishes it under topic for off-chain indexing.
// A value that fails to encode is dropped silently; event emission never
// fails a transaction.
func Emit(h host.Host, topic string, value any) {
	data, err := codec.Marshal(value)
	if err != nil {
		return
	}
	h.EmitEvent(topic, data)
}

// Log records a debug message on the host side.
func Log(h host.Host, message string) {
	h.Log(message)
}
