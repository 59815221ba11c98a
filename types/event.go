package types

// Event is a single emitted contract event: a topic for off-chain indexing
// plus an opaque encoded payload.
type Event struct {
	Topic string
	Data  []byte
}
