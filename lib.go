// Package silica is the guest-side SDK for writing Silica smart contracts in
// Go. It gives contract code a typed surface over the byte-oriented host
// boundary: a validated execution Context, persistent typed storage, security
// primitives, and cryptographic verification.
//
// A host-invoked entry point typically acquires a Context, touches state
// through the storage package, consults the security package for
// authorization, and emits events via Emit. On chain the entry point is
// composed against host.Wasm(); in tests, against host.NewMock().
package silica

import (
	"github.com/silicalabs/silica-sdk/host"
	"github.com/silicalabs/silica-sdk/security"
	"github.com/silicalabs/silica-sdk/storage"
	"github.com/silicalabs/silica-sdk/types"
)

// Host is the capability surface of the chain; see the host package.
type Host = host.Host

// Storage is raw typed access to the contract's namespace; see the storage
// package for Map and Vector.
type Storage = storage.Storage

// AccessControl is the owner/role authorization store.
type AccessControl = security.AccessControl

// ReentrancyGuard blocks nested entry into guarded sections.
type ReentrancyGuard = security.ReentrancyGuard

// Event is one emitted contract event.
type Event = types.Event

// NewStorage binds a Storage to the executing contract's namespace.
func NewStorage(h host.Host) *storage.Storage {
	return storage.New(h)
}
