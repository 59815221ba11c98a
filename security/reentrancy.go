// Package security bundles the primitives contracts lean on for safety:
// reentrancy protection, owner/role access control, checked arithmetic, input
// validation and constant-time comparison.
package security

import (
	"sync/atomic"

	"github.com/silicalabs/silica-sdk/types"
)

// ReentrancyGuard blocks nested entry into guarded sections. It is an
// explicit value composed per contract, not process-global, so concurrent
// tests (and independent top-level invocations) cannot interfere with each
// other. At most one guarded section per guard is active at a time; a
// reentrant self-call hitting Enter again is rejected before it can observe
// partially-updated state.
type ReentrancyGuard struct {
	entered atomic.Bool
}

// NewReentrancyGuard returns a guard in the released state.
func NewReentrancyGuard() *ReentrancyGuard {
	return &ReentrancyGuard{}
}

// Enter attempts the false→true transition. On success it returns a release
// function that must run on every exit path; defer it immediately. A guard
// that is already held fails with ErrReentrancyDetected.
func (g *ReentrancyGuard) Enter() (release func(), err error) {
	if !g.entered.CompareAndSwap(false, true) {
		return nil, types.ErrReentrancyDetected
	}
	return func() { g.entered.Store(false) }, nil
}

// Execute runs f inside the guard, releasing it whether f returns normally
// or with an error.
func (g *ReentrancyGuard) Execute(f func() error) error {
	release, err := g.Enter()
	if err != nil {
		return err
	}
	defer release()
	return f()
}
