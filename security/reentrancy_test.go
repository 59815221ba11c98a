package security

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silicalabs/silica-sdk/types"
)

func TestReentrancyGuard(t *testing.T) {
	g := NewReentrancyGuard()

	release, err := g.Enter()
	require.NoError(t, err)

	_, err = g.Enter()
	require.ErrorIs(t, err, types.ErrReentrancyDetected)

	release()

	release, err = g.Enter()
	require.NoError(t, err, "guard must be reusable after release")
	release()
}

func TestExecuteReleasesOnError(t *testing.T) {
	g := NewReentrancyGuard()
	boom := errors.New("boom")

	err := g.Execute(func() error { return boom })
	require.ErrorIs(t, err, boom)

	// The failed section must not wedge the guard.
	require.NoError(t, g.Execute(func() error { return nil }))
}

func TestExecuteRejectsNestedEntry(t *testing.T) {
	g := NewReentrancyGuard()

	err := g.Execute(func() error {
		return g.Execute(func() error { return nil })
	})
	require.ErrorIs(t, err, types.ErrReentrancyDetected)
}

func TestGuardsAreIndependent(t *testing.T) {
	first := NewReentrancyGuard()
	second := NewReentrancyGuard()

	release, err := first.Enter()
	require.NoError(t, err)
	defer release()

	releaseSecond, err := second.Enter()
	assert.NoError(t, err)
	if releaseSecond != nil {
		releaseSecond()
	}
}
