package host

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silicalabs/silica-sdk/types"
)

const account = "chert1contract0000000000000000"

func TestStorageRoundtrip(t *testing.T) {
	m := NewMock()

	data, err := m.StorageRead(account, "missing")
	require.NoError(t, err)
	assert.Empty(t, data, "absent keys read back as empty payloads, not errors")

	require.NoError(t, m.StorageWrite(account, "k", []byte("v")))
	data, err = m.StorageRead(account, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), data)
}

func TestEmptyWriteIsTombstone(t *testing.T) {
	m := NewMock()
	require.NoError(t, m.StorageWrite(account, "k", []byte("v")))

	require.NoError(t, m.StorageWrite(account, "k", nil))

	data, err := m.StorageRead(account, "k")
	require.NoError(t, err)
	assert.Empty(t, data)
	assert.Empty(t, m.InspectStorage(account, "k"))
}

func TestStorageIsScopedPerAccount(t *testing.T) {
	m := NewMock()
	require.NoError(t, m.StorageWrite(account, "k", []byte("v")))

	data, err := m.StorageRead("chert1otheraccount000000000000", "k")
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFailureInjection(t *testing.T) {
	m := NewMock()

	m.FailStorageReads(true)
	_, err := m.StorageRead(account, "k")
	require.ErrorIs(t, err, types.ErrStorageReadFailed)
	m.FailStorageReads(false)

	m.FailStorageWrites(true)
	err = m.StorageWrite(account, "k", []byte("v"))
	require.ErrorIs(t, err, types.ErrStorageWriteFailed)
	m.FailStorageWrites(false)

	m.FailTransfers(true)
	require.ErrorIs(t, m.Transfer("chert1recipient000000000000", 1), types.ErrTransferFailed)
}

func TestCapturesAndDrains(t *testing.T) {
	m := NewMock()
	m.Log("first")
	m.Log("second")
	m.EmitEvent("Topic", []byte{1, 2})
	require.NoError(t, m.WriteReturnData([]byte{9}))

	assert.Equal(t, []string{"first", "second"}, m.TakeLogs())
	assert.Empty(t, m.TakeLogs(), "drain empties the capture")

	events := m.TakeEvents()
	require.Len(t, events, 1)
	assert.Equal(t, types.Event{Topic: "Topic", Data: []byte{1, 2}}, events[0])

	assert.Equal(t, []byte{9}, m.TakeReturnData())
	assert.Empty(t, m.TakeReturnData())
}

func TestResetRestoresPristineState(t *testing.T) {
	m := NewMock()
	m.SetSender("chert1sender000000000000000000")
	m.SetBlockHeight(7)
	m.SetBlockTimestamp(100)
	m.SetValue(5)
	m.SetCallData([]byte{1})
	require.NoError(t, m.StorageWrite(account, "k", []byte("v")))
	m.Log("line")
	m.EmitEvent("Topic", nil)
	m.FailStorageReads(true)

	m.Reset()

	assert.Empty(t, m.Sender())
	assert.Zero(t, m.BlockHeight())
	assert.Zero(t, m.BlockTimestamp())
	assert.Zero(t, m.Value())
	callData, err := m.CallData()
	require.NoError(t, err)
	assert.Empty(t, callData)
	data, err := m.StorageRead(account, "k")
	require.NoError(t, err)
	assert.Empty(t, data)
	assert.Empty(t, m.TakeLogs())
	assert.Empty(t, m.TakeEvents())
}

func TestHashBlake3KnownVector(t *testing.T) {
	m := NewMock()

	// BLAKE3 of the empty input.
	digest := m.HashBlake3(nil)
	assert.Equal(t,
		"af1349b9f5f9a1a6a0404dee36dcc9499bcb25c9adc112b7cc9a93cae41f3262",
		hex.EncodeToString(digest[:]))
}

func TestBatchVerifyRejectsLengthMismatch(t *testing.T) {
	m := NewMock()
	_, err := m.BatchVerifySignatures(make([][32]byte, 2), make([][]byte, 1), make([][64]byte, 2))
	var invalid types.InvalidArgumentError
	require.ErrorAs(t, err, &invalid)
}
