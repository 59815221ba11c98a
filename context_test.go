package silica

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silicalabs/silica-sdk/host"
	"github.com/silicalabs/silica-sdk/types"
)

const (
	testSender   = "chert1sender000000000000000000"
	testContract = "chert1contract0000000000000000"
)

func newTestHost() *host.Mock {
	m := host.NewMock()
	m.SetSender(testSender)
	m.SetContractAddress(testContract)
	m.SetBlockHeight(42)
	m.SetBlockTimestamp(1_700_000_000)
	m.SetValue(1_000)
	return m
}

func TestTryContextExposesInjectedValues(t *testing.T) {
	m := newTestHost()

	ctx, err := TryContext(m)
	require.NoError(t, err)

	assert.Equal(t, testSender, ctx.Sender())
	assert.Equal(t, testContract, ctx.ContractAddress())
	assert.Equal(t, uint64(42), ctx.BlockHeight())
	assert.Equal(t, uint64(1_700_000_000), ctx.BlockTimestamp())
	assert.Equal(t, uint64(1_000), ctx.Value())
}

func TestTryContextRejectsInvalidAddresses(t *testing.T) {
	cases := []struct {
		name   string
		sender string
	}{
		{"empty", ""},
		{"too short", "short"},
		{"too long", strings.Repeat("x", 101)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestHost()
			m.SetSender(tc.sender)

			_, err := TryContext(m)
			var invalid types.InvalidArgumentError
			require.ErrorAs(t, err, &invalid)
		})
	}
}

func TestTryContextValidatesBlockParameters(t *testing.T) {
	cases := []struct {
		name      string
		height    uint64
		timestamp uint64
		wantErr   bool
	}{
		{"valid", 42, 1_700_000_000, false},
		{"height at bound", 1_000_000_000_000_000, 1_700_000_000, false},
		{"height beyond bound", 1_000_000_000_000_001, 1_700_000_000, true},
		{"height max uint64", math.MaxUint64, 1_700_000_000, true},
		{"timestamp at bound", 42, 10_000_000_000_000, false},
		{"timestamp beyond bound", 42, 10_000_000_000_001, true},
		{"timestamp zero", 42, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestHost()
			m.SetBlockHeight(tc.height)
			m.SetBlockTimestamp(tc.timestamp)

			_, err := TryContext(m)
			if tc.wantErr {
				var invalid types.InvalidArgumentError
				require.ErrorAs(t, err, &invalid)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMustContextPanicsOnInvalidContext(t *testing.T) {
	m := newTestHost()
	m.SetSender("")

	require.Panics(t, func() { MustContext(m) })
}

func TestRequireMinValue(t *testing.T) {
	m := newTestHost()
	ctx, err := TryContext(m)
	require.NoError(t, err)

	require.NoError(t, ctx.RequireMinValue(500))
	require.NoError(t, ctx.RequireMinValue(1_000))

	err = ctx.RequireMinValue(2_000)
	var insufficient types.InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, uint64(2_000), insufficient.Required)
	assert.Equal(t, uint64(1_000), insufficient.Available)
}

func TestCallDataRoundtrip(t *testing.T) {
	m := newTestHost()
	payload := []byte("call-data")
	m.SetCallData(payload)

	ctx, err := TryContext(m)
	require.NoError(t, err)

	data, err := ctx.CallData()
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestReturnDataRoundtrip(t *testing.T) {
	m := newTestHost()
	ctx, err := TryContext(m)
	require.NoError(t, err)

	require.NoError(t, ctx.ReturnData(uint64(64)))

	raw := m.TakeReturnData()
	require.NotEmpty(t, raw)

	// Raw bytes round-trip through the codec unchanged.
	require.NoError(t, ctx.ReturnBytes([]byte{0xde, 0xad}))
	assert.Equal(t, []byte{0xde, 0xad}, m.TakeReturnData())
}

func TestTransferTokensValidatesInputs(t *testing.T) {
	m := newTestHost()
	ctx, err := TryContext(m)
	require.NoError(t, err)

	require.NoError(t, ctx.TransferTokens("chert1recipient000000000000", 500))

	var invalid types.InvalidArgumentError
	err = ctx.TransferTokens("", 10)
	require.ErrorAs(t, err, &invalid)

	err = ctx.TransferTokens("chert1recipient000000000000", 0)
	require.ErrorAs(t, err, &invalid)
}

func TestTransferTokensSurfacesHostFailure(t *testing.T) {
	m := newTestHost()
	m.FailTransfers(true)
	ctx, err := TryContext(m)
	require.NoError(t, err)

	err = ctx.TransferTokens("chert1recipient000000000000", 500)
	require.ErrorIs(t, err, types.ErrTransferFailed)
}

func TestEmitAndLog(t *testing.T) {
	m := newTestHost()

	type payload struct {
		Value uint64
	}
	Emit(m, "Initialized", payload{Value: 7})
	Log(m, "counter initialized")

	events := m.TakeEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "Initialized", events[0].Topic)
	assert.NotEmpty(t, events[0].Data)

	logs := m.TakeLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, "counter initialized", logs[0])
}
