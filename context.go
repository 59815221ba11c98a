package silica

import (
	"math"

	"github.com/silicalabs/silica-sdk/codec"
	"github.com/silicalabs/silica-sdk/host"
	"github.com/silicalabs/silica-sdk/security"
	"github.com/silicalabs/silica-sdk/types"
)

// Upper bounds on host-reported block parameters. Values beyond these are
// treated as malformed host input, not as a far future.
const (
	maxBlockHeight    uint64 = 1_000_000_000_000_000 // ~10^15 blocks
	maxBlockTimestamp uint64 = 10_000_000_000_000    // ~300 years of seconds
)

// Context is the validated, immutable snapshot of the current invocation:
// who called, which contract is running, block position, and the attached
// token value. It is created once per entry point and thrown away when the
// call ends; nothing in it is persisted.
type Context struct {
	h               host.Host
	sender          string
	contractAddress string
	blockHeight     uint64
	blockTimestamp  uint64
	value           uint64
}

// TryContext fetches the per-invocation facts from h exactly once and
// validates them. Malformed addresses or block parameters fail with
// InvalidArgument.
func TryContext(h host.Host) (*Context, error) {
	sender := h.Sender()
	contractAddress := h.ContractAddress()
	blockHeight := h.BlockHeight()
	blockTimestamp := h.BlockTimestamp()
	value := h.Value()

	if err := security.ValidateAddress(sender); err != nil {
		return nil, err
	}
	if err := security.ValidateAddress(contractAddress); err != nil {
		return nil, err
	}
	if err := ensureBlockParameters(blockHeight, blockTimestamp); err != nil {
		return nil, err
	}

	return &Context{
		h:               h,
		sender:          sender,
		contractAddress: contractAddress,
		blockHeight:     blockHeight,
		blockTimestamp:  blockTimestamp,
		value:           value,
	}, nil
}

// MustContext is the fail-hard variant of TryContext: it panics, aborting
// the call, when the host hands out an invalid context.
func MustContext(h host.Host) *Context {
	ctx, err := TryContext(h)
	if err != nil {
		panic("execution context must be valid: " + err.Error())
	}
	return ctx
}

func ensureBlockParameters(height, timestamp uint64) error {
	if height > maxBlockHeight {
		return types.InvalidArgument("block height exceeds maximum bound")
	}
	if timestamp > maxBlockTimestamp {
		return types.InvalidArgument("block timestamp exceeds maximum bound")
	}
	if timestamp == 0 {
		return types.InvalidArgument("block timestamp cannot be zero")
	}
	if height == math.MaxUint64 {
		return types.InvalidArgument("block height is invalid")
	}
	return nil
}

// Sender returns the transaction sender's address.
func (c *Context) Sender() string {
	return c.sender
}

// ContractAddress returns the executing contract's address.
func (c *Context) ContractAddress() string {
	return c.contractAddress
}

// BlockHeight returns the current block height.
func (c *Context) BlockHeight() uint64 {
	return c.blockHeight
}

// BlockTimestamp returns the current block's Unix timestamp.
func (c *Context) BlockTimestamp() uint64 {
	return c.blockTimestamp
}

// Value returns the token amount attached to this call.
func (c *Context) Value() uint64 {
	return c.value
}

// CallData reads the raw invocation payload.
func (c *Context) CallData() ([]byte, error) {
	return c.h.CallData()
}

// ReturnData encodes value and writes it as the call's result.
func (c *Context) ReturnData(value any) error {
	payload, err := codec.Marshal(value)
	if err != nil {
		return err
	}
	return c.h.WriteReturnData(payload)
}

// ReturnBytes writes raw result bytes without additional encoding.
func (c *Context) ReturnBytes(data []byte) error {
	return c.h.WriteReturnData(data)
}

// TransferTokens validates recipient and amount, then asks the host to move
// amount tokens from the contract to recipient.
func (c *Context) TransferTokens(recipient string, amount uint64) error {
	if err := security.ValidateAddress(recipient); err != nil {
		return err
	}
	if err := security.ValidatePositiveAmount(amount); err != nil {
		return err
	}
	return c.h.Transfer(recipient, amount)
}

// RequireMinValue fails with InsufficientBalance when the attached value is
// below required.
func (c *Context) RequireMinValue(required uint64) error {
	if c.value < required {
		return types.InsufficientBalanceError{Required: required, Available: c.value}
	}
	return nil
}
