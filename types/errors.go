package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure modes that carry no payload. Callers match
// them with errors.Is.
var (
	// ErrStorageReadFailed signals a nonzero status from the host's storage
	// read. A missing key is not a read failure; it surfaces as an empty
	// payload.
	ErrStorageReadFailed = errors.New("storage read failed")

	// ErrStorageWriteFailed signals a nonzero status from the host's storage
	// write.
	ErrStorageWriteFailed = errors.New("storage write failed")

	// ErrSerializationFailed signals that a value could not be encoded.
	ErrSerializationFailed = errors.New("serialization failed")

	// ErrDeserializationFailed signals that stored bytes could not be decoded
	// into the requested type.
	ErrDeserializationFailed = errors.New("deserialization failed")

	// ErrUnauthorized signals a failed authorization check.
	ErrUnauthorized = errors.New("unauthorized access")

	// ErrTransferFailed signals a rejected host value transfer.
	ErrTransferFailed = errors.New("transfer failed")

	// ErrCallDataUnavailable signals that the invocation payload could not be
	// read from the host.
	ErrCallDataUnavailable = errors.New("call data unavailable")

	// ErrReturnDataWriteFailed signals that the call result could not be
	// handed back to the host.
	ErrReturnDataWriteFailed = errors.New("unable to write return data")

	// ErrInvalidSignature signals a malformed public key. A signature that is
	// well-formed but cryptographically invalid is not an error.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrOverflow signals checked-arithmetic overflow.
	ErrOverflow = errors.New("arithmetic overflow")

	// ErrUnderflow signals checked-arithmetic underflow.
	ErrUnderflow = errors.New("arithmetic underflow")

	// ErrReentrancyDetected signals nested entry into a guarded section.
	ErrReentrancyDetected = errors.New("reentrancy detected")
)

// InsufficientBalanceError is returned when the value attached to the call is
// below what an operation requires.
type InsufficientBalanceError struct {
	Required  uint64
	Available uint64
}

func (e InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: required %d, available %d", e.Required, e.Available)
}

// InvalidArgumentError is returned for input that fails validation. Reason is
// a short human-readable description, not machine-parseable.
type InvalidArgumentError struct {
	Reason string
}

func (e InvalidArgumentError) Error() string {
	return "invalid argument: " + e.Reason
}

// InvalidArgument builds an InvalidArgumentError.
func InvalidArgument(reason string) error {
	return InvalidArgumentError{Reason: reason}
}

// ContractCallError is returned when a call into another contract fails.
type ContractCallError struct {
	Msg string
}

func (e ContractCallError) Error() string {
	return "contract call failed: " + e.Msg
}

// CustomError is the open-ended escape hatch for contract-defined failures.
type CustomError struct {
	Msg string
}

func (e CustomError) Error() string {
	return e.Msg
}
