package security

import (
	"strings"

	"github.com/silicalabs/silica-sdk/types"
)

// Address length bounds. The chain's bech32-style addresses fall well inside
// this window; the check exists to reject obviously malformed host input, not
// to validate the checksum.
const (
	minAddressLen = 10
	maxAddressLen = 100
)

// ValidateAddress checks that address is non-empty and between 10 and 100
// bytes.
func ValidateAddress(address string) error {
	if address == "" {
		return types.InvalidArgument("address cannot be empty")
	}
	if len(address) < minAddressLen || len(address) > maxAddressLen {
		return types.InvalidArgument("invalid address length")
	}
	return nil
}

// ValidateAddresses checks every address in the slice.
func ValidateAddresses(addresses []string) error {
	for _, address := range addresses {
		if err := ValidateAddress(address); err != nil {
			return err
		}
	}
	return nil
}

// ValidateNonEmpty checks that value is not empty or whitespace-only. The
// field name goes into the error reason.
func ValidateNonEmpty(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return types.InvalidArgument(fieldName + " cannot be empty")
	}
	return nil
}

// ValidatePositiveAmount checks that amount is nonzero.
func ValidatePositiveAmount(amount uint64) error {
	if amount == 0 {
		return types.InvalidArgument("amount must be positive")
	}
	return nil
}

// ValidateTokenID checks that tokenID is nonzero.
func ValidateTokenID(tokenID uint64) error {
	if tokenID == 0 {
		return types.InvalidArgument("token ID cannot be zero")
	}
	return nil
}

// ValidateRange checks min <= value <= max.
func ValidateRange(value, min, max uint64) error {
	if value < min || value > max {
		return types.InvalidArgument("value out of range")
	}
	return nil
}
