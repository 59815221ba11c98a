package security

import (
	"math"

	"github.com/silicalabs/silica-sdk/types"
)

// Checked uint64 arithmetic. The Safe* functions fail instead of wrapping;
// the Saturating* functions clamp at the numeric bounds and never fail.

// SafeAdd returns a+b, failing with ErrOverflow on wraparound.
func SafeAdd(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, types.ErrOverflow
	}
	return a + b, nil
}

// SafeSub returns a-b, failing with ErrUnderflow when b exceeds a.
func SafeSub(a, b uint64) (uint64, error) {
	if b > a {
		return 0, types.ErrUnderflow
	}
	return a - b, nil
}

// SafeMul returns a*b, failing with ErrOverflow on wraparound.
func SafeMul(a, b uint64) (uint64, error) {
	if a != 0 && b > math.MaxUint64/a {
		return 0, types.ErrOverflow
	}
	return a * b, nil
}

// SafeDiv returns a/b, failing with InvalidArgument when b is zero.
func SafeDiv(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, types.InvalidArgument("division by zero")
	}
	return a / b, nil
}

// SafePow returns base**exp, failing with ErrOverflow when the result does
// not fit.
func SafePow(base uint64, exp uint32) (uint64, error) {
	result := uint64(1)
	for ; exp > 0; exp-- {
		var err error
		result, err = SafeMul(result, base)
		if err != nil {
			return 0, err
		}
	}
	return result, nil
}

// SaturatingAdd returns a+b, clamped at MaxUint64.
func SaturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

// SaturatingSub returns a-b, clamped at 0.
func SaturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
