// Package safemath offers arithmetic helpers that report under- and overflow
// instead of silently wrapping around.
package safemath

import (
	"errors"
	"fmt"
)

var (
	// ErrIntegerOverflow gets returned if an operation on two integers would under- or overflow.
	ErrIntegerOverflow = errors.New("integer under- or overflow")
	// ErrIntegerDivisionByZero gets returned if an integer division would cause a division by zero error.
	ErrIntegerDivisionByZero = errors.New("integer division by zero")
)

// Integer is the set of integer types the helpers operate on.
type Integer interface {
	~uint64 | ~uint32 | ~uint16 | ~uint8 | ~uint | ~uintptr | ~int64 | ~int32 | ~int16 | ~int8 | ~int
}

// SafeAdd returns x + y, or an error if the addition would under- or overflow.
func SafeAdd[T Integer](x T, y T) (T, error) {
	result := x + y

	if y > 0 {
		if result < x {
			return 0, fmt.Errorf("%w: %d and %d", ErrIntegerOverflow, x, y)
		}
	} else if result > x {
		return 0, fmt.Errorf("%w: %d and %d", ErrIntegerOverflow, x, y)
	}

	return result, nil
}

// SafeSub returns x - y, or an error if the subtraction would under- or overflow.
func SafeSub[T Integer](x T, y T) (T, error) {
	result := x - y

	if y > 0 {
		if result > x {
			return 0, fmt.Errorf("%w: %d and %d", ErrIntegerOverflow, x, y)
		}
	} else if result < x {
		return 0, fmt.Errorf("%w: %d and %d", ErrIntegerOverflow, x, y)
	}

	return result, nil
}

// SafeMul returns x * y, or an error if the multiplication would under- or overflow.
func SafeMul[T Integer](x T, y T) (T, error) {
	// x * y overflowed exactly when the division does not round-trip.
	result := x * y

	if x != 0 && result/x != y {
		return 0, fmt.Errorf("%w: %d and %d", ErrIntegerOverflow, x, y)
	}

	return result, nil
}

// SafeDiv returns x / y, or an error if y is zero.
func SafeDiv[T Integer](x T, y T) (T, error) {
	if y == 0 {
		return 0, fmt.Errorf("%w: divisor is zero", ErrIntegerDivisionByZero)
	}

	return x / y, nil
}
