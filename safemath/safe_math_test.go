package safemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	benchmarkResult uint64
	// Pick large numbers that are not a multiple of two and which when multiplied, fit in an uint64.
	testFactor1 = (1 << 16) - 1
	testFactor2 = (1 << 15) - 1
)

func BenchmarkSafeMul(b *testing.B) {
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		res, _ := SafeMul(uint64(testFactor1), uint64(testFactor2))
		benchmarkResult = res
	}
}

// This simply benchmarks raw uint64 multiplication so we can check how much slower
// the safe functions are in comparison.
func BenchmarkMultiplication(b *testing.B) {
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		res := uint64(testFactor1) * uint64(testFactor2)
		benchmarkResult = res
	}
}

func TestSafeAddInt(t *testing.T) {
	var err error
	var ires int

	ires, err = SafeAdd(0, math.MaxInt)
	require.NoError(t, err)
	require.Equal(t, math.MaxInt, ires)

	ires, err = SafeAdd(math.MaxInt-1, 1)
	require.NoError(t, err)
	require.Equal(t, math.MaxInt, ires)

	ires, err = SafeAdd(-100, 50)
	require.NoError(t, err)
	require.Equal(t, -50, ires)

	// overflows
	_, err = SafeAdd(math.MaxInt, 1)
	require.ErrorIs(t, err, ErrIntegerOverflow)

	_, err = SafeAdd(1, math.MaxInt)
	require.ErrorIs(t, err, ErrIntegerOverflow)

	// underflows
	_, err = SafeAdd(math.MinInt, -1)
	require.ErrorIs(t, err, ErrIntegerOverflow)
}

func TestSafeAddUint8(t *testing.T) {
	var err error
	var ures uint8

	ures, err = SafeAdd(uint8(0), math.MaxUint8)
	require.NoError(t, err)
	require.Equal(t, ures, uint8(math.MaxUint8))

	ures, err = SafeAdd(uint8(100), uint8(100))
	require.NoError(t, err)
	require.Equal(t, ures, uint8(200))

	// overflows
	_, err = SafeAdd(uint8(1), math.MaxUint8)
	require.ErrorIs(t, err, ErrIntegerOverflow)

	_, err = SafeAdd(math.MaxUint8, uint8(1))
	require.ErrorIs(t, err, ErrIntegerOverflow)
}

func TestSafeSubInt(t *testing.T) {
	var err error
	var ires int

	ires, err = SafeSub(5, 5)
	require.NoError(t, err)
	require.Equal(t, 0, ires)

	ires, err = SafeSub(4, 5)
	require.NoError(t, err)
	require.Equal(t, -1, ires)

	ires, err = SafeSub(-4, -5)
	require.NoError(t, err)
	require.Equal(t, 1, ires)

	// underflows
	_, err = SafeSub(math.MinInt, 1)
	require.ErrorIs(t, err, ErrIntegerOverflow)

	// overflows
	_, err = SafeSub(math.MaxInt, -1)
	require.ErrorIs(t, err, ErrIntegerOverflow)
}

func TestSafeSubUint8(t *testing.T) {
	var err error
	var ures uint8

	ures, err = SafeSub(uint8(5), uint8(4))
	require.NoError(t, err)
	require.Equal(t, ures, uint8(1))

	_, err = SafeSub(uint8(4), uint8(5))
	require.ErrorIs(t, err, ErrIntegerOverflow)
}

func TestSafeMulInt(t *testing.T) {
	var err error
	var ires int

	ires, err = SafeMul(5, 5)
	require.NoError(t, err)
	require.Equal(t, 25, ires)

	ires, err = SafeMul(5, -5)
	require.NoError(t, err)
	require.Equal(t, -25, ires)

	ires, err = SafeMul(math.MinInt/2, 2)
	require.NoError(t, err)
	require.Equal(t, math.MinInt, ires)

	_, err = SafeMul(math.MaxInt, 2)
	require.ErrorIs(t, err, ErrIntegerOverflow)

	_, err = SafeMul(math.MinInt, 2)
	require.ErrorIs(t, err, ErrIntegerOverflow)

	_, err = SafeMul(math.MaxInt, math.MaxInt)
	require.ErrorIs(t, err, ErrIntegerOverflow)
}

func TestSafeDiv(t *testing.T) {
	var err error
	var ures uint8

	ures, err = SafeDiv(uint8(10), uint8(2))
	require.NoError(t, err)
	require.Equal(t, ures, uint8(5))

	ures, err = SafeDiv(uint8(10), uint8(8))
	require.NoError(t, err)
	require.Equal(t, ures, uint8(1))

	_, err = SafeDiv(100, 0)
	require.ErrorIs(t, err, ErrIntegerDivisionByZero)
}
