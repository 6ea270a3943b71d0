package sample

import (
	"context"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherkit/rsa-lib/core/math/arith"
)

func TestPrime(t *testing.T) {
	p, err := Prime(context.Background(), nil, 512)
	require.NoError(t, err)
	assert.Equal(t, 512, p.Big().BitLen())
	assert.True(t, arith.IsProbablePrime(p))
}

func TestPrimeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Prime(ctx, nil, 2048)
	assert.Error(t, err)
}

func TestPrimeTooSmall(t *testing.T) {
	_, err := Prime(context.Background(), nil, 1)
	assert.Error(t, err)
}

func TestIntervalNat(t *testing.T) {
	low := new(saferith.Nat).SetUint64(100)
	high := new(saferith.Nat).SetUint64(200)

	for i := 0; i < 64; i++ {
		v, err := IntervalNat(nil, low, high)
		require.NoError(t, err)
		got := v.Big().Uint64()
		assert.GreaterOrEqual(t, got, uint64(100))
		assert.Less(t, got, uint64(200))
	}
}

func TestIntervalNatEmpty(t *testing.T) {
	low := new(saferith.Nat).SetUint64(5)
	_, err := IntervalNat(nil, low, low)
	assert.Error(t, err)
}

func TestUnitModN(t *testing.T) {
	n := new(saferith.Nat).SetUint64(5040)

	for i := 0; i < 16; i++ {
		u, err := UnitModN(nil, n)
		require.NoError(t, err)
		assert.True(t, arith.IsCoprime(u, n))
		assert.GreaterOrEqual(t, u.Big().Uint64(), uint64(3))
		assert.Less(t, u.Big().Uint64(), uint64(5040))
	}
}
