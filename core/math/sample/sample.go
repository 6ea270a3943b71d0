package sample

import (
	"context"
	cryptorand "crypto/rand"
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/pkg/errors"

	"github.com/cipherkit/rsa-lib/core/math/arith"
)

// maxIterations bounds the rejection-sampling loops. The expected number
// of attempts for a random b-bit prime is O(b), so hitting this bound
// means the random source is broken.
const maxIterations = 255

var ErrMaxIterations = errors.New("sample: rejection sampling failed to terminate")

// Prime returns a probable prime of exactly bits length, read from rand.
// A nil rand falls back to crypto/rand.Reader. The search is abandoned
// when ctx is cancelled.
func Prime(ctx context.Context, rand io.Reader, bits int) (*saferith.Nat, error) {
	if rand == nil {
		rand = cryptorand.Reader
	}
	if bits < 2 {
		return nil, errors.Errorf("sample: prime bit length %d too small", bits)
	}

	buf := make([]byte, (bits+7)/8)
	candidate := new(big.Int)
	for {
		if err := ctx.Err(); err != nil {
			return nil, errors.WithMessage(err, "sample: prime search cancelled")
		}

		if _, err := io.ReadFull(rand, buf); err != nil {
			return nil, errors.WithMessage(err, "sample: failed to read random bytes")
		}

		// Force the exact bit length and oddness before testing. The two
		// highest bits are set so the product of two such primes has
		// exactly twice the requested length.
		b := bits % 8
		if b == 0 {
			b = 8
		}
		buf[0] &= byte(1<<b - 1)
		if b >= 2 {
			buf[0] |= 3 << (b - 2)
		} else {
			buf[0] |= 1
			if len(buf) > 1 {
				buf[1] |= 0x80
			}
		}
		buf[len(buf)-1] |= 1

		candidate.SetBytes(buf)
		if candidate.ProbablyPrime(64) {
			return arith.NatFromBig(candidate), nil
		}
	}
}

// IntervalNat returns a uniformly random integer in [low, high).
func IntervalNat(rand io.Reader, low, high *saferith.Nat) (*saferith.Nat, error) {
	if rand == nil {
		rand = cryptorand.Reader
	}
	lo, hi := low.Big(), high.Big()
	width := new(big.Int).Sub(hi, lo)
	if width.Sign() <= 0 {
		return nil, errors.New("sample: empty interval")
	}
	r, err := cryptorand.Int(rand, width)
	if err != nil {
		return nil, errors.WithMessage(err, "sample: failed to sample interval")
	}
	return arith.NatFromBig(r.Add(r, lo)), nil
}

// UnitModN returns a uniformly random element of [3, n) that is coprime
// to n, suitable as a public exponent. The retry loop is bounded; an
// exhausted bound surfaces ErrMaxIterations rather than hanging.
func UnitModN(rand io.Reader, n *saferith.Nat) (*saferith.Nat, error) {
	low := new(saferith.Nat).SetUint64(3)
	for i := 0; i < maxIterations; i++ {
		candidate, err := IntervalNat(rand, low, n)
		if err != nil {
			return nil, err
		}
		if arith.IsCoprime(candidate, n) {
			return candidate, nil
		}
	}
	return nil, ErrMaxIterations
}
