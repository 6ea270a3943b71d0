package arith

import (
	"errors"
	"math/big"

	"github.com/cronokirby/saferith"
)

var ErrNotCoprime = errors.New("arith: no modular inverse, operands not coprime")

// Gcd returns the greatest common divisor of a and b.
func Gcd(a, b *saferith.Nat) *saferith.Nat {
	g := new(big.Int).GCD(nil, nil, a.Big(), b.Big())
	return NatFromBig(g)
}

// Lcm returns the least common multiple of a and b.
// Lcm(0, x) = Lcm(x, 0) = 0.
func Lcm(a, b *saferith.Nat) *saferith.Nat {
	ab, bb := a.Big(), b.Big()
	if ab.Sign() == 0 || bb.Sign() == 0 {
		return new(saferith.Nat).SetUint64(0)
	}
	g := new(big.Int).GCD(nil, nil, ab, bb)
	l := new(big.Int).Div(ab, g)
	l.Mul(l, bb)
	return NatFromBig(l)
}

// IsCoprime reports whether gcd(a, b) = 1.
func IsCoprime(a, b *saferith.Nat) bool {
	g := new(big.Int).GCD(nil, nil, a.Big(), b.Big())
	return g.Cmp(big.NewInt(1)) == 0
}

// ModInverse returns a⁻¹ (mod m). It fails with ErrNotCoprime when
// gcd(a, m) ≠ 1, in which case no inverse exists.
//
// The inverse is computed over big.Int rather than saferith: the modulus
// here is λ(n), which is even, and saferith's constant-time inversion
// requires an odd modulus.
func ModInverse(a, m *saferith.Nat) (*saferith.Nat, error) {
	inv := new(big.Int).ModInverse(a.Big(), m.Big())
	if inv == nil {
		return nil, ErrNotCoprime
	}
	return NatFromBig(inv), nil
}

// IsProbablePrime reports whether x is prime with negligible error
// probability (64 Miller-Rabin rounds).
func IsProbablePrime(x *saferith.Nat) bool {
	return x.Big().ProbablyPrime(64)
}

// NatFromBig converts a non-negative big.Int to a saferith.Nat.

func NatFromBig(x *big.Int) *saferith.Nat {
	if x.Sign() == 0 {
		return new(saferith.Nat).SetUint64(0)
	}
	return new(saferith.Nat).SetBig(x, x.BitLen())
}
