package arith

import (
	"github.com/cronokirby/saferith"
)

// Modulus wraps a saferith.Modulus for use as an RSA modulus n = p⋅q.
// The factorization is deliberately not cached: decryption and signing
// run as a single exponentiation mod n.
type Modulus struct {
	*saferith.Modulus
}

// ModulusFromN creates a wrapper around a given modulus n.
// The modulus is not copied.
func ModulusFromN(n *saferith.Modulus) *Modulus {
	return &Modulus{
		Modulus: n,
	}
}

// ModulusFromNat creates a modulus from its natural-number value.
func ModulusFromNat(n *saferith.Nat) *Modulus {
	return &Modulus{
		Modulus: saferith.ModulusFromNat(n),
	}
}

// ModulusFromFactors computes n = p⋅q from the two secret primes.
func ModulusFromFactors(p, q *saferith.Nat) *Modulus {
	nNat := new(saferith.Nat).Mul(p, q, -1)
	return &Modulus{
		Modulus: saferith.ModulusFromNat(nNat),
	}
}

// Exp returns xᵉ (mod n), with 0 ≤ result < n.
func (n *Modulus) Exp(x, e *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).Exp(x, e, n.Modulus)
}

// BitLen returns the bit length of the modulus value.
func (n *Modulus) BitLen() int {
	return n.Modulus.Nat().Big().BitLen()
}

// Contains reports whether x lies in [0, n).
func (n *Modulus) Contains(x *saferith.Nat) bool {
	return x.Big().Cmp(n.Modulus.Nat().Big()) < 0
}

func (n *Modulus) MarshalBinary() ([]byte, error) {
	return n.Modulus.MarshalBinary()
}

func (n *Modulus) UnmarshalBinary(data []byte) error {
	n.Modulus = new(saferith.Modulus)
	return n.Modulus.UnmarshalBinary(data)
}
