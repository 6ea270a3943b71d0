// Package rsa implements textbook RSA over saferith natural numbers:
// key generation from two secret primes, and the four raw transforms
// (encrypt, decrypt, sign, verify) built on modular exponentiation.
//
// No padding scheme is applied; the transforms are deterministic and the
// caller is responsible for any anti-malleability guarantees.
package rsa

import (
	"context"
	"errors"
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/cipherkit/rsa-lib/core/math/arith"
	"github.com/cipherkit/rsa-lib/core/math/sample"
)

// DefaultBitLen is the bit length of each of the two secret primes when
// the caller does not request one; the modulus is roughly twice as long.
const DefaultBitLen = 2048

// maxPrimeRetries bounds the p = q regeneration loop. Two equal primes
// of ≥ 512 bits require a broken random source.
const maxPrimeRetries = 8

var (
	ErrKeyGeneration       = errors.New("rsa: key generation failed")
	ErrInvalidPlaintext    = errors.New("rsa: plaintext not in range [0, n)")
	ErrMalformedCiphertext = errors.New("rsa: ciphertext not in range [0, n)")
	ErrEncoding            = errors.New("rsa: decoded bytes are not valid UTF-8")
)

// PublicKey is the shareable half of a key pair: the modulus n = p⋅q and
// the public exponent e, with gcd(e, λ(n)) = 1.
type PublicKey struct {
	n *arith.Modulus
	e *saferith.Nat
}

// SecretKey holds the private exponent d = e⁻¹ (mod λ(n)) together with
// the public key it belongs to. The private exponent never leaves the
// struct; decryption and signing close over it.
type SecretKey struct {
	public *PublicKey
	d      *saferith.Nat
}

// Config selects the key-generation parameters.
type Config struct {
	// BitLen is the bit length of each prime; 0 means DefaultBitLen.
	BitLen int
	// PublicExponent fixes e (commonly 65537). When nil, a random
	// exponent coprime to λ(n) is drawn from [3, λ).
	PublicExponent *saferith.Nat
}

// NewPublicKey constructs a public key from its two components.
func NewPublicKey(n *arith.Modulus, e *saferith.Nat) *PublicKey {
	return &PublicKey{n: n, e: e}
}

// N returns the modulus.
func (pk *PublicKey) N() *arith.Modulus {
	return pk.n
}

// E returns the public exponent.
func (pk *PublicKey) E() *saferith.Nat {
	return pk.e
}

// Public returns the shareable half of the key pair.
func (sk *SecretKey) Public() *PublicKey {
	return sk.public
}

// KeyGen generates a fresh key pair. The two primes are searched
// concurrently; a nil rand falls back to crypto/rand.Reader and ctx
// cancels the search.
func KeyGen(ctx context.Context, rand io.Reader, cfg *Config) (*SecretKey, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg == nil {
		cfg = &Config{}
	}
	bits := cfg.BitLen
	if bits == 0 {
		bits = DefaultBitLen
	}

	var p, q *saferith.Nat
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		p, err = sample.Prime(gctx, rand, bits)
		return err
	})
	g.Go(func() error {
		var err error
		q, err = sample.Prime(gctx, rand, bits)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, pkgerrors.WithMessage(err, "rsa: prime generation")
	}

	// p = q collapses the modulus; regenerate q, bounded.
	for i := 0; p.Eq(q) == 1; i++ {
		if i == maxPrimeRetries {
			return nil, pkgerrors.WithMessage(ErrKeyGeneration, "distinct prime search exhausted")
		}
		var err error
		q, err = sample.Prime(ctx, rand, bits)
		if err != nil {
			return nil, pkgerrors.WithMessage(err, "rsa: prime generation")
		}
	}

	n := arith.ModulusFromFactors(p, q)

	// λ(n) = lcm(p−1, q−1)
	one := big.NewInt(1)
	pm1 := arith.NatFromBig(new(big.Int).Sub(p.Big(), one))
	qm1 := arith.NatFromBig(new(big.Int).Sub(q.Big(), one))
	lambda := arith.Lcm(pm1, qm1)

	e := cfg.PublicExponent
	if e == nil {
		var err error
		e, err = sample.UnitModN(rand, lambda)
		if err != nil {
			return nil, pkgerrors.WithMessage(err, "rsa: public exponent search")
		}
	} else if !arith.IsCoprime(e, lambda) {
		return nil, pkgerrors.WithMessage(ErrKeyGeneration, "public exponent not coprime to λ(n)")
	}

	d, err := arith.ModInverse(e, lambda)
	if err != nil {
		// unreachable given the coprimality check above
		return nil, pkgerrors.WithMessage(ErrKeyGeneration, err.Error())
	}

	return &SecretKey{
		public: &PublicKey{n: n, e: e},
		d:      d,
	}, nil
}

// Encrypt computes mᵉ (mod n) over the message's integer image. A value
// outside [0, n) would wrap silently and not decrypt to the original
// message, so it is rejected.
func (pk *PublicKey) Encrypt(m *Message) (*Ciphertext, error) {
	v := m.nat()
	if !pk.n.Contains(v) {
		return nil, ErrInvalidPlaintext
	}
	return &Ciphertext{
		c:    pk.n.Exp(v, pk.e),
		kind: m.kind,
	}, nil
}

// Decrypt computes cᵈ (mod n) and restores the plaintext representation
// recorded in the ciphertext. It is the exact inverse of Encrypt under
// the matching public key for any plaintext below n.
func (sk *SecretKey) Decrypt(ct *Ciphertext) (*Message, error) {
	if !ct.Valid(sk.public.n) {
		return nil, ErrMalformedCiphertext
	}
	v := sk.public.n.Exp(ct.c, sk.d)
	if ct.kind == kindText {
		s, err := natToText(v)
		if err != nil {
			return nil, err
		}
		return TextMessage(s), nil
	}
	return IntMessage(v), nil
}

// Sign computes mᵈ (mod n) over the codec image of text. Any holder of
// the public key can recover text from the signature via Verify.
func (sk *SecretKey) Sign(text string) (*Signature, error) {
	v := textToNat(text)
	if !sk.public.n.Contains(v) {
		return nil, ErrInvalidPlaintext
	}
	return &Signature{s: sk.public.n.Exp(v, sk.d)}, nil
}

// Verify computes sᵉ (mod n) and decodes the recovered text. Comparing
// the result against the claimed message is the caller's decision; Verify
// performs the recovery, not the comparison.
func (pk *PublicKey) Verify(sig *Signature) (string, error) {
	if !sig.Valid(pk.n) {
		return "", ErrMalformedCiphertext
	}
	return natToText(pk.n.Exp(sig.s, pk.e))
}
