package rsa

import (
	"github.com/cronokirby/saferith"
	"github.com/fxamacker/cbor/v2"

	"github.com/cipherkit/rsa-lib/core/math/arith"
)

// Ciphertext is the result of an encryption: the value mᵉ (mod n)
// together with the kind of the plaintext it was produced from, so
// decryption can restore the original representation.
type Ciphertext struct {
	c    *saferith.Nat
	kind kind
}

type rawCiphertext struct {
	C    []byte
	Text bool
}

// Value returns the numeric ciphertext value.
func (ct *Ciphertext) Value() *saferith.Nat {
	return ct.c
}

// IsText returns true if the ciphertext was produced from a text plaintext.
func (ct *Ciphertext) IsText() bool {
	return ct.kind == kindText
}

// Valid returns true if the ciphertext passes basic validation against
// the modulus it is to be decrypted under.
func (ct *Ciphertext) Valid(n *arith.Modulus) bool {
	return ct != nil && ct.c != nil && n.Contains(ct.c)
}

func (ct *Ciphertext) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(&rawCiphertext{
		C:    ct.c.Bytes(),
		Text: ct.kind == kindText,
	})
}

func (ct *Ciphertext) UnmarshalBinary(data []byte) error {
	raw := &rawCiphertext{}
	if err := cbor.Unmarshal(data, raw); err != nil {
		return err
	}
	ct.c = new(saferith.Nat).SetBytes(raw.C)
	ct.kind = kindInt
	if raw.Text {
		ct.kind = kindText
	}
	return nil
}

// Signature is the result of signing a text message: the value mᵈ (mod n).
// Signing is defined only over text, so unlike Ciphertext it carries no
// kind tag.
type Signature struct {
	s *saferith.Nat
}

type rawSignature struct {
	S []byte
}

// Value returns the numeric signature value.
func (sig *Signature) Value() *saferith.Nat {
	return sig.s
}

// Valid returns true if the signature passes basic validation against
// the modulus it is to be verified under.
func (sig *Signature) Valid(n *arith.Modulus) bool {
	return sig != nil && sig.s != nil && n.Contains(sig.s)
}

func (sig *Signature) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(&rawSignature{S: sig.s.Bytes()})
}

func (sig *Signature) UnmarshalBinary(data []byte) error {
	raw := &rawSignature{}
	if err := cbor.Unmarshal(data, raw); err != nil {
		return err
	}
	sig.s = new(saferith.Nat).SetBytes(raw.S)
	return nil
}
