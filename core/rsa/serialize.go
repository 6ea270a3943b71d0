package rsa

import (
	"github.com/cronokirby/saferith"
	"github.com/fxamacker/cbor/v2"

	"github.com/cipherkit/rsa-lib/core/math/arith"
)

type rawPublicKey struct {
	N []byte
	E []byte
}

type rawSecretKey struct {
	N []byte
	E []byte
	D []byte
}

func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	nb, err := pk.n.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(&rawPublicKey{
		N: nb,
		E: pk.e.Bytes(),
	})
}

func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	raw := &rawPublicKey{}
	if err := cbor.Unmarshal(data, raw); err != nil {
		return err
	}
	n := new(arith.Modulus)
	if err := n.UnmarshalBinary(raw.N); err != nil {
		return err
	}
	pk.n = n
	pk.e = new(saferith.Nat).SetBytes(raw.E)
	return nil
}

func (sk *SecretKey) MarshalBinary() ([]byte, error) {
	nb, err := sk.public.n.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(&rawSecretKey{
		N: nb,
		E: sk.public.e.Bytes(),
		D: sk.d.Bytes(),
	})
}

func (sk *SecretKey) UnmarshalBinary(data []byte) error {
	raw := &rawSecretKey{}
	if err := cbor.Unmarshal(data, raw); err != nil {
		return err
	}
	n := new(arith.Modulus)
	if err := n.UnmarshalBinary(raw.N); err != nil {
		return err
	}
	sk.public = &PublicKey{
		n: n,
		e: new(saferith.Nat).SetBytes(raw.E),
	}
	sk.d = new(saferith.Nat).SetBytes(raw.D)
	return nil
}
