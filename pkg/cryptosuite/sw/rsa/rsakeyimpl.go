package rsa

import (
	"errors"

	"github.com/fxamacker/cbor/v2"
	"github.com/zeebo/blake3"

	"github.com/cipherkit/rsa-lib/core/rsa"
	cs_rsa "github.com/cipherkit/rsa-lib/pkg/common/cryptosuite/rsa"
)

var (
	ErrInvalidKey         = errors.New("rsa: invalid key")
	ErrPrivateKeyRequired = errors.New("rsa: operation requires the private key")
)

// RSAKey wraps a core key pair. The secret half is nil for imported
// public keys; such keys can encrypt and verify but not decrypt or sign.
type RSAKey struct {
	secretKey *rsa.SecretKey
	publicKey *rsa.PublicKey
}

type rawRSAKey struct {
	Secret []byte
	Public []byte
}

// Bytes returns the cbor encoding of the key: the public half always,
// the secret half only if present.
func (k RSAKey) Bytes() ([]byte, error) {
	raw := &rawRSAKey{}

	pub, err := k.publicKey.MarshalBinary()
	if err != nil {
		return nil, err
	}
	raw.Public = pub

	if k.Private() {
		priv, err := k.secretKey.MarshalBinary()
		if err != nil {
			return nil, err
		}
		raw.Secret = priv
	}
	return cbor.Marshal(raw)
}

// SKI returns the Subject Key Identifier of the key, derived from the
// modulus. The public and private halves of a pair share an SKI.
func (k RSAKey) SKI() []byte {
	nb, err := k.publicKey.N().MarshalBinary()
	if err != nil {
		return nil
	}
	sum := blake3.Sum256(nb)
	return sum[:]
}

// Private returns true if the key contains the private exponent.
func (k RSAKey) Private() bool {
	return k.secretKey != nil
}

// PublicKey returns the shareable half of the key.
func (k RSAKey) PublicKey() cs_rsa.RSAKey {
	return RSAKey{nil, k.publicKey}
}

// PublicKeyRaw returns the underlying core public key.
func (k RSAKey) PublicKeyRaw() *rsa.PublicKey {
	return k.publicKey
}

// Encrypt encrypts a plaintext under the key's public half.
func (k RSAKey) Encrypt(m *rsa.Message) (*rsa.Ciphertext, error) {
	return k.publicKey.Encrypt(m)
}

// Decrypt decrypts a ciphertext with the private exponent.
func (k RSAKey) Decrypt(ct *rsa.Ciphertext) (*rsa.Message, error) {
	if !k.Private() {
		return nil, ErrPrivateKeyRequired
	}
	return k.secretKey.Decrypt(ct)
}

// Sign signs a text message with the private exponent.
func (k RSAKey) Sign(text string) (*rsa.Signature, error) {
	if !k.Private() {
		return nil, ErrPrivateKeyRequired
	}
	return k.secretKey.Sign(text)
}

// Verify recovers the text a signature was produced over, using the
// key's public half.
func (k RSAKey) Verify(sig *rsa.Signature) (string, error) {
	return k.publicKey.Verify(sig)
}

// fromBytes returns an RSAKey from its binary encoded data.
func fromBytes(data []byte) (RSAKey, error) {
	raw := &rawRSAKey{}
	if err := cbor.Unmarshal(data, raw); err != nil {
		return RSAKey{}, err
	}
	if len(raw.Public) == 0 {
		return RSAKey{}, ErrInvalidKey
	}

	key := RSAKey{}

	pub := new(rsa.PublicKey)
	if err := pub.UnmarshalBinary(raw.Public); err != nil {
		return RSAKey{}, err
	}
	key.publicKey = pub

	if len(raw.Secret) > 0 {
		sk := new(rsa.SecretKey)
		if err := sk.UnmarshalBinary(raw.Secret); err != nil {
			return RSAKey{}, err
		}
		key.secretKey = sk
	}

	return key, nil
}
