package rsa

import (
	"context"

	"github.com/cipherkit/rsa-lib/core/rsa"
)

type RSAKey interface {
	// Bytes returns the byte representation of the key.
	Bytes() ([]byte, error)

	// SKI returns the serialized key identifier, derived from the modulus.
	SKI() []byte

	// Private returns true if the key contains the private exponent.
	Private() bool

	// PublicKey returns the shareable half of the key.
	PublicKey() RSAKey

	// PublicKeyRaw returns the underlying core public key.
	PublicKeyRaw() *rsa.PublicKey

	// Encrypt encrypts a plaintext under the key's public half.
	Encrypt(m *rsa.Message) (*rsa.Ciphertext, error)

	// Decrypt decrypts a ciphertext; the key must be private.
	Decrypt(ct *rsa.Ciphertext) (*rsa.Message, error)

	// Sign signs a text message; the key must be private.
	Sign(text string) (*rsa.Signature, error)

	// Verify recovers the text a signature was produced over.
	Verify(sig *rsa.Signature) (string, error)
}

type RSAKeyManager interface {
	// GenerateKey generates a new RSA key pair and stores it.
	GenerateKey(ctx context.Context, cfg *rsa.Config) (RSAKey, error)

	// ImportKey imports a key (private or public-only) from its byte
	// representation and stores it.
	ImportKey(data []byte) (RSAKey, error)

	// GetKey returns a stored key by its SKI.
	GetKey(ski []byte) (RSAKey, error)

	// DeleteKey removes a stored key by its SKI.
	DeleteKey(ski []byte) error

	// Encrypt encrypts a plaintext under the stored key identified by ski.
	Encrypt(ski []byte, m *rsa.Message) (*rsa.Ciphertext, error)

	// Decrypt decrypts a ciphertext with the stored key identified by ski.
	Decrypt(ski []byte, ct *rsa.Ciphertext) (*rsa.Message, error)

	// Sign signs a text message with the stored key identified by ski.
	Sign(ski []byte, text string) (*rsa.Signature, error)

	// Verify recovers the signed text using the stored key identified by ski.
	Verify(ski []byte, sig *rsa.Signature) (string, error)
}
