package rsa

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/cipherkit/rsa-lib/core/rsa"
	cs_rsa "github.com/cipherkit/rsa-lib/pkg/common/cryptosuite/rsa"
	"github.com/cipherkit/rsa-lib/pkg/common/keystore"
)

type RSAKeyManager struct {
	keystore keystore.Keystore
}

var _ cs_rsa.RSAKeyManager = (*RSAKeyManager)(nil)

func NewRSAKeyManager(store keystore.Keystore) *RSAKeyManager {
	return &RSAKeyManager{
		keystore: store,
	}
}

// GenerateKey generates a new RSA key pair and imports it to the keystore.
func (mgr *RSAKeyManager) GenerateKey(ctx context.Context, cfg *rsa.Config) (cs_rsa.RSAKey, error) {
	sk, err := rsa.KeyGen(ctx, rand.Reader, cfg)
	if err != nil {
		return RSAKey{}, err
	}

	// serialize key to store to the keystore
	key := RSAKey{sk, sk.Public()}
	decoded, err := key.Bytes()
	if err != nil {
		return RSAKey{}, err
	}

	// get key SKI and encode it to hex string as keyID
	keyID := hex.EncodeToString(key.SKI())

	if err := mgr.keystore.Import(keyID, decoded); err != nil {
		return RSAKey{}, err
	}

	return key, nil
}

// ImportKey imports a key (private or public-only) from its byte
// representation and stores it under its SKI.
func (mgr *RSAKeyManager) ImportKey(data []byte) (cs_rsa.RSAKey, error) {
	k, err := fromBytes(data)
	if err != nil {
		return RSAKey{}, err
	}

	keyID := hex.EncodeToString(k.SKI())

	if err := mgr.keystore.Import(keyID, data); err != nil {
		return RSAKey{}, err
	}

	return k, nil
}

// GetKey returns a stored key by its SKI.
func (mgr *RSAKeyManager) GetKey(ski []byte) (cs_rsa.RSAKey, error) {
	keyID := hex.EncodeToString(ski)
	decoded, err := mgr.keystore.Get(keyID)
	if err != nil {
		return RSAKey{}, err
	}
	return fromBytes(decoded)
}

// DeleteKey removes a stored key by its SKI.
func (mgr *RSAKeyManager) DeleteKey(ski []byte) error {
	return mgr.keystore.Delete(hex.EncodeToString(ski))
}

// Encrypt encrypts a plaintext under the stored key identified by ski.
func (mgr *RSAKeyManager) Encrypt(ski []byte, m *rsa.Message) (*rsa.Ciphertext, error) {
	k, err := mgr.GetKey(ski)
	if err != nil {
		return nil, err
	}
	return k.Encrypt(m)
}

// Decrypt decrypts a ciphertext with the stored key identified by ski.
func (mgr *RSAKeyManager) Decrypt(ski []byte, ct *rsa.Ciphertext) (*rsa.Message, error) {
	k, err := mgr.GetKey(ski)
	if err != nil {
		return nil, err
	}
	return k.Decrypt(ct)
}

// Sign signs a text message with the stored key identified by ski.
func (mgr *RSAKeyManager) Sign(ski []byte, text string) (*rsa.Signature, error) {
	k, err := mgr.GetKey(ski)
	if err != nil {
		return nil, err
	}
	return k.Sign(text)
}

// Verify recovers the signed text using the stored key identified by ski.
func (mgr *RSAKeyManager) Verify(ski []byte, sig *rsa.Signature) (string, error) {
	k, err := mgr.GetKey(ski)
	if err != nil {
		return "", err
	}
	return k.Verify(sig)
}
