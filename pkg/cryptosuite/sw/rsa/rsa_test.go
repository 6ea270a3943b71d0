package rsa

import (
	"context"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherkit/rsa-lib/core/rsa"
	"github.com/cipherkit/rsa-lib/pkg/keystore"
	"github.com/cipherkit/rsa-lib/pkg/vault"
)

const testBitLen = 512

func newTestManager() *RSAKeyManager {
	ks := keystore.NewInMemoryKeystore(vault.NewInMemoryVault())
	return NewRSAKeyManager(ks)
}

func TestRSAKeyManager(t *testing.T) {
	mgr := newTestManager()

	// generate a new RSA key pair
	key, err := mgr.GenerateKey(context.Background(), &rsa.Config{BitLen: testBitLen})
	require.NoError(t, err)
	assert.True(t, key.Private())

	keyBytes, err := key.Bytes()
	require.NoError(t, err)
	assert.NotNil(t, keyBytes)

	ski := key.SKI()
	assert.NotNil(t, ski)

	// retrieve the key from the keystore
	newKey, err := mgr.GetKey(ski)
	require.NoError(t, err)
	assert.Equal(t, key.SKI(), newKey.SKI())
	assert.Equal(t, key.Private(), newKey.Private())

	newKeyBytes, err := newKey.Bytes()
	require.NoError(t, err)
	assert.Equal(t, keyBytes, newKeyBytes)

	// encrypt through the manager, decrypt with the retrieved key
	ct, err := mgr.Encrypt(ski, rsa.TextMessage("hej"))
	require.NoError(t, err)
	m, err := newKey.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "hej", m.Text())

	// delete and make sure the key is gone
	require.NoError(t, mgr.DeleteKey(ski))
	_, err = mgr.GetKey(ski)
	assert.Error(t, err)
}

func TestPublicKeyExchange(t *testing.T) {
	alice := newTestManager()
	bob := newTestManager()

	// Bob generates a key pair and hands Alice only the public half
	bobKey, err := bob.GenerateKey(context.Background(), &rsa.Config{BitLen: testBitLen})
	require.NoError(t, err)

	pubBytes, err := bobKey.PublicKey().Bytes()
	require.NoError(t, err)

	imported, err := alice.ImportKey(pubBytes)
	require.NoError(t, err)
	assert.False(t, imported.Private())
	assert.Equal(t, bobKey.SKI(), imported.SKI())

	// Alice encrypts for Bob; only Bob can decrypt
	ct, err := alice.Encrypt(imported.SKI(), rsa.TextMessage("hej"))
	require.NoError(t, err)

	_, err = imported.Decrypt(ct)
	assert.ErrorIs(t, err, ErrPrivateKeyRequired)

	m, err := bob.Decrypt(bobKey.SKI(), ct)
	require.NoError(t, err)
	assert.Equal(t, "hej", m.Text())

	// Bob signs; Alice verifies with the imported public key
	sig, err := bob.Sign(bobKey.SKI(), "Alice signatur")
	require.NoError(t, err)

	_, err = imported.Sign("Alice signatur")
	assert.ErrorIs(t, err, ErrPrivateKeyRequired)

	recovered, err := alice.Verify(imported.SKI(), sig)
	require.NoError(t, err)
	assert.Equal(t, "Alice signatur", recovered)
}

// TestScenario exercises the full flow: one key pair with a random
// public exponent, one with e = 65537, text and integer round-trips and
// a signature round-trip.
func TestScenario(t *testing.T) {
	mgr := newTestManager()
	ctx := context.Background()

	keyA, err := mgr.GenerateKey(ctx, &rsa.Config{BitLen: testBitLen})
	require.NoError(t, err)

	keyB, err := mgr.GenerateKey(ctx, &rsa.Config{
		BitLen:         testBitLen,
		PublicExponent: new(saferith.Nat).SetUint64(65537),
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(65537), keyB.PublicKeyRaw().E().Big().Uint64())

	// encrypt "hej" with B's public key, decrypt with B's private key
	ct, err := keyB.PublicKey().Encrypt(rsa.TextMessage("hej"))
	require.NoError(t, err)
	m, err := mgr.Decrypt(keyB.SKI(), ct)
	require.NoError(t, err)
	assert.Equal(t, "hej", m.Text())

	// encrypt 1488 with A's public key, decrypt with A's private key
	ctInt, err := keyA.PublicKey().Encrypt(rsa.IntMessage(new(saferith.Nat).SetUint64(1488)))
	require.NoError(t, err)
	mInt, err := mgr.Decrypt(keyA.SKI(), ctInt)
	require.NoError(t, err)
	assert.Equal(t, uint64(1488), mInt.Int().Big().Uint64())

	// sign "Alice signatur" with A's private key, verify with A's public key
	sig, err := mgr.Sign(keyA.SKI(), "Alice signatur")
	require.NoError(t, err)
	recovered, err := keyA.PublicKey().Verify(sig)
	require.NoError(t, err)
	assert.Equal(t, "Alice signatur", recovered)
}

func TestImportRejectsGarbage(t *testing.T) {
	mgr := newTestManager()
	_, err := mgr.ImportKey([]byte("not a key"))
	assert.Error(t, err)
}
