package keystore

import (
	"github.com/cipherkit/rsa-lib/pkg/common/keystore"
	"github.com/cipherkit/rsa-lib/pkg/common/vault"
)

// InMemoryKeystore stores serialized keys in a backing Vault, addressed
// by keyID.
type InMemoryKeystore struct {
	v vault.Vault
}

func NewInMemoryKeystore(v vault.Vault) *InMemoryKeystore {
	return &InMemoryKeystore{
		v: v,
	}
}

func (ks *InMemoryKeystore) Import(keyID string, key []byte) error {
	return ks.v.Import(keyID, key)
}

func (ks *InMemoryKeystore) Get(keyID string) ([]byte, error) {
	return ks.v.Get(keyID)
}

func (ks *InMemoryKeystore) Delete(keyID string) error {
	return ks.v.Delete(keyID)
}

func (ks *InMemoryKeystore) WithKeyID(keyID string) keystore.KeyLinkedStore {
	return NewInMemoryKeyLinkedStore(keyID, ks)
}
