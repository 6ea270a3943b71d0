package keystore

import (
	"github.com/cipherkit/rsa-lib/pkg/common/keystore"
)

// InMemoryKeyLinkedStore is a Keystore view bound to a single keyID.
type InMemoryKeyLinkedStore struct {
	keyID string
	ks    keystore.Keystore
}

func NewInMemoryKeyLinkedStore(keyID string, ks keystore.Keystore) *InMemoryKeyLinkedStore {
	return &InMemoryKeyLinkedStore{
		keyID: keyID,
		ks:    ks,
	}
}

func (s *InMemoryKeyLinkedStore) Import(key []byte) error {
	return s.ks.Import(s.keyID, key)
}

func (s *InMemoryKeyLinkedStore) Get() ([]byte, error) {
	return s.ks.Get(s.keyID)
}

func (s *InMemoryKeyLinkedStore) Delete() error {
	return s.ks.Delete(s.keyID)
}
