package keystore

// Keystore stores serialized keys by keyID.
type Keystore interface {
	Import(keyID string, key []byte) error
	Get(keyID string) ([]byte, error)
	Delete(keyID string) error
	WithKeyID(keyID string) KeyLinkedStore
}

// KeyLinkedStore is a view of a Keystore bound to a single keyID.
type KeyLinkedStore interface {
	Import(key []byte) error
	Get() ([]byte, error)
	Delete() error
}
