package vault

// Vault is raw byte storage for serialized key material, addressed by
// keyID. Implementations decide where the bytes live; callers must treat
// stored private keys as secrets.
type Vault interface {
	Import(keyID string, key []byte) error
	Get(keyID string) ([]byte, error)
	Delete(keyID string) error
}
