package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/driftline/syncer/models"
)

// Errors returned by the cryptographer. Callers should match with
// [errors.Is].
var (
	// ErrUnknownKey is returned when a payload was sealed with a key that
	// is not present in the bag.
	ErrUnknownKey = errors.New("specifics sealed with unknown key")
	// ErrEmptyKeyBag is returned when encryption is requested before any
	// key has been installed.
	ErrEmptyKeyBag = errors.New("key bag is empty")
	// ErrMalformedCiphertext is returned when an encrypted payload is too
	// short to contain a nonce.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")
)

// cryptographer is the private implementation of [Cryptographer]. It keeps
// AES-256-GCM AEADs keyed by key name. The most recently added key is the
// default sealing key.
type cryptographer struct {
	keys       map[string]cipher.AEAD
	defaultKey string
}

// NewCryptographer constructs a [Cryptographer] with a single key derived
// from passphrase via HKDF-SHA256. keyName is the stable label recorded in
// every payload sealed with this key.
func NewCryptographer(keyName, passphrase string) (Cryptographer, error) {
	c := &cryptographer{keys: make(map[string]cipher.AEAD)}
	if err := c.addKey(keyName, passphrase); err != nil {
		return nil, err
	}
	return c, nil
}

// addKey derives a 256-bit key from the passphrase and installs it as the
// new default sealing key.
func (c *cryptographer) addKey(keyName, passphrase string) error {
	kdf := hkdf.New(sha256.New, []byte(passphrase), []byte(keyName), nil)
	key := make([]byte, 32)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return fmt.Errorf("derive key %q: %w", keyName, err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return fmt.Errorf("create cipher for key %q: %w", keyName, err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return fmt.Errorf("create GCM for key %q: %w", keyName, err)
	}

	c.keys[keyName] = gcm
	c.defaultKey = keyName
	return nil
}

// EncryptSpecifics implements [Cryptographer]. The random 12-byte nonce is
// prepended to the ciphertext so the decryption side can locate it:
// blob = nonce ‖ ciphertext.
func (c *cryptographer) EncryptSpecifics(specifics models.EntitySpecifics) (models.EntitySpecifics, error) {
	if c.defaultKey == "" {
		return models.EntitySpecifics{}, ErrEmptyKeyBag
	}
	gcm := c.keys[c.defaultKey]

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return models.EntitySpecifics{}, fmt.Errorf("generate nonce: %w", err)
	}

	sealed := specifics
	sealed.Data = gcm.Seal(nonce, nonce, specifics.Data, nil)
	sealed.KeyName = c.defaultKey
	return sealed, nil
}

// DecryptSpecifics implements [Cryptographer].
func (c *cryptographer) DecryptSpecifics(specifics models.EntitySpecifics) (models.EntitySpecifics, error) {
	if !specifics.IsEncrypted() {
		return specifics, nil
	}

	gcm, ok := c.keys[specifics.KeyName]
	if !ok {
		return models.EntitySpecifics{}, fmt.Errorf("key %q: %w", specifics.KeyName, ErrUnknownKey)
	}
	if len(specifics.Data) < gcm.NonceSize() {
		return models.EntitySpecifics{}, ErrMalformedCiphertext
	}

	nonce, ciphertext := specifics.Data[:gcm.NonceSize()], specifics.Data[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return models.EntitySpecifics{}, fmt.Errorf("open specifics: %w", err)
	}

	opened := specifics
	opened.Data = plaintext
	opened.KeyName = ""
	return opened, nil
}

// CanDecrypt implements [Cryptographer].
func (c *cryptographer) CanDecrypt(specifics models.EntitySpecifics) bool {
	if !specifics.IsEncrypted() {
		return true
	}
	_, ok := c.keys[specifics.KeyName]
	return ok
}

// DefaultKeyName implements [Cryptographer].
func (c *cryptographer) DefaultKeyName() string { return c.defaultKey }
