package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cryptographer_mock.go -package=mock

import "github.com/driftline/syncer/models"

// Cryptographer seals and opens encrypted entity specifics. It holds a bag
// of named symmetric keys; every ciphertext records the name of the key
// that sealed it so older payloads stay readable after a key rotation.
//
// The conflict resolver needs a Cryptographer because two conflicting
// payloads can only be compared after decryption.
type Cryptographer interface {
	// EncryptSpecifics seals the payload of specifics with the default key
	// and returns a copy whose Data is ciphertext and whose KeyName names
	// the sealing key.
	EncryptSpecifics(specifics models.EntitySpecifics) (models.EntitySpecifics, error)

	// DecryptSpecifics opens an encrypted specifics payload. Plaintext
	// specifics are returned unchanged.
	DecryptSpecifics(specifics models.EntitySpecifics) (models.EntitySpecifics, error)

	// CanDecrypt reports whether the bag holds the key that sealed the
	// given specifics. Plaintext specifics are always decryptable.
	CanDecrypt(specifics models.EntitySpecifics) bool

	// DefaultKeyName returns the name of the key new payloads are sealed
	// with, or the empty string if the bag is empty.
	DefaultKeyName() string
}
