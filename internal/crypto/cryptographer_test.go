package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftline/syncer/models"
)

func TestCryptographer_RoundTrip(t *testing.T) {
	c, err := NewCryptographer("nigori-1", "hunter2")
	require.NoError(t, err)

	plain := models.EntitySpecifics{
		Type: models.Passwords,
		Data: []byte(`{"site":"example.com","password":"secret"}`),
	}

	sealed, err := c.EncryptSpecifics(plain)
	require.NoError(t, err)
	assert.Equal(t, "nigori-1", sealed.KeyName)
	assert.True(t, sealed.IsEncrypted())
	assert.NotEqual(t, plain.Data, sealed.Data)

	opened, err := c.DecryptSpecifics(sealed)
	require.NoError(t, err)
	assert.Equal(t, plain.Data, opened.Data)
	assert.False(t, opened.IsEncrypted())
}

func TestCryptographer_PlaintextPassesThrough(t *testing.T) {
	c, err := NewCryptographer("nigori-1", "hunter2")
	require.NoError(t, err)

	plain := models.EntitySpecifics{Type: models.Bookmarks, Data: []byte("plain")}

	opened, err := c.DecryptSpecifics(plain)
	require.NoError(t, err)
	assert.Equal(t, plain, opened)
	assert.True(t, c.CanDecrypt(plain))
}

func TestCryptographer_UnknownKey(t *testing.T) {
	c1, err := NewCryptographer("key-a", "passphrase-a")
	require.NoError(t, err)
	c2, err := NewCryptographer("key-b", "passphrase-b")
	require.NoError(t, err)

	sealed, err := c1.EncryptSpecifics(models.EntitySpecifics{
		Type: models.Bookmarks,
		Data: []byte("payload"),
	})
	require.NoError(t, err)

	assert.False(t, c2.CanDecrypt(sealed))
	_, err = c2.DecryptSpecifics(sealed)
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestCryptographer_MalformedCiphertext(t *testing.T) {
	c, err := NewCryptographer("key-a", "passphrase-a")
	require.NoError(t, err)

	_, err = c.DecryptSpecifics(models.EntitySpecifics{
		Type:    models.Bookmarks,
		Data:    []byte{0x01},
		KeyName: "key-a",
	})
	assert.ErrorIs(t, err, ErrMalformedCiphertext)
}

func TestCryptographer_SamePassphraseOpensAcrossInstances(t *testing.T) {
	c1, err := NewCryptographer("key-a", "shared")
	require.NoError(t, err)
	c2, err := NewCryptographer("key-a", "shared")
	require.NoError(t, err)

	sealed, err := c1.EncryptSpecifics(models.EntitySpecifics{
		Type: models.Preferences,
		Data: []byte("theme=dark"),
	})
	require.NoError(t, err)

	opened, err := c2.DecryptSpecifics(sealed)
	require.NoError(t, err)
	assert.Equal(t, []byte("theme=dark"), opened.Data)
}
