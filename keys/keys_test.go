package keys

import (
	"crypto/sha256"
	"testing"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateKeyPair(t *testing.T) (*ec.PrivateKey, *ec.PublicKey) {
	t.Helper()
	privKey, err := ec.NewPrivateKey()
	require.NoError(t, err)
	return privKey, privKey.PubKey()
}

func TestDeriveKey(t *testing.T) {
	key, err := DeriveKey([]byte("some shared secret"), []byte("salt"))
	require.NoError(t, err)
	assert.Len(t, key, KeySize)
}

func TestDeriveKey_Deterministic(t *testing.T) {
	ikm := []byte("input keying material")
	salt := []byte("per-blob salt")

	key1, err := DeriveKey(ikm, salt)
	require.NoError(t, err)
	key2, err := DeriveKey(ikm, salt)
	require.NoError(t, err)
	assert.Equal(t, key1, key2)
}

func TestDeriveKey_SaltSeparation(t *testing.T) {
	ikm := []byte("input keying material")

	keyA, err := DeriveKey(ikm, []byte("blob a"))
	require.NoError(t, err)
	keyB, err := DeriveKey(ikm, []byte("blob b"))
	require.NoError(t, err)
	assert.NotEqual(t, keyA, keyB, "different salts must yield different keys")

	keyNil, err := DeriveKey(ikm, nil)
	require.NoError(t, err)
	assert.NotEqual(t, keyA, keyNil)
}

func TestDeriveKey_EmptySecret(t *testing.T) {
	_, err := DeriveKey(nil, []byte("salt"))
	assert.ErrorIs(t, err, ErrEmptySecret)

	_, err = DeriveKey([]byte{}, nil)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestContentHash(t *testing.T) {
	data := []byte("blob contents")
	hash := ContentHash(data)
	assert.Len(t, hash, 32)

	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	assert.Equal(t, second[:], hash)
}

func TestContentHash_Empty(t *testing.T) {
	assert.Len(t, ContentHash(nil), 32)
	assert.Equal(t, ContentHash(nil), ContentHash([]byte{}))
}

func TestSharedSecret_Symmetry(t *testing.T) {
	privA, pubA := generateKeyPair(t)
	privB, pubB := generateKeyPair(t)

	secretAB, err := SharedSecret(privA, pubB)
	require.NoError(t, err)
	secretBA, err := SharedSecret(privB, pubA)
	require.NoError(t, err)

	assert.Len(t, secretAB, 32)
	assert.Equal(t, secretAB, secretBA)
}

func TestSharedSecret_NilKeys(t *testing.T) {
	priv, pub := generateKeyPair(t)

	_, err := SharedSecret(nil, pub)
	assert.ErrorIs(t, err, ErrNilPrivateKey)

	_, err = SharedSecret(priv, nil)
	assert.ErrorIs(t, err, ErrNilPublicKey)
}

func TestSharedKey_BothSidesAgree(t *testing.T) {
	privA, pubA := generateKeyPair(t)
	privB, pubB := generateKeyPair(t)
	salt := ContentHash([]byte("the blob"))

	keyA, err := SharedKey(privA, pubB, salt)
	require.NoError(t, err)
	keyB, err := SharedKey(privB, pubA, salt)
	require.NoError(t, err)

	assert.Len(t, keyA, KeySize)
	assert.Equal(t, keyA, keyB, "both parties derive the same blob key")
}

func TestSharedKey_DifferentPeers(t *testing.T) {
	privA, _ := generateKeyPair(t)
	_, pubB := generateKeyPair(t)
	_, pubC := generateKeyPair(t)

	keyAB, err := SharedKey(privA, pubB, nil)
	require.NoError(t, err)
	keyAC, err := SharedKey(privA, pubC, nil)
	require.NoError(t, err)
	assert.NotEqual(t, keyAB, keyAC)
}
