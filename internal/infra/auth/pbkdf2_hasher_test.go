package auth

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPBKDF2Hasher_HashAndCheck(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	salt, hash, err := hasher.Hash("secreto123")
	require.NoError(t, err)
	require.NotEmpty(t, salt)
	require.NotEmpty(t, hash)

	rawSalt, err := hex.DecodeString(salt)
	require.NoError(t, err)
	assert.Len(t, rawSalt, 16)

	assert.True(t, hasher.Check("secreto123", salt, hash))
	assert.False(t, hasher.Check("otroSecreto", salt, hash))
}

func TestPBKDF2Hasher_SaltIsUnique(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	salt1, hash1, err := hasher.Hash("secreto123")
	require.NoError(t, err)
	salt2, hash2, err := hasher.Hash("secreto123")
	require.NoError(t, err)

	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, hash1, hash2)
}

func TestPBKDF2Hasher_RejectsMalformedStoredValues(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	assert.False(t, hasher.Check("secreto123", "not-hex", "abcd"))
	assert.False(t, hasher.Check("secreto123", "abcd", "not-hex"))
}
