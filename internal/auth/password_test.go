package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("correct horse", hash))
	assert.False(t, VerifyPassword("correct horsE", hash))
	assert.False(t, VerifyPassword("", hash))
}

func TestHashIsSalted(t *testing.T) {
	first, err := HashPassword("same input")
	require.NoError(t, err)
	second, err := HashPassword("same input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("same input", first))
	assert.True(t, VerifyPassword("same input", second))
}

func TestVerifyMalformedHash(t *testing.T) {
	assert.False(t, VerifyPassword("anything", "not-a-bcrypt-hash"))
	assert.False(t, VerifyPassword("anything", ""))
}
