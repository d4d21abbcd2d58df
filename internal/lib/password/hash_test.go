package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHashAndCompare(t *testing.T) {
	hash, err := GetHash("Sup3rSecret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Sup3rSecret", hash)

	assert.NoError(t, CompareHash(hash, "Sup3rSecret"))
	assert.Error(t, CompareHash(hash, "wrong-password"))
}

func TestCompareHash_InvalidHash(t *testing.T) {
	assert.Error(t, CompareHash("not-a-bcrypt-hash", "whatever"))
}
