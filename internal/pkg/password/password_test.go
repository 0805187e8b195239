package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndMatch(t *testing.T) {
	hash, err := Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	ok, err := Matches(hash, "secret123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Matches(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMatches_MalformedHash(t *testing.T) {
	_, err := Matches("not-a-hash", "secret123")
	assert.Error(t, err)
}
