package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	digest, err := Hash("longpass1")
	require.NoError(t, err)
	assert.NotEqual(t, "longpass1", digest)

	assert.True(t, Verify("longpass1", digest))
	assert.False(t, Verify("longpass2", digest))
	assert.False(t, Verify("", digest))
}

func TestHashIsSalted(t *testing.T) {
	t.Parallel()

	first, err := Hash("same-password")
	require.NoError(t, err)
	second, err := Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, Verify("same-password", first))
	assert.True(t, Verify("same-password", second))
}

func TestHashEmptyPassword(t *testing.T) {
	t.Parallel()

	_, err := Hash("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}
