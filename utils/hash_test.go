package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	HashCost = bcrypt.MinCost
	t.Cleanup(func() { HashCost = bcrypt.DefaultCost })

	hash, err := HashPassword("secretpassword")
	require.NoError(t, err)
	assert.NotEqual(t, "secretpassword", hash)
	assert.True(t, CheckPassword(hash, "secretpassword"))
	assert.False(t, CheckPassword(hash, "wrongpassword"))
}

func TestResetCodeRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := ResetCode()
		require.NoError(t, err)
		require.Len(t, code, 5)
		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 10000)
		require.LessOrEqual(t, n, 99999)
	}
}
