package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	// 哈希內含隨機鹽，不得等於明文
	require.NotEqual(t, []byte("secret123"), hash)

	require.NoError(t, ComparePassword(hash, "secret123"))
	require.Error(t, ComparePassword(hash, "wrong"))
}

func TestHashPasswordSaltedPerCall(t *testing.T) {
	h1, err := HashPassword("secret123")
	require.NoError(t, err)
	h2, err := HashPassword("secret123")
	require.NoError(t, err)
	// 每次帶入隨機鹽，兩次結果不同，但都能驗證同一密碼
	require.NotEqual(t, h1, h2)
	require.NoError(t, ComparePassword(h1, "secret123"))
	require.NoError(t, ComparePassword(h2, "secret123"))
}

func TestHashPasswordRoundTripAsBytes(t *testing.T) {
	// 哈希以位元組存放再取回，逐位元相同即可通過驗證
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	stored := make([]byte, len(hash))
	copy(stored, hash)
	require.NoError(t, ComparePassword(stored, "secret123"))
}

func TestHashPasswordError(t *testing.T) {
	orig := bcryptGenerateFromPassword
	defer func() { bcryptGenerateFromPassword = orig }()
	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	_, err := HashPassword("x")
	require.Error(t, err)
}
