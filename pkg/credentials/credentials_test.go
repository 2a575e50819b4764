package credentials

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hashed, err := HashPassword("longpassword1")
	require.NoError(t, err)
	assert.NotEqual(t, "longpassword1", hashed)

	assert.True(t, ComparePassword(hashed, "longpassword1"))
	assert.False(t, ComparePassword(hashed, "wrongpassword"))
}

func TestRecoveryKeyRoundTrip(t *testing.T) {
	hashed, err := HashRecoveryKey("my-recovery-key")
	require.NoError(t, err)
	assert.NotEqual(t, "my-recovery-key", hashed)

	assert.True(t, CompareRecoveryKey(hashed, "my-recovery-key"))
	assert.False(t, CompareRecoveryKey(hashed, "another-key"))
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	// Refresh tokens are JWTs, far longer than bcrypt could take.
	rawToken := strings.Repeat("eyJhbGciOiJIUzI1NiJ9.", 10)

	hashed, err := HashRefreshToken(rawToken)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hashed, "$argon2id$"))

	ok, err := CompareRefreshToken(hashed, rawToken)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CompareRefreshToken(hashed, rawToken+"tampered")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRefreshTokenHashesAreSalted(t *testing.T) {
	first, err := HashRefreshToken("same-token")
	require.NoError(t, err)
	second, err := HashRefreshToken("same-token")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCompareRefreshTokenMalformedHash(t *testing.T) {
	_, err := CompareRefreshToken("not-a-phc-string", "token")
	assert.Error(t, err)

	_, err = CompareRefreshToken("$bcrypt$v=19$m=1,t=1,p=1$aaaa$bbbb", "token")
	assert.Error(t, err)
}
