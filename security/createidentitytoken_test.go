package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "IxrAjDoa2FqElO7IhrSrUJELhUckePEPVpaePlS/Xaw="

func TestIdentityTokenRoundTrip(t *testing.T) {
	identity := &Identity{
		ID:    "u-1",
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  "admin",
	}

	token, err := CreateIdentityToken(identity, testSecret, 3600)
	require.NoError(t, err)

	claims, err := ParseIdentityToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, *identity, claims.Identity)
	assert.Equal(t, "securityscan", claims.Issuer)
}

func TestParseIdentityTokenWrongSecret(t *testing.T) {
	token, err := CreateIdentityToken(&Identity{ID: "u-1", Role: "admin"}, testSecret, 3600)
	require.NoError(t, err)

	_, err = ParseIdentityToken(token, "c29tZSBvdGhlciBzZWNyZXQgdmFsdWUgaGVyZSE=")
	assert.Error(t, err)
}

func TestParseIdentityTokenExpired(t *testing.T) {
	token, err := CreateIdentityToken(&Identity{ID: "u-1", Role: "admin"}, testSecret, -10)
	require.NoError(t, err)

	_, err = ParseIdentityToken(token, testSecret)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-passw0rd")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-passw0rd", hash)

	assert.True(t, CheckPassword(hash, "s3cret-passw0rd"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestNewResetTokenIsUnique(t *testing.T) {
	a, err := NewResetToken()
	require.NoError(t, err)
	b, err := NewResetToken()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
