package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-jwt-secret")

func TestSign_RoundTrip(t *testing.T) {
	t.Parallel()

	token, err := Sign("a@x.com", testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := AccessClaimsFromToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "a@x.com", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestAccessClaimsFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := Sign("a@x.com", testSecret)
	require.NoError(t, err)

	claims, err := AccessClaimsFromToken(token, []byte("other-secret"))
	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestAccessClaimsFromToken_Expired(t *testing.T) {
	t.Parallel()

	token, err := SignWithExpiry("a@x.com", testSecret, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	claims, err := AccessClaimsFromToken(token, testSecret)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestAccessClaimsFromToken_Tampered(t *testing.T) {
	t.Parallel()

	token, err := Sign("a@x.com", testSecret)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	claims, err := AccessClaimsFromToken(tampered, testSecret)
	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestAccessClaimsFromToken_Garbage(t *testing.T) {
	t.Parallel()

	claims, err := AccessClaimsFromToken("not-a-jwt", testSecret)
	require.Error(t, err)
	assert.Nil(t, claims)
}
