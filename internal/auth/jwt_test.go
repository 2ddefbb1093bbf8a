package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestGenerateToken(t *testing.T) {
	secret := "test-secret-key"
	username := "alice"

	token, jti, err := GenerateToken(secret, username, time.Hour)

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, jti)
}

func TestGenerateToken_UniqueJTIs(t *testing.T) {
	secret := "test-secret-key"

	token1, jti1, err1 := GenerateToken(secret, "alice", time.Hour)
	token2, jti2, err2 := GenerateToken(secret, "alice", time.Hour)

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.NotEqual(t, jti1, jti2)
	assert.NotEqual(t, token1, token2)
}

func TestParseToken(t *testing.T) {
	secret := "test-secret-key"
	username := "alice"

	t.Run("valid token", func(t *testing.T) {
		token, jti, err := GenerateToken(secret, username, time.Hour)
		assert.NoError(t, err)

		claims, err := ParseToken(secret, token)
		assert.NoError(t, err)
		assert.NotNil(t, claims)
		assert.Equal(t, username, claims.Sub)
		assert.Equal(t, jti, claims.ID)
	})

	t.Run("invalid signature", func(t *testing.T) {
		token, _, err := GenerateToken("wrong-secret", username, time.Hour)
		assert.NoError(t, err)

		claims, err := ParseToken(secret, token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("expired token", func(t *testing.T) {
		c := Claims{
			Sub: username,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			},
		}
		tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
		token, err := tkn.SignedString([]byte(secret))
		assert.NoError(t, err)

		claims, err := ParseToken(secret, token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("malformed token", func(t *testing.T) {
		claims, err := ParseToken(secret, "not.a.valid.token")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}

func TestVerifier(t *testing.T) {
	secret := "test-secret-key"
	verify := Verifier(secret)

	t.Run("returns issuing username", func(t *testing.T) {
		token, _, err := GenerateToken(secret, "alice", time.Hour)
		assert.NoError(t, err)

		username, err := verify(token)
		assert.NoError(t, err)
		assert.Equal(t, "alice", username)
	})

	t.Run("rejects bad token", func(t *testing.T) {
		_, err := verify("garbage")
		assert.Error(t, err)
	})
}
