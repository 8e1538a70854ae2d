package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vin0san/mini-twitter/apperr"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssueAndVerify(t *testing.T) {
	tokens := NewTokenService("test-secret", 30*time.Minute)

	token, err := tokens.Issue(42)
	require.NoError(t, err)

	id, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id.AccountID)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tokens := NewTokenService("test-secret", time.Minute).WithClock(fixedClock(start))

	token, err := tokens.Issue(1)
	require.NoError(t, err)

	_, err = tokens.WithClock(fixedClock(start.Add(2 * time.Minute))).Verify(token)
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(err))
	assert.Equal(t, "token has expired", apperr.ReasonOf(err))
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	token, err := NewTokenService("other-secret", time.Minute).Issue(1)
	require.NoError(t, err)

	_, err = NewTokenService("test-secret", time.Minute).Verify(token)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
	assert.Equal(t, "invalid token signature", apperr.ReasonOf(err))
}

func TestVerifyRejectsMalformedTokens(t *testing.T) {
	secret := []byte("test-secret")
	tokens := NewTokenService(string(secret), time.Minute)
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	sign := func(claims jwt.Claims, method jwt.SigningMethod) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(secret)
		require.NoError(t, err)
		return s
	}

	cases := map[string]string{
		"garbage":         "not-a-token",
		"no expiry":       sign(jwt.RegisteredClaims{Subject: "1"}, jwt.SigningMethodHS256),
		"non numeric sub": sign(jwt.RegisteredClaims{Subject: "alice", ExpiresAt: exp}, jwt.SigningMethodHS256),
		"missing sub":     sign(jwt.RegisteredClaims{ExpiresAt: exp}, jwt.SigningMethodHS256),
		"unexpected alg":  sign(jwt.RegisteredClaims{Subject: "1", ExpiresAt: exp}, jwt.SigningMethodHS512),
		"truncated":       truncate(sign(jwt.RegisteredClaims{Subject: "1", ExpiresAt: exp}, jwt.SigningMethodHS256)),
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tokens.Verify(token)
			assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
		})
	}
}

func truncate(token string) string {
	return token[:len(token)-2]
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, "hunter2", hash)
	assert.True(t, CheckPassword(hash, "hunter2"))
	assert.False(t, CheckPassword(hash, "hunter3"))
}
