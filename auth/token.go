package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vin0san/mini-twitter/apperr"
)

// Claims is the fixed token payload: the subject is the account id.
type Claims struct {
	jwt.RegisteredClaims
}

// Identity is the verified caller of a request.
type Identity struct {
	AccountID uint
}

type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock returns a copy of the service that reads time from now.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	c := *s
	c.now = now
	return &c
}

// Issue signs a token for accountID that expires after the configured ttl.
func (s *TokenService) Issue(accountID uint) (string, error) {
	issuedAt := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(accountID), 10),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the identity in the token.
func (s *TokenService) Verify(tokenString string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Identity{}, apperr.Wrap(err, apperr.Unauthenticated, "token has expired")
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Identity{}, apperr.Wrap(err, apperr.Unauthenticated, "invalid token signature")
		default:
			return Identity{}, apperr.Wrap(err, apperr.Unauthenticated, "malformed token")
		}
	}
	if !token.Valid {
		return Identity{}, apperr.UnauthenticatedError("invalid token")
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return Identity{}, apperr.UnauthenticatedError("token subject is not an account id")
	}
	return Identity{AccountID: uint(id)}, nil
}
