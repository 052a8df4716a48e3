package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"inventory-api/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const localIssuerName = "inventory-api"

type localClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// LocalIssuer signs and verifies HS256 tokens with a shared secret.
type LocalIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewLocalIssuer(secret []byte, ttl time.Duration) *LocalIssuer {
	return &LocalIssuer{secret: secret, ttl: ttl, now: time.Now}
}

func (l *LocalIssuer) Issue(_ context.Context, user models.User, _ string) (TokenGrant, error) {
	now := l.now()
	claims := localClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    localIssuerName,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(l.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(l.secret)
	if err != nil {
		return TokenGrant{}, fmt.Errorf("sign token: %w", err)
	}
	return TokenGrant{
		TokenType:   "Bearer",
		ExpiresIn:   int64(l.ttl.Seconds()),
		AccessToken: signed,
	}, nil
}

func (l *LocalIssuer) Verify(token string) (*Claims, error) {
	claims := &localClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return l.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(localIssuerName),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(l.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claimsFromSubject(claims.Subject, claims.Email, claims.ID)
}

func claimsFromSubject(subject, email, tokenID string) (*Claims, error) {
	id, err := strconv.ParseUint(subject, 10, 64)
	if err != nil || id == 0 {
		return nil, fmt.Errorf("%w: bad subject %q", ErrInvalidToken, subject)
	}
	return &Claims{UserID: uint(id), Email: email, TokenID: tokenID}, nil
}
