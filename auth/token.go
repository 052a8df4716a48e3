package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"inventory-api/config"
	"inventory-api/models"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenGrant is the token block returned to clients after login or register.
type TokenGrant struct {
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	AccessToken string `json:"access_token"`
}

// Claims is what a verified bearer token tells us about the caller.
type Claims struct {
	UserID  uint
	Email   string
	TokenID string
}

type TokenIssuer interface {
	Issue(ctx context.Context, user models.User, password string) (TokenGrant, error)
}

type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

//go:generate mockgen -destination=../mocks/mock_provider.go -package=mocks inventory-api/auth Provider

type Provider interface {
	TokenIssuer
	TokenVerifier
}

// NewProvider picks the password grant in production and local HS256 tokens elsewhere.
func NewProvider() (Provider, error) {
	if config.IsProduction() {
		pem, err := os.ReadFile(config.OAuthPublicKey)
		if err != nil {
			return nil, fmt.Errorf("read oauth public key: %w", err)
		}
		return NewPasswordGrantIssuer(config.OAuthTokenURL, config.OAuthClientID, config.OAuthClientSecret, pem)
	}
	ttl := time.Duration(config.JWTExpiration) * time.Second
	return NewLocalIssuer([]byte(config.JWTSecret), ttl), nil
}
