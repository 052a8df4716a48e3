package auth

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"inventory-api/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// PasswordGrantIssuer exchanges user credentials for a token at an OAuth2 server
// and verifies the RS256 tokens that server signs.
type PasswordGrantIssuer struct {
	tokenURL     string
	clientID     string
	clientSecret string
	publicKey    *rsa.PublicKey
	timeout      time.Duration
}

func NewPasswordGrantIssuer(tokenURL, clientID, clientSecret string, publicKeyPEM []byte) (*PasswordGrantIssuer, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("parse oauth public key: %w", err)
	}
	return &PasswordGrantIssuer{
		tokenURL:     tokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		publicKey:    key,
		timeout:      10 * time.Second,
	}, nil
}

func (p *PasswordGrantIssuer) Issue(_ context.Context, user models.User, password string) (TokenGrant, error) {
	args := fiber.AcquireArgs()
	defer fiber.ReleaseArgs(args)
	args.Set("grant_type", "password")
	args.Set("client_id", p.clientID)
	args.Set("client_secret", p.clientSecret)
	args.Set("username", user.Email)
	args.Set("password", password)
	args.Set("scope", "*")

	agent := fiber.Post(p.tokenURL).Form(args).Timeout(p.timeout)
	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return TokenGrant{}, fmt.Errorf("request token: %w", errors.Join(errs...))
	}
	if code != fiber.StatusOK {
		return TokenGrant{}, fmt.Errorf("token endpoint returned %d: %s", code, body)
	}

	var grant TokenGrant
	if err := json.Unmarshal(body, &grant); err != nil {
		return TokenGrant{}, fmt.Errorf("decode token response: %w", err)
	}
	if grant.AccessToken == "" {
		return TokenGrant{}, errors.New("token endpoint returned no access_token")
	}
	return grant, nil
}

func (p *PasswordGrantIssuer) Verify(token string) (*Claims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return p.publicKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claimsFromSubject(claims.Subject, "", claims.ID)
}
