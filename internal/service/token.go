package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"advertisement-api/internal/domain"
)

// DefaultTokenTTL is how long an issued token stays valid unless
// configured otherwise.
const DefaultTokenTTL = 48 * time.Hour

// ErrMissingSecret is returned when a TokenService is constructed
// without a signing secret. There is no fallback key in any environment.
var ErrMissingSecret = errors.New("token signing secret is not configured")

// TokenServiceConfig holds configuration for TokenService
type TokenServiceConfig struct {
	Secret string
	TTL    time.Duration
}

// TokenService issues and verifies signed, self-expiring access tokens.
// Tokens are tamper-evident but not encrypted; once issued they stay
// valid until natural expiry, there is no revocation.
type TokenService interface {
	// Issue creates a signed token for the user with the configured TTL
	Issue(user *domain.User) (string, error)
	// IssueWithTTL creates a signed token with an explicit TTL
	IssueWithTTL(user *domain.User, ttl time.Duration) (string, error)
	// Verify validates signature and expiry and extracts the claims
	Verify(tokenString string) (*domain.Claims, error)
}

type tokenClaims struct {
	UserID int64  `json:"user_id,omitempty"`
	Group  string `json:"group,omitempty"`
	jwt.RegisteredClaims
}

type tokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService. Fails when no secret is
// configured; callers must treat that as fatal at startup.
func NewTokenService(cfg *TokenServiceConfig) (TokenService, error) {
	if cfg == nil || cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	return &tokenService{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
	}, nil
}

// Issue creates a signed token for the user with the configured TTL
func (s *tokenService) Issue(user *domain.User) (string, error) {
	return s.IssueWithTTL(user, s.ttl)
}

// IssueWithTTL creates a signed token with an explicit TTL
func (s *tokenService) IssueWithTTL(user *domain.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: user.ID,
		Group:  string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates signature and expiry and extracts the claims.
// Signature mismatch, malformed tokens and missing required claims all
// collapse to ErrInvalidToken; an expired token yields ErrTokenExpired.
func (s *tokenService) Verify(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	// Subject and user id are structural requirements
	if claims.Subject == "" || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}

	// Role is optional but unrecognized values are rejected rather than
	// trusted downstream
	role := domain.Role(claims.Group)
	if claims.Group != "" && !role.Valid() {
		return nil, ErrInvalidToken
	}

	return &domain.Claims{
		Username: claims.Subject,
		UserID:   claims.UserID,
		Role:     role,
	}, nil
}
