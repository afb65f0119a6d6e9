package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"advertisement-api/internal/domain"
)

func newTestTokenService(t *testing.T, secret string) TokenService {
	t.Helper()
	svc, err := NewTokenService(&TokenServiceConfig{Secret: secret})
	if err != nil {
		t.Fatalf("NewTokenService() error = %v", err)
	}
	return svc
}

func testUser() *domain.User {
	return &domain.User{
		ID:       5,
		Username: "alice",
		Role:     domain.RoleUser,
		IsActive: true,
	}
}

func TestNewTokenService_MissingSecret(t *testing.T) {
	if _, err := NewTokenService(&TokenServiceConfig{}); err != ErrMissingSecret {
		t.Errorf("NewTokenService() error = %v, want %v", err, ErrMissingSecret)
	}
	if _, err := NewTokenService(nil); err != ErrMissingSecret {
		t.Errorf("NewTokenService(nil) error = %v, want %v", err, ErrMissingSecret)
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t, "test-secret-key")

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.Username != "alice" {
		t.Errorf("Username = %q, want alice", claims.Username)
	}
	if claims.UserID != 5 {
		t.Errorf("UserID = %d, want 5", claims.UserID)
	}
	if claims.Role != domain.RoleUser {
		t.Errorf("Role = %q, want %q", claims.Role, domain.RoleUser)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := newTestTokenService(t, "test-secret-key")

	token, err := svc.IssueWithTTL(testUser(), -1*time.Second)
	if err != nil {
		t.Fatalf("IssueWithTTL() error = %v", err)
	}

	if _, err := svc.Verify(token); err != ErrTokenExpired {
		t.Errorf("Verify() error = %v, want %v", err, ErrTokenExpired)
	}
}

func TestTokenService_Tampered(t *testing.T) {
	svc := newTestTokenService(t, "test-secret-key")

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	last := token[len(token)-1]
	replacement := byte('A')
	if last == replacement {
		replacement = 'B'
	}
	tampered := token[:len(token)-1] + string(replacement)

	if _, err := svc.Verify(tampered); err != ErrInvalidToken {
		t.Errorf("Verify(tampered) error = %v, want %v", err, ErrInvalidToken)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := newTestTokenService(t, "secret-one")
	verifier := newTestTokenService(t, "secret-two")

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := verifier.Verify(token); err != ErrInvalidToken {
		t.Errorf("Verify() error = %v, want %v", err, ErrInvalidToken)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := newTestTokenService(t, "test-secret-key")

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Verify(token); err != ErrInvalidToken {
			t.Errorf("Verify(%q) error = %v, want %v", token, err, ErrInvalidToken)
		}
	}
}

// signRaw builds a token with arbitrary claims for structural checks
func signRaw(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}
	return signed
}

func TestTokenService_StructuralClaims(t *testing.T) {
	const secret = "test-secret-key"
	svc := newTestTokenService(t, secret)
	exp := time.Now().Add(time.Hour).Unix()

	t.Run("missing subject", func(t *testing.T) {
		token := signRaw(t, secret, jwt.MapClaims{"user_id": 5, "group": "user", "exp": exp})
		if _, err := svc.Verify(token); err != ErrInvalidToken {
			t.Errorf("Verify() error = %v, want %v", err, ErrInvalidToken)
		}
	})

	t.Run("missing user id", func(t *testing.T) {
		token := signRaw(t, secret, jwt.MapClaims{"sub": "alice", "group": "user", "exp": exp})
		if _, err := svc.Verify(token); err != ErrInvalidToken {
			t.Errorf("Verify() error = %v, want %v", err, ErrInvalidToken)
		}
	})

	t.Run("missing role is allowed", func(t *testing.T) {
		token := signRaw(t, secret, jwt.MapClaims{"sub": "alice", "user_id": 5, "exp": exp})
		claims, err := svc.Verify(token)
		if err != nil {
			t.Fatalf("Verify() error = %v", err)
		}
		if claims.Role != "" {
			t.Errorf("Role = %q, want empty", claims.Role)
		}
	})

	t.Run("unrecognized role is rejected", func(t *testing.T) {
		token := signRaw(t, secret, jwt.MapClaims{"sub": "alice", "user_id": 5, "group": "superuser", "exp": exp})
		if _, err := svc.Verify(token); err != ErrInvalidToken {
			t.Errorf("Verify() error = %v, want %v", err, ErrInvalidToken)
		}
	})
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc, err := NewTokenService(&TokenServiceConfig{Secret: "test-secret-key"})
	if err != nil {
		t.Fatalf("NewTokenService() error = %v", err)
	}

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret-key"), nil
	})
	if err != nil {
		t.Fatalf("ParseWithClaims() error = %v", err)
	}

	claims := parsed.Claims.(*tokenClaims)
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < DefaultTokenTTL-time.Minute || ttl > DefaultTokenTTL {
		t.Errorf("expiry %v from now, want about %v", ttl, DefaultTokenTTL)
	}
}
