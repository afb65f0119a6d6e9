package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"advertisement-api/internal/domain"
	"advertisement-api/internal/service"
)

// stubAuthService authenticates a single known token
type stubAuthService struct {
	token  string
	claims *domain.Claims
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, error) {
	return "", service.ErrInvalidCredentials
}

func (s *stubAuthService) Authenticate(ctx context.Context, tokenString string) (*domain.Claims, error) {
	if tokenString == s.token {
		return s.claims, nil
	}
	return nil, service.ErrInvalidToken
}

func newAuthTestRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/probe", mw, func(c *gin.Context) {
		actor := Actor(c)
		if actor == nil {
			c.JSON(http.StatusOK, gin.H{"actor": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"actor": actor.Username})
	})
	return router
}

func probe(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	auth := &stubAuthService{
		token:  "valid-token",
		claims: &domain.Claims{Username: "alice", UserID: 5, Role: domain.RoleUser},
	}
	router := newAuthTestRouter(RequireAuth(auth))

	tests := []struct {
		name          string
		authorization string
		wantStatus    int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer scheme", "Basic abc123", http.StatusUnauthorized},
		{"empty bearer token", "Bearer ", http.StatusUnauthorized},
		{"invalid token", "Bearer garbage", http.StatusUnauthorized},
		{"valid token", "Bearer valid-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := probe(router, tt.authorization)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	auth := &stubAuthService{
		token:  "valid-token",
		claims: &domain.Claims{Username: "alice", UserID: 5, Role: domain.RoleUser},
	}
	router := newAuthTestRouter(OptionalAuth(auth))

	t.Run("anonymous request proceeds", func(t *testing.T) {
		w := probe(router, "")
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("invalid token proceeds anonymously", func(t *testing.T) {
		w := probe(router, "Bearer garbage")
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("valid token resolves the actor", func(t *testing.T) {
		w := probe(router, "Bearer valid-token")
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
		}
		if body := w.Body.String(); body != `{"actor":"alice"}` {
			t.Errorf("body = %s", body)
		}
	})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/probe", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("generates an id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Header().Get(RequestIDHeader) == "" {
			t.Error("no request id header set")
		}
	})

	t.Run("reuses the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(RequestIDHeader, "caller-id")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if got := w.Header().Get(RequestIDHeader); got != "caller-id" {
			t.Errorf("request id = %q, want caller-id", got)
		}
	})
}
