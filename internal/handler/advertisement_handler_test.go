package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"advertisement-api/internal/domain"
	"advertisement-api/internal/dto"
	"advertisement-api/internal/service"
)

// stubAdvertisementService returns canned outcomes per listing id
type stubAdvertisementService struct {
	errByID map[int64]error
}

func (s *stubAdvertisementService) ad(id int64) *domain.Advertisement {
	return &domain.Advertisement{
		ID:        id,
		Title:     "Bicycle",
		Price:     100,
		OwnerID:   5,
		CreatedAt: time.Now(),
	}
}

func (s *stubAdvertisementService) Create(ctx context.Context, actor *domain.Claims, req *dto.CreateAdvertisementRequest) (*domain.Advertisement, error) {
	return s.ad(1), nil
}

func (s *stubAdvertisementService) Get(ctx context.Context, id int64) (*domain.Advertisement, error) {
	if err := s.errByID[id]; err != nil {
		return nil, err
	}
	return s.ad(id), nil
}

func (s *stubAdvertisementService) List(ctx context.Context, search string, offset, limit int) ([]*domain.Advertisement, error) {
	return []*domain.Advertisement{s.ad(1)}, nil
}

func (s *stubAdvertisementService) Update(ctx context.Context, actor *domain.Claims, id int64, patch *domain.AdvertisementPatch) (*domain.Advertisement, error) {
	if err := s.errByID[id]; err != nil {
		return nil, err
	}
	return s.ad(id), nil
}

func (s *stubAdvertisementService) Delete(ctx context.Context, actor *domain.Claims, id int64) error {
	return s.errByID[id]
}

func newAdTestRouter(svc service.AdvertisementService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAdvertisementHandler(svc)
	router.GET("/advertisement/:id", h.Get)
	router.DELETE("/advertisement/:id", h.Delete)
	return router
}

func TestAdvertisementHandler_ErrorMapping(t *testing.T) {
	svc := &stubAdvertisementService{
		errByID: map[int64]error{
			2: service.ErrAdNotFound,
			3: service.ErrPermissionDenied,
		},
	}
	router := newAdTestRouter(svc)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"existing listing", http.MethodGet, "/advertisement/1", http.StatusOK},
		{"unknown listing", http.MethodGet, "/advertisement/2", http.StatusNotFound},
		{"malformed id", http.MethodGet, "/advertisement/abc", http.StatusBadRequest},
		{"delete success is no content", http.MethodDelete, "/advertisement/1", http.StatusNoContent},
		{"delete unknown listing", http.MethodDelete, "/advertisement/2", http.StatusNotFound},
		{"delete without ownership", http.MethodDelete, "/advertisement/3", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
