package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/civicworks/complaint-system/internal/core/domain"
	"github.com/civicworks/complaint-system/internal/core/ports"
)

type stubCategoryService struct {
	createFn func(ctx context.Context, input ports.CategoryInput) (*domain.Category, error)
	getFn    func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	listFn   func(ctx context.Context) ([]*domain.Category, error)
	updateFn func(ctx context.Context, id uuid.UUID, input ports.CategoryInput) (*domain.Category, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (s *stubCategoryService) Create(ctx context.Context, input ports.CategoryInput) (*domain.Category, error) {
	return s.createFn(ctx, input)
}

func (s *stubCategoryService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	return s.getFn(ctx, id)
}

func (s *stubCategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.listFn(ctx)
}

func (s *stubCategoryService) Update(ctx context.Context, id uuid.UUID, input ports.CategoryInput) (*domain.Category, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubCategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func TestCategoryHandler_Create_LocationHeader(t *testing.T) {
	id := uuid.New()
	handler := NewCategoryHandler(&stubCategoryService{
		createFn: func(_ context.Context, input ports.CategoryInput) (*domain.Category, error) {
			return &domain.Category{ID: id, Name: input.Name, Description: input.Description}, nil
		},
	})

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/categories",
		`{"name":"Roads","description":"potholes and signage"}`)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderLocation); got != "/api/v1/categories/"+id.String() {
		t.Fatalf("unexpected Location header: %s", got)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["code"] != float64(http.StatusCreated) {
		t.Fatalf("unexpected envelope code: %v", resp["code"])
	}
	data, ok := resp["data"].(map[string]any)
	if !ok || data["name"] != "Roads" {
		t.Fatalf("unexpected payload: %v", resp)
	}
}

func TestCategoryHandler_GetByID_BadUUID(t *testing.T) {
	handler := NewCategoryHandler(&stubCategoryService{
		getFn: func(context.Context, uuid.UUID) (*domain.Category, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	})

	c, _ := newTestContext(t, http.MethodGet, "/api/v1/categories/nope", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.GetByID(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestCategoryHandler_Delete_NoContent(t *testing.T) {
	id := uuid.New()
	handler := NewCategoryHandler(&stubCategoryService{
		deleteFn: func(_ context.Context, got uuid.UUID) error {
			if got != id {
				t.Fatalf("unexpected id: %s", got)
			}
			return nil
		},
	})

	c, rec := newTestContext(t, http.MethodDelete, "/api/v1/categories/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestCategoryHandler_Delete_NotFoundPassThrough(t *testing.T) {
	id := uuid.New()
	handler := NewCategoryHandler(&stubCategoryService{
		deleteFn: func(context.Context, uuid.UUID) error {
			return domain.NewNotFoundError("category", id.String())
		},
	})

	c, _ := newTestContext(t, http.MethodDelete, "/api/v1/categories/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	err := handler.Delete(c)
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError passed through, got %v", err)
	}
}
