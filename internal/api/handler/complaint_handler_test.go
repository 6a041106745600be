package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/civicworks/complaint-system/internal/core/domain"
	"github.com/civicworks/complaint-system/internal/core/ports"
)

type stubComplaintService struct {
	createFn func(ctx context.Context, input ports.ComplaintInput) (*domain.Complaint, error)
	getFn    func(ctx context.Context, id uuid.UUID) (*domain.Complaint, error)
	listFn   func(ctx context.Context, filter ports.ComplaintListFilter) ([]*domain.Complaint, error)
	updateFn func(ctx context.Context, id uuid.UUID, input ports.ComplaintInput) (*domain.Complaint, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (s *stubComplaintService) Create(ctx context.Context, input ports.ComplaintInput) (*domain.Complaint, error) {
	return s.createFn(ctx, input)
}

func (s *stubComplaintService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Complaint, error) {
	return s.getFn(ctx, id)
}

func (s *stubComplaintService) List(ctx context.Context, filter ports.ComplaintListFilter) ([]*domain.Complaint, error) {
	return s.listFn(ctx, filter)
}

func (s *stubComplaintService) Update(ctx context.Context, id uuid.UUID, input ports.ComplaintInput) (*domain.Complaint, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubComplaintService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

// An aspiration with only aspiration text is valid; title and description
// are optional.
func TestComplaintHandler_Create_AspirationWithoutTitle(t *testing.T) {
	userID := uuid.New()
	categoryID := uuid.New()
	handler := NewComplaintHandler(&stubComplaintService{
		createFn: func(_ context.Context, input ports.ComplaintInput) (*domain.Complaint, error) {
			if input.Type != domain.TypeAspiration {
				t.Fatalf("unexpected type: %s", input.Type)
			}
			if input.Title != "" || input.Description != "" {
				t.Fatalf("expected empty title and description, got %q / %q", input.Title, input.Description)
			}
			if input.Aspiration != "more bike lanes downtown" {
				t.Fatalf("unexpected aspiration: %q", input.Aspiration)
			}
			return &domain.Complaint{
				ID:         uuid.New(),
				Type:       input.Type,
				Status:     domain.StatusPending,
				Aspiration: input.Aspiration,
				UserID:     input.UserID,
				CategoryID: input.CategoryID,
			}, nil
		},
	})

	body := fmt.Sprintf(`{
		"type": "ASPIRATION",
		"visibility": "PUBLIC",
		"date": %q,
		"location": "Jakarta",
		"aspiration": "more bike lanes downtown",
		"userId": %q,
		"categoryId": %q
	}`, time.Now().UTC().Add(-time.Hour).Format(time.RFC3339), userID, categoryID)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/complaints", body)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestComplaintHandler_Create_MissingRequiredFields(t *testing.T) {
	handler := NewComplaintHandler(&stubComplaintService{
		createFn: func(context.Context, ports.ComplaintInput) (*domain.Complaint, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/complaints", `{"title":"Pothole on 5th"}`)

	err := handler.Create(c)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, field := range []string{"type", "visibility", "date", "location", "userId", "categoryId"} {
		if len(verr.Fields[field]) == 0 {
			t.Fatalf("expected a %s error, got %v", field, verr.Fields)
		}
	}
	if len(verr.Fields["title"]) != 0 || len(verr.Fields["description"]) != 0 {
		t.Fatalf("title and description must be optional, got %v", verr.Fields)
	}
}

func TestComplaintHandler_List_QueryFilters(t *testing.T) {
	userID := uuid.New()
	handler := NewComplaintHandler(&stubComplaintService{
		listFn: func(_ context.Context, filter ports.ComplaintListFilter) ([]*domain.Complaint, error) {
			if filter.UserID == nil || *filter.UserID != userID {
				t.Fatalf("user filter not applied: %v", filter.UserID)
			}
			if filter.Status == nil || *filter.Status != domain.StatusPending {
				t.Fatalf("status filter not applied: %v", filter.Status)
			}
			if filter.CategoryID != nil {
				t.Fatalf("unparseable category id must be ignored, got %v", filter.CategoryID)
			}
			return []*domain.Complaint{}, nil
		},
	})

	path := "/api/v1/complaints?userId=" + userID.String() + "&status=PENDING&categoryId=garbage"
	c, rec := newTestContext(t, http.MethodGet, path, "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
