package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/civicworks/complaint-system/internal/core/domain"
	"github.com/civicworks/complaint-system/internal/core/ports"
)

func newAgencyService(agencies *stubAgencyRepo, users *stubUserRepo) *AgencyService {
	return NewAgencyService(agencies, users, stubTxManager{}, zerolog.Nop())
}

func agencyInput() ports.AgencyInput {
	return ports.AgencyInput{
		Name:    "Sanitation Dept",
		Address: "1 Plaza",
		Phone:   "555-0100",
		User: ports.UserInput{
			Username: "sanitation",
			Email:    "ops@sanitation.example",
			Password: "supersecret",
		},
	}
}

func TestAgencyService_Create(t *testing.T) {
	agencies := newStubAgencyRepo()
	users := newStubUserRepo()
	svc := newAgencyService(agencies, users)

	agency, err := svc.Create(context.Background(), agencyInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if agency.User.Role != domain.RoleAgency {
		t.Fatalf("expected owned user role AGENCY, got %s", agency.User.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(agency.User.PasswordHash), []byte("supersecret")); err != nil {
		t.Fatalf("owned user password not hashed correctly: %v", err)
	}

	stored, err := users.FindByID(context.Background(), agency.User.ID)
	if err != nil {
		t.Fatalf("owned user not persisted: %v", err)
	}
	if stored.Username != "sanitation" {
		t.Fatalf("unexpected owned username: %s", stored.Username)
	}
}

func TestAgencyService_Create_DuplicatesAggregated(t *testing.T) {
	agencies := newStubAgencyRepo()
	users := newStubUserRepo()
	svc := newAgencyService(agencies, users)

	if _, err := svc.Create(context.Background(), agencyInput()); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}

	_, err := svc.Create(context.Background(), agencyInput())

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, field := range []string{"phone", "username", "email"} {
		if len(verr.Fields[field]) == 0 {
			t.Fatalf("expected a %s error, got %v", field, verr.Fields)
		}
	}
}

func TestAgencyService_Update_OwnValuesDontCollide(t *testing.T) {
	agencies := newStubAgencyRepo()
	users := newStubUserRepo()
	svc := newAgencyService(agencies, users)

	agency, err := svc.Create(context.Background(), agencyInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	input := agencyInput()
	input.Address = "2 Plaza"
	input.User.Password = ""

	updated, err := svc.Update(context.Background(), agency.ID, input)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Address != "2 Plaza" {
		t.Fatalf("address not updated: %s", updated.Address)
	}
	if updated.User.PasswordHash != agency.User.PasswordHash {
		t.Fatalf("password hash should be untouched when no password is given")
	}
}

func TestAgencyService_Delete_RemovesOwnedUser(t *testing.T) {
	agencies := newStubAgencyRepo()
	users := newStubUserRepo()
	svc := newAgencyService(agencies, users)

	agency, err := svc.Create(context.Background(), agencyInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), agency.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := agencies.FindByID(context.Background(), agency.ID); err == nil {
		t.Fatalf("expected agency gone")
	}
	if _, err := users.FindByID(context.Background(), agency.User.ID); err == nil {
		t.Fatalf("expected owned user gone")
	}
}

func TestAgencyService_Delete_NotFound(t *testing.T) {
	svc := newAgencyService(newStubAgencyRepo(), newStubUserRepo())

	err := svc.Delete(context.Background(), uuid.New())

	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
