package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/civicworks/complaint-system/internal/core/domain"
	"github.com/civicworks/complaint-system/internal/core/ports"
)

// In-memory fakes backing the service tests. Reads return clones so tests
// can't mutate stored state by accident.

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func cloneAgency(a *domain.Agency) *domain.Agency {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func cloneCategory(c *domain.Category) *domain.Category {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func cloneComplaint(c *domain.Complaint) *domain.Complaint {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

type stubUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domain.NewNotFoundError("user", id.String())
	}
	return cloneUser(user), nil
}

func (r *stubUserRepo) FindByUsernameOrEmail(_ context.Context, identifier string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == identifier || u.Email == identifier {
			return cloneUser(u), nil
		}
	}
	return nil, domain.NewNotFoundError("user", identifier)
}

func (r *stubUserRepo) List(_ context.Context, role *domain.Role) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if role != nil && u.Role != *role {
			continue
		}
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.NewNotFoundError("user", user.ID.String())
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return domain.NewNotFoundError("user", id.String())
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) ExistsByUsername(_ context.Context, username string, excludeID *uuid.UUID) (bool, error) {
	for _, u := range r.users {
		if excludeID != nil && u.ID == *excludeID {
			continue
		}
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	for _, u := range r.users {
		if excludeID != nil && u.ID == *excludeID {
			continue
		}
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type stubAgencyRepo struct {
	agencies map[uuid.UUID]*domain.Agency
}

func newStubAgencyRepo() *stubAgencyRepo {
	return &stubAgencyRepo{agencies: make(map[uuid.UUID]*domain.Agency)}
}

func (r *stubAgencyRepo) Create(_ context.Context, agency *domain.Agency) error {
	if agency.ID == uuid.Nil {
		agency.ID = uuid.New()
	}
	r.agencies[agency.ID] = cloneAgency(agency)
	return nil
}

func (r *stubAgencyRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Agency, error) {
	agency, ok := r.agencies[id]
	if !ok {
		return nil, domain.NewNotFoundError("agency", id.String())
	}
	return cloneAgency(agency), nil
}

func (r *stubAgencyRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*domain.Agency, error) {
	for _, a := range r.agencies {
		if a.User.ID == userID {
			return cloneAgency(a), nil
		}
	}
	return nil, domain.NewNotFoundError("agency", userID.String())
}

func (r *stubAgencyRepo) List(_ context.Context) ([]*domain.Agency, error) {
	var out []*domain.Agency
	for _, a := range r.agencies {
		out = append(out, cloneAgency(a))
	}
	return out, nil
}

func (r *stubAgencyRepo) Update(_ context.Context, agency *domain.Agency) error {
	if _, ok := r.agencies[agency.ID]; !ok {
		return domain.NewNotFoundError("agency", agency.ID.String())
	}
	r.agencies[agency.ID] = cloneAgency(agency)
	return nil
}

func (r *stubAgencyRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.agencies[id]; !ok {
		return domain.NewNotFoundError("agency", id.String())
	}
	delete(r.agencies, id)
	return nil
}

func (r *stubAgencyRepo) ExistsByPhone(_ context.Context, phone string, excludeID *uuid.UUID) (bool, error) {
	for _, a := range r.agencies {
		if excludeID != nil && a.ID == *excludeID {
			continue
		}
		if a.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

type stubCategoryRepo struct {
	categories map[uuid.UUID]*domain.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uuid.UUID]*domain.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, category *domain.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	r.categories[category.ID] = cloneCategory(category)
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, domain.NewNotFoundError("category", id.String())
	}
	return cloneCategory(category), nil
}

func (r *stubCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	var out []*domain.Category
	for _, c := range r.categories {
		out = append(out, cloneCategory(c))
	}
	return out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, category *domain.Category) error {
	if _, ok := r.categories[category.ID]; !ok {
		return domain.NewNotFoundError("category", category.ID.String())
	}
	r.categories[category.ID] = cloneCategory(category)
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.categories[id]; !ok {
		return domain.NewNotFoundError("category", id.String())
	}
	delete(r.categories, id)
	return nil
}

func (r *stubCategoryRepo) ExistsByName(_ context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	for _, c := range r.categories {
		if excludeID != nil && c.ID == *excludeID {
			continue
		}
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

type stubComplaintRepo struct {
	complaints map[uuid.UUID]*domain.Complaint
}

func newStubComplaintRepo() *stubComplaintRepo {
	return &stubComplaintRepo{complaints: make(map[uuid.UUID]*domain.Complaint)}
}

func (r *stubComplaintRepo) Create(_ context.Context, complaint *domain.Complaint) error {
	if complaint.ID == uuid.Nil {
		complaint.ID = uuid.New()
	}
	r.complaints[complaint.ID] = cloneComplaint(complaint)
	return nil
}

func (r *stubComplaintRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Complaint, error) {
	complaint, ok := r.complaints[id]
	if !ok {
		return nil, domain.NewNotFoundError("complaint", id.String())
	}
	return cloneComplaint(complaint), nil
}

func (r *stubComplaintRepo) List(_ context.Context, filter ports.ComplaintListFilter) ([]*domain.Complaint, error) {
	var out []*domain.Complaint
	for _, c := range r.complaints {
		if filter.UserID != nil && c.UserID != *filter.UserID {
			continue
		}
		if filter.CategoryID != nil && c.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.AgencyID != nil && (c.AgencyID == nil || *c.AgencyID != *filter.AgencyID) {
			continue
		}
		if filter.Status != nil && c.Status != *filter.Status {
			continue
		}
		if filter.Type != nil && c.Type != *filter.Type {
			continue
		}
		out = append(out, cloneComplaint(c))
	}
	return out, nil
}

func (r *stubComplaintRepo) Update(_ context.Context, complaint *domain.Complaint) error {
	if _, ok := r.complaints[complaint.ID]; !ok {
		return domain.NewNotFoundError("complaint", complaint.ID.String())
	}
	r.complaints[complaint.ID] = cloneComplaint(complaint)
	return nil
}

func (r *stubComplaintRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.complaints[id]; !ok {
		return domain.NewNotFoundError("complaint", id.String())
	}
	delete(r.complaints, id)
	return nil
}

func (r *stubComplaintRepo) ExistsByCategoryID(_ context.Context, categoryID uuid.UUID) (bool, error) {
	for _, c := range r.complaints {
		if c.CategoryID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

// stubTxManager runs the unit of work directly; the stub repos have no
// transaction semantics to join.
type stubTxManager struct{}

func (stubTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
