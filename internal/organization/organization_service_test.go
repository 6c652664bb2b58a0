package organization_test

import (
	"context"
	"database/sql"
	"testing"

	"insuregate/internal/organization"
	organizationerrors "insuregate/internal/organization/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeOrgRepository struct {
	createFn   func(ctx context.Context, org *organization.Organization) error
	findAllFn  func(ctx context.Context) ([]organization.Organization, error)
	findByIDFn func(ctx context.Context, id string) (*organization.Organization, error)
	updateFn   func(ctx context.Context, org *organization.Organization) error
}

func (f *fakeOrgRepository) WithTx(tx *sql.Tx) organization.Repository { return f }

func (f *fakeOrgRepository) Create(ctx context.Context, org *organization.Organization) error {
	if f.createFn != nil {
		return f.createFn(ctx, org)
	}
	return nil
}

func (f *fakeOrgRepository) FindAll(ctx context.Context) ([]organization.Organization, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeOrgRepository) FindByID(ctx context.Context, id string) (*organization.Organization, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &organization.Organization{}, nil
}

func (f *fakeOrgRepository) Update(ctx context.Context, org *organization.Organization) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, org)
	}
	return nil
}

func TestOrganizationCreate_DuplicateEmailMapsToConflict(t *testing.T) {
	repo := &fakeOrgRepository{
		createFn: func(ctx context.Context, org *organization.Organization) error {
			return &pgconn.PgError{Code: "23505"}
		},
	}
	service := organization.NewService(repo)

	_, err := service.Create(context.Background(), organization.CreateOrganizationRequest{
		Name:  "Acme",
		Email: "ops@acme.test",
	})

	assert.ErrorIs(t, err, organizationerrors.ErrOrganizationEmailAlreadyExists)
}

func TestOrganizationGet_NotFound(t *testing.T) {
	repo := &fakeOrgRepository{
		findByIDFn: func(ctx context.Context, id string) (*organization.Organization, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	service := organization.NewService(repo)

	_, err := service.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, organizationerrors.ErrOrganizationNotFound)
}

func TestOrganizationUpdate_OnlyContactFieldsMove(t *testing.T) {
	stored := &organization.Organization{Name: "Acme", Email: "old@acme.test"}
	repo := &fakeOrgRepository{
		findByIDFn: func(ctx context.Context, id string) (*organization.Organization, error) {
			return stored, nil
		},
	}
	service := organization.NewService(repo)

	resp, err := service.Update(context.Background(), "org-1", organization.UpdateOrganizationRequest{
		Email: "new@acme.test",
		Phone: "555-0101",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Acme", resp.Name)
	assert.Equal(t, "new@acme.test", resp.Email)
	assert.Equal(t, "555-0101", resp.Phone)
}
