package salaryband_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"insuregate/internal/salaryband"
	salarybanderrors "insuregate/internal/salaryband/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeBandService struct {
	createFn func(ctx context.Context, organizationID string, req salaryband.CreateSalaryBandRequest) (*salaryband.SalaryBandResponse, error)
	listFn   func(ctx context.Context, organizationID string) ([]salaryband.SalaryBandResponse, error)
	getFn    func(ctx context.Context, organizationID, id string) (*salaryband.SalaryBandResponse, error)
	updateFn func(ctx context.Context, organizationID, id string, req salaryband.UpdateSalaryBandRequest) (*salaryband.SalaryBandResponse, error)
	deleteFn func(ctx context.Context, organizationID, id string) error
}

func (f *fakeBandService) Create(ctx context.Context, organizationID string, req salaryband.CreateSalaryBandRequest) (*salaryband.SalaryBandResponse, error) {
	return f.createFn(ctx, organizationID, req)
}
func (f *fakeBandService) List(ctx context.Context, organizationID string) ([]salaryband.SalaryBandResponse, error) {
	return f.listFn(ctx, organizationID)
}
func (f *fakeBandService) Get(ctx context.Context, organizationID, id string) (*salaryband.SalaryBandResponse, error) {
	return f.getFn(ctx, organizationID, id)
}
func (f *fakeBandService) Update(ctx context.Context, organizationID, id string, req salaryband.UpdateSalaryBandRequest) (*salaryband.SalaryBandResponse, error) {
	return f.updateFn(ctx, organizationID, id, req)
}
func (f *fakeBandService) Delete(ctx context.Context, organizationID, id string) error {
	return f.deleteFn(ctx, organizationID, id)
}

func TestHandler_CreateAndList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	orgID := uuid.New().String()

	svc := &fakeBandService{
		createFn: func(ctx context.Context, oid string, req salaryband.CreateSalaryBandRequest) (*salaryband.SalaryBandResponse, error) {
			assert.Equal(t, orgID, oid)
			assert.Equal(t, 1000.0, req.MinSalary)
			return &salaryband.SalaryBandResponse{ID: uuid.NewString(), Name: req.Name}, nil
		},
		listFn: func(ctx context.Context, oid string) ([]salaryband.SalaryBandResponse, error) {
			return []salaryband.SalaryBandResponse{{Name: "Band A"}, {Name: "Band B"}}, nil
		},
	}

	h := salaryband.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("organization_id", orgID)
	c.Request = httptest.NewRequest(http.MethodPost, "/salary-bands",
		strings.NewReader(`{"name":"Band A","min_salary":1000,"max_salary":2000}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Set("organization_id", orgID)
	c2.Request = httptest.NewRequest(http.MethodGet, "/salary-bands", nil)
	h.List(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "Band B")
}

func TestHandler_CreateValidationError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := salaryband.NewHandler(&fakeBandService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/salary-bands", strings.NewReader(`{"min_salary":1000}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteConflictSurfacesHasDependents(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeBandService{
		deleteFn: func(ctx context.Context, organizationID, id string) error {
			return salarybanderrors.ErrBandHasDependents
		},
	}
	h := salaryband.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("organization_id", uuid.NewString())
	c.Params = gin.Params{{Key: "id", Value: uuid.NewString()}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/salary-bands/x", nil)
	h.Delete(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "HAS_DEPENDENTS")
}
