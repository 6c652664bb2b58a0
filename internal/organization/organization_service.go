package organization

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateOrganizationRequest) (*OrganizationResponse, error)
	List(ctx context.Context) ([]OrganizationResponse, error)
	Get(ctx context.Context, id string) (*OrganizationResponse, error)
	Update(ctx context.Context, id string, req UpdateOrganizationRequest) (*OrganizationResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo:   repo,
		logger: zap.L().Named("organization_service"),
	}
}

func (s *service) Create(ctx context.Context, req CreateOrganizationRequest) (*OrganizationResponse, error) {
	org := &Organization{
		ID:      uuid.New(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		LogoURL: req.LogoURL,
	}

	if err := s.repo.Create(ctx, org); err != nil {
		return nil, mapRepoError(err)
	}

	s.logger.Info("organization created",
		zap.String("organization_id", org.ID.String()),
		zap.String("name", org.Name),
	)

	return toResponse(org), nil
}

func (s *service) List(ctx context.Context) ([]OrganizationResponse, error) {
	orgs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepoError(err)
	}

	resp := make([]OrganizationResponse, 0, len(orgs))
	for i := range orgs {
		resp = append(resp, *toResponse(&orgs[i]))
	}
	return resp, nil
}

func (s *service) Get(ctx context.Context, id string) (*OrganizationResponse, error) {
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return toResponse(org), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateOrganizationRequest) (*OrganizationResponse, error) {
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}

	org.Email = req.Email
	org.Phone = req.Phone
	org.Address = req.Address
	org.LogoURL = req.LogoURL

	if err := s.repo.Update(ctx, org); err != nil {
		return nil, mapRepoError(err)
	}

	return toResponse(org), nil
}

func toResponse(org *Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:      org.ID.String(),
		Name:    org.Name,
		Email:   org.Email,
		Phone:   org.Phone,
		Address: org.Address,
		LogoURL: org.LogoURL,
	}
}
