package rbac

import (
	"sync"

	"insuregate/internal/domain"

	"github.com/casbin/casbin/v2"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

// rolePolicies is the full permission matrix. Roles are a closed set, so the
// policy is seeded once at startup instead of being editable at runtime.
var rolePolicies = [][3]string{
	{domain.RoleSuperAdmin, "organization", "create"},
	{domain.RoleSuperAdmin, "organization", "read"},
	{domain.RoleSuperAdmin, "organization", "update"},
	{domain.RoleSuperAdmin, "insurer", "create"},
	{domain.RoleSuperAdmin, "insurer", "read"},
	{domain.RoleSuperAdmin, "insurer", "update"},

	{domain.RoleCompanyAdmin, "insurer", "read"},
	{domain.RoleCompanyAdmin, "employee", "create"},
	{domain.RoleCompanyAdmin, "employee", "read"},
	{domain.RoleCompanyAdmin, "employee", "update"},
	{domain.RoleCompanyAdmin, "employee", "delete"},
	{domain.RoleCompanyAdmin, "salary_band", "create"},
	{domain.RoleCompanyAdmin, "salary_band", "read"},
	{domain.RoleCompanyAdmin, "salary_band", "update"},
	{domain.RoleCompanyAdmin, "salary_band", "delete"},
	{domain.RoleCompanyAdmin, "plan_mapping", "create"},
	{domain.RoleCompanyAdmin, "plan_mapping", "read"},
	{domain.RoleCompanyAdmin, "plan_mapping", "delete"},
	{domain.RoleCompanyAdmin, "premium", "create"},
	{domain.RoleCompanyAdmin, "premium", "read"},
	{domain.RoleCompanyAdmin, "payment", "create"},
	{domain.RoleCompanyAdmin, "payment", "read"},
	{domain.RoleCompanyAdmin, "payment", "update"},

	{domain.RoleEmployee, "insurer", "read"},
	{domain.RoleEmployee, "premium", "read"},
}

func NewService(enforcer *casbin.Enforcer) (Service, error) {
	for _, p := range rolePolicies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enforcer.Enforce(req.Role, req.Resource, req.Action)
}
