package domain

// Roles are a closed set. Authorization happens at the route boundary;
// services below it trust the already-enforced identity.
const (
	RoleSuperAdmin   = "super_admin"
	RoleCompanyAdmin = "company_admin"
	RoleEmployee     = "employee"
)

type EnforceRequest struct {
	Role           string `json:"role" binding:"required"`
	OrganizationID string `json:"organization_id"`
	Resource       string `json:"resource" binding:"required"`
	Action         string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
