package insurer

type CreateInsurerRequest struct {
	Name       string `json:"name" binding:"required"`
	Code       string `json:"code" binding:"required,alphanum"`
	LogoURL    string `json:"logo_url"`
	APIBaseURL string `json:"api_base_url"`
}

type UpdateInsurerRequest struct {
	Name       string `json:"name" binding:"required"`
	LogoURL    string `json:"logo_url"`
	APIBaseURL string `json:"api_base_url"`
	Status     string `json:"status" binding:"required,oneof=active inactive"`
}

type InsurerResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Code       string `json:"code"`
	LogoURL    string `json:"logo_url,omitempty"`
	APIBaseURL string `json:"api_base_url,omitempty"`
	Status     string `json:"status"`
}

type CreatePlanRequest struct {
	Name           string `json:"name" binding:"required"`
	Code           string `json:"code" binding:"required,alphanum"`
	Description    string `json:"description"`
	BasePremium    int64  `json:"base_premium" binding:"required,gt=0"`
	CoverageAmount int64  `json:"coverage_amount" binding:"required,gt=0"`
	Features       string `json:"features"`
}

type UpdatePlanRequest struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	BasePremium    int64  `json:"base_premium" binding:"required,gt=0"`
	CoverageAmount int64  `json:"coverage_amount" binding:"required,gt=0"`
	Features       string `json:"features"`
	Status         string `json:"status" binding:"required,oneof=active inactive"`
}

type PlanResponse struct {
	ID             string `json:"id"`
	InsurerID      string `json:"insurer_id"`
	InsurerName    string `json:"insurer_name,omitempty"`
	Name           string `json:"name"`
	Code           string `json:"code"`
	Description    string `json:"description,omitempty"`
	BasePremium    int64  `json:"base_premium"`
	CoverageAmount int64  `json:"coverage_amount"`
	Features       string `json:"features,omitempty"`
	Status         string `json:"status"`
}
