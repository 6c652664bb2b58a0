package bandplan

type AssignPlanRequest struct {
	SalaryBandID string `json:"salary_band_id" binding:"required,uuid"`
	PlanID       string `json:"plan_id" binding:"required,uuid"`
}

type MappingResponse struct {
	ID           string `json:"id"`
	SalaryBandID string `json:"salary_band_id"`
	BandName     string `json:"band_name,omitempty"`
	PlanID       string `json:"plan_id"`
	PlanName     string `json:"plan_name,omitempty"`
	InsurerName  string `json:"insurer_name,omitempty"`
	IsDefault    bool   `json:"is_default"`
}

// ResolvedPlan is what the premium calculator needs to price one employee
type ResolvedPlan struct {
	PlanID      string `json:"plan_id"`
	PlanName    string `json:"plan_name"`
	BasePremium int64  `json:"base_premium"`
	BandID      string `json:"band_id"`
	BandName    string `json:"band_name"`
}
