package premium

type CalculateRequest struct {
	Month string `json:"month" binding:"required"`
	Year  int    `json:"year" binding:"required"`
}

type CalculateResult struct {
	Month          string `json:"month"`
	Year           int    `json:"year"`
	GeneratedCount int    `json:"generated_count"`
	TotalAmount    int64  `json:"total_amount"`
}

type ScheduleResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name"`
	PlanID       string `json:"plan_id"`
	PlanName     string `json:"plan_name"`
	Amount       int64  `json:"amount"`
	Month        string `json:"month"`
	Year         int    `json:"year"`
	Status       string `json:"status"`
	PolicyNumber string `json:"policy_number,omitempty"`
	PaidAt       string `json:"paid_at,omitempty"`
}

type PeriodSummary struct {
	Month         string `json:"month"`
	Year          int    `json:"year"`
	PendingCount  int    `json:"pending_count"`
	PaidCount     int    `json:"paid_count"`
	FailedCount   int    `json:"failed_count"`
	PendingAmount int64  `json:"pending_amount"`
	PaidAmount    int64  `json:"paid_amount"`
}
