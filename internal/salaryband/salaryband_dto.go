package salaryband

type CreateSalaryBandRequest struct {
	Name        string  `json:"name" binding:"required"`
	MinSalary   float64 `json:"min_salary" binding:"required,gte=0"`
	MaxSalary   float64 `json:"max_salary" binding:"required,gt=0"`
	Description string  `json:"description"`
}

type UpdateSalaryBandRequest struct {
	Name        string  `json:"name" binding:"required"`
	MinSalary   float64 `json:"min_salary" binding:"required,gte=0"`
	MaxSalary   float64 `json:"max_salary" binding:"required,gt=0"`
	Description string  `json:"description"`
}

type SalaryBandResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	MinSalary   float64 `json:"min_salary"`
	MaxSalary   float64 `json:"max_salary"`
	Description string  `json:"description,omitempty"`
}
