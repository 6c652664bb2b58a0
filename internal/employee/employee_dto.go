package employee

type CreateEmployeeRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Phone         string  `json:"phone"`
	Salary        float64 `json:"salary" binding:"required,gt=0"`
	Department    string  `json:"department"`
	Designation   string  `json:"designation"`
	DateOfJoining string  `json:"date_of_joining"`
	DateOfBirth   string  `json:"date_of_birth"`
}

type UpdateEmployeeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Phone       string  `json:"phone"`
	Salary      float64 `json:"salary" binding:"required,gt=0"`
	Department  string  `json:"department"`
	Designation string  `json:"designation"`
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	EmployeeCode  string  `json:"employee_code"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone,omitempty"`
	Salary        float64 `json:"salary"`
	Department    string  `json:"department,omitempty"`
	Designation   string  `json:"designation,omitempty"`
	DateOfJoining string  `json:"date_of_joining,omitempty"`
	DateOfBirth   string  `json:"date_of_birth,omitempty"`
	Status        string  `json:"status"`
}

// EmployeeOption is the slim shape cached for dropdowns and pickers
type EmployeeOption struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employee_code"`
	Name         string `json:"name"`
}

type ImportRosterResult struct {
	ImportedCount int      `json:"imported_count"`
	SkippedCount  int      `json:"skipped_count"`
	Errors        []string `json:"errors,omitempty"`
}
