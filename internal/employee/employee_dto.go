package employee

type CreateEmployeeRequest struct {
	FullName      string  `json:"full_name" binding:"required"`
	Position      string  `json:"position"`
	MonthlySalary string  `json:"monthly_salary" binding:"required"`
	StartDate     string  `json:"start_date" binding:"required"`
	EndDate       *string `json:"end_date"`
	AutoPayment   bool    `json:"auto_payment"`
}

type UpdateEmployeeRequest struct {
	FullName      string  `json:"full_name" binding:"required"`
	Position      string  `json:"position"`
	MonthlySalary string  `json:"monthly_salary" binding:"required"`
	StartDate     string  `json:"start_date" binding:"required"`
	EndDate       *string `json:"end_date"`
	Active        bool    `json:"active"`
	AutoPayment   bool    `json:"auto_payment"`
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	BrandID       string  `json:"brand_id"`
	FullName      string  `json:"full_name"`
	Position      string  `json:"position,omitempty"`
	MonthlySalary string  `json:"monthly_salary"`
	StartDate     string  `json:"start_date"`
	EndDate       *string `json:"end_date,omitempty"`
	Active        bool    `json:"active"`
	AutoPayment   bool    `json:"auto_payment"`
}
