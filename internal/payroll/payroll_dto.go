package payroll

type CreateSalaryPaymentRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	PaymentDate string `json:"payment_date" binding:"required"`
	Amount      string `json:"amount"`
	Note        string `json:"note"`
}

type ReviewPendingCostRequest struct {
	Action string `json:"action" binding:"required"`
}

type SalaryPaymentResponse struct {
	ID                string  `json:"id"`
	BrandID           string  `json:"brand_id"`
	EmployeeID        string  `json:"employee_id"`
	Amount            string  `json:"amount"`
	PaymentDate       string  `json:"payment_date"`
	PeriodMonth       string  `json:"period_month"`
	Status            string  `json:"status"`
	Note              string  `json:"note,omitempty"`
	CashTransactionID *string `json:"cash_transaction_id,omitempty"`
	PendingCostID     string  `json:"pending_cost_id,omitempty"`
}

type PendingCostResponse struct {
	ID            string  `json:"id"`
	BrandID       string  `json:"brand_id"`
	Category      string  `json:"category"`
	Amount        string  `json:"amount"`
	PaymentDate   string  `json:"payment_date"`
	Description   string  `json:"description"`
	Status        string  `json:"status"`
	ReferenceType string  `json:"reference_type,omitempty"`
	ReferenceID   *string `json:"reference_id,omitempty"`
	ProcessedBy   *string `json:"processed_by,omitempty"`
	ProcessedAt   *string `json:"processed_at,omitempty"`
}

type ReviewResultResponse struct {
	PendingCostID   string  `json:"pending_cost_id"`
	SalaryPaymentID string  `json:"salary_payment_id"`
	Status          string  `json:"status"`
	CostID          *string `json:"cost_id,omitempty"`
	WalletDebited   bool    `json:"wallet_debited"`
}
