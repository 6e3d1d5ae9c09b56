package events

import "time"

const SalaryPaymentRequestedTopic = "finance.salary_payment.requested.v1"

type SalaryPaymentRequestedEvent struct {
	EventType       string    `json:"event_type"`
	SalaryPaymentID string    `json:"salary_payment_id"`
	PendingCostID   string    `json:"pending_cost_id"`
	BrandID         string    `json:"brand_id"`
	EmployeeID      string    `json:"employee_id"`
	Amount          string    `json:"amount"`
	PeriodMonth     string    `json:"period_month"`
	OccurredAt      time.Time `json:"occurred_at"`
}
