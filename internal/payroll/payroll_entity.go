package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDeclined = "declined"
)

const (
	PendingCostCategorySalaries = "salaries"
	ReferenceTypeSalaryPayment  = "salary_payment"
	ReferenceTypePendingCost    = "pending_cost"
)

// SalaryPayment is one requested salary disbursement for an employee. It is
// created pending together with its PendingCost and only reaches approved
// through the review workflow, which also links the resulting cash
// transaction.
type SalaryPayment struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BrandID           uuid.UUID       `gorm:"type:uuid;not null;index:idx_salary_payments_brand"`
	EmployeeID        uuid.UUID       `gorm:"type:uuid;not null"`
	Amount            decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PaymentDate       time.Time       `gorm:"type:date;not null"`
	PeriodMonth       string          `gorm:"type:varchar(7);not null"`
	Status            string          `gorm:"type:varchar(20);not null;default:'pending'"`
	Note              string          `gorm:"type:text"`
	CashTransactionID *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// PendingCost is the approval gate in front of the cost ledger. Exactly one
// reviewer wins the transition out of pending; the conditional update in the
// repository enforces that.
type PendingCost struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BrandID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_pending_costs_brand_status"`
	Category      string          `gorm:"type:varchar(50);not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PaymentDate   time.Time       `gorm:"type:date;not null"`
	Description   string          `gorm:"type:text"`
	Status        string          `gorm:"type:varchar(20);not null;default:'pending';index:idx_pending_costs_brand_status"`
	ReferenceType string          `gorm:"type:varchar(40)"`
	ReferenceID   *uuid.UUID      `gorm:"type:uuid"`
	ProcessedBy   *uuid.UUID      `gorm:"type:uuid"`
	ProcessedAt   *time.Time      `gorm:"type:timestamptz"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
