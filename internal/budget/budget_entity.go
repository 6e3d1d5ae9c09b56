package budget

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyBudget is the brand-wide spend ceiling for one calendar month.
// It is independent of any single wallet's monthly budget.
type MonthlyBudget struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BrandID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_monthly_budget_brand_month"`
	Month       string          `gorm:"type:varchar(7);not null;uniqueIndex:uq_monthly_budget_brand_month"` // YYYY-MM
	BudgetLimit decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
