package notification

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeBrandBudgetExceeded  = "brand_budget_exceeded"
	TypeWalletBudgetLow      = "wallet_budget_low"
	TypeWalletBudgetExceeded = "wallet_budget_exceeded"
	TypeSalaryPaymentPending = "salary_payment_pending"
)

// Notification is a brand-scoped inbox entry for finance staff. Rows are
// written best-effort after the originating transaction commits; a failed
// insert is logged and dropped rather than failing the business operation.
type Notification struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BrandID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_notifications_brand_read"`
	Type      string     `gorm:"type:varchar(40);not null"`
	Title     string     `gorm:"type:varchar(150);not null"`
	Message   string     `gorm:"type:text;not null"`
	IsRead    bool       `gorm:"not null;default:false;index:idx_notifications_brand_read"`
	ReadAt    *time.Time `gorm:"type:timestamptz"`
	CreatedAt time.Time
}
