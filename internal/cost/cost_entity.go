package cost

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	SourceManual  = "manual"
	SourceShopify = "shopify"
	SourceMeta    = "meta"
)

// Cost is a finalized expense ledger line. Payroll approvals and manual
// capture both materialize into this table.
type Cost struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BrandID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_costs_brand_date"`
	Date      time.Time       `gorm:"type:date;not null;index:idx_costs_brand_date"`
	Amount    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Category  string          `gorm:"type:varchar(50);not null"`
	Note      string          `gorm:"type:text"`
	Source    string          `gorm:"type:varchar(20);not null;default:'manual'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
