package cashtransaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	SectionOperating = "operating"
	SectionInvesting = "investing"
	SectionFinancing = "financing"
)

// CashTransaction is one line of the brand's cash flow statement. Amount is
// signed: inflows positive, outflows negative. Reference fields link back to
// the originating record, e.g. a salary payment.
type CashTransaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BrandID         uuid.UUID       `gorm:"type:uuid;not null;index:idx_cash_transactions_brand_date"`
	Section         string          `gorm:"type:varchar(20);not null"`
	Category        string          `gorm:"type:varchar(50);not null"`
	Amount          decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Description     string          `gorm:"type:text"`
	TransactionDate time.Time       `gorm:"type:date;not null;index:idx_cash_transactions_brand_date"`
	ReferenceType   string          `gorm:"type:varchar(40)"`
	ReferenceID     *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func ValidSection(s string) bool {
	switch s {
	case SectionOperating, SectionInvesting, SectionFinancing:
		return true
	}
	return false
}
