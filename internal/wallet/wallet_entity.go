package wallet

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TxTypeCostDeduction = "cost_deduction"
	TxTypeDeposit       = "deposit"
	TxTypeTransferIn    = "transfer_in"
	TxTypeTransferOut   = "transfer_out"
)

// Wallet is a brand-scoped cash pool. At most one wallet per brand carries
// is_basic=true; that wallet is the default disbursement source for approved
// payroll costs. CurrentBalance is mutated only through the Ledger.
type Wallet struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	BrandID        uuid.UUID        `gorm:"type:uuid;not null;index:idx_wallets_brand"`
	Name           string           `gorm:"type:varchar(100);not null"`
	CurrentBalance decimal.Decimal  `gorm:"type:numeric(14,2);not null;default:0"`
	MonthlyBudget  *decimal.Decimal `gorm:"type:numeric(14,2)"`
	IsBasic        bool             `gorm:"not null;default:false"`
	IsActive       bool             `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// WalletTransaction is the append-only audit row for one balance mutation.
// Amount is always a positive magnitude; TransactionType carries the sign.
type WalletTransaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BrandID         uuid.UUID       `gorm:"type:uuid;not null"`
	WalletID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_wallet_transactions_wallet_date"`
	Amount          decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TransactionType string          `gorm:"type:varchar(30);not null"`
	Description     string          `gorm:"type:text"`
	TransactionDate time.Time       `gorm:"type:date;not null;index:idx_wallet_transactions_wallet_date"`
	ReferenceType   string          `gorm:"type:varchar(40)"`
	ReferenceID     *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt       time.Time
}
