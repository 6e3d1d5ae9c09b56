package wallet

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=wallet_repo.go -destination=mock/wallet_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, w *Wallet) error
	Update(ctx context.Context, w *Wallet) error
	FindAllByBrand(ctx context.Context, brandID string) ([]Wallet, error)
	FindByIDAndBrand(ctx context.Context, brandID, id string) (*Wallet, error)
	FindByIDAndBrandForUpdate(ctx context.Context, brandID, id string) (*Wallet, error)
	FindBasicActive(ctx context.Context, brandID string) (*Wallet, error)
	UnsetBasic(ctx context.Context, brandID string) error
	UpdateBalance(ctx context.Context, walletID string, newBalance decimal.Decimal) error
	CreateTransaction(ctx context.Context, t *WalletTransaction) error
	FindTransactionsByWallet(ctx context.Context, brandID, walletID string) ([]WalletTransaction, error)
	SumDeductionsInMonth(ctx context.Context, walletID string, from, to time.Time) (decimal.Decimal, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, w *Wallet) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *repository) Update(ctx context.Context, w *Wallet) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *repository) FindAllByBrand(ctx context.Context, brandID string) ([]Wallet, error) {
	var wallets []Wallet
	err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("is_basic DESC, name ASC").
		Find(&wallets).Error
	return wallets, err
}

func (r *repository) FindByIDAndBrand(ctx context.Context, brandID, id string) (*Wallet, error) {
	var w Wallet
	err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		First(&w, "id = ?", id).Error
	return &w, err
}

// FindByIDAndBrandForUpdate locks the wallet row so the balance
// read-modify-write in the Ledger cannot interleave.
func (r *repository) FindByIDAndBrandForUpdate(ctx context.Context, brandID, id string) (*Wallet, error) {
	var w Wallet
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("brand_id = ?", brandID).
		First(&w, "id = ?", id).Error
	return &w, err
}

// FindBasicActive resolves the brand's default disbursement wallet.
// The schema keeps at most one is_basic row per brand.
func (r *repository) FindBasicActive(ctx context.Context, brandID string) (*Wallet, error) {
	var w Wallet
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("brand_id = ?", brandID).
		Where("is_basic = TRUE").
		Where("is_active = TRUE").
		First(&w).Error
	return &w, err
}

func (r *repository) UnsetBasic(ctx context.Context, brandID string) error {
	return r.db.WithContext(ctx).
		Model(&Wallet{}).
		Where("brand_id = ?", brandID).
		Where("is_basic = TRUE").
		Update("is_basic", false).Error
}

func (r *repository) UpdateBalance(ctx context.Context, walletID string, newBalance decimal.Decimal) error {
	return r.db.WithContext(ctx).
		Model(&Wallet{}).
		Where("id = ?", walletID).
		Update("current_balance", newBalance).Error
}

func (r *repository) CreateTransaction(ctx context.Context, t *WalletTransaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindTransactionsByWallet(ctx context.Context, brandID, walletID string) ([]WalletTransaction, error) {
	var txs []WalletTransaction
	err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Where("wallet_id = ?", walletID).
		Order("transaction_date DESC, created_at DESC").
		Find(&txs).Error
	return txs, err
}

// SumDeductionsInMonth totals cost_deduction magnitudes for a wallet with
// transaction_date in [from, to).
func (r *repository) SumDeductionsInMonth(ctx context.Context, walletID string, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Raw(`
SELECT COALESCE(SUM(amount), 0)
FROM wallet_transactions
WHERE wallet_id = ?
	AND transaction_type = ?
	AND transaction_date >= ?
	AND transaction_date < ?
`, walletID, TxTypeCostDeduction, from, to).
		Scan(&total).Error
	return total, err
}
