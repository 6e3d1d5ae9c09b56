package cashtransaction

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ListFilter narrows FindAllByBrand. Zero values mean no filtering.
type ListFilter struct {
	Section string
	From    time.Time
	To      time.Time
}

//go:generate mockgen -source=cashtransaction_repo.go -destination=mock/cashtransaction_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, ct *CashTransaction) error
	FindAllByBrand(ctx context.Context, brandID string, filter ListFilter) ([]CashTransaction, error)
	FindByIDAndBrand(ctx context.Context, brandID, id string) (*CashTransaction, error)
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

func (r *repository) Create(ctx context.Context, ct *CashTransaction) error {
	return r.db.WithContext(ctx).Create(ct).Error
}

func (r *repository) FindAllByBrand(ctx context.Context, brandID string, filter ListFilter) ([]CashTransaction, error) {
	q := r.db.WithContext(ctx).Where("brand_id = ?", brandID)

	if filter.Section != "" {
		q = q.Where("section = ?", filter.Section)
	}
	if !filter.From.IsZero() {
		q = q.Where("transaction_date >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		q = q.Where("transaction_date < ?", filter.To)
	}

	var txs []CashTransaction
	err := q.Order("transaction_date DESC, created_at DESC").Find(&txs).Error
	return txs, err
}

func (r *repository) FindByIDAndBrand(ctx context.Context, brandID, id string) (*CashTransaction, error) {
	var ct CashTransaction
	err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		First(&ct, "id = ?", id).Error
	return &ct, err
}
