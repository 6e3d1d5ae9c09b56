package payroll

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateSalaryPayment(ctx context.Context, sp *SalaryPayment) error
	FindSalaryPaymentByIDAndBrand(ctx context.Context, brandID, id string) (*SalaryPayment, error)
	FindAllSalaryPaymentsByBrand(ctx context.Context, brandID, status string) ([]SalaryPayment, error)
	MarkSalaryPaymentApproved(ctx context.Context, id string, cashTransactionID uuid.UUID) error
	DeleteSalaryPayment(ctx context.Context, id string) error

	CreatePendingCost(ctx context.Context, pc *PendingCost) error
	FindPendingCostByIDAndBrand(ctx context.Context, brandID, id string) (*PendingCost, error)
	FindAllPendingCostsByBrand(ctx context.Context, brandID, status string) ([]PendingCost, error)
	MarkPendingCostProcessed(ctx context.Context, id, newStatus string, processedBy uuid.UUID) (int64, error)
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

func (r *repository) CreateSalaryPayment(ctx context.Context, sp *SalaryPayment) error {
	return r.db.WithContext(ctx).Create(sp).Error
}

func (r *repository) FindSalaryPaymentByIDAndBrand(ctx context.Context, brandID, id string) (*SalaryPayment, error) {
	var sp SalaryPayment
	err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		First(&sp, "id = ?", id).Error
	return &sp, err
}

func (r *repository) FindAllSalaryPaymentsByBrand(ctx context.Context, brandID, status string) ([]SalaryPayment, error) {
	q := r.db.WithContext(ctx).Where("brand_id = ?", brandID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var payments []SalaryPayment
	err := q.Order("created_at DESC").Find(&payments).Error
	return payments, err
}

func (r *repository) MarkSalaryPaymentApproved(ctx context.Context, id string, cashTransactionID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&SalaryPayment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":              StatusApproved,
			"cash_transaction_id": cashTransactionID,
		}).Error
}

func (r *repository) DeleteSalaryPayment(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&SalaryPayment{}, "id = ?", id).Error
}

func (r *repository) CreatePendingCost(ctx context.Context, pc *PendingCost) error {
	return r.db.WithContext(ctx).Create(pc).Error
}

func (r *repository) FindPendingCostByIDAndBrand(ctx context.Context, brandID, id string) (*PendingCost, error) {
	var pc PendingCost
	err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		First(&pc, "id = ?", id).Error
	return &pc, err
}

func (r *repository) FindAllPendingCostsByBrand(ctx context.Context, brandID, status string) ([]PendingCost, error) {
	q := r.db.WithContext(ctx).Where("brand_id = ?", brandID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var pcs []PendingCost
	err := q.Order("created_at DESC").Find(&pcs).Error
	return pcs, err
}

// MarkPendingCostProcessed is the compare-and-swap out of pending. The WHERE
// clause on status guarantees at most one caller observes RowsAffected == 1;
// everyone else lost the race and must treat the record as processed.
func (r *repository) MarkPendingCostProcessed(ctx context.Context, id, newStatus string, processedBy uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&PendingCost{}).
		Where("id = ?", id).
		Where("status = ?", StatusPending).
		Updates(map[string]interface{}{
			"status":       newStatus,
			"processed_by": processedBy,
			"processed_at": time.Now().UTC(),
		})
	return res.RowsAffected, res.Error
}
