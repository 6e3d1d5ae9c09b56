package cost

import (
	"context"
	"time"

	"go-finboard/internal/tenant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=cost_repo.go -destination=mock/cost_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, c *Cost) error
	SumInRange(ctx context.Context, brandID string, from, to time.Time) (decimal.Decimal, error)
	FindAllByBrand(ctx context.Context, brandID string) ([]Cost, error)
	FindAllByBrandInRange(ctx context.Context, brandID string, from, to time.Time) ([]Cost, error)
	FindByIDAndBrand(ctx context.Context, brandID, id string) (*Cost, error)
	Delete(ctx context.Context, brandID, id string) error
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

func (r *repository) Create(ctx context.Context, c *Cost) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// SumInRange totals cost amounts for a brand with date in [from, to).
func (r *repository) SumInRange(ctx context.Context, brandID string, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Raw(`
SELECT COALESCE(SUM(amount), 0)
FROM costs
WHERE brand_id = ?
	AND date >= ?
	AND date < ?
`, brandID, from, to).
		Scan(&total).Error
	return total, err
}

func (r *repository) FindAllByBrand(ctx context.Context, brandID string) ([]Cost, error) {
	var costs []Cost
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(brandID)).
		Order("date DESC, created_at DESC").
		Find(&costs).Error
	return costs, err
}

// FindAllByBrandInRange lists costs with date in [from, to).
func (r *repository) FindAllByBrandInRange(ctx context.Context, brandID string, from, to time.Time) ([]Cost, error) {
	var costs []Cost
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(brandID)).
		Where("date >= ? AND date < ?", from, to).
		Order("date DESC, created_at DESC").
		Find(&costs).Error
	return costs, err
}

func (r *repository) FindByIDAndBrand(ctx context.Context, brandID, id string) (*Cost, error) {
	var c Cost
	err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		First(&c, "id = ?", id).Error
	return &c, err
}

func (r *repository) Delete(ctx context.Context, brandID, id string) error {
	return r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Delete(&Cost{}, "id = ?", id).Error
}
