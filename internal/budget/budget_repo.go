package budget

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=budget_repo.go -destination=mock/budget_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Upsert(ctx context.Context, b *MonthlyBudget) error
	FindByBrandAndMonth(ctx context.Context, brandID, month string) (*MonthlyBudget, error)
	FindAllByBrand(ctx context.Context, brandID string) ([]MonthlyBudget, error)
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

func (r *repository) Upsert(ctx context.Context, b *MonthlyBudget) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "brand_id"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{"budget_limit", "updated_at"}),
		}).
		Create(b).Error
}

func (r *repository) FindByBrandAndMonth(ctx context.Context, brandID, month string) (*MonthlyBudget, error) {
	var b MonthlyBudget
	err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Where("month = ?", month).
		First(&b).Error
	return &b, err
}

func (r *repository) FindAllByBrand(ctx context.Context, brandID string) ([]MonthlyBudget, error) {
	var budgets []MonthlyBudget
	err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("month DESC").
		Find(&budgets).Error
	return budgets, err
}

func (r *repository) Delete(ctx context.Context, brandID, id string) error {
	return r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Delete(&MonthlyBudget{}, "id = ?", id).Error
}
