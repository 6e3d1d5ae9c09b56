package employee

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, e *Employee) error
	Update(ctx context.Context, e *Employee) error
	FindAllByBrand(ctx context.Context, brandID string) ([]Employee, error)
	FindOptionsByBrand(ctx context.Context, brandID string) ([]Employee, error)
	FindByIDAndBrand(ctx context.Context, brandID, id string) (*Employee, error)
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) FindAllByBrand(ctx context.Context, brandID string) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("full_name ASC").
		Find(&employees).Error
	return employees, err
}

// FindOptionsByBrand returns active employees only, for dropdowns.
func (r *repository) FindOptionsByBrand(ctx context.Context, brandID string) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Where("active = TRUE").
		Order("full_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByIDAndBrand(ctx context.Context, brandID, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) Delete(ctx context.Context, brandID, id string) error {
	res := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Delete(&Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
