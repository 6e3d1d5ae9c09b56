package notification

import (
	"context"
	"time"

	"go-finboard/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=notification_repo.go -destination=mock/notification_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, n *Notification) error
	FindAllByBrand(ctx context.Context, brandID string, unreadOnly bool) ([]Notification, error)
	CountUnread(ctx context.Context, brandID string) (int64, error)
	MarkRead(ctx context.Context, brandID, id string) (int64, error)
	MarkAllRead(ctx context.Context, brandID string) error
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

func (r *repository) Create(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) FindAllByBrand(ctx context.Context, brandID string, unreadOnly bool) ([]Notification, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(brandID))
	if unreadOnly {
		q = q.Where("is_read = FALSE")
	}

	var notifications []Notification
	err := q.Order("created_at DESC").Limit(100).Find(&notifications).Error
	return notifications, err
}

func (r *repository) CountUnread(ctx context.Context, brandID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("brand_id = ?", brandID).
		Where("is_read = FALSE").
		Count(&count).Error
	return count, err
}

func (r *repository) MarkRead(ctx context.Context, brandID, id string) (int64, error) {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("brand_id = ?", brandID).
		Where("id = ?", id).
		Where("is_read = FALSE").
		Updates(map[string]interface{}{"is_read": true, "read_at": now})
	return res.RowsAffected, res.Error
}

func (r *repository) MarkAllRead(ctx context.Context, brandID string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("brand_id = ?", brandID).
		Where("is_read = FALSE").
		Updates(map[string]interface{}{"is_read": true, "read_at": now}).Error
}
