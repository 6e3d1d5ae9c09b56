package notification

import (
	"context"
	"time"

	notificationerrors "go-finboard/internal/notification/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, brandID string, unreadOnly bool) ([]NotificationResponse, error)
	CountUnread(ctx context.Context, brandID string) (UnreadCountResponse, error)
	MarkRead(ctx context.Context, brandID, id string) error
	MarkAllRead(ctx context.Context, brandID string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context, brandID string, unreadOnly bool) ([]NotificationResponse, error) {
	notifications, err := s.repo.FindAllByBrand(ctx, brandID, unreadOnly)
	if err != nil {
		return nil, err
	}

	resp := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		resp[i] = mapToResponse(n)
	}
	return resp, nil
}

func (s *service) CountUnread(ctx context.Context, brandID string) (UnreadCountResponse, error) {
	count, err := s.repo.CountUnread(ctx, brandID)
	if err != nil {
		return UnreadCountResponse{}, err
	}
	return UnreadCountResponse{Unread: count}, nil
}

func (s *service) MarkRead(ctx context.Context, brandID, id string) error {
	affected, err := s.repo.MarkRead(ctx, brandID, id)
	if err != nil {
		s.logger.Error("mark notification read failed", zap.String("notification_id", id), zap.Error(err))
		return err
	}
	if affected == 0 {
		return notificationerrors.ErrNotificationNotFound
	}
	return nil
}

func (s *service) MarkAllRead(ctx context.Context, brandID string) error {
	return s.repo.MarkAllRead(ctx, brandID)
}

func mapToResponse(n Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID.String(),
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
	if n.ReadAt != nil {
		v := n.ReadAt.Format(time.RFC3339)
		resp.ReadAt = &v
	}
	return resp
}
