package budget

import (
	"context"
	"errors"
	"time"

	budgeterrors "go-finboard/internal/budget/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=budget_service.go -destination=mock/budget_service_mock.go -package=mock
type Service interface {
	Upsert(ctx context.Context, brandID string, req UpsertMonthlyBudgetRequest) (MonthlyBudgetResponse, error)
	GetAll(ctx context.Context, brandID string) ([]MonthlyBudgetResponse, error)
	GetByMonth(ctx context.Context, brandID, month string) (MonthlyBudgetResponse, error)
	Delete(ctx context.Context, brandID, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("budget.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("budget.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Upsert(ctx context.Context, brandID string, req UpsertMonthlyBudgetRequest) (MonthlyBudgetResponse, error) {
	s.logger.Debug("upsert monthly budget requested",
		zap.String("brand_id", brandID),
		zap.String("month", req.Month),
	)

	brandUUID, err := uuid.Parse(brandID)
	if err != nil {
		return MonthlyBudgetResponse{}, budgeterrors.ErrInvalidBrandID
	}

	if _, err := time.Parse("2006-01", req.Month); err != nil {
		return MonthlyBudgetResponse{}, budgeterrors.ErrInvalidMonthFormat
	}

	limit, err := decimal.NewFromString(req.BudgetLimit)
	if err != nil || !limit.IsPositive() {
		return MonthlyBudgetResponse{}, budgeterrors.ErrInvalidBudgetLimit
	}

	b := &MonthlyBudget{
		ID:          uuid.New(),
		BrandID:     brandUUID,
		Month:       req.Month,
		BudgetLimit: limit,
	}

	if err := s.repo.Upsert(ctx, b); err != nil {
		s.logger.Error("upsert monthly budget persist failed", zap.Error(err))
		return MonthlyBudgetResponse{}, err
	}

	s.logger.Info("upsert monthly budget success",
		zap.String("brand_id", brandID),
		zap.String("month", req.Month),
	)

	return mapToResponse(*b), nil
}

func (s *service) GetAll(ctx context.Context, brandID string) ([]MonthlyBudgetResponse, error) {
	budgets, err := s.repo.FindAllByBrand(ctx, brandID)
	if err != nil {
		return nil, err
	}

	resp := make([]MonthlyBudgetResponse, len(budgets))
	for i, b := range budgets {
		resp[i] = mapToResponse(b)
	}
	return resp, nil
}

func (s *service) GetByMonth(ctx context.Context, brandID, month string) (MonthlyBudgetResponse, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return MonthlyBudgetResponse{}, budgeterrors.ErrInvalidMonthFormat
	}

	b, err := s.repo.FindByBrandAndMonth(ctx, brandID, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MonthlyBudgetResponse{}, budgeterrors.ErrBudgetNotFound
		}
		return MonthlyBudgetResponse{}, err
	}

	return mapToResponse(*b), nil
}

func (s *service) Delete(ctx context.Context, brandID, id string) error {
	return s.repo.Delete(ctx, brandID, id)
}

func mapToResponse(b MonthlyBudget) MonthlyBudgetResponse {
	return MonthlyBudgetResponse{
		ID:          b.ID.String(),
		BrandID:     b.BrandID.String(),
		Month:       b.Month,
		BudgetLimit: b.BudgetLimit.StringFixed(2),
	}
}
