package reporting

import (
	"context"
	"errors"
	"time"

	"go-finboard/internal/budget"
	"go-finboard/internal/cost"
	reportingerrors "go-finboard/internal/reporting/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MonthlySpendResponse struct {
	Month       string  `json:"month"`
	TotalSpend  string  `json:"total_spend"`
	BudgetLimit *string `json:"budget_limit,omitempty"`
	Exceeded    bool    `json:"exceeded"`
	FromCache   bool    `json:"from_cache"`
}

//go:generate mockgen -source=reporting_service.go -destination=mock/reporting_service_mock.go -package=mock
type Service interface {
	MonthlySpend(ctx context.Context, brandID, month string) (MonthlySpendResponse, error)
}

type service struct {
	cache      *SpendCache
	costRepo   cost.Repository
	budgetRepo budget.Repository
	logger     *zap.Logger
}

func NewService(cache *SpendCache, costRepo cost.Repository, budgetRepo budget.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("reporting.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reporting.service")
	}
	return &service{cache: cache, costRepo: costRepo, budgetRepo: budgetRepo, logger: l}
}

// MonthlySpend answers the dashboard headline number. The Redis total is
// preferred; a cold cache falls back to summing the cost table.
func (s *service) MonthlySpend(ctx context.Context, brandID, month string) (MonthlySpendResponse, error) {
	from, err := time.Parse("2006-01", month)
	if err != nil {
		return MonthlySpendResponse{}, reportingerrors.ErrInvalidMonth
	}
	to := from.AddDate(0, 1, 0)

	total, cached, err := s.cache.Get(ctx, brandID, month)
	if err != nil || !cached {
		if err != nil {
			s.logger.Warn("spend cache read failed, falling back to db",
				zap.String("brand_id", brandID),
				zap.Error(err),
			)
		}
		total, err = s.costRepo.SumInRange(ctx, brandID, from, to)
		if err != nil {
			return MonthlySpendResponse{}, err
		}
		cached = false
	}

	resp := MonthlySpendResponse{
		Month:      month,
		TotalSpend: total.StringFixed(2),
		FromCache:  cached,
	}

	if b, err := s.budgetRepo.FindByBrandAndMonth(ctx, brandID, month); err == nil {
		limit := b.BudgetLimit.StringFixed(2)
		resp.BudgetLimit = &limit
		resp.Exceeded = total.GreaterThan(b.BudgetLimit)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Warn("budget lookup failed", zap.String("brand_id", brandID), zap.Error(err))
	}

	return resp, nil
}
