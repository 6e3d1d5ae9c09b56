package cost

import (
	"context"
	"errors"
	"time"

	costerrors "go-finboard/internal/cost/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=cost_service.go -destination=mock/cost_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, brandID string, req CreateCostRequest) (CostResponse, error)
	GetAll(ctx context.Context, brandID, month string) ([]CostResponse, error)
	GetByID(ctx context.Context, brandID, id string) (CostResponse, error)
	Delete(ctx context.Context, brandID, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("cost.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cost.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, brandID string, req CreateCostRequest) (CostResponse, error) {
	s.logger.Debug("create cost requested",
		zap.String("brand_id", brandID),
		zap.String("category", req.Category),
	)

	brandUUID, err := uuid.Parse(brandID)
	if err != nil {
		return CostResponse{}, costerrors.ErrInvalidBrandID
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return CostResponse{}, costerrors.ErrInvalidDateFormat
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return CostResponse{}, costerrors.ErrInvalidAmount
	}

	c := &Cost{
		ID:       uuid.New(),
		BrandID:  brandUUID,
		Date:     date,
		Amount:   amount,
		Category: req.Category,
		Note:     req.Note,
		Source:   SourceManual,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error("create cost persist failed", zap.Error(err))
		return CostResponse{}, err
	}

	s.logger.Info("create cost success",
		zap.String("cost_id", c.ID.String()),
		zap.String("brand_id", brandID),
	)

	return mapToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context, brandID, month string) ([]CostResponse, error) {
	var (
		costs []Cost
		err   error
	)
	if month != "" {
		from, perr := time.Parse("2006-01", month)
		if perr != nil {
			return nil, costerrors.ErrInvalidDateFormat
		}
		costs, err = s.repo.FindAllByBrandInRange(ctx, brandID, from, from.AddDate(0, 1, 0))
	} else {
		costs, err = s.repo.FindAllByBrand(ctx, brandID)
	}
	if err != nil {
		return nil, err
	}

	resp := make([]CostResponse, len(costs))
	for i, c := range costs {
		resp[i] = mapToResponse(c)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, brandID, id string) (CostResponse, error) {
	c, err := s.repo.FindByIDAndBrand(ctx, brandID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CostResponse{}, costerrors.ErrCostNotFound
		}
		return CostResponse{}, err
	}
	return mapToResponse(*c), nil
}

func (s *service) Delete(ctx context.Context, brandID, id string) error {
	return s.repo.Delete(ctx, brandID, id)
}

func mapToResponse(c Cost) CostResponse {
	return CostResponse{
		ID:       c.ID.String(),
		BrandID:  c.BrandID.String(),
		Date:     c.Date.Format("2006-01-02"),
		Amount:   c.Amount.StringFixed(2),
		Category: c.Category,
		Note:     c.Note,
		Source:   c.Source,
	}
}
