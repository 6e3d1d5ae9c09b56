package cashtransaction

import (
	"context"
	"time"

	cashtransactionerrors "go-finboard/internal/cashtransaction/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=cashtransaction_service.go -destination=mock/cashtransaction_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, brandID string, req CreateCashTransactionRequest) (CashTransactionResponse, error)
	GetAll(ctx context.Context, brandID, month, section string) ([]CashTransactionResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("cashtransaction.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cashtransaction.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, brandID string, req CreateCashTransactionRequest) (CashTransactionResponse, error) {
	brandUUID, err := uuid.Parse(brandID)
	if err != nil {
		return CashTransactionResponse{}, cashtransactionerrors.ErrInvalidBrandID
	}

	if !ValidSection(req.Section) {
		return CashTransactionResponse{}, cashtransactionerrors.ErrInvalidSection
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.IsZero() {
		return CashTransactionResponse{}, cashtransactionerrors.ErrInvalidAmount
	}

	date, err := time.Parse("2006-01-02", req.TransactionDate)
	if err != nil {
		return CashTransactionResponse{}, cashtransactionerrors.ErrInvalidDate
	}

	ct := &CashTransaction{
		ID:              uuid.New(),
		BrandID:         brandUUID,
		Section:         req.Section,
		Category:        req.Category,
		Amount:          amount,
		Description:     req.Description,
		TransactionDate: date,
	}

	if err := s.repo.Create(ctx, ct); err != nil {
		s.logger.Error("create cash transaction failed", zap.Error(err))
		return CashTransactionResponse{}, err
	}

	s.logger.Info("create cash transaction success",
		zap.String("cash_transaction_id", ct.ID.String()),
		zap.String("brand_id", brandID),
		zap.String("section", ct.Section),
	)
	return mapToResponse(*ct), nil
}

func (s *service) GetAll(ctx context.Context, brandID, month, section string) ([]CashTransactionResponse, error) {
	var filter ListFilter

	if section != "" {
		if !ValidSection(section) {
			return nil, cashtransactionerrors.ErrInvalidSection
		}
		filter.Section = section
	}

	if month != "" {
		from, err := time.Parse("2006-01", month)
		if err != nil {
			return nil, cashtransactionerrors.ErrInvalidMonth
		}
		filter.From = from
		filter.To = from.AddDate(0, 1, 0)
	}

	txs, err := s.repo.FindAllByBrand(ctx, brandID, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]CashTransactionResponse, len(txs))
	for i, ct := range txs {
		resp[i] = mapToResponse(ct)
	}
	return resp, nil
}

func mapToResponse(ct CashTransaction) CashTransactionResponse {
	resp := CashTransactionResponse{
		ID:              ct.ID.String(),
		BrandID:         ct.BrandID.String(),
		Section:         ct.Section,
		Category:        ct.Category,
		Amount:          ct.Amount.StringFixed(2),
		Description:     ct.Description,
		TransactionDate: ct.TransactionDate.Format("2006-01-02"),
		ReferenceType:   ct.ReferenceType,
	}
	if ct.ReferenceID != nil {
		v := ct.ReferenceID.String()
		resp.ReferenceID = &v
	}
	return resp
}
