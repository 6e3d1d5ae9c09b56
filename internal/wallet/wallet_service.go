package wallet

import (
	"context"
	"errors"
	"time"

	walleterrors "go-finboard/internal/wallet/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=wallet_service.go -destination=mock/wallet_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, brandID string, req CreateWalletRequest) (WalletResponse, error)
	GetAll(ctx context.Context, brandID string) ([]WalletResponse, error)
	GetByID(ctx context.Context, brandID, id string) (WalletResponse, error)
	GetTransactions(ctx context.Context, brandID, id string) ([]WalletTransactionResponse, error)
	Update(ctx context.Context, brandID, id string, req UpdateWalletRequest) (WalletResponse, error)
	Transfer(ctx context.Context, brandID string, req TransferRequest) error
	Deposit(ctx context.Context, brandID, id string, req DepositRequest) (WalletResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	ledger *Ledger
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, ledger *Ledger, logger ...*zap.Logger) Service {
	l := zap.L().Named("wallet.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("wallet.service")
	}
	return &service{db: db, repo: repo, ledger: ledger, logger: l}
}

func (s *service) Create(ctx context.Context, brandID string, req CreateWalletRequest) (WalletResponse, error) {
	s.logger.Debug("create wallet requested",
		zap.String("brand_id", brandID),
		zap.String("name", req.Name),
		zap.Bool("is_basic", req.IsBasic),
	)

	brandUUID, err := uuid.Parse(brandID)
	if err != nil {
		return WalletResponse{}, walleterrors.ErrInvalidBrandID
	}

	balance := decimal.Zero
	if req.InitialBalance != "" {
		balance, err = decimal.NewFromString(req.InitialBalance)
		if err != nil || balance.IsNegative() {
			return WalletResponse{}, walleterrors.ErrInvalidAmount
		}
	}

	monthlyBudget, err := parseMonthlyBudget(req.MonthlyBudget)
	if err != nil {
		return WalletResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create wallet begin tx failed", zap.Error(tx.Error))
		return WalletResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// a brand has at most one basic wallet
	if req.IsBasic {
		if err := qtx.UnsetBasic(ctx, brandID); err != nil {
			return WalletResponse{}, err
		}
	}

	w := &Wallet{
		ID:             uuid.New(),
		BrandID:        brandUUID,
		Name:           req.Name,
		CurrentBalance: balance,
		MonthlyBudget:  monthlyBudget,
		IsBasic:        req.IsBasic,
		IsActive:       true,
	}

	if err := qtx.Create(ctx, w); err != nil {
		s.logger.Error("create wallet persist failed", zap.Error(err))
		return WalletResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create wallet commit failed", zap.Error(err))
		return WalletResponse{}, err
	}

	s.logger.Info("create wallet success",
		zap.String("wallet_id", w.ID.String()),
		zap.String("brand_id", brandID),
	)

	return mapToResponse(*w), nil
}

func (s *service) GetAll(ctx context.Context, brandID string) ([]WalletResponse, error) {
	wallets, err := s.repo.FindAllByBrand(ctx, brandID)
	if err != nil {
		return nil, err
	}

	resp := make([]WalletResponse, len(wallets))
	for i, w := range wallets {
		resp[i] = mapToResponse(w)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, brandID, id string) (WalletResponse, error) {
	w, err := s.repo.FindByIDAndBrand(ctx, brandID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WalletResponse{}, walleterrors.ErrWalletNotFound
		}
		return WalletResponse{}, err
	}
	return mapToResponse(*w), nil
}

func (s *service) GetTransactions(ctx context.Context, brandID, id string) ([]WalletTransactionResponse, error) {
	txs, err := s.repo.FindTransactionsByWallet(ctx, brandID, id)
	if err != nil {
		return nil, err
	}

	resp := make([]WalletTransactionResponse, len(txs))
	for i, t := range txs {
		resp[i] = mapTransactionToResponse(t)
	}
	return resp, nil
}

func (s *service) Update(ctx context.Context, brandID, id string, req UpdateWalletRequest) (WalletResponse, error) {
	monthlyBudget, err := parseMonthlyBudget(req.MonthlyBudget)
	if err != nil {
		return WalletResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return WalletResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	w, err := qtx.FindByIDAndBrand(ctx, brandID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WalletResponse{}, walleterrors.ErrWalletNotFound
		}
		return WalletResponse{}, err
	}

	if req.IsBasic && !w.IsBasic {
		if err := qtx.UnsetBasic(ctx, brandID); err != nil {
			return WalletResponse{}, err
		}
	}

	w.Name = req.Name
	w.MonthlyBudget = monthlyBudget
	w.IsBasic = req.IsBasic
	w.IsActive = req.IsActive

	if err := qtx.Update(ctx, w); err != nil {
		s.logger.Error("update wallet persist failed", zap.String("wallet_id", id), zap.Error(err))
		return WalletResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return WalletResponse{}, err
	}

	s.logger.Info("update wallet success", zap.String("wallet_id", id))
	return mapToResponse(*w), nil
}

func (s *service) Transfer(ctx context.Context, brandID string, req TransferRequest) error {
	s.logger.Debug("wallet transfer requested",
		zap.String("brand_id", brandID),
		zap.String("from_wallet_id", req.FromWalletID),
		zap.String("to_wallet_id", req.ToWalletID),
	)

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return walleterrors.ErrInvalidAmount
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("wallet transfer begin tx failed", zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	err = s.ledger.WithTx(tx).Transfer(ctx, brandID, req.FromWalletID, req.ToWalletID, amount, EntryParams{
		Description: req.Description,
		Date:        time.Now().UTC(),
	})
	if err != nil {
		s.logger.Warn("wallet transfer failed",
			zap.String("from_wallet_id", req.FromWalletID),
			zap.String("to_wallet_id", req.ToWalletID),
			zap.Error(err),
		)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("wallet transfer commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("wallet transfer success",
		zap.String("from_wallet_id", req.FromWalletID),
		zap.String("to_wallet_id", req.ToWalletID),
	)
	return nil
}

func (s *service) Deposit(ctx context.Context, brandID, id string, req DepositRequest) (WalletResponse, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return WalletResponse{}, walleterrors.ErrInvalidAmount
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return WalletResponse{}, tx.Error
	}
	defer tx.Rollback()

	w, _, err := s.ledger.WithTx(tx).Credit(ctx, brandID, id, amount, EntryParams{
		Description: req.Description,
		Date:        time.Now().UTC(),
	})
	if err != nil {
		return WalletResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return WalletResponse{}, err
	}

	s.logger.Info("wallet deposit success", zap.String("wallet_id", id))
	return mapToResponse(*w), nil
}

func parseMonthlyBudget(raw *string) (*decimal.Decimal, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	mb, err := decimal.NewFromString(*raw)
	if err != nil || !mb.IsPositive() {
		return nil, walleterrors.ErrInvalidMonthlyBudget
	}
	return &mb, nil
}

func mapToResponse(w Wallet) WalletResponse {
	resp := WalletResponse{
		ID:             w.ID.String(),
		BrandID:        w.BrandID.String(),
		Name:           w.Name,
		CurrentBalance: w.CurrentBalance.StringFixed(2),
		IsBasic:        w.IsBasic,
		IsActive:       w.IsActive,
	}
	if w.MonthlyBudget != nil {
		v := w.MonthlyBudget.StringFixed(2)
		resp.MonthlyBudget = &v
	}
	return resp
}

func mapTransactionToResponse(t WalletTransaction) WalletTransactionResponse {
	resp := WalletTransactionResponse{
		ID:              t.ID.String(),
		WalletID:        t.WalletID.String(),
		Amount:          t.Amount.StringFixed(2),
		TransactionType: t.TransactionType,
		Description:     t.Description,
		TransactionDate: t.TransactionDate.Format("2006-01-02"),
		ReferenceType:   t.ReferenceType,
	}
	if t.ReferenceID != nil {
		v := t.ReferenceID.String()
		resp.ReferenceID = &v
	}
	return resp
}
