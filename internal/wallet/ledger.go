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

// EntryParams describes the audit trail of one balance mutation.
type EntryParams struct {
	Description   string
	Date          time.Time
	ReferenceType string
	ReferenceID   *uuid.UUID
}

// Ledger is the only code path allowed to change a wallet's balance. Every
// mutation writes exactly one WalletTransaction row. Debits may push the
// balance negative; the wallet budget alerting exists to flag that, not the
// ledger.
type Ledger struct {
	repo   Repository
	logger *zap.Logger
}

func NewLedger(repo Repository, logger ...*zap.Logger) *Ledger {
	l := zap.L().Named("wallet.ledger")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("wallet.ledger")
	}
	return &Ledger{repo: repo, logger: l}
}

// WithTx scopes the ledger to an open transaction.
func (l *Ledger) WithTx(tx *gorm.DB) *Ledger {
	return &Ledger{repo: l.repo.WithTx(tx), logger: l.logger}
}

// Debit subtracts amount from the wallet and records a cost_deduction row.
func (l *Ledger) Debit(ctx context.Context, brandID, walletID string, amount decimal.Decimal, p EntryParams) (*Wallet, *WalletTransaction, error) {
	return l.apply(ctx, brandID, walletID, amount.Neg(), TxTypeCostDeduction, p)
}

// Credit adds amount to the wallet and records a deposit row.
func (l *Ledger) Credit(ctx context.Context, brandID, walletID string, amount decimal.Decimal, p EntryParams) (*Wallet, *WalletTransaction, error) {
	return l.apply(ctx, brandID, walletID, amount, TxTypeDeposit, p)
}

// Transfer moves amount between two wallets of the same brand, recording a
// transfer_out row on the source and a transfer_in row on the destination.
func (l *Ledger) Transfer(ctx context.Context, brandID, fromID, toID string, amount decimal.Decimal, p EntryParams) error {
	if fromID == toID {
		return walleterrors.ErrSameWallet
	}

	if _, _, err := l.apply(ctx, brandID, fromID, amount.Neg(), TxTypeTransferOut, p); err != nil {
		return err
	}
	_, _, err := l.apply(ctx, brandID, toID, amount, TxTypeTransferIn, p)
	return err
}

// apply performs the locked read-modify-write. delta carries the sign; the
// stored transaction amount is always the positive magnitude.
func (l *Ledger) apply(ctx context.Context, brandID, walletID string, delta decimal.Decimal, txType string, p EntryParams) (*Wallet, *WalletTransaction, error) {
	if delta.IsZero() {
		return nil, nil, walleterrors.ErrInvalidAmount
	}

	w, err := l.repo.FindByIDAndBrandForUpdate(ctx, brandID, walletID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, walleterrors.ErrWalletNotFound
		}
		return nil, nil, err
	}

	newBalance := w.CurrentBalance.Add(delta)
	if err := l.repo.UpdateBalance(ctx, walletID, newBalance); err != nil {
		l.logger.Error("update wallet balance failed",
			zap.String("wallet_id", walletID),
			zap.String("transaction_type", txType),
			zap.Error(err),
		)
		return nil, nil, err
	}

	date := p.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	t := &WalletTransaction{
		ID:              uuid.New(),
		BrandID:         w.BrandID,
		WalletID:        w.ID,
		Amount:          delta.Abs(),
		TransactionType: txType,
		Description:     p.Description,
		TransactionDate: date,
		ReferenceType:   p.ReferenceType,
		ReferenceID:     p.ReferenceID,
	}

	if err := l.repo.CreateTransaction(ctx, t); err != nil {
		l.logger.Error("create wallet transaction failed",
			zap.String("wallet_id", walletID),
			zap.String("transaction_type", txType),
			zap.Error(err),
		)
		return nil, nil, err
	}

	w.CurrentBalance = newBalance
	return w, t, nil
}
