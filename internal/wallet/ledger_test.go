package wallet

import (
	"context"
	"testing"
	"time"

	walleterrors "go-finboard/internal/wallet/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn                   func(tx *gorm.DB) Repository
	createFn                   func(ctx context.Context, w *Wallet) error
	updateFn                   func(ctx context.Context, w *Wallet) error
	findAllByBrandFn           func(ctx context.Context, brandID string) ([]Wallet, error)
	findByIDAndBrandFn         func(ctx context.Context, brandID, id string) (*Wallet, error)
	findByIDAndBrandLockedFn   func(ctx context.Context, brandID, id string) (*Wallet, error)
	findBasicActiveFn          func(ctx context.Context, brandID string) (*Wallet, error)
	unsetBasicFn               func(ctx context.Context, brandID string) error
	updateBalanceFn            func(ctx context.Context, walletID string, newBalance decimal.Decimal) error
	createTransactionFn        func(ctx context.Context, t *WalletTransaction) error
	findTransactionsByWalletFn func(ctx context.Context, brandID, walletID string) ([]WalletTransaction, error)
	sumDeductionsInMonthFn     func(ctx context.Context, walletID string, from, to time.Time) (decimal.Decimal, error)
}

func (f *fakeRepo) WithTx(tx *gorm.DB) Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeRepo) Create(ctx context.Context, w *Wallet) error {
	return f.createFn(ctx, w)
}

func (f *fakeRepo) Update(ctx context.Context, w *Wallet) error {
	return f.updateFn(ctx, w)
}

func (f *fakeRepo) FindAllByBrand(ctx context.Context, brandID string) ([]Wallet, error) {
	return f.findAllByBrandFn(ctx, brandID)
}

func (f *fakeRepo) FindByIDAndBrand(ctx context.Context, brandID, id string) (*Wallet, error) {
	return f.findByIDAndBrandFn(ctx, brandID, id)
}

func (f *fakeRepo) FindByIDAndBrandForUpdate(ctx context.Context, brandID, id string) (*Wallet, error) {
	return f.findByIDAndBrandLockedFn(ctx, brandID, id)
}

func (f *fakeRepo) FindBasicActive(ctx context.Context, brandID string) (*Wallet, error) {
	return f.findBasicActiveFn(ctx, brandID)
}

func (f *fakeRepo) UnsetBasic(ctx context.Context, brandID string) error {
	return f.unsetBasicFn(ctx, brandID)
}

func (f *fakeRepo) UpdateBalance(ctx context.Context, walletID string, newBalance decimal.Decimal) error {
	return f.updateBalanceFn(ctx, walletID, newBalance)
}

func (f *fakeRepo) CreateTransaction(ctx context.Context, t *WalletTransaction) error {
	return f.createTransactionFn(ctx, t)
}

func (f *fakeRepo) FindTransactionsByWallet(ctx context.Context, brandID, walletID string) ([]WalletTransaction, error) {
	return f.findTransactionsByWalletFn(ctx, brandID, walletID)
}

func (f *fakeRepo) SumDeductionsInMonth(ctx context.Context, walletID string, from, to time.Time) (decimal.Decimal, error) {
	return f.sumDeductionsInMonthFn(ctx, walletID, from, to)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLedgerDebitWritesExactlyOneTransaction(t *testing.T) {
	brandID := uuid.New()
	walletID := uuid.New()

	var savedBalance decimal.Decimal
	var recorded []WalletTransaction

	repo := &fakeRepo{
		findByIDAndBrandLockedFn: func(ctx context.Context, b, id string) (*Wallet, error) {
			return &Wallet{ID: walletID, BrandID: brandID, CurrentBalance: dec("20000.00")}, nil
		},
		updateBalanceFn: func(ctx context.Context, id string, newBalance decimal.Decimal) error {
			savedBalance = newBalance
			return nil
		},
		createTransactionFn: func(ctx context.Context, tr *WalletTransaction) error {
			recorded = append(recorded, *tr)
			return nil
		},
	}

	ledger := NewLedger(repo)
	refID := uuid.New()
	w, tr, err := ledger.Debit(context.Background(), brandID.String(), walletID.String(), dec("5000.00"), EntryParams{
		Description:   "Salary payment",
		ReferenceType: "salary_payment",
		ReferenceID:   &refID,
	})

	assert.NoError(t, err)
	assert.True(t, savedBalance.Equal(dec("15000.00")))
	assert.True(t, w.CurrentBalance.Equal(dec("15000.00")))
	assert.Len(t, recorded, 1)
	assert.Equal(t, TxTypeCostDeduction, tr.TransactionType)
	assert.True(t, tr.Amount.Equal(dec("5000.00")), "amount stored as positive magnitude")
	assert.Equal(t, "salary_payment", tr.ReferenceType)
	assert.Equal(t, refID, *tr.ReferenceID)
}

func TestLedgerDebitMayPushBalanceNegative(t *testing.T) {
	brandID := uuid.New()
	walletID := uuid.New()

	var savedBalance decimal.Decimal

	repo := &fakeRepo{
		findByIDAndBrandLockedFn: func(ctx context.Context, b, id string) (*Wallet, error) {
			return &Wallet{ID: walletID, BrandID: brandID, CurrentBalance: dec("100.00")}, nil
		},
		updateBalanceFn: func(ctx context.Context, id string, newBalance decimal.Decimal) error {
			savedBalance = newBalance
			return nil
		},
		createTransactionFn: func(ctx context.Context, tr *WalletTransaction) error {
			return nil
		},
	}

	ledger := NewLedger(repo)
	_, _, err := ledger.Debit(context.Background(), brandID.String(), walletID.String(), dec("250.00"), EntryParams{})

	assert.NoError(t, err)
	assert.True(t, savedBalance.Equal(dec("-150.00")))
}

func TestLedgerCreditAddsAmount(t *testing.T) {
	brandID := uuid.New()
	walletID := uuid.New()

	var savedBalance decimal.Decimal
	var recorded []WalletTransaction

	repo := &fakeRepo{
		findByIDAndBrandLockedFn: func(ctx context.Context, b, id string) (*Wallet, error) {
			return &Wallet{ID: walletID, BrandID: brandID, CurrentBalance: dec("100.00")}, nil
		},
		updateBalanceFn: func(ctx context.Context, id string, newBalance decimal.Decimal) error {
			savedBalance = newBalance
			return nil
		},
		createTransactionFn: func(ctx context.Context, tr *WalletTransaction) error {
			recorded = append(recorded, *tr)
			return nil
		},
	}

	ledger := NewLedger(repo)
	_, tr, err := ledger.Credit(context.Background(), brandID.String(), walletID.String(), dec("40.00"), EntryParams{})

	assert.NoError(t, err)
	assert.True(t, savedBalance.Equal(dec("140.00")))
	assert.Equal(t, TxTypeDeposit, tr.TransactionType)
	assert.Len(t, recorded, 1)
}

func TestLedgerDebitWalletNotFound(t *testing.T) {
	repo := &fakeRepo{
		findByIDAndBrandLockedFn: func(ctx context.Context, b, id string) (*Wallet, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	ledger := NewLedger(repo)
	_, _, err := ledger.Debit(context.Background(), uuid.NewString(), uuid.NewString(), dec("10.00"), EntryParams{})

	assert.ErrorIs(t, err, walleterrors.ErrWalletNotFound)
}

func TestLedgerRejectsZeroAmount(t *testing.T) {
	ledger := NewLedger(&fakeRepo{})
	_, _, err := ledger.Credit(context.Background(), uuid.NewString(), uuid.NewString(), decimal.Zero, EntryParams{})

	assert.ErrorIs(t, err, walleterrors.ErrInvalidAmount)
}

func TestLedgerTransferRejectsSameWallet(t *testing.T) {
	ledger := NewLedger(&fakeRepo{})
	id := uuid.NewString()
	err := ledger.Transfer(context.Background(), uuid.NewString(), id, id, dec("10.00"), EntryParams{})

	assert.ErrorIs(t, err, walleterrors.ErrSameWallet)
}

func TestLedgerTransferWritesBothLegs(t *testing.T) {
	brandID := uuid.New()
	fromID := uuid.New()
	toID := uuid.New()

	balances := map[string]decimal.Decimal{
		fromID.String(): dec("500.00"),
		toID.String():   dec("50.00"),
	}
	var recorded []WalletTransaction

	repo := &fakeRepo{
		findByIDAndBrandLockedFn: func(ctx context.Context, b, id string) (*Wallet, error) {
			parsed := uuid.MustParse(id)
			return &Wallet{ID: parsed, BrandID: brandID, CurrentBalance: balances[id]}, nil
		},
		updateBalanceFn: func(ctx context.Context, id string, newBalance decimal.Decimal) error {
			balances[id] = newBalance
			return nil
		},
		createTransactionFn: func(ctx context.Context, tr *WalletTransaction) error {
			recorded = append(recorded, *tr)
			return nil
		},
	}

	ledger := NewLedger(repo)
	err := ledger.Transfer(context.Background(), brandID.String(), fromID.String(), toID.String(), dec("120.00"), EntryParams{})

	assert.NoError(t, err)
	assert.True(t, balances[fromID.String()].Equal(dec("380.00")))
	assert.True(t, balances[toID.String()].Equal(dec("170.00")))
	assert.Len(t, recorded, 2)
	assert.Equal(t, TxTypeTransferOut, recorded[0].TransactionType)
	assert.Equal(t, TxTypeTransferIn, recorded[1].TransactionType)
	assert.True(t, recorded[0].Amount.Equal(dec("120.00")))
	assert.True(t, recorded[1].Amount.Equal(dec("120.00")))
}
