package wallet

import (
	"context"
	"testing"

	walleterrors "go-finboard/internal/wallet/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return gdb, mock
}

func TestServiceCreateUnsetsPreviousBasicWallet(t *testing.T) {
	gdb, mock := newTestDB(t)
	brandID := uuid.New()

	var unsetBrand string
	var created *Wallet

	repo := &fakeRepo{
		unsetBasicFn: func(ctx context.Context, b string) error {
			unsetBrand = b
			return nil
		},
		createFn: func(ctx context.Context, w *Wallet) error {
			created = w
			return nil
		},
	}

	mock.ExpectBegin()
	mock.ExpectCommit()

	svc := NewService(gdb, repo, NewLedger(repo))
	resp, err := svc.Create(context.Background(), brandID.String(), CreateWalletRequest{
		Name:           "Main",
		InitialBalance: "1000.00",
		IsBasic:        true,
	})

	assert.NoError(t, err)
	assert.Equal(t, brandID.String(), unsetBrand)
	assert.NotNil(t, created)
	assert.True(t, created.IsBasic)
	assert.True(t, created.IsActive)
	assert.Equal(t, "1000.00", resp.CurrentBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceCreateRejectsNegativeInitialBalance(t *testing.T) {
	gdb, _ := newTestDB(t)

	svc := NewService(gdb, &fakeRepo{}, NewLedger(&fakeRepo{}))
	_, err := svc.Create(context.Background(), uuid.NewString(), CreateWalletRequest{
		Name:           "Main",
		InitialBalance: "-5.00",
	})

	assert.ErrorIs(t, err, walleterrors.ErrInvalidAmount)
}

func TestServiceCreateRejectsInvalidBrandID(t *testing.T) {
	gdb, _ := newTestDB(t)

	svc := NewService(gdb, &fakeRepo{}, NewLedger(&fakeRepo{}))
	_, err := svc.Create(context.Background(), "not-a-uuid", CreateWalletRequest{Name: "Main"})

	assert.ErrorIs(t, err, walleterrors.ErrInvalidBrandID)
}

func TestServiceGetByIDNotFound(t *testing.T) {
	gdb, _ := newTestDB(t)

	repo := &fakeRepo{
		findByIDAndBrandFn: func(ctx context.Context, brandID, id string) (*Wallet, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(gdb, repo, NewLedger(repo))
	_, err := svc.GetByID(context.Background(), uuid.NewString(), uuid.NewString())

	assert.ErrorIs(t, err, walleterrors.ErrWalletNotFound)
}

func TestServiceTransferRollsBackOnLedgerError(t *testing.T) {
	gdb, mock := newTestDB(t)
	brandID := uuid.New()

	repo := &fakeRepo{
		findByIDAndBrandLockedFn: func(ctx context.Context, b, id string) (*Wallet, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	mock.ExpectBegin()
	mock.ExpectRollback()

	svc := NewService(gdb, repo, NewLedger(repo))
	err := svc.Transfer(context.Background(), brandID.String(), TransferRequest{
		FromWalletID: uuid.NewString(),
		ToWalletID:   uuid.NewString(),
		Amount:       "50.00",
	})

	assert.ErrorIs(t, err, walleterrors.ErrWalletNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceTransferRejectsNonPositiveAmount(t *testing.T) {
	gdb, _ := newTestDB(t)

	svc := NewService(gdb, &fakeRepo{}, NewLedger(&fakeRepo{}))
	err := svc.Transfer(context.Background(), uuid.NewString(), TransferRequest{
		FromWalletID: uuid.NewString(),
		ToWalletID:   uuid.NewString(),
		Amount:       "0",
	})

	assert.ErrorIs(t, err, walleterrors.ErrInvalidAmount)
}

func TestServiceDepositCreditsWallet(t *testing.T) {
	gdb, mock := newTestDB(t)
	brandID := uuid.New()
	walletID := uuid.New()

	var savedBalance decimal.Decimal

	repo := &fakeRepo{
		findByIDAndBrandLockedFn: func(ctx context.Context, b, id string) (*Wallet, error) {
			return &Wallet{ID: walletID, BrandID: brandID, CurrentBalance: dec("10.00"), IsActive: true}, nil
		},
		updateBalanceFn: func(ctx context.Context, id string, newBalance decimal.Decimal) error {
			savedBalance = newBalance
			return nil
		},
		createTransactionFn: func(ctx context.Context, tr *WalletTransaction) error {
			return nil
		},
	}

	mock.ExpectBegin()
	mock.ExpectCommit()

	svc := NewService(gdb, repo, NewLedger(repo))
	resp, err := svc.Deposit(context.Background(), brandID.String(), walletID.String(), DepositRequest{Amount: "25.50"})

	assert.NoError(t, err)
	assert.True(t, savedBalance.Equal(dec("35.50")))
	assert.Equal(t, "35.50", resp.CurrentBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceUpdateRejectsInvalidMonthlyBudget(t *testing.T) {
	gdb, _ := newTestDB(t)

	bad := "-100"
	svc := NewService(gdb, &fakeRepo{}, NewLedger(&fakeRepo{}))
	_, err := svc.Update(context.Background(), uuid.NewString(), uuid.NewString(), UpdateWalletRequest{
		Name:          "Main",
		MonthlyBudget: &bad,
	})

	assert.ErrorIs(t, err, walleterrors.ErrInvalidMonthlyBudget)
}
