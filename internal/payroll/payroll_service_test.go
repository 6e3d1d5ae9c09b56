package payroll

import (
	"context"
	"testing"
	"time"

	"go-finboard/internal/budget"
	"go-finboard/internal/cashtransaction"
	"go-finboard/internal/cost"
	"go-finboard/internal/employee"
	employeeerrors "go-finboard/internal/employee/errors"
	"go-finboard/internal/messaging/kafka"
	"go-finboard/internal/notification"
	payrollerrors "go-finboard/internal/payroll/errors"
	"go-finboard/internal/wallet"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

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

type fakePayrollRepo struct {
	createSalaryPaymentFn           func(ctx context.Context, sp *SalaryPayment) error
	findSalaryPaymentByIDAndBrandFn func(ctx context.Context, brandID, id string) (*SalaryPayment, error)
	findAllSalaryPaymentsByBrandFn  func(ctx context.Context, brandID, status string) ([]SalaryPayment, error)
	markSalaryPaymentApprovedFn     func(ctx context.Context, id string, cashTransactionID uuid.UUID) error
	deleteSalaryPaymentFn           func(ctx context.Context, id string) error
	createPendingCostFn             func(ctx context.Context, pc *PendingCost) error
	findPendingCostByIDAndBrandFn   func(ctx context.Context, brandID, id string) (*PendingCost, error)
	findAllPendingCostsByBrandFn    func(ctx context.Context, brandID, status string) ([]PendingCost, error)
	markPendingCostProcessedFn      func(ctx context.Context, id, newStatus string, processedBy uuid.UUID) (int64, error)
}

func (f *fakePayrollRepo) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakePayrollRepo) CreateSalaryPayment(ctx context.Context, sp *SalaryPayment) error {
	return f.createSalaryPaymentFn(ctx, sp)
}

func (f *fakePayrollRepo) FindSalaryPaymentByIDAndBrand(ctx context.Context, brandID, id string) (*SalaryPayment, error) {
	return f.findSalaryPaymentByIDAndBrandFn(ctx, brandID, id)
}

func (f *fakePayrollRepo) FindAllSalaryPaymentsByBrand(ctx context.Context, brandID, status string) ([]SalaryPayment, error) {
	return f.findAllSalaryPaymentsByBrandFn(ctx, brandID, status)
}

func (f *fakePayrollRepo) MarkSalaryPaymentApproved(ctx context.Context, id string, cashTransactionID uuid.UUID) error {
	return f.markSalaryPaymentApprovedFn(ctx, id, cashTransactionID)
}

func (f *fakePayrollRepo) DeleteSalaryPayment(ctx context.Context, id string) error {
	return f.deleteSalaryPaymentFn(ctx, id)
}

func (f *fakePayrollRepo) CreatePendingCost(ctx context.Context, pc *PendingCost) error {
	return f.createPendingCostFn(ctx, pc)
}

func (f *fakePayrollRepo) FindPendingCostByIDAndBrand(ctx context.Context, brandID, id string) (*PendingCost, error) {
	return f.findPendingCostByIDAndBrandFn(ctx, brandID, id)
}

func (f *fakePayrollRepo) FindAllPendingCostsByBrand(ctx context.Context, brandID, status string) ([]PendingCost, error) {
	return f.findAllPendingCostsByBrandFn(ctx, brandID, status)
}

func (f *fakePayrollRepo) MarkPendingCostProcessed(ctx context.Context, id, newStatus string, processedBy uuid.UUID) (int64, error) {
	return f.markPendingCostProcessedFn(ctx, id, newStatus, processedBy)
}

type fakeEmployeeRepo struct {
	findByIDAndBrandFn func(ctx context.Context, brandID, id string) (*employee.Employee, error)
}

func (f *fakeEmployeeRepo) WithTx(tx *gorm.DB) employee.Repository         { return f }
func (f *fakeEmployeeRepo) Create(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) Update(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) FindAllByBrand(ctx context.Context, brandID string) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) FindOptionsByBrand(ctx context.Context, brandID string) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) FindByIDAndBrand(ctx context.Context, brandID, id string) (*employee.Employee, error) {
	return f.findByIDAndBrandFn(ctx, brandID, id)
}
func (f *fakeEmployeeRepo) Delete(ctx context.Context, brandID, id string) error { return nil }

type fakeCostRepo struct {
	createFn     func(ctx context.Context, c *cost.Cost) error
	sumInRangeFn func(ctx context.Context, brandID string, from, to time.Time) (decimal.Decimal, error)
}

func (f *fakeCostRepo) WithTx(tx *gorm.DB) cost.Repository { return f }
func (f *fakeCostRepo) Create(ctx context.Context, c *cost.Cost) error {
	if f.createFn != nil {
		return f.createFn(ctx, c)
	}
	return nil
}
func (f *fakeCostRepo) SumInRange(ctx context.Context, brandID string, from, to time.Time) (decimal.Decimal, error) {
	if f.sumInRangeFn != nil {
		return f.sumInRangeFn(ctx, brandID, from, to)
	}
	return decimal.Zero, nil
}
func (f *fakeCostRepo) FindAllByBrand(ctx context.Context, brandID string) ([]cost.Cost, error) {
	return nil, nil
}
func (f *fakeCostRepo) FindAllByBrandInRange(ctx context.Context, brandID string, from, to time.Time) ([]cost.Cost, error) {
	return nil, nil
}

func (f *fakeCostRepo) FindByIDAndBrand(ctx context.Context, brandID, id string) (*cost.Cost, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeCostRepo) Delete(ctx context.Context, brandID, id string) error { return nil }

type fakeWalletRepo struct {
	findBasicActiveFn        func(ctx context.Context, brandID string) (*wallet.Wallet, error)
	updateBalanceFn          func(ctx context.Context, walletID string, newBalance decimal.Decimal) error
	createTransactionFn      func(ctx context.Context, t *wallet.WalletTransaction) error
	findByIDAndBrandForUpdFn func(ctx context.Context, brandID, id string) (*wallet.Wallet, error)
	sumDeductionsInMonthFn   func(ctx context.Context, walletID string, from, to time.Time) (decimal.Decimal, error)
}

func (f *fakeWalletRepo) WithTx(tx *gorm.DB) wallet.Repository              { return f }
func (f *fakeWalletRepo) Create(ctx context.Context, w *wallet.Wallet) error { return nil }
func (f *fakeWalletRepo) Update(ctx context.Context, w *wallet.Wallet) error { return nil }
func (f *fakeWalletRepo) FindAllByBrand(ctx context.Context, brandID string) ([]wallet.Wallet, error) {
	return nil, nil
}
func (f *fakeWalletRepo) FindByIDAndBrand(ctx context.Context, brandID, id string) (*wallet.Wallet, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeWalletRepo) FindByIDAndBrandForUpdate(ctx context.Context, brandID, id string) (*wallet.Wallet, error) {
	return f.findByIDAndBrandForUpdFn(ctx, brandID, id)
}
func (f *fakeWalletRepo) FindBasicActive(ctx context.Context, brandID string) (*wallet.Wallet, error) {
	return f.findBasicActiveFn(ctx, brandID)
}
func (f *fakeWalletRepo) UnsetBasic(ctx context.Context, brandID string) error { return nil }
func (f *fakeWalletRepo) UpdateBalance(ctx context.Context, walletID string, newBalance decimal.Decimal) error {
	return f.updateBalanceFn(ctx, walletID, newBalance)
}
func (f *fakeWalletRepo) CreateTransaction(ctx context.Context, t *wallet.WalletTransaction) error {
	return f.createTransactionFn(ctx, t)
}
func (f *fakeWalletRepo) FindTransactionsByWallet(ctx context.Context, brandID, walletID string) ([]wallet.WalletTransaction, error) {
	return nil, nil
}
func (f *fakeWalletRepo) SumDeductionsInMonth(ctx context.Context, walletID string, from, to time.Time) (decimal.Decimal, error) {
	return f.sumDeductionsInMonthFn(ctx, walletID, from, to)
}

type fakeBudgetRepo struct {
	findByBrandAndMonthFn func(ctx context.Context, brandID, month string) (*budget.MonthlyBudget, error)
}

func (f *fakeBudgetRepo) WithTx(tx *gorm.DB) budget.Repository { return f }
func (f *fakeBudgetRepo) Upsert(ctx context.Context, b *budget.MonthlyBudget) error { return nil }
func (f *fakeBudgetRepo) FindByBrandAndMonth(ctx context.Context, brandID, month string) (*budget.MonthlyBudget, error) {
	if f.findByBrandAndMonthFn != nil {
		return f.findByBrandAndMonthFn(ctx, brandID, month)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeBudgetRepo) FindAllByBrand(ctx context.Context, brandID string) ([]budget.MonthlyBudget, error) {
	return nil, nil
}
func (f *fakeBudgetRepo) Delete(ctx context.Context, brandID, id string) error { return nil }

type fakeCashRepo struct {
	createFn func(ctx context.Context, ct *cashtransaction.CashTransaction) error
}

func (f *fakeCashRepo) WithTx(tx *gorm.DB) cashtransaction.Repository { return f }
func (f *fakeCashRepo) Create(ctx context.Context, ct *cashtransaction.CashTransaction) error {
	return f.createFn(ctx, ct)
}
func (f *fakeCashRepo) FindAllByBrand(ctx context.Context, brandID string, filter cashtransaction.ListFilter) ([]cashtransaction.CashTransaction, error) {
	return nil, nil
}
func (f *fakeCashRepo) FindByIDAndBrand(ctx context.Context, brandID, id string) (*cashtransaction.CashTransaction, error) {
	return nil, gorm.ErrRecordNotFound
}

type fakeOutbox struct {
	events []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *gorm.DB) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.events = append(f.events, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error                 { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

type fakeNotifRepo struct {
	created []notification.Notification
}

func (f *fakeNotifRepo) WithTx(tx *gorm.DB) notification.Repository { return f }
func (f *fakeNotifRepo) Create(ctx context.Context, n *notification.Notification) error {
	f.created = append(f.created, *n)
	return nil
}
func (f *fakeNotifRepo) FindAllByBrand(ctx context.Context, brandID string, unreadOnly bool) ([]notification.Notification, error) {
	return nil, nil
}
func (f *fakeNotifRepo) CountUnread(ctx context.Context, brandID string) (int64, error) {
	return 0, nil
}
func (f *fakeNotifRepo) MarkRead(ctx context.Context, brandID, id string) (int64, error) {
	return 0, nil
}
func (f *fakeNotifRepo) MarkAllRead(ctx context.Context, brandID string) error { return nil }

func TestCreatePaymentRaisesPaymentAndPendingCost(t *testing.T) {
	gdb, mock := newTestDB(t)
	brandID := uuid.New()
	employeeID := uuid.New()

	var createdPayment *SalaryPayment
	var createdPendingCost *PendingCost

	repo := &fakePayrollRepo{
		createSalaryPaymentFn: func(ctx context.Context, sp *SalaryPayment) error {
			createdPayment = sp
			return nil
		},
		createPendingCostFn: func(ctx context.Context, pc *PendingCost) error {
			createdPendingCost = pc
			return nil
		},
	}
	empRepo := &fakeEmployeeRepo{
		findByIDAndBrandFn: func(ctx context.Context, b, id string) (*employee.Employee, error) {
			return &employee.Employee{
				ID:            employeeID,
				BrandID:       brandID,
				FullName:      "Jordan Reyes",
				MonthlySalary: dec("5000.00"),
				Active:        true,
			}, nil
		},
	}
	outbox := &fakeOutbox{}
	notifRepo := &fakeNotifRepo{}

	mock.ExpectBegin()
	mock.ExpectCommit()

	svc := NewService(ServiceDeps{
		DB:           gdb,
		Repo:         repo,
		EmployeeRepo: empRepo,
		Outbox:       outbox,
		Emitter:      notification.NewEmitter(notifRepo),
	})

	resp, err := svc.CreatePayment(context.Background(), brandID.String(), CreateSalaryPaymentRequest{
		EmployeeID:  employeeID.String(),
		PaymentDate: "2026-03-15",
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusPending, createdPayment.Status)
	assert.True(t, createdPayment.Amount.Equal(dec("5000.00")), "amount defaults to monthly salary")
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), createdPayment.PaymentDate)
	assert.Equal(t, "2026-03", createdPayment.PeriodMonth, "period derived from the payment date")
	assert.Equal(t, createdPayment.PaymentDate, createdPendingCost.PaymentDate)
	assert.Equal(t, PendingCostCategorySalaries, createdPendingCost.Category)
	assert.Equal(t, ReferenceTypeSalaryPayment, createdPendingCost.ReferenceType)
	assert.Equal(t, createdPayment.ID, *createdPendingCost.ReferenceID)
	assert.Equal(t, StatusPending, resp.Status)
	assert.Equal(t, createdPendingCost.ID.String(), resp.PendingCostID)

	assert.Len(t, outbox.events, 1)
	assert.Equal(t, "salary_payment_requested", outbox.events[0].EventType)

	assert.Len(t, notifRepo.created, 1)
	assert.Equal(t, notification.TypeSalaryPaymentPending, notifRepo.created[0].Type)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePaymentRejectsInactiveEmployee(t *testing.T) {
	gdb, _ := newTestDB(t)
	brandID := uuid.New()

	empRepo := &fakeEmployeeRepo{
		findByIDAndBrandFn: func(ctx context.Context, b, id string) (*employee.Employee, error) {
			return &employee.Employee{ID: uuid.New(), BrandID: brandID, Active: false}, nil
		},
	}

	svc := NewService(ServiceDeps{DB: gdb, Repo: &fakePayrollRepo{}, EmployeeRepo: empRepo})
	_, err := svc.CreatePayment(context.Background(), brandID.String(), CreateSalaryPaymentRequest{
		EmployeeID:  uuid.NewString(),
		PaymentDate: "2026-03-15",
	})

	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeInactive)
}

func TestCreatePaymentRejectsBadPaymentDate(t *testing.T) {
	gdb, _ := newTestDB(t)

	svc := NewService(ServiceDeps{DB: gdb, Repo: &fakePayrollRepo{}, EmployeeRepo: &fakeEmployeeRepo{}})
	_, err := svc.CreatePayment(context.Background(), uuid.NewString(), CreateSalaryPaymentRequest{
		EmployeeID:  uuid.NewString(),
		PaymentDate: "March 15 2026",
	})

	assert.ErrorIs(t, err, payrollerrors.ErrInvalidPaymentDate)
}

// approvalFixture wires a full approval saga over fakes. The wallet starts at
// 20000.00 with a 6000.00 monthly budget and 500.00 already deducted this
// month.
type approvalFixture struct {
	brandID       uuid.UUID
	walletID      uuid.UUID
	paymentID     uuid.UUID
	pendingCostID uuid.UUID
	reviewerID    uuid.UUID
	paymentDate   time.Time

	walletBalance   decimal.Decimal
	createdCost     *cost.Cost
	createdCash     *cashtransaction.CashTransaction
	walletTxs       []wallet.WalletTransaction
	linkedCashTxnID *uuid.UUID
	paymentDeleted  bool

	repo       *fakePayrollRepo
	walletRepo *fakeWalletRepo
	costRepo   *fakeCostRepo
	cashRepo   *fakeCashRepo
	budgetRepo *fakeBudgetRepo
	outbox     *fakeOutbox
	notifRepo  *fakeNotifRepo
}

func newApprovalFixture() *approvalFixture {
	f := &approvalFixture{
		brandID:       uuid.New(),
		walletID:      uuid.New(),
		paymentID:     uuid.New(),
		pendingCostID: uuid.New(),
		reviewerID:    uuid.New(),
		paymentDate:   time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		walletBalance: dec("20000.00"),
	}

	payment := SalaryPayment{
		ID:          f.paymentID,
		BrandID:     f.brandID,
		EmployeeID:  uuid.New(),
		Amount:      dec("5000.00"),
		PaymentDate: f.paymentDate,
		PeriodMonth: "2026-03",
		Status:      StatusPending,
	}
	paymentRef := f.paymentID
	pendingCost := PendingCost{
		ID:            f.pendingCostID,
		BrandID:       f.brandID,
		Category:      PendingCostCategorySalaries,
		Amount:        dec("5000.00"),
		PaymentDate:   f.paymentDate,
		Description:   "Salary 2026-03",
		Status:        StatusPending,
		ReferenceType: ReferenceTypeSalaryPayment,
		ReferenceID:   &paymentRef,
	}

	f.repo = &fakePayrollRepo{
		findPendingCostByIDAndBrandFn: func(ctx context.Context, brandID, id string) (*PendingCost, error) {
			pc := pendingCost
			return &pc, nil
		},
		markPendingCostProcessedFn: func(ctx context.Context, id, newStatus string, processedBy uuid.UUID) (int64, error) {
			return 1, nil
		},
		findSalaryPaymentByIDAndBrandFn: func(ctx context.Context, brandID, id string) (*SalaryPayment, error) {
			sp := payment
			return &sp, nil
		},
		markSalaryPaymentApprovedFn: func(ctx context.Context, id string, cashTransactionID uuid.UUID) error {
			f.linkedCashTxnID = &cashTransactionID
			return nil
		},
		deleteSalaryPaymentFn: func(ctx context.Context, id string) error {
			f.paymentDeleted = true
			return nil
		},
	}

	monthlyBudget := dec("6000.00")
	f.walletRepo = &fakeWalletRepo{
		findBasicActiveFn: func(ctx context.Context, brandID string) (*wallet.Wallet, error) {
			w := wallet.Wallet{
				ID:             f.walletID,
				BrandID:        f.brandID,
				Name:           "Main",
				CurrentBalance: f.walletBalance,
				MonthlyBudget:  &monthlyBudget,
				IsBasic:        true,
				IsActive:       true,
			}
			return &w, nil
		},
		findByIDAndBrandForUpdFn: func(ctx context.Context, brandID, id string) (*wallet.Wallet, error) {
			w := wallet.Wallet{
				ID:             f.walletID,
				BrandID:        f.brandID,
				Name:           "Main",
				CurrentBalance: f.walletBalance,
				MonthlyBudget:  &monthlyBudget,
				IsBasic:        true,
				IsActive:       true,
			}
			return &w, nil
		},
		updateBalanceFn: func(ctx context.Context, walletID string, newBalance decimal.Decimal) error {
			f.walletBalance = newBalance
			return nil
		},
		createTransactionFn: func(ctx context.Context, t *wallet.WalletTransaction) error {
			f.walletTxs = append(f.walletTxs, *t)
			return nil
		},
		sumDeductionsInMonthFn: func(ctx context.Context, walletID string, from, to time.Time) (decimal.Decimal, error) {
			// 500.00 deducted earlier this month plus the current 5000.00
			return dec("5500.00"), nil
		},
	}

	f.costRepo = &fakeCostRepo{
		createFn: func(ctx context.Context, c *cost.Cost) error {
			f.createdCost = c
			return nil
		},
	}
	f.cashRepo = &fakeCashRepo{
		createFn: func(ctx context.Context, ct *cashtransaction.CashTransaction) error {
			f.createdCash = ct
			return nil
		},
	}
	f.budgetRepo = &fakeBudgetRepo{}
	f.outbox = &fakeOutbox{}
	f.notifRepo = &fakeNotifRepo{}

	return f
}

func (f *approvalFixture) service(gdb *gorm.DB) Service {
	return NewService(ServiceDeps{
		DB:           gdb,
		Repo:         f.repo,
		EmployeeRepo: &fakeEmployeeRepo{},
		CostRepo:     f.costRepo,
		WalletRepo:   f.walletRepo,
		Ledger:       wallet.NewLedger(f.walletRepo),
		BudgetRepo:   f.budgetRepo,
		CashRepo:     f.cashRepo,
		Outbox:       f.outbox,
		Emitter:      notification.NewEmitter(f.notifRepo),
	})
}

func TestReviewApproveRunsFullSaga(t *testing.T) {
	gdb, mock := newTestDB(t)
	f := newApprovalFixture()

	mock.ExpectBegin()
	mock.ExpectCommit()

	svc := f.service(gdb)
	res, err := svc.Review(context.Background(), f.brandID.String(), f.pendingCostID.String(), f.reviewerID.String(), ReviewPendingCostRequest{Action: "approve"})

	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, res.Status)
	assert.True(t, res.WalletDebited)
	assert.NotNil(t, res.CostID)

	// cost materialized as an operational manual entry dated on the payment
	// date, not the approval time
	assert.NotNil(t, f.createdCost)
	assert.Equal(t, "operational", f.createdCost.Category)
	assert.Equal(t, cost.SourceManual, f.createdCost.Source)
	assert.True(t, f.createdCost.Amount.Equal(dec("5000.00")))
	assert.Equal(t, f.paymentDate, f.createdCost.Date)

	// wallet debited 20000 -> 15000 with exactly one deduction row
	assert.True(t, f.walletBalance.Equal(dec("15000.00")))
	assert.Len(t, f.walletTxs, 1)
	assert.Equal(t, wallet.TxTypeCostDeduction, f.walletTxs[0].TransactionType)
	assert.Equal(t, ReferenceTypeSalaryPayment, f.walletTxs[0].ReferenceType)
	assert.Equal(t, f.paymentID, *f.walletTxs[0].ReferenceID)

	// cash flow line: operating section, salaries category, negative amount
	assert.NotNil(t, f.createdCash)
	assert.Equal(t, cashtransaction.SectionOperating, f.createdCash.Section)
	assert.Equal(t, PendingCostCategorySalaries, f.createdCash.Category)
	assert.True(t, f.createdCash.Amount.Equal(dec("-5000.00")))
	assert.Equal(t, f.paymentDate, f.createdCash.TransactionDate)
	assert.Equal(t, f.paymentID, *f.createdCash.ReferenceID)

	// payment linked to the cash transaction
	assert.NotNil(t, f.linkedCashTxnID)
	assert.Equal(t, f.createdCash.ID, *f.linkedCashTxnID)

	assert.Len(t, f.outbox.events, 1)
	assert.Equal(t, "cost_approved", f.outbox.events[0].EventType)

	// 5500 of 6000 spent leaves ~8.3% remaining: low watermark alert
	assert.Len(t, f.notifRepo.created, 1)
	assert.Equal(t, notification.TypeWalletBudgetLow, f.notifRepo.created[0].Type)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewDeclineDeletesPayment(t *testing.T) {
	gdb, mock := newTestDB(t)
	f := newApprovalFixture()

	mock.ExpectBegin()
	mock.ExpectCommit()

	svc := f.service(gdb)
	res, err := svc.Review(context.Background(), f.brandID.String(), f.pendingCostID.String(), f.reviewerID.String(), ReviewPendingCostRequest{Action: "decline"})

	assert.NoError(t, err)
	assert.Equal(t, StatusDeclined, res.Status)
	assert.True(t, f.paymentDeleted)

	// no side effects beyond the status flip and deletion
	assert.Nil(t, f.createdCost)
	assert.Nil(t, f.createdCash)
	assert.Empty(t, f.walletTxs)
	assert.True(t, f.walletBalance.Equal(dec("20000.00")))
	assert.Empty(t, f.outbox.events)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewApproveWithoutBasicWalletSkipsDebit(t *testing.T) {
	gdb, mock := newTestDB(t)
	f := newApprovalFixture()
	f.walletRepo.findBasicActiveFn = func(ctx context.Context, brandID string) (*wallet.Wallet, error) {
		return nil, gorm.ErrRecordNotFound
	}

	mock.ExpectBegin()
	mock.ExpectCommit()

	svc := f.service(gdb)
	res, err := svc.Review(context.Background(), f.brandID.String(), f.pendingCostID.String(), f.reviewerID.String(), ReviewPendingCostRequest{Action: "approve"})

	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, res.Status)
	assert.False(t, res.WalletDebited)
	assert.Empty(t, f.walletTxs)

	// cost and cash transaction still materialize
	assert.NotNil(t, f.createdCost)
	assert.NotNil(t, f.createdCash)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewApproveWithoutPaymentReferenceSettlesCostOnly(t *testing.T) {
	gdb, mock := newTestDB(t)
	f := newApprovalFixture()
	f.repo.findPendingCostByIDAndBrandFn = func(ctx context.Context, brandID, id string) (*PendingCost, error) {
		return &PendingCost{
			ID:          f.pendingCostID,
			BrandID:     f.brandID,
			Category:    "operational",
			Amount:      dec("750.00"),
			PaymentDate: f.paymentDate,
			Description: "Warehouse restock",
			Status:      StatusPending,
		}, nil
	}

	mock.ExpectBegin()
	mock.ExpectCommit()

	svc := f.service(gdb)
	res, err := svc.Review(context.Background(), f.brandID.String(), f.pendingCostID.String(), f.reviewerID.String(), ReviewPendingCostRequest{Action: "approve"})

	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, res.Status)
	assert.Empty(t, res.SalaryPaymentID)

	// cost and debit land against the pending cost itself
	assert.NotNil(t, f.createdCost)
	assert.Equal(t, f.paymentDate, f.createdCost.Date)
	assert.True(t, res.WalletDebited)
	assert.Len(t, f.walletTxs, 1)
	assert.Equal(t, ReferenceTypePendingCost, f.walletTxs[0].ReferenceType)
	assert.Equal(t, f.pendingCostID, *f.walletTxs[0].ReferenceID)

	// no payment to link or delete
	assert.Nil(t, f.linkedCashTxnID)
	assert.False(t, f.paymentDeleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewApproveEmitsBrandBudgetExceeded(t *testing.T) {
	gdb, mock := newTestDB(t)
	f := newApprovalFixture()

	f.budgetRepo.findByBrandAndMonthFn = func(ctx context.Context, brandID, month string) (*budget.MonthlyBudget, error) {
		assert.Equal(t, "2026-03", month, "budget month follows the payment date")
		return &budget.MonthlyBudget{
			ID:          uuid.New(),
			BrandID:     f.brandID,
			Month:       month,
			BudgetLimit: dec("1000.00"),
		}, nil
	}
	f.costRepo.sumInRangeFn = func(ctx context.Context, brandID string, from, to time.Time) (decimal.Decimal, error) {
		return dec("900.00"), nil
	}

	mock.ExpectBegin()
	mock.ExpectCommit()

	svc := f.service(gdb)
	res, err := svc.Review(context.Background(), f.brandID.String(), f.pendingCostID.String(), f.reviewerID.String(), ReviewPendingCostRequest{Action: "approve"})

	// the approval goes through; the breach only notifies
	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, res.Status)

	types := make([]string, len(f.notifRepo.created))
	for i, n := range f.notifRepo.created {
		types[i] = n.Type
	}
	assert.Contains(t, types, notification.TypeBrandBudgetExceeded)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewAlreadyProcessedStatusGuard(t *testing.T) {
	gdb, mock := newTestDB(t)
	f := newApprovalFixture()
	f.repo.findPendingCostByIDAndBrandFn = func(ctx context.Context, brandID, id string) (*PendingCost, error) {
		return &PendingCost{ID: f.pendingCostID, BrandID: f.brandID, Status: StatusApproved}, nil
	}

	mock.ExpectBegin()
	mock.ExpectRollback()

	svc := f.service(gdb)
	_, err := svc.Review(context.Background(), f.brandID.String(), f.pendingCostID.String(), f.reviewerID.String(), ReviewPendingCostRequest{Action: "approve"})

	assert.ErrorIs(t, err, payrollerrors.ErrAlreadyProcessed)
	assert.Nil(t, f.createdCost)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewLosingTheRaceReturnsAlreadyProcessed(t *testing.T) {
	gdb, mock := newTestDB(t)
	f := newApprovalFixture()
	f.repo.markPendingCostProcessedFn = func(ctx context.Context, id, newStatus string, processedBy uuid.UUID) (int64, error) {
		// another reviewer settled the record between the read and the update
		return 0, nil
	}

	mock.ExpectBegin()
	mock.ExpectRollback()

	svc := f.service(gdb)
	_, err := svc.Review(context.Background(), f.brandID.String(), f.pendingCostID.String(), f.reviewerID.String(), ReviewPendingCostRequest{Action: "approve"})

	assert.ErrorIs(t, err, payrollerrors.ErrAlreadyProcessed)
	assert.Nil(t, f.createdCost)
	assert.Empty(t, f.walletTxs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRejectsUnknownAction(t *testing.T) {
	gdb, _ := newTestDB(t)
	f := newApprovalFixture()

	svc := f.service(gdb)
	_, err := svc.Review(context.Background(), f.brandID.String(), f.pendingCostID.String(), f.reviewerID.String(), ReviewPendingCostRequest{Action: "reject"})

	assert.ErrorIs(t, err, payrollerrors.ErrInvalidAction)
}

func TestReviewPendingCostNotFound(t *testing.T) {
	gdb, mock := newTestDB(t)
	f := newApprovalFixture()
	f.repo.findPendingCostByIDAndBrandFn = func(ctx context.Context, brandID, id string) (*PendingCost, error) {
		return nil, gorm.ErrRecordNotFound
	}

	mock.ExpectBegin()
	mock.ExpectRollback()

	svc := f.service(gdb)
	_, err := svc.Review(context.Background(), f.brandID.String(), f.pendingCostID.String(), f.reviewerID.String(), ReviewPendingCostRequest{Action: "approve"})

	assert.ErrorIs(t, err, payrollerrors.ErrPendingCostNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
