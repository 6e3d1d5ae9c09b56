package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-finboard/internal/budget"
	"go-finboard/internal/cashtransaction"
	"go-finboard/internal/cost"
	"go-finboard/internal/employee"
	employeeerrors "go-finboard/internal/employee/errors"
	"go-finboard/internal/events"
	"go-finboard/internal/messaging/kafka"
	"go-finboard/internal/notification"
	payrollerrors "go-finboard/internal/payroll/errors"
	"go-finboard/internal/shared/contextutil"
	"go-finboard/internal/wallet"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	CreatePayment(ctx context.Context, brandID string, req CreateSalaryPaymentRequest) (SalaryPaymentResponse, error)
	Review(ctx context.Context, brandID, pendingCostID, reviewerID string, req ReviewPendingCostRequest) (ReviewResultResponse, error)
	GetAllPayments(ctx context.Context, brandID, status string) ([]SalaryPaymentResponse, error)
	GetPaymentByID(ctx context.Context, brandID, id string) (SalaryPaymentResponse, error)
	GetAllPendingCosts(ctx context.Context, brandID, status string) ([]PendingCostResponse, error)
	GetPendingCostByID(ctx context.Context, brandID, id string) (PendingCostResponse, error)
}

type service struct {
	db           *gorm.DB
	repo         Repository
	employeeRepo employee.Repository
	costRepo     cost.Repository
	walletRepo   wallet.Repository
	ledger       *wallet.Ledger
	budgetRepo   budget.Repository
	cashRepo     cashtransaction.Repository
	outbox       kafka.OutboxRepository
	emitter      *notification.Emitter
	logger       *zap.Logger
}

type ServiceDeps struct {
	DB           *gorm.DB
	Repo         Repository
	EmployeeRepo employee.Repository
	CostRepo     cost.Repository
	WalletRepo   wallet.Repository
	Ledger       *wallet.Ledger
	BudgetRepo   budget.Repository
	CashRepo     cashtransaction.Repository
	Outbox       kafka.OutboxRepository
	Emitter      *notification.Emitter
	Logger       *zap.Logger
}

func NewService(deps ServiceDeps) Service {
	l := zap.L().Named("payroll.service")
	if deps.Logger != nil {
		l = deps.Logger.Named("payroll.service")
	}
	return &service{
		db:           deps.DB,
		repo:         deps.Repo,
		employeeRepo: deps.EmployeeRepo,
		costRepo:     deps.CostRepo,
		walletRepo:   deps.WalletRepo,
		ledger:       deps.Ledger,
		budgetRepo:   deps.BudgetRepo,
		cashRepo:     deps.CashRepo,
		outbox:       deps.Outbox,
		emitter:      deps.Emitter,
		logger:       l,
	}
}

// CreatePayment raises a salary payment and its approval gate in one
// transaction. The amount defaults to the employee's monthly salary when the
// request leaves it empty.
func (s *service) CreatePayment(ctx context.Context, brandID string, req CreateSalaryPaymentRequest) (SalaryPaymentResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create salary payment requested",
		zap.String("request_id", rid),
		zap.String("brand_id", brandID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("payment_date", req.PaymentDate),
	)

	brandUUID, err := uuid.Parse(brandID)
	if err != nil {
		return SalaryPaymentResponse{}, payrollerrors.ErrInvalidBrandID
	}

	paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
	if err != nil {
		return SalaryPaymentResponse{}, payrollerrors.ErrInvalidPaymentDate
	}
	periodMonth := paymentDate.Format("2006-01")

	emp, err := s.employeeRepo.FindByIDAndBrand(ctx, brandID, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryPaymentResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return SalaryPaymentResponse{}, err
	}
	if !emp.Active {
		return SalaryPaymentResponse{}, employeeerrors.ErrEmployeeInactive
	}

	amount := emp.MonthlySalary
	if req.Amount != "" {
		amount, err = decimal.NewFromString(req.Amount)
		if err != nil || !amount.IsPositive() {
			return SalaryPaymentResponse{}, payrollerrors.ErrInvalidAmount
		}
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create salary payment begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return SalaryPaymentResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sp := &SalaryPayment{
		ID:          uuid.New(),
		BrandID:     brandUUID,
		EmployeeID:  emp.ID,
		Amount:      amount,
		PaymentDate: paymentDate,
		PeriodMonth: periodMonth,
		Status:      StatusPending,
		Note:        req.Note,
	}
	if err := qtx.CreateSalaryPayment(ctx, sp); err != nil {
		s.logger.Error("create salary payment persist failed", zap.Error(err))
		return SalaryPaymentResponse{}, err
	}

	spID := sp.ID
	pc := &PendingCost{
		ID:            uuid.New(),
		BrandID:       brandUUID,
		Category:      PendingCostCategorySalaries,
		Amount:        amount,
		PaymentDate:   paymentDate,
		Description:   "Salary " + periodMonth + " for " + emp.FullName,
		Status:        StatusPending,
		ReferenceType: ReferenceTypeSalaryPayment,
		ReferenceID:   &spID,
	}
	if err := qtx.CreatePendingCost(ctx, pc); err != nil {
		s.logger.Error("create pending cost persist failed", zap.Error(err))
		return SalaryPaymentResponse{}, err
	}

	event := events.SalaryPaymentRequestedEvent{
		EventType:       "salary_payment_requested",
		SalaryPaymentID: sp.ID.String(),
		PendingCostID:   pc.ID.String(),
		BrandID:         brandID,
		EmployeeID:      emp.ID.String(),
		Amount:          amount.StringFixed(2),
		PeriodMonth:     periodMonth,
		OccurredAt:      time.Now().UTC(),
	}
	if err := s.queueOutbox(ctx, tx, rid, "salary_payment", sp.ID.String(), event.EventType, events.SalaryPaymentRequestedTopic, event); err != nil {
		return SalaryPaymentResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create salary payment commit failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryPaymentResponse{}, err
	}

	if s.emitter != nil {
		s.emitter.SalaryPaymentPending(ctx, brandUUID, emp.FullName, amount)
	}

	s.logger.Info("create salary payment success",
		zap.String("request_id", rid),
		zap.String("salary_payment_id", sp.ID.String()),
		zap.String("pending_cost_id", pc.ID.String()),
	)

	resp := mapPaymentToResponse(*sp)
	resp.PendingCostID = pc.ID.String()
	return resp, nil
}

// pendingAlerts collects notification inputs during the approval transaction
// so they can be emitted after commit.
type pendingAlerts struct {
	brandBudgetExceeded bool
	brandMonth          string
	brandNewTotal       decimal.Decimal
	brandLimit          decimal.Decimal

	walletLevel        budget.Level
	walletName         string
	walletRemaining    decimal.Decimal
	walletRemainingPct decimal.Decimal
}

// Review settles a pending cost. Approval materializes the cost, debits the
// brand's basic wallet, records the cash flow line and links it back to the
// salary payment; decline removes the payment. Either way the conditional
// status update guarantees only one reviewer wins.
func (s *service) Review(ctx context.Context, brandID, pendingCostID, reviewerID string, req ReviewPendingCostRequest) (ReviewResultResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	var newStatus string
	switch req.Action {
	case "approve":
		newStatus = StatusApproved
	case "decline":
		newStatus = StatusDeclined
	default:
		return ReviewResultResponse{}, payrollerrors.ErrInvalidAction
	}

	reviewerUUID, err := uuid.Parse(reviewerID)
	if err != nil {
		return ReviewResultResponse{}, payrollerrors.ErrInvalidReviewer
	}

	s.logger.Debug("review pending cost requested",
		zap.String("request_id", rid),
		zap.String("brand_id", brandID),
		zap.String("pending_cost_id", pendingCostID),
		zap.String("action", req.Action),
	)

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("review begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return ReviewResultResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	pc, err := qtx.FindPendingCostByIDAndBrand(ctx, brandID, pendingCostID)
	if err != nil {
		return ReviewResultResponse{}, mapPendingCostError(err)
	}
	if pc.Status != StatusPending {
		return ReviewResultResponse{}, payrollerrors.ErrAlreadyProcessed
	}

	// CAS gate: the first write against the row. Losing the race here means
	// another reviewer already settled it.
	affected, err := qtx.MarkPendingCostProcessed(ctx, pendingCostID, newStatus, reviewerUUID)
	if err != nil {
		s.logger.Error("review mark processed failed", zap.Error(err))
		return ReviewResultResponse{}, err
	}
	if affected == 0 {
		return ReviewResultResponse{}, payrollerrors.ErrAlreadyProcessed
	}
	pc.Status = newStatus
	pc.ProcessedBy = &reviewerUUID

	// The salary payment link is optional; a pending cost raised outside
	// payroll settles without the payment-specific steps.
	var sp *SalaryPayment
	if pc.ReferenceType == ReferenceTypeSalaryPayment && pc.ReferenceID != nil {
		sp, err = qtx.FindSalaryPaymentByIDAndBrand(ctx, brandID, pc.ReferenceID.String())
		if err != nil {
			return ReviewResultResponse{}, mapSalaryPaymentError(err)
		}
	}

	if newStatus == StatusDeclined {
		if sp != nil {
			if err := qtx.DeleteSalaryPayment(ctx, sp.ID.String()); err != nil {
				s.logger.Error("review delete declined payment failed", zap.Error(err))
				return ReviewResultResponse{}, err
			}
		}
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("review commit failed", zap.String("request_id", rid), zap.Error(err))
			return ReviewResultResponse{}, err
		}

		s.logger.Info("pending cost declined",
			zap.String("request_id", rid),
			zap.String("pending_cost_id", pendingCostID),
			zap.String("salary_payment_id", paymentIDString(sp)),
		)
		return ReviewResultResponse{
			PendingCostID:   pendingCostID,
			SalaryPaymentID: paymentIDString(sp),
			Status:          StatusDeclined,
		}, nil
	}

	result, alerts, err := s.approve(ctx, tx, rid, brandID, pc, sp)
	if err != nil {
		return ReviewResultResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("review commit failed", zap.String("request_id", rid), zap.Error(err))
		return ReviewResultResponse{}, err
	}

	s.emitAlerts(ctx, pc.BrandID, alerts)

	s.logger.Info("pending cost approved",
		zap.String("request_id", rid),
		zap.String("pending_cost_id", pendingCostID),
		zap.String("salary_payment_id", paymentIDString(sp)),
		zap.Bool("wallet_debited", result.WalletDebited),
	)
	return result, nil
}

func paymentIDString(sp *SalaryPayment) string {
	if sp == nil {
		return ""
	}
	return sp.ID.String()
}

// approve performs the approval steps inside the caller's transaction. The
// cost and cash flow lines carry the payment date, so month attribution
// follows the period being paid rather than the approval time.
func (s *service) approve(ctx context.Context, tx *gorm.DB, rid, brandID string, pc *PendingCost, sp *SalaryPayment) (ReviewResultResponse, pendingAlerts, error) {
	var alerts pendingAlerts

	month := pc.PaymentDate.Format("2006-01")
	periodStart := time.Date(pc.PaymentDate.Year(), pc.PaymentDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)
	now := time.Now().UTC()

	// Brand budget check is advisory: failures are logged and skipped so a
	// reporting problem cannot block payroll.
	if b, err := s.budgetRepo.WithTx(tx).FindByBrandAndMonth(ctx, brandID, month); err == nil {
		existing, sumErr := s.costRepo.WithTx(tx).SumInRange(ctx, brandID, periodStart, periodEnd)
		if sumErr != nil {
			s.logger.Warn("approve brand budget sum failed", zap.String("request_id", rid), zap.Error(sumErr))
		} else {
			res := budget.EvaluateBrandBudget(existing, pc.Amount, b.BudgetLimit)
			if res.Exceeded {
				alerts.brandBudgetExceeded = true
				alerts.brandMonth = month
				alerts.brandNewTotal = res.NewTotal
				alerts.brandLimit = b.BudgetLimit
			}
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Warn("approve brand budget lookup failed", zap.String("request_id", rid), zap.Error(err))
	}

	c := &cost.Cost{
		ID:       uuid.New(),
		BrandID:  pc.BrandID,
		Date:     pc.PaymentDate,
		Amount:   pc.Amount,
		Category: "operational",
		Note:     pc.Description,
		Source:   cost.SourceManual,
	}
	if err := s.costRepo.WithTx(tx).Create(ctx, c); err != nil {
		s.logger.Error("approve cost persist failed", zap.String("request_id", rid), zap.Error(err))
		return ReviewResultResponse{}, alerts, err
	}

	refType := ReferenceTypePendingCost
	refID := pc.ID
	if sp != nil {
		refType = ReferenceTypeSalaryPayment
		refID = sp.ID
	}

	walletDebited, err := s.debitBasicWallet(ctx, tx, rid, brandID, pc, refType, refID, periodStart, periodEnd, &alerts)
	if err != nil {
		return ReviewResultResponse{}, alerts, err
	}

	ct := &cashtransaction.CashTransaction{
		ID:              uuid.New(),
		BrandID:         pc.BrandID,
		Section:         cashtransaction.SectionOperating,
		Category:        PendingCostCategorySalaries,
		Amount:          pc.Amount.Abs().Neg(),
		Description:     pc.Description,
		TransactionDate: pc.PaymentDate,
		ReferenceType:   refType,
		ReferenceID:     &refID,
	}
	if err := s.cashRepo.WithTx(tx).Create(ctx, ct); err != nil {
		s.logger.Error("approve cash transaction persist failed", zap.String("request_id", rid), zap.Error(err))
		return ReviewResultResponse{}, alerts, err
	}

	if sp != nil {
		if err := s.repo.WithTx(tx).MarkSalaryPaymentApproved(ctx, sp.ID.String(), ct.ID); err != nil {
			s.logger.Error("approve link payment failed", zap.String("request_id", rid), zap.Error(err))
			return ReviewResultResponse{}, alerts, err
		}
	}

	event := events.CostApprovedEvent{
		EventType:     "cost_approved",
		CostID:        c.ID.String(),
		PendingCostID: pc.ID.String(),
		BrandID:       brandID,
		Amount:        pc.Amount.StringFixed(2),
		Month:         month,
		ApprovedBy:    uuidToString(pc.ProcessedBy),
		OccurredAt:    now,
	}
	if err := s.queueOutbox(ctx, tx, rid, "cost", c.ID.String(), event.EventType, events.CostApprovedTopic, event); err != nil {
		return ReviewResultResponse{}, alerts, err
	}

	costID := c.ID.String()
	return ReviewResultResponse{
		PendingCostID:   pc.ID.String(),
		SalaryPaymentID: paymentIDString(sp),
		Status:          StatusApproved,
		CostID:          &costID,
		WalletDebited:   walletDebited,
	}, alerts, nil
}

// debitBasicWallet debits the brand's basic wallet for the pending cost
// amount. A brand without a basic active wallet skips the debit; the approval
// still stands.
func (s *service) debitBasicWallet(ctx context.Context, tx *gorm.DB, rid, brandID string, pc *PendingCost, refType string, refID uuid.UUID, periodStart, periodEnd time.Time, alerts *pendingAlerts) (bool, error) {
	walletRepoTx := s.walletRepo.WithTx(tx)

	w, err := walletRepoTx.FindBasicActive(ctx, brandID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("approve no basic wallet, skipping debit",
				zap.String("request_id", rid),
				zap.String("brand_id", brandID),
			)
			return false, nil
		}
		return false, err
	}

	_, _, err = s.ledger.WithTx(tx).Debit(ctx, brandID, w.ID.String(), pc.Amount, wallet.EntryParams{
		Description:   pc.Description,
		Date:          pc.PaymentDate,
		ReferenceType: refType,
		ReferenceID:   &refID,
	})
	if err != nil {
		s.logger.Error("approve wallet debit failed", zap.String("request_id", rid), zap.Error(err))
		return false, err
	}

	if w.MonthlyBudget != nil {
		// The sum runs inside the transaction, so it sees the debit above.
		spent, err := walletRepoTx.SumDeductionsInMonth(ctx, w.ID.String(), periodStart, periodEnd)
		if err != nil {
			s.logger.Warn("approve wallet budget sum failed", zap.String("request_id", rid), zap.Error(err))
			return true, nil
		}
		res := budget.EvaluateWalletBudget(spent, *w.MonthlyBudget)
		if res.Level != budget.LevelOK {
			alerts.walletLevel = res.Level
			alerts.walletName = w.Name
			alerts.walletRemaining = res.Remaining
			alerts.walletRemainingPct = res.RemainingPct
		}
	}

	return true, nil
}

func (s *service) emitAlerts(ctx context.Context, brandID uuid.UUID, alerts pendingAlerts) {
	if s.emitter == nil {
		return
	}
	if alerts.brandBudgetExceeded {
		s.emitter.BrandBudgetExceeded(ctx, brandID, alerts.brandMonth, alerts.brandNewTotal, alerts.brandLimit)
	}
	if alerts.walletLevel == budget.LevelLow || alerts.walletLevel == budget.LevelExceeded {
		pct, _ := alerts.walletRemainingPct.Float64()
		s.emitter.WalletBudgetAlert(ctx, brandID, alerts.walletName, string(alerts.walletLevel), alerts.walletRemaining, pct)
	}
}

func (s *service) queueOutbox(ctx context.Context, tx *gorm.DB, rid, aggregateType, aggregateID, eventType, topic string, event interface{}) error {
	if s.outbox == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         topic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("outbox persist failed",
			zap.String("request_id", rid),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) GetAllPayments(ctx context.Context, brandID, status string) ([]SalaryPaymentResponse, error) {
	payments, err := s.repo.FindAllSalaryPaymentsByBrand(ctx, brandID, status)
	if err != nil {
		return nil, err
	}

	resp := make([]SalaryPaymentResponse, len(payments))
	for i, sp := range payments {
		resp[i] = mapPaymentToResponse(sp)
	}
	return resp, nil
}

func (s *service) GetPaymentByID(ctx context.Context, brandID, id string) (SalaryPaymentResponse, error) {
	sp, err := s.repo.FindSalaryPaymentByIDAndBrand(ctx, brandID, id)
	if err != nil {
		return SalaryPaymentResponse{}, mapSalaryPaymentError(err)
	}
	return mapPaymentToResponse(*sp), nil
}

func (s *service) GetPendingCostByID(ctx context.Context, brandID, id string) (PendingCostResponse, error) {
	pc, err := s.repo.FindPendingCostByIDAndBrand(ctx, brandID, id)
	if err != nil {
		return PendingCostResponse{}, mapPendingCostError(err)
	}
	return mapPendingCostToResponse(*pc), nil
}

func (s *service) GetAllPendingCosts(ctx context.Context, brandID, status string) ([]PendingCostResponse, error) {
	pcs, err := s.repo.FindAllPendingCostsByBrand(ctx, brandID, status)
	if err != nil {
		return nil, err
	}

	resp := make([]PendingCostResponse, len(pcs))
	for i, pc := range pcs {
		resp[i] = mapPendingCostToResponse(pc)
	}
	return resp, nil
}

func mapPaymentToResponse(sp SalaryPayment) SalaryPaymentResponse {
	resp := SalaryPaymentResponse{
		ID:          sp.ID.String(),
		BrandID:     sp.BrandID.String(),
		EmployeeID:  sp.EmployeeID.String(),
		Amount:      sp.Amount.StringFixed(2),
		PaymentDate: sp.PaymentDate.Format("2006-01-02"),
		PeriodMonth: sp.PeriodMonth,
		Status:      sp.Status,
		Note:        sp.Note,
	}
	if sp.CashTransactionID != nil {
		v := sp.CashTransactionID.String()
		resp.CashTransactionID = &v
	}
	return resp
}

func mapPendingCostToResponse(pc PendingCost) PendingCostResponse {
	resp := PendingCostResponse{
		ID:            pc.ID.String(),
		BrandID:       pc.BrandID.String(),
		Category:      pc.Category,
		Amount:        pc.Amount.StringFixed(2),
		PaymentDate:   pc.PaymentDate.Format("2006-01-02"),
		Description:   pc.Description,
		Status:        pc.Status,
		ReferenceType: pc.ReferenceType,
	}
	if pc.ReferenceID != nil {
		v := pc.ReferenceID.String()
		resp.ReferenceID = &v
	}
	if pc.ProcessedBy != nil {
		v := pc.ProcessedBy.String()
		resp.ProcessedBy = &v
	}
	if pc.ProcessedAt != nil {
		v := pc.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &v
	}
	return resp
}

func uuidToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}
