package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Emitter writes workflow notifications. Emission is best-effort: failures
// are logged, never returned, so a notification problem cannot fail the
// business operation that triggered it.
type Emitter struct {
	repo   Repository
	logger *zap.Logger
}

func NewEmitter(repo Repository, logger ...*zap.Logger) *Emitter {
	l := zap.L().Named("notification.emitter")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.emitter")
	}
	return &Emitter{repo: repo, logger: l}
}

func (e *Emitter) BrandBudgetExceeded(ctx context.Context, brandID uuid.UUID, month string, newTotal, limit decimal.Decimal) {
	e.emit(ctx, &Notification{
		ID:      uuid.New(),
		BrandID: brandID,
		Type:    TypeBrandBudgetExceeded,
		Title:   "Monthly budget exceeded",
		Message: fmt.Sprintf(
			"Approving this cost brings %s spend to %s, over the %s budget.",
			month, newTotal.StringFixed(2), limit.StringFixed(2),
		),
	})
}

func (e *Emitter) WalletBudgetAlert(ctx context.Context, brandID uuid.UUID, walletName, level string, remaining decimal.Decimal, remainingPct float64) {
	notificationType := TypeWalletBudgetLow
	title := "Wallet budget running low"
	message := fmt.Sprintf(
		"Wallet %q has %s (%.1f%%) of its monthly budget remaining.",
		walletName, remaining.StringFixed(2), remainingPct,
	)
	if level == "exceeded" {
		notificationType = TypeWalletBudgetExceeded
		title = "Wallet budget exceeded"
		message = fmt.Sprintf("Wallet %q has spent past its monthly budget.", walletName)
	}

	e.emit(ctx, &Notification{
		ID:      uuid.New(),
		BrandID: brandID,
		Type:    notificationType,
		Title:   title,
		Message: message,
	})
}

func (e *Emitter) SalaryPaymentPending(ctx context.Context, brandID uuid.UUID, employeeName string, amount decimal.Decimal) {
	e.emit(ctx, &Notification{
		ID:      uuid.New(),
		BrandID: brandID,
		Type:    TypeSalaryPaymentPending,
		Title:   "Salary payment awaiting approval",
		Message: fmt.Sprintf(
			"A salary payment of %s for %s is waiting for review.",
			amount.StringFixed(2), employeeName,
		),
	})
}

func (e *Emitter) emit(ctx context.Context, n *Notification) {
	if err := e.repo.Create(ctx, n); err != nil {
		e.logger.Warn("emit notification failed",
			zap.String("brand_id", n.BrandID.String()),
			zap.String("type", n.Type),
			zap.Error(err),
		)
		return
	}
	e.logger.Debug("notification emitted",
		zap.String("brand_id", n.BrandID.String()),
		zap.String("type", n.Type),
	)
}
