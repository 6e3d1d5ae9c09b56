package budget

import "github.com/shopspring/decimal"

type Level string

const (
	LevelOK       Level = "ok"
	LevelLow      Level = "low"
	LevelExceeded Level = "exceeded"
)

// lowWatermarkPct: at or below this remaining percentage a wallet budget is
// reported as running low.
var lowWatermarkPct = decimal.NewFromInt(20)

type BrandBudgetResult struct {
	NewTotal decimal.Decimal
	Exceeded bool
}

// EvaluateBrandBudget classifies a prospective approval against the brand's
// monthly ceiling. Pure: identical aggregates give identical results.
func EvaluateBrandBudget(existingMonthlyTotal, newAmount, limit decimal.Decimal) BrandBudgetResult {
	newTotal := existingMonthlyTotal.Add(newAmount)
	return BrandBudgetResult{
		NewTotal: newTotal,
		Exceeded: newTotal.GreaterThan(limit),
	}
}

type WalletBudgetResult struct {
	Remaining    decimal.Decimal
	RemainingPct decimal.Decimal
	Level        Level
}

// EvaluateWalletBudget bands the remaining headroom of a wallet's monthly
// budget given the month's cost deductions including the current one.
// A non-positive budget is reported as exceeded outright.
func EvaluateWalletBudget(monthlyDeductionsTotal, monthlyBudget decimal.Decimal) WalletBudgetResult {
	remaining := monthlyBudget.Sub(monthlyDeductionsTotal)

	if !monthlyBudget.IsPositive() {
		return WalletBudgetResult{
			Remaining:    remaining,
			RemainingPct: decimal.Zero,
			Level:        LevelExceeded,
		}
	}

	pct := remaining.Div(monthlyBudget).Mul(decimal.NewFromInt(100))

	level := LevelOK
	switch {
	case pct.LessThanOrEqual(decimal.Zero):
		level = LevelExceeded
	case pct.LessThanOrEqual(lowWatermarkPct):
		level = LevelLow
	}

	return WalletBudgetResult{
		Remaining:    remaining,
		RemainingPct: pct,
		Level:        level,
	}
}
