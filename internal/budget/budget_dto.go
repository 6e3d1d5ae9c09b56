package budget

type UpsertMonthlyBudgetRequest struct {
	Month       string `json:"month" binding:"required"`
	BudgetLimit string `json:"budget_limit" binding:"required"`
}

type MonthlyBudgetResponse struct {
	ID          string `json:"id"`
	BrandID     string `json:"brand_id"`
	Month       string `json:"month"`
	BudgetLimit string `json:"budget_limit"`
}
