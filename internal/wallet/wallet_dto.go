package wallet

type CreateWalletRequest struct {
	Name           string  `json:"name" binding:"required"`
	InitialBalance string  `json:"initial_balance"`
	MonthlyBudget  *string `json:"monthly_budget"`
	IsBasic        bool    `json:"is_basic"`
}

type UpdateWalletRequest struct {
	Name          string  `json:"name" binding:"required"`
	MonthlyBudget *string `json:"monthly_budget"`
	IsBasic       bool    `json:"is_basic"`
	IsActive      bool    `json:"is_active"`
}

type TransferRequest struct {
	FromWalletID string `json:"from_wallet_id" binding:"required,uuid"`
	ToWalletID   string `json:"to_wallet_id" binding:"required,uuid"`
	Amount       string `json:"amount" binding:"required"`
	Description  string `json:"description"`
}

type DepositRequest struct {
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description"`
}

type WalletResponse struct {
	ID             string  `json:"id"`
	BrandID        string  `json:"brand_id"`
	Name           string  `json:"name"`
	CurrentBalance string  `json:"current_balance"`
	MonthlyBudget  *string `json:"monthly_budget,omitempty"`
	IsBasic        bool    `json:"is_basic"`
	IsActive       bool    `json:"is_active"`
}

type WalletTransactionResponse struct {
	ID              string  `json:"id"`
	WalletID        string  `json:"wallet_id"`
	Amount          string  `json:"amount"`
	TransactionType string  `json:"transaction_type"`
	Description     string  `json:"description"`
	TransactionDate string  `json:"transaction_date"`
	ReferenceType   string  `json:"reference_type,omitempty"`
	ReferenceID     *string `json:"reference_id,omitempty"`
}
