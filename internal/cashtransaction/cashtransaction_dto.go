package cashtransaction

type CreateCashTransactionRequest struct {
	Section         string `json:"section" binding:"required"`
	Category        string `json:"category" binding:"required"`
	Amount          string `json:"amount" binding:"required"`
	Description     string `json:"description"`
	TransactionDate string `json:"transaction_date" binding:"required"`
}

type CashTransactionResponse struct {
	ID              string  `json:"id"`
	BrandID         string  `json:"brand_id"`
	Section         string  `json:"section"`
	Category        string  `json:"category"`
	Amount          string  `json:"amount"`
	Description     string  `json:"description"`
	TransactionDate string  `json:"transaction_date"`
	ReferenceType   string  `json:"reference_type,omitempty"`
	ReferenceID     *string `json:"reference_id,omitempty"`
}
