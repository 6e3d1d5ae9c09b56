package cost

type CreateCostRequest struct {
	Date     string `json:"date" binding:"required"`
	Amount   string `json:"amount" binding:"required"`
	Category string `json:"category" binding:"required"`
	Note     string `json:"note"`
}

type CostResponse struct {
	ID       string `json:"id"`
	BrandID  string `json:"brand_id"`
	Date     string `json:"date"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
	Note     string `json:"note"`
	Source   string `json:"source"`
}
