package events

import "time"

const CostApprovedTopic = "finance.cost.approved.v1"

type CostApprovedEvent struct {
	EventType     string    `json:"event_type"`
	CostID        string    `json:"cost_id"`
	PendingCostID string    `json:"pending_cost_id"`
	BrandID       string    `json:"brand_id"`
	Amount        string    `json:"amount"`
	Month         string    `json:"month"`
	ApprovedBy    string    `json:"approved_by"`
	OccurredAt    time.Time `json:"occurred_at"`
}
