package consumer

import (
	"context"
	"encoding/json"

	"go-finboard/internal/events"
	"go-finboard/internal/reporting"

	"github.com/shopspring/decimal"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeCostApproved folds approved cost amounts into the reporting spend
// cache. Add is idempotent only per delivery, so failures leave the message
// uncommitted and the increment is retried.
func ConsumeCostApproved(
	ctx context.Context,
	reader *kafkago.Reader,
	cache *reporting.SpendCache,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.cost_approved")
	log.Info("cost approved consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("cost approved consumer stopped")
				return
			}
			log.Error("fetch cost approved message failed", zap.Error(err))
			continue
		}

		var event events.CostApprovedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode cost_approved event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		amount, err := decimal.NewFromString(event.Amount)
		if err != nil {
			log.Error("cost_approved event carries malformed amount",
				zap.String("cost_id", event.CostID),
				zap.String("amount", event.Amount),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := cache.Add(ctx, event.BrandID, event.Month, amount); err != nil {
			log.Error("spend cache update failed",
				zap.String("brand_id", event.BrandID),
				zap.String("month", event.Month),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit cost approved message failed", zap.Error(err))
			continue
		}

		log.Info("spend cache updated from cost_approved event",
			zap.String("brand_id", event.BrandID),
			zap.String("month", event.Month),
			zap.String("amount", event.Amount),
		)
	}
}
