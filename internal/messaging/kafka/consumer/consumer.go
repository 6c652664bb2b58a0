package consumer

import (
	"context"
	"encoding/json"

	"insuregate/internal/events"
	"insuregate/internal/payment"
	"insuregate/internal/premium"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePaymentSettled turns settled sessions into policy numbers. Failed
// settlements are committed without work; successful ones are retried until
// every paid entry carries a policy.
func ConsumePaymentSettled(
	ctx context.Context,
	reader *kafkago.Reader,
	premiumService premium.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payment_settled")
	log.Info("payment settled consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payment settled consumer stopped")
				return
			}
			log.Error("fetch payment settled message failed", zap.Error(err))
			continue
		}

		var event events.PaymentSettledEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payment settled event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if event.Outcome != payment.OutcomeSuccess {
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		assigned, err := premiumService.AssignPolicyNumbers(ctx, event.OrganizationID, event.SessionID)
		if err != nil {
			log.Error("assign policy numbers failed",
				zap.String("session_id", event.SessionID),
				zap.String("organization_id", event.OrganizationID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payment settled message failed", zap.Error(err))
			continue
		}

		log.Info("policy numbers issued for settled session",
			zap.String("session_id", event.SessionID),
			zap.String("organization_id", event.OrganizationID),
			zap.Int("assigned", assigned),
		)
	}
}
