package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/bibliotheca/lending-service/internal/model"
	"go.uber.org/zap"
)

type settleFee func(ctx context.Context, userName string) error

// Consumer applies confirmed fee payments from the fee-payments topic.
type Consumer struct {
	settleHandler settleFee
	log           *zap.Logger
}

func NewConsumer(settle settleFee, log *zap.Logger) *Consumer {
	return &Consumer{
		settleHandler: settle,
		log:           log.Named("consumer"),
	}
}

// Setup runs at the start of every session; a rebalance starts a new session
// with the same handler instance, so no per-instance state belongs here.
func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var msg model.FeePaymentMsg
			if err := json.Unmarshal(message.Value, &msg); err != nil {
				consumer.log.Error("unmarshal fee payment", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.settleHandler(context.Background(), msg.UserName); err != nil {
				consumer.log.Error("consumer.settleHandler", zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
