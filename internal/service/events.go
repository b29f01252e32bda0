package service

import (
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/bibliotheca/lending-service/internal/model"
	"github.com/bibliotheca/lending-service/pkg/kafka"
	"go.uber.org/zap"
)

// Events publishes loan transitions for downstream consumers (stats,
// notifications). Best effort: a failed publish never fails the operation.
type Events interface {
	Publish(event model.LoanEvent)
}

type kafkaEvents struct {
	producer sarama.SyncProducer
	log      *zap.Logger
}

func NewEvents(producer sarama.SyncProducer, log *zap.Logger) Events {
	return &kafkaEvents{
		producer: producer,
		log:      log.Named("events"),
	}
}

func (e *kafkaEvents) Publish(event model.LoanEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		e.log.Error("marshal loan event", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{Topic: kafka.LoanEventsTopic, Value: sarama.StringEncoder(data)}
	if _, _, err := e.producer.SendMessage(msg); err != nil {
		e.log.Error("publish loan event", zap.Error(err), zap.String("kind", event.Kind))
	}
}

type noopEvents struct{}

func NewNoopEvents() Events {
	return noopEvents{}
}

func (noopEvents) Publish(model.LoanEvent) {}
