package service

import (
	"encoding/json"

	"github.com/IBM/sarama"

	"github.com/bookify/rent-service/internal/model"
	"github.com/bookify/rent-service/pkg/breaker"
)

// kafkaEventLog publishes rent events. Sends go through a circuit breaker so
// an unreachable broker degrades to dropped events instead of blocking rents.
type kafkaEventLog struct {
	producer sarama.SyncProducer
	topic    string
	cb       *breaker.Breaker
}

func NewKafkaEventLog(producer sarama.SyncProducer, topic string, cb *breaker.Breaker) *kafkaEventLog {
	return &kafkaEventLog{
		producer: producer,
		topic:    topic,
		cb:       cb,
	}
}

func (l *kafkaEventLog) Log(event model.RentEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return l.cb.Call(func() error {
		msg := &sarama.ProducerMessage{Topic: l.topic, Value: sarama.StringEncoder(data)}
		_, _, err := l.producer.SendMessage(msg)
		return err
	})
}
