// Package messaging 领域事件的 Kafka 发布实现.
package messaging

import (
	"context"
	"time"

	"github.com/wyfcoding/optionpricing/internal/pricing/domain"
	"github.com/wyfcoding/optionpricing/pkg/mq"
)

// messageSender 抽象 Kafka 生产者, 便于测试注入.
type messageSender interface {
	SendMessage(ctx context.Context, topic string, key string, value interface{}) error
}

// eventEnvelope 统一的事件信封.
type eventEnvelope struct {
	EventType  string    `json:"event_type"`
	Payload    any       `json:"payload"`
	OccurredOn time.Time `json:"occurred_on"`
}

// KafkaEventPublisher 实现 domain.EventPublisher, 直接写入 Kafka.
type KafkaEventPublisher struct {
	sender  messageSender
	topic   string
	timeout time.Duration
}

// NewKafkaEventPublisher 构造 Kafka 事件发布者.
func NewKafkaEventPublisher(producer *mq.KafkaProducer, topic string) *KafkaEventPublisher {
	return &KafkaEventPublisher{sender: producer, topic: topic, timeout: 5 * time.Second}
}

// PublishOptionPriced 发布期权定价完成事件
func (p *KafkaEventPublisher) PublishOptionPriced(event domain.OptionPricedEvent) error {
	return p.publish(domain.OptionPricedEventType, event.Symbol, event)
}

// PublishGreeksCalculated 发布希腊字母计算完成事件
func (p *KafkaEventPublisher) PublishGreeksCalculated(event domain.GreeksCalculatedEvent) error {
	return p.publish(domain.GreeksCalculatedEventType, event.Symbol, event)
}

// PublishImpliedVolatilityCalibrated 发布隐含波动率校准完成事件
func (p *KafkaEventPublisher) PublishImpliedVolatilityCalibrated(event domain.ImpliedVolatilityCalibratedEvent) error {
	return p.publish(domain.ImpliedVolatilityCalibratedEventType, event.Symbol, event)
}

// PublishPricingError 发布定价错误事件
func (p *KafkaEventPublisher) PublishPricingError(event domain.PricingErrorEvent) error {
	return p.publish(domain.PricingErrorEventType, event.Symbol, event)
}

func (p *KafkaEventPublisher) publish(eventType, key string, payload any) error {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	return p.sender.SendMessage(ctx, p.topic, key, eventEnvelope{
		EventType:  eventType,
		Payload:    payload,
		OccurredOn: time.Now(),
	})
}
