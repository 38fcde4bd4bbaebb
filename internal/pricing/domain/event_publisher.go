package domain

// EventPublisher 事件发布者接口
type EventPublisher interface {
	// PublishOptionPriced 发布期权定价完成事件
	PublishOptionPriced(event OptionPricedEvent) error

	// PublishGreeksCalculated 发布希腊字母计算完成事件
	PublishGreeksCalculated(event GreeksCalculatedEvent) error

	// PublishImpliedVolatilityCalibrated 发布隐含波动率校准完成事件
	PublishImpliedVolatilityCalibrated(event ImpliedVolatilityCalibratedEvent) error

	// PublishPricingError 发布定价错误事件
	PublishPricingError(event PricingErrorEvent) error
}
