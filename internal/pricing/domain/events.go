package domain

import "time"

const (
	OptionPricedEventType                = "OptionPriced"
	GreeksCalculatedEventType            = "GreeksCalculated"
	ImpliedVolatilityCalibratedEventType = "ImpliedVolatilityCalibrated"
	PricingErrorEventType                = "PricingError"
)

// OptionPricedEvent 期权定价完成事件
type OptionPricedEvent struct {
	Symbol          string           `json:"symbol"`
	OptionType      OptionType       `json:"option_type"`
	OptionStyle     OptionStyle      `json:"option_style"`
	Side            Side             `json:"side"`
	StrikePrice     float64          `json:"strike_price"`
	ExpiryDays      float64          `json:"expiry_days"`
	OptionPrice     float64          `json:"option_price"`
	UnderlyingPrice float64          `json:"underlying_price"`
	Volatility      float64          `json:"volatility"`
	RiskFreeRate    float64          `json:"risk_free_rate"`
	DividendYield   float64          `json:"dividend_yield"`
	PricingModel    PricingModelType `json:"pricing_model"`
	CalculatedAt    int64            `json:"calculated_at"`
	OccurredOn      time.Time        `json:"occurred_on"`
}

// GreeksCalculatedEvent 希腊字母计算完成事件
type GreeksCalculatedEvent struct {
	Symbol          string     `json:"symbol"`
	OptionType      OptionType `json:"option_type"`
	StrikePrice     float64    `json:"strike_price"`
	ExpiryDays      float64    `json:"expiry_days"`
	UnderlyingPrice float64    `json:"underlying_price"`
	Delta           float64    `json:"delta"`
	Gamma           float64    `json:"gamma"`
	Theta           float64    `json:"theta"`
	Vega            float64    `json:"vega"`
	Rho             float64    `json:"rho"`
	RhoD            float64    `json:"rho_d"`
	CalculatedAt    int64      `json:"calculated_at"`
	OccurredOn      time.Time  `json:"occurred_on"`
}

// ImpliedVolatilityCalibratedEvent 隐含波动率校准完成事件
type ImpliedVolatilityCalibratedEvent struct {
	Symbol            string     `json:"symbol"`
	OptionType        OptionType `json:"option_type"`
	StrikePrice       float64    `json:"strike_price"`
	ExpiryDays        float64    `json:"expiry_days"`
	MarketPrice       float64    `json:"market_price"`
	ImpliedVolatility float64    `json:"implied_volatility"`
	CalibratedAt      int64      `json:"calibrated_at"`
	OccurredOn        time.Time  `json:"occurred_on"`
}

// PricingErrorEvent 定价错误事件
type PricingErrorEvent struct {
	Symbol      string     `json:"symbol"`
	OptionType  OptionType `json:"option_type"`
	StrikePrice float64    `json:"strike_price"`
	ExpiryDays  float64    `json:"expiry_days"`
	Error       string     `json:"error"`
	ErrorCode   string     `json:"error_code"`
	OccurredAt  int64      `json:"occurred_at"`
	OccurredOn  time.Time  `json:"occurred_on"`
}
