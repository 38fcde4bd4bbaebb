package application

import (
	"time"

	"github.com/wyfcoding/optionpricing/internal/pricing/domain"
	"github.com/wyfcoding/optionpricing/pkg/datetime"
	"github.com/wyfcoding/optionpricing/pkg/positive"
)

// OptionRequest 期权合约的传输对象.
// Style/Side/Quantity 省略时分别取 european/long/1.
type OptionRequest struct {
	Symbol          string  `json:"symbol"`
	OptionType      string  `json:"option_type"`
	OptionStyle     string  `json:"option_style"`
	Side            string  `json:"side"`
	StrikePrice     float64 `json:"strike_price"`
	UnderlyingPrice float64 `json:"underlying_price"`
	Volatility      float64 `json:"volatility"`
	RiskFreeRate    float64 `json:"risk_free_rate"`
	DividendYield   float64 `json:"dividend_yield"`
	Quantity        float64 `json:"quantity"`
	ExpiryDays      float64 `json:"expiry_days"`
}

// ToDomain 转换为领域对象并应用默认值.
func (r OptionRequest) ToDomain() (*domain.Option, error) {
	style := r.OptionStyle
	if style == "" {
		style = string(domain.OptionStyleEuropean)
	}
	side := r.Side
	if side == "" {
		side = string(domain.SideLong)
	}
	quantity := r.Quantity
	if quantity == 0 {
		quantity = 1
	}

	strike, err := positive.FromFloat(r.StrikePrice)
	if err != nil {
		return nil, err
	}
	underlying, err := positive.FromFloat(r.UnderlyingPrice)
	if err != nil {
		return nil, err
	}
	vol, err := positive.FromFloat(r.Volatility)
	if err != nil {
		return nil, err
	}
	dividend, err := positive.FromFloat(r.DividendYield)
	if err != nil {
		return nil, err
	}
	qty, err := positive.FromFloat(quantity)
	if err != nil {
		return nil, err
	}
	expiry, err := datetime.NewExpirationDays(r.ExpiryDays)
	if err != nil {
		return nil, err
	}

	o := &domain.Option{
		Symbol:            r.Symbol,
		Type:              domain.OptionType(r.OptionType),
		Style:             domain.OptionStyle(style),
		Side:              domain.Side(side),
		StrikePrice:       strike,
		UnderlyingPrice:   underlying,
		ImpliedVolatility: vol,
		RiskFreeRate:      r.RiskFreeRate,
		DividendYield:     dividend,
		Quantity:          qty,
		Expiration:        expiry,
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// PriceOptionCommand 定价命令.
type PriceOptionCommand struct {
	Option OptionRequest `json:"option"`
	Model  string        `json:"model"`
}

// PriceResultDTO 定价结果.
type PriceResultDTO struct {
	Symbol         string    `json:"symbol"`
	Price          float64   `json:"price"`
	IntrinsicValue float64   `json:"intrinsic_value"`
	TimeValue      float64   `json:"time_value"`
	Model          string    `json:"model"`
	CalculatedAt   time.Time `json:"calculated_at"`
}

// GreeksDTO 希腊字母结果.
type GreeksDTO struct {
	Symbol       string    `json:"symbol"`
	Delta        float64   `json:"delta"`
	Gamma        float64   `json:"gamma"`
	Theta        float64   `json:"theta"`
	Vega         float64   `json:"vega"`
	Rho          float64   `json:"rho"`
	RhoD         float64   `json:"rho_d"`
	Alpha        float64   `json:"alpha"`
	CalculatedAt time.Time `json:"calculated_at"`
}

// CalibrateVolatilityCommand 隐含波动率校准命令.
type CalibrateVolatilityCommand struct {
	Option      OptionRequest `json:"option"`
	MarketPrice float64       `json:"market_price"`
}

// VolatilityDTO 隐含波动率校准结果.
type VolatilityDTO struct {
	Symbol            string    `json:"symbol"`
	MarketPrice       float64   `json:"market_price"`
	ImpliedVolatility float64   `json:"implied_volatility"`
	CalibratedAt      time.Time `json:"calibrated_at"`
}

// SimulateWalkCommand 随机游走模拟命令.
// WalkType 支持 geometric_brownian 与 telegraph.
type SimulateWalkCommand struct {
	WalkType      string   `json:"walk_type"`
	InitialPrice  float64  `json:"initial_price"`
	Volatility    float64  `json:"volatility"`
	RiskFreeRate  float64  `json:"risk_free_rate"`
	DividendYield float64  `json:"dividend_yield"`
	Days          float64  `json:"days"`
	Steps         int      `json:"steps"`
	LambdaUp      *float64 `json:"lambda_up,omitempty"`
	LambdaDown    *float64 `json:"lambda_down,omitempty"`
	Seed          *int64   `json:"seed,omitempty"`
}

// WalkDTO 随机游走模拟结果.
type WalkDTO struct {
	Title    string    `json:"title"`
	WalkType string    `json:"walk_type"`
	Values   []float64 `json:"values"`
	Days     []float64 `json:"days"`
}
