// Package domain 定价服务的领域模型: 期权合约描述, Black-Scholes 解析定价,
// 二叉树, 蒙特卡洛, 电报过程以及隐含波动率校准.
package domain

import (
	"github.com/shopspring/decimal"
	"github.com/wyfcoding/optionpricing/pkg/datetime"
	"github.com/wyfcoding/optionpricing/pkg/positive"
	"github.com/wyfcoding/pkg/xerrors"
)

// OptionType 期权类型
type OptionType string

const (
	OptionTypeCall OptionType = "CALL" // 看涨期权
	OptionTypePut  OptionType = "PUT"  // 看跌期权
)

// Valid 判断期权类型是否受支持.
func (t OptionType) Valid() bool {
	return t == OptionTypeCall || t == OptionTypePut
}

// OptionStyle 行权方式
type OptionStyle string

const (
	OptionStyleEuropean OptionStyle = "EUROPEAN" // 欧式, 仅到期日可行权
	OptionStyleAmerican OptionStyle = "AMERICAN" // 美式, 任意时点可行权
)

// Valid 判断行权方式是否受支持.
func (s OptionStyle) Valid() bool {
	return s == OptionStyleEuropean || s == OptionStyleAmerican
}

// Side 持仓方向
type Side string

const (
	SideLong  Side = "LONG"  // 多头
	SideShort Side = "SHORT" // 空头
)

// Valid 判断方向是否受支持.
func (s Side) Valid() bool {
	return s == SideLong || s == SideShort
}

// Multiplier 方向符号: 多头 +1, 空头 -1.
func (s Side) Multiplier() float64 {
	if s == SideShort {
		return -1
	}
	return 1
}

// Option 期权合约描述, 定价与希腊字母计算的统一输入.
type Option struct {
	Symbol            string                  `json:"symbol"`
	Type              OptionType              `json:"type"`
	Style             OptionStyle             `json:"style"`
	Side              Side                    `json:"side"`
	StrikePrice       positive.Positive       `json:"strike_price"`
	UnderlyingPrice   positive.Positive       `json:"underlying_price"`
	ImpliedVolatility positive.Positive       `json:"implied_volatility"`
	RiskFreeRate      float64                 `json:"risk_free_rate"`
	DividendYield     positive.Positive       `json:"dividend_yield"`
	Quantity          positive.Positive       `json:"quantity"`
	Expiration        datetime.ExpirationDate `json:"-"`
}

// Validate 校验合约描述是否可用于定价.
func (o *Option) Validate() error {
	if !o.Type.Valid() {
		return xerrors.ErrInvalidOptionType
	}
	if !o.Style.Valid() {
		return ErrInvalidOptionStyle
	}
	if !o.Side.Valid() {
		return ErrInvalidSide
	}
	if o.StrikePrice.IsZero() {
		return ErrInvalidStrike
	}
	if o.UnderlyingPrice.IsZero() {
		return ErrInvalidUnderlying
	}
	if o.Quantity.IsZero() {
		return ErrInvalidQuantity
	}
	return nil
}

// TimeToExpiry 年化剩余期限.
func (o *Option) TimeToExpiry() float64 {
	return o.Expiration.Years()
}

// IsExpired 是否已到期.
func (o *Option) IsExpired() bool {
	return o.Expiration.IsExpired()
}

// intrinsicAt 单位合约在给定标的价下的内在价值, 始终非负.
func (o *Option) intrinsicAt(underlying float64) float64 {
	strike := o.StrikePrice.Float64()
	var value float64
	if o.Type == OptionTypeCall {
		value = underlying - strike
	} else {
		value = strike - underlying
	}
	if value < 0 {
		return 0
	}
	return value
}

// PayoffAtPrice 合约在给定标的价下的到期收益,
// 含数量与方向符号: 空头收益为多头收益取负.
func (o *Option) PayoffAtPrice(underlying positive.Positive) decimal.Decimal {
	payoff := o.intrinsicAt(underlying.Float64()) * o.Quantity.Float64() * o.Side.Multiplier()
	return decimal.NewFromFloat(payoff)
}

// IntrinsicValue 当前标的价下的内在价值, 含数量与方向符号.
func (o *Option) IntrinsicValue() decimal.Decimal {
	return o.PayoffAtPrice(o.UnderlyingPrice)
}

// IsInTheMoney 判断当前标的价下合约是否为实值.
func (o *Option) IsInTheMoney() bool {
	return o.intrinsicAt(o.UnderlyingPrice.Float64()) > 0
}

// TimeValue 期权价格中超出内在价值的部分.
// 给定模型价 price, 返回 price - intrinsic, 下限为 0.
func (o *Option) TimeValue(price decimal.Decimal) decimal.Decimal {
	tv := price.Sub(decimal.NewFromFloat(o.intrinsicAt(o.UnderlyingPrice.Float64())))
	if tv.IsNegative() {
		return decimal.Zero
	}
	return tv
}

// AsianPayoff 算术平均价亚式期权的路径收益:
// 以路径均价代替到期价计算内在价值.
func (o *Option) AsianPayoff(path []positive.Positive) (decimal.Decimal, error) {
	if len(path) == 0 {
		return decimal.Zero, ErrEmptyPricePath
	}
	var sum float64
	for _, p := range path {
		sum += p.Float64()
	}
	average := sum / float64(len(path))
	payoff := o.intrinsicAt(average) * o.Quantity.Float64() * o.Side.Multiplier()
	return decimal.NewFromFloat(payoff), nil
}

// LookbackPayoff 浮动行权价回望期权的路径收益:
// 看涨按 S_T - min(path), 看跌按 max(path) - S_T.
func (o *Option) LookbackPayoff(path []positive.Positive) (decimal.Decimal, error) {
	if len(path) == 0 {
		return decimal.Zero, ErrEmptyPricePath
	}
	minPrice := path[0].Float64()
	maxPrice := path[0].Float64()
	for _, p := range path[1:] {
		v := p.Float64()
		if v < minPrice {
			minPrice = v
		}
		if v > maxPrice {
			maxPrice = v
		}
	}
	final := path[len(path)-1].Float64()

	var payoff float64
	if o.Type == OptionTypeCall {
		payoff = final - minPrice
	} else {
		payoff = maxPrice - final
	}
	if payoff < 0 {
		payoff = 0
	}
	payoff *= o.Quantity.Float64() * o.Side.Multiplier()
	return decimal.NewFromFloat(payoff), nil
}
