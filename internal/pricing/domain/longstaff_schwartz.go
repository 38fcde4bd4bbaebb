package domain

import (
	"github.com/shopspring/decimal"
	"github.com/wyfcoding/pkg/algorithm/finance"
)

// AmericanOptionParams 定义美式期权的 LSM 模拟参数
type AmericanOptionParams struct {
	S0    float64
	K     float64
	T     float64
	R     float64
	Sigma float64
	IsPut bool
	Paths int
	Steps int
}

// LSMPricer 实现了 Longstaff-Schwartz (LSM) 算法
type LSMPricer struct {
	impl *finance.LSMPricer
}

func NewLSMPricer() *LSMPricer {
	return &LSMPricer{
		impl: finance.NewLSMPricer(2),
	}
}

// Price 计算美式期权的当前公允价值
func (p *LSMPricer) Price(params AmericanOptionParams) (float64, error) {
	pkgParams := finance.AmericanOptionParams{
		S0:    params.S0,
		K:     params.K,
		T:     params.T,
		R:     params.R,
		Sigma: params.Sigma,
		IsPut: params.IsPut,
		Paths: params.Paths,
		Steps: params.Steps,
	}
	return p.impl.ComputePrice(pkgParams)
}

// PriceLongstaffSchwartz 用 LSM 最小二乘蒙特卡洛为美式期权定价,
// 含数量与方向符号.
func PriceLongstaffSchwartz(o *Option, paths, steps int) (decimal.Decimal, error) {
	if err := o.Validate(); err != nil {
		return decimal.Zero, err
	}
	if paths <= 0 || steps <= 0 {
		return decimal.Zero, ErrInvalidSimulation
	}
	if o.IsExpired() {
		return o.IntrinsicValue(), nil
	}

	unit, err := NewLSMPricer().Price(AmericanOptionParams{
		S0:    o.UnderlyingPrice.Float64(),
		K:     o.StrikePrice.Float64(),
		T:     o.TimeToExpiry(),
		R:     o.RiskFreeRate,
		Sigma: o.ImpliedVolatility.Float64(),
		IsPut: o.Type == OptionTypePut,
		Paths: paths,
		Steps: steps,
	})
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromFloat(unit * o.Quantity.Float64() * o.Side.Multiplier()), nil
}
