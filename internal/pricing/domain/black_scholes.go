package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// D1 Black-Scholes 中间量 d1.
// 波动率或剩余期限为零时退化: 远期价高于贴现行权价返回 +Inf,
// 低于返回 -Inf, 相等返回 0.
func D1(s, k, r, q, sigma, t float64) float64 {
	denom := sigma * math.Sqrt(t)
	if denom == 0 {
		return degenerateD(s, k, r, q, t)
	}
	return (math.Log(s/k) + (r-q+0.5*sigma*sigma)*t) / denom
}

// D2 Black-Scholes 中间量 d2 = d1 - σ√t.
func D2(s, k, r, q, sigma, t float64) float64 {
	denom := sigma * math.Sqrt(t)
	if denom == 0 {
		return degenerateD(s, k, r, q, t)
	}
	return D1(s, k, r, q, sigma, t) - denom
}

func degenerateD(s, k, r, q, t float64) float64 {
	forward := s * math.Exp(-q*t)
	discounted := k * math.Exp(-r*t)
	switch {
	case forward > discounted:
		return math.Inf(1)
	case forward < discounted:
		return math.Inf(-1)
	default:
		return 0
	}
}

// blackScholesUnitPrice 单位多头合约的 Black-Scholes 价格.
// 已到期返回内在价值, 零波动返回贴现后的确定性收益.
func blackScholesUnitPrice(o *Option) float64 {
	s := o.UnderlyingPrice.Float64()
	k := o.StrikePrice.Float64()
	r := o.RiskFreeRate
	q := o.DividendYield.Float64()
	sigma := o.ImpliedVolatility.Float64()
	t := o.TimeToExpiry()

	if t == 0 {
		return o.intrinsicAt(s)
	}
	if sigma == 0 {
		var value float64
		if o.Type == OptionTypeCall {
			value = s*math.Exp(-q*t) - k*math.Exp(-r*t)
		} else {
			value = k*math.Exp(-r*t) - s*math.Exp(-q*t)
		}
		if value < 0 {
			return 0
		}
		return value
	}

	d1 := D1(s, k, r, q, sigma, t)
	d2 := D2(s, k, r, q, sigma, t)
	if o.Type == OptionTypeCall {
		return s*math.Exp(-q*t)*normCdf(d1) - k*math.Exp(-r*t)*normCdf(d2)
	}
	return k*math.Exp(-r*t)*normCdf(-d2) - s*math.Exp(-q*t)*normCdf(-d1)
}

// PriceBlackScholes 计算欧式期权的 Black-Scholes 价格,
// 含数量与方向符号.
func PriceBlackScholes(o *Option) (decimal.Decimal, error) {
	if err := o.Validate(); err != nil {
		return decimal.Zero, err
	}
	price := blackScholesUnitPrice(o) * o.Quantity.Float64() * o.Side.Multiplier()
	return decimal.NewFromFloat(price), nil
}

// normCdf 标准正态分布累积分布函数
func normCdf(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

// normPdf 标准正态分布概率密度函数
func normPdf(x float64) float64 {
	return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
}
