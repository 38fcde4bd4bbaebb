package domain

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/optionpricing/pkg/datetime"
)

// Greeks 希腊字母, 含数量与方向符号.
// RhoD 为对股息率的敏感度, Alpha 为 gamma 与日度 theta 之比的绝对值.
type Greeks struct {
	Delta decimal.Decimal `json:"delta"`
	Gamma decimal.Decimal `json:"gamma"`
	Theta decimal.Decimal `json:"theta"`
	Vega  decimal.Decimal `json:"vega"`
	Rho   decimal.Decimal `json:"rho"`
	RhoD  decimal.Decimal `json:"rho_d"`
	Alpha decimal.Decimal `json:"alpha"`
}

// CalculateGreeks 计算期权的全部希腊字母.
// 已到期或零波动的合约返回全零, 避免退化公式中的除零.
func CalculateGreeks(o *Option) (*Greeks, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	s := o.UnderlyingPrice.Float64()
	k := o.StrikePrice.Float64()
	r := o.RiskFreeRate
	q := o.DividendYield.Float64()
	sigma := o.ImpliedVolatility.Float64()
	t := o.TimeToExpiry()

	if t == 0 || sigma == 0 {
		return &Greeks{
			Delta: decimal.Zero, Gamma: decimal.Zero, Theta: decimal.Zero,
			Vega: decimal.Zero, Rho: decimal.Zero, RhoD: decimal.Zero, Alpha: decimal.Zero,
		}, nil
	}

	d1 := D1(s, k, r, q, sigma, t)
	d2 := D2(s, k, r, q, sigma, t)
	sqrtT := math.Sqrt(t)
	discQ := math.Exp(-q * t)
	discR := math.Exp(-r * t)

	var delta, theta, rho, rhoD float64
	gamma := discQ * normPdf(d1) / (s * sigma * sqrtT)
	vega := s * discQ * normPdf(d1) * sqrtT

	if o.Type == OptionTypeCall {
		delta = discQ * normCdf(d1)
		theta = -s*discQ*normPdf(d1)*sigma/(2*sqrtT) -
			r*k*discR*normCdf(d2) + q*s*discQ*normCdf(d1)
		rho = k * t * discR * normCdf(d2)
		rhoD = -s * t * discQ * normCdf(d1)
	} else {
		delta = discQ * (normCdf(d1) - 1)
		theta = -s*discQ*normPdf(d1)*sigma/(2*sqrtT) +
			r*k*discR*normCdf(-d2) - q*s*discQ*normCdf(-d1)
		rho = -k * t * discR * normCdf(-d2)
		rhoD = s * t * discQ * normCdf(-d1)
	}

	scale := o.Quantity.Float64() * o.Side.Multiplier()
	alpha := alphaRatio(gamma, theta)

	return &Greeks{
		Delta: decimal.NewFromFloat(delta * scale),
		Gamma: decimal.NewFromFloat(gamma * scale),
		Theta: decimal.NewFromFloat(theta * scale),
		Vega:  decimal.NewFromFloat(vega * scale),
		Rho:   decimal.NewFromFloat(rho * scale),
		RhoD:  decimal.NewFromFloat(rhoD * scale),
		Alpha: decimal.NewFromFloat(alpha),
	}, nil
}

// alphaRatio gamma 与日度 theta 之比的绝对值.
// theta 为零时返回大数上限而不是 Inf, 便于 JSON 序列化.
func alphaRatio(gamma, theta float64) float64 {
	thetaDaily := theta / datetime.DaysInYear
	if thetaDaily == 0 {
		return math.MaxFloat64
	}
	return math.Abs(gamma / thetaDaily)
}

// Delta 单独计算 delta.
func Delta(o *Option) (decimal.Decimal, error) {
	g, err := CalculateGreeks(o)
	if err != nil {
		return decimal.Zero, err
	}
	return g.Delta, nil
}

// Gamma 单独计算 gamma.
func Gamma(o *Option) (decimal.Decimal, error) {
	g, err := CalculateGreeks(o)
	if err != nil {
		return decimal.Zero, err
	}
	return g.Gamma, nil
}

// Theta 单独计算 theta.
func Theta(o *Option) (decimal.Decimal, error) {
	g, err := CalculateGreeks(o)
	if err != nil {
		return decimal.Zero, err
	}
	return g.Theta, nil
}

// Vega 单独计算 vega.
func Vega(o *Option) (decimal.Decimal, error) {
	g, err := CalculateGreeks(o)
	if err != nil {
		return decimal.Zero, err
	}
	return g.Vega, nil
}

// Rho 单独计算 rho.
func Rho(o *Option) (decimal.Decimal, error) {
	g, err := CalculateGreeks(o)
	if err != nil {
		return decimal.Zero, err
	}
	return g.Rho, nil
}
