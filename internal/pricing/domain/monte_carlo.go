package domain

import (
	"math"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	simdomain "github.com/wyfcoding/optionpricing/internal/simulation/domain"
	"github.com/wyfcoding/optionpricing/pkg/datetime"
	"github.com/wyfcoding/optionpricing/pkg/positive"
)

// PriceMonteCarlo 用风险中性几何布朗运动路径的蒙特卡洛模拟定价.
// 随机源以当前时间播种.
func PriceMonteCarlo(o *Option, simulations, steps int) (decimal.Decimal, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return PriceMonteCarloWithRand(o, simulations, steps, rng)
}

// PriceMonteCarloWithRand 同 PriceMonteCarlo, 但使用外部随机源, 便于复现.
func PriceMonteCarloWithRand(o *Option, simulations, steps int, rng *rand.Rand) (decimal.Decimal, error) {
	return monteCarloPath(o, simulations, steps, rng, func(path []positive.Positive) (decimal.Decimal, error) {
		return o.PayoffAtPrice(path[len(path)-1]), nil
	})
}

// PriceMonteCarloAsian 算术平均价亚式期权的蒙特卡洛定价.
func PriceMonteCarloAsian(o *Option, simulations, steps int, rng *rand.Rand) (decimal.Decimal, error) {
	return monteCarloPath(o, simulations, steps, rng, o.AsianPayoff)
}

// PriceMonteCarloLookback 浮动行权价回望期权的蒙特卡洛定价.
func PriceMonteCarloLookback(o *Option, simulations, steps int, rng *rand.Rand) (decimal.Decimal, error) {
	return monteCarloPath(o, simulations, steps, rng, o.LookbackPayoff)
}

// monteCarloPath 通用的路径蒙特卡洛: 模拟 simulations 条路径,
// 对每条路径求收益, 取均值后按 e^{-(r-q)T} 贴现.
func monteCarloPath(o *Option, simulations, steps int, rng *rand.Rand,
	payoff func(path []positive.Positive) (decimal.Decimal, error)) (decimal.Decimal, error) {
	if err := o.Validate(); err != nil {
		return decimal.Zero, err
	}
	if simulations <= 0 || steps <= 0 {
		return decimal.Zero, ErrInvalidSimulation
	}

	t := o.TimeToExpiry()
	if t == 0 {
		return o.IntrinsicValue(), nil
	}

	daysPerStep := o.Expiration.Days() / float64(steps)
	walker, err := simdomain.NewGaussianWalker(
		o.RiskFreeRate, o.DividendYield.Float64(), o.ImpliedVolatility.Float64(), rng)
	if err != nil {
		return decimal.Zero, err
	}

	var sum float64
	for i := 0; i < simulations; i++ {
		x, err := simdomain.NewXstep(daysPerStep, datetime.TimeFrameDay, o.Expiration)
		if err != nil {
			return decimal.Zero, err
		}
		params := simdomain.PriceWalkParams{
			Size:     steps,
			InitStep: simdomain.NewStep(x, o.UnderlyingPrice),
			WalkType: simdomain.WalkTypeGeometricBrownian,
			Walker:   walker,
		}
		walk, err := simdomain.NewRandomWalk("mc", params, nil)
		if err != nil {
			return decimal.Zero, err
		}
		value, err := payoff(walk.Values())
		if err != nil {
			return decimal.Zero, err
		}
		sum += value.InexactFloat64()
	}

	discount := math.Exp(-(o.RiskFreeRate - o.DividendYield.Float64()) * t)
	price := discount * sum / float64(simulations)
	return decimal.NewFromFloat(price), nil
}

// PriceMonteCarloFromFinalPrices 由外部给定的到期价样本定价,
// 用于复用已生成的路径或注入确定性样本.
func PriceMonteCarloFromFinalPrices(o *Option, finalPrices []positive.Positive) (decimal.Decimal, error) {
	if err := o.Validate(); err != nil {
		return decimal.Zero, err
	}
	if len(finalPrices) == 0 {
		return decimal.Zero, ErrEmptyPricePath
	}

	var sum float64
	for _, p := range finalPrices {
		sum += o.PayoffAtPrice(p).InexactFloat64()
	}
	t := o.TimeToExpiry()
	discount := math.Exp(-(o.RiskFreeRate - o.DividendYield.Float64()) * t)
	price := discount * sum / float64(len(finalPrices))
	return decimal.NewFromFloat(price), nil
}
