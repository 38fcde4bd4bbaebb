package domain

import (
	"math"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	simdomain "github.com/wyfcoding/optionpricing/internal/simulation/domain"
	"github.com/wyfcoding/optionpricing/pkg/datetime"
	"github.com/wyfcoding/pkg/xerrors"
)

// 电报过程定价的固定路径数与日频采样间隔.
const (
	telegraphSimulations = 1000
	tradingDayDt         = 1.0 / 252.0
)

// TelegraphProcess 两态电报过程: 状态取 ±1,
// 处于 +1 态时以强度 λ_down 等待向下切换, 处于 -1 态时以 λ_up 等待向上切换.
type TelegraphProcess struct {
	lambdaUp   float64
	lambdaDown float64
	state      int
	rng        *rand.Rand
}

// NewTelegraphProcess 构造电报过程, 初始状态为 +1, 两个强度均须为正.
func NewTelegraphProcess(lambdaUp, lambdaDown float64, rng *rand.Rand) (*TelegraphProcess, error) {
	if lambdaUp <= 0 || lambdaDown <= 0 {
		return nil, xerrors.InvalidArg("transition rates must be positive").
			WithDetail("lambda_up %v, lambda_down %v", lambdaUp, lambdaDown)
	}
	if rng == nil {
		return nil, xerrors.InvalidArg("rng must not be nil")
	}
	return &TelegraphProcess{lambdaUp: lambdaUp, lambdaDown: lambdaDown, state: 1, rng: rng}, nil
}

// State 当前状态, +1 或 -1.
func (p *TelegraphProcess) State() int { return p.state }

// Advance 推进 dt 时间: 以 1-exp(-λdt) 的概率翻转状态, 返回推进后的状态.
func (p *TelegraphProcess) Advance(dt float64) int {
	rate := p.lambdaUp
	if p.state == 1 {
		rate = p.lambdaDown
	}
	if p.rng.Float64() < 1-math.Exp(-rate*dt) {
		p.state = -p.state
	}
	return p.state
}

// SimulateReturns 按风险中性几何布朗运动模拟 steps 个日频对数收益,
// 用于在缺少外部强度参数时拟合电报过程.
func SimulateReturns(o *Option, steps int, rng *rand.Rand) ([]float64, error) {
	if steps <= 0 {
		return nil, ErrInvalidSimulation
	}
	sigma := o.ImpliedVolatility.Float64()
	drift := (o.RiskFreeRate - o.DividendYield.Float64() - 0.5*sigma*sigma) * tradingDayDt
	vol := sigma * math.Sqrt(tradingDayDt)

	returns := make([]float64, steps)
	for i := range returns {
		returns[i] = drift + vol*rng.NormFloat64()
	}
	return returns, nil
}

// EstimateTelegraphRates 由收益序列的符号驻留时间估计切换强度:
// λ_down 为每单位正收益驻留时间内的向下切换次数, λ_up 对称.
// 某一状态从未出现或从未切换时退化为 1/dt.
func EstimateTelegraphRates(returns []float64, dt float64) (lambdaUp, lambdaDown float64, err error) {
	if len(returns) == 0 {
		return 0, 0, xerrors.ErrEmptyData
	}
	if dt <= 0 {
		return 0, 0, xerrors.ErrInvalidInput
	}

	var timeUp, timeDown float64
	var downSwitches, upSwitches int

	state := 1
	if returns[0] < 0 {
		state = -1
	}
	for _, r := range returns {
		next := 1
		if r < 0 {
			next = -1
		}
		if state == 1 {
			timeUp += dt
		} else {
			timeDown += dt
		}
		if next != state {
			if state == 1 {
				downSwitches++
			} else {
				upSwitches++
			}
			state = next
		}
	}

	lambdaDown = 1 / dt
	if timeUp > 0 && downSwitches > 0 {
		lambdaDown = float64(downSwitches) / timeUp
	}
	lambdaUp = 1 / dt
	if timeDown > 0 && upSwitches > 0 {
		lambdaUp = float64(upSwitches) / timeDown
	}
	return lambdaUp, lambdaDown, nil
}

// PriceTelegraph 用电报过程调制的路径模拟定价.
// lambdaUp/lambdaDown 传 nil 时, 先模拟一年日频收益并拟合强度.
func PriceTelegraph(o *Option, steps int, lambdaUp, lambdaDown *float64) (decimal.Decimal, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return PriceTelegraphWithRand(o, steps, lambdaUp, lambdaDown, rng)
}

// PriceTelegraphWithRand 同 PriceTelegraph, 但使用外部随机源, 便于复现.
func PriceTelegraphWithRand(o *Option, steps int, lambdaUp, lambdaDown *float64, rng *rand.Rand) (decimal.Decimal, error) {
	if err := o.Validate(); err != nil {
		return decimal.Zero, err
	}
	if steps <= 0 {
		return decimal.Zero, ErrInvalidSimulation
	}
	t := o.TimeToExpiry()
	if t == 0 {
		return o.IntrinsicValue(), nil
	}

	var up, down float64
	if lambdaUp != nil && lambdaDown != nil {
		up, down = *lambdaUp, *lambdaDown
	} else {
		returns, err := SimulateReturns(o, 252, rng)
		if err != nil {
			return decimal.Zero, err
		}
		up, down, err = EstimateTelegraphRates(returns, tradingDayDt)
		if err != nil {
			return decimal.Zero, err
		}
		if lambdaUp != nil {
			up = *lambdaUp
		}
		if lambdaDown != nil {
			down = *lambdaDown
		}
	}

	daysPerStep := o.Expiration.Days() / float64(steps)
	var sum float64
	for i := 0; i < telegraphSimulations; i++ {
		walker, err := simdomain.NewTelegraphWalker(up, down, o.ImpliedVolatility.Float64(), rng)
		if err != nil {
			return decimal.Zero, err
		}
		x, err := simdomain.NewXstep(daysPerStep, datetime.TimeFrameDay, o.Expiration)
		if err != nil {
			return decimal.Zero, err
		}
		params := simdomain.PriceWalkParams{
			Size:     steps,
			InitStep: simdomain.NewStep(x, o.UnderlyingPrice),
			WalkType: simdomain.WalkTypeTelegraph,
			Walker:   walker,
		}
		walk, err := simdomain.NewRandomWalk("telegraph", params, nil)
		if err != nil {
			return decimal.Zero, err
		}
		sum += o.PayoffAtPrice(walk.Last().Y.Value()).InexactFloat64()
	}

	discount := math.Exp(-(o.RiskFreeRate - o.DividendYield.Float64()) * t)
	price := discount * sum / telegraphSimulations
	return decimal.NewFromFloat(price), nil
}
