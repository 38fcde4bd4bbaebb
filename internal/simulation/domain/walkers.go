package domain

import (
	"math"
	"math/rand"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/optionpricing/pkg/positive"
	"github.com/wyfcoding/pkg/xerrors"
)

// PriceWalk 价格路径的具体实例化: 时间步长为 float64, 取值为非负价格.
type PriceWalk = RandomWalk[float64, positive.Positive]

// PriceWalkParams 价格路径的游走参数.
type PriceWalkParams = WalkParams[float64, positive.Positive]

// PriceStep 价格路径的节点.
type PriceStep = Step[float64, positive.Positive]

// GaussianWalker 风险中性几何布朗运动的步进策略:
// S(t+dt) = S(t) * exp((r - q - σ²/2)dt + σ√dt·Z), Z ~ N(0,1).
type GaussianWalker struct {
	riskFreeRate  float64
	dividendYield float64
	volatility    float64
	rng           *rand.Rand
}

// NewGaussianWalker 构造几何布朗运动步进策略. 波动率必须非负.
func NewGaussianWalker(riskFreeRate, dividendYield, volatility float64, rng *rand.Rand) (*GaussianWalker, error) {
	if volatility < 0 {
		return nil, xerrors.InvalidArg("volatility must be non-negative").WithDetail("got %v", volatility)
	}
	if rng == nil {
		return nil, xerrors.InvalidArg("rng must not be nil")
	}
	return &GaussianWalker{
		riskFreeRate:  riskFreeRate,
		dividendYield: dividendYield,
		volatility:    volatility,
		rng:           rng,
	}, nil
}

// Next 实现 Walker.
func (g *GaussianWalker) Next(_ *PriceWalkParams, prev PriceStep) (positive.Positive, error) {
	dt := prev.X.YearsPerStep()
	drift := (g.riskFreeRate - g.dividendYield - 0.5*g.volatility*g.volatility) * dt
	diffusion := g.volatility * math.Sqrt(dt) * g.rng.NormFloat64()
	next := prev.Y.Value().Float64() * math.Exp(drift+diffusion)
	return positive.FromFloat(next)
}

// TelegraphWalker 两态电报过程的步进策略: 状态取 ±1,
// 每步以 1-exp(-λdt) 的概率翻转, 价格乘以 1+state·σ√dt.
// 处于 +1 态时使用向下切换强度, 处于 -1 态时使用向上切换强度.
type TelegraphWalker struct {
	lambdaUp   float64
	lambdaDown float64
	volatility float64
	state      int
	rng        *rand.Rand
}

// NewTelegraphWalker 构造电报过程步进策略, 初始状态为 +1.
// 两个切换强度均须为正.
func NewTelegraphWalker(lambdaUp, lambdaDown, volatility float64, rng *rand.Rand) (*TelegraphWalker, error) {
	if lambdaUp <= 0 || lambdaDown <= 0 {
		return nil, xerrors.InvalidArg("transition rates must be positive").
			WithDetail("lambda_up %v, lambda_down %v", lambdaUp, lambdaDown)
	}
	if volatility < 0 {
		return nil, xerrors.InvalidArg("volatility must be non-negative").WithDetail("got %v", volatility)
	}
	if rng == nil {
		return nil, xerrors.InvalidArg("rng must not be nil")
	}
	return &TelegraphWalker{
		lambdaUp:   lambdaUp,
		lambdaDown: lambdaDown,
		volatility: volatility,
		state:      1,
		rng:        rng,
	}, nil
}

// State 当前状态, +1 或 -1.
func (t *TelegraphWalker) State() int { return t.state }

// Next 实现 Walker.
func (t *TelegraphWalker) Next(_ *PriceWalkParams, prev PriceStep) (positive.Positive, error) {
	dt := prev.X.YearsPerStep()

	rate := t.lambdaUp
	if t.state == 1 {
		rate = t.lambdaDown
	}
	if t.rng.Float64() < 1-math.Exp(-rate*dt) {
		t.state = -t.state
	}

	increment := float64(t.state) * t.volatility * math.Sqrt(dt)
	return prev.Y.Value().AddDecimal(
		prev.Y.Value().Dec().Mul(decimal.NewFromFloat(increment)))
}
