package domain

import (
	"github.com/shopspring/decimal"
)

// PricingModelType 定价模型类别.
type PricingModelType string

const (
	// ModelBlackScholes 解析定价, 按欧式口径.
	ModelBlackScholes PricingModelType = "black_scholes"
	// ModelBinomial CRR 二叉树, 支持美式提前行权.
	ModelBinomial PricingModelType = "binomial"
	// ModelMonteCarlo 几何布朗运动路径模拟.
	ModelMonteCarlo PricingModelType = "monte_carlo"
	// ModelTelegraph 电报过程调制的路径模拟.
	ModelTelegraph PricingModelType = "telegraph"
	// ModelLongstaffSchwartz 最小二乘蒙特卡洛, 用于美式期权.
	ModelLongstaffSchwartz PricingModelType = "longstaff_schwartz"
)

// Valid 判断模型类别是否受支持.
func (m PricingModelType) Valid() bool {
	switch m {
	case ModelBlackScholes, ModelBinomial, ModelMonteCarlo, ModelTelegraph, ModelLongstaffSchwartz:
		return true
	default:
		return false
	}
}

// PricingEngine 统一定价入口, 按模型类别分发到具体求解器.
// TelegraphLambdaUp/Down 为空时电报模型自行拟合切换强度.
type PricingEngine struct {
	BinomialSteps       int
	Simulations         int
	MonteCarloSteps     int
	TelegraphSteps      int
	TelegraphLambdaUp   *float64
	TelegraphLambdaDown *float64
}

// NewPricingEngine 构造带默认数值参数的定价引擎.
func NewPricingEngine() *PricingEngine {
	return &PricingEngine{
		BinomialSteps:   500,
		Simulations:     10000,
		MonteCarloSteps: 100,
		TelegraphSteps:  100,
	}
}

// Price 按模型类别计算期权价格.
func (e *PricingEngine) Price(o *Option, model PricingModelType) (decimal.Decimal, error) {
	switch model {
	case ModelBlackScholes:
		return PriceBlackScholes(o)
	case ModelBinomial:
		return PriceBinomial(o, e.BinomialSteps)
	case ModelMonteCarlo:
		return PriceMonteCarlo(o, e.Simulations, e.MonteCarloSteps)
	case ModelTelegraph:
		return PriceTelegraph(o, e.TelegraphSteps, e.TelegraphLambdaUp, e.TelegraphLambdaDown)
	case ModelLongstaffSchwartz:
		return PriceLongstaffSchwartz(o, e.Simulations, e.MonteCarloSteps)
	default:
		return decimal.Zero, ErrUnsupportedModel
	}
}

// Greeks 计算希腊字母, 与模型无关, 始终采用解析公式.
func (e *PricingEngine) Greeks(o *Option) (*Greeks, error) {
	return CalculateGreeks(o)
}

// ImpliedVolatility 由市场价反推隐含波动率.
func (e *PricingEngine) ImpliedVolatility(o *Option, marketPrice decimal.Decimal) (decimal.Decimal, error) {
	vol, err := CalibrateImpliedVolatility(o, marketPrice)
	if err != nil {
		return decimal.Zero, err
	}
	return vol.Dec(), nil
}
