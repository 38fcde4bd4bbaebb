package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// BinomialTree Cox-Ross-Rubinstein 二叉树的完整节点值,
// AssetTree[i][j] 为第 i 层第 j 个节点的标的价 (j 为上行次数),
// OptionTree[i][j] 为对应的期权价值.
type BinomialTree struct {
	AssetTree  [][]float64
	OptionTree [][]float64
}

// PriceBinomial 用 CRR 二叉树为期权定价.
// 欧式仅在到期层取收益贴现, 美式每层与立即行权价值取大.
// 已到期返回内在价值, 零波动退化为确定性贴现.
func PriceBinomial(o *Option, steps int) (decimal.Decimal, error) {
	if err := o.Validate(); err != nil {
		return decimal.Zero, err
	}
	if steps <= 0 {
		return decimal.Zero, ErrInvalidSimulation
	}

	unit := binomialUnitPrice(o, steps)
	return decimal.NewFromFloat(unit * o.Quantity.Float64() * o.Side.Multiplier()), nil
}

func binomialUnitPrice(o *Option, steps int) float64 {
	s := o.UnderlyingPrice.Float64()
	r := o.RiskFreeRate
	q := o.DividendYield.Float64()
	sigma := o.ImpliedVolatility.Float64()
	t := o.TimeToExpiry()

	if t == 0 {
		return o.intrinsicAt(s)
	}
	if sigma == 0 {
		// 确定性路径: 标的按远期增长, 到期收益贴现回来.
		forward := s * math.Exp((r-q)*t)
		return math.Exp(-r*t) * o.intrinsicAt(forward)
	}

	dt := t / float64(steps)
	u := math.Exp(sigma * math.Sqrt(dt))
	d := 1 / u
	p := (math.Exp((r-q)*dt) - d) / (u - d)
	disc := math.Exp(-r * dt)

	// 到期层
	values := make([]float64, steps+1)
	for j := 0; j <= steps; j++ {
		price := s * math.Pow(u, float64(j)) * math.Pow(d, float64(steps-j))
		values[j] = o.intrinsicAt(price)
	}

	// 逐层回溯
	for i := steps - 1; i >= 0; i-- {
		for j := 0; j <= i; j++ {
			continuation := disc * (p*values[j+1] + (1-p)*values[j])
			if o.Style == OptionStyleAmerican {
				price := s * math.Pow(u, float64(j)) * math.Pow(d, float64(i-j))
				if exercise := o.intrinsicAt(price); exercise > continuation {
					continuation = exercise
				}
			}
			values[j] = continuation
		}
	}
	return values[0]
}

// GenerateBinomialTree 构建并返回完整的 CRR 二叉树,
// 用于可视化或调试, 节点值为单位多头合约口径.
func GenerateBinomialTree(o *Option, steps int) (*BinomialTree, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if steps <= 0 {
		return nil, ErrInvalidSimulation
	}

	s := o.UnderlyingPrice.Float64()
	r := o.RiskFreeRate
	q := o.DividendYield.Float64()
	sigma := o.ImpliedVolatility.Float64()
	t := o.TimeToExpiry()

	tree := &BinomialTree{
		AssetTree:  make([][]float64, steps+1),
		OptionTree: make([][]float64, steps+1),
	}

	if t == 0 || sigma == 0 {
		// 退化树: 单节点即可说明问题.
		tree.AssetTree[0] = []float64{s}
		tree.OptionTree[0] = []float64{binomialUnitPrice(o, steps)}
		for i := 1; i <= steps; i++ {
			tree.AssetTree[i] = []float64{}
			tree.OptionTree[i] = []float64{}
		}
		return tree, nil
	}

	dt := t / float64(steps)
	u := math.Exp(sigma * math.Sqrt(dt))
	d := 1 / u
	p := (math.Exp((r-q)*dt) - d) / (u - d)
	disc := math.Exp(-r * dt)

	for i := 0; i <= steps; i++ {
		tree.AssetTree[i] = make([]float64, i+1)
		tree.OptionTree[i] = make([]float64, i+1)
		for j := 0; j <= i; j++ {
			tree.AssetTree[i][j] = s * math.Pow(u, float64(j)) * math.Pow(d, float64(i-j))
		}
	}

	for j := 0; j <= steps; j++ {
		tree.OptionTree[steps][j] = o.intrinsicAt(tree.AssetTree[steps][j])
	}
	for i := steps - 1; i >= 0; i-- {
		for j := 0; j <= i; j++ {
			continuation := disc * (p*tree.OptionTree[i+1][j+1] + (1-p)*tree.OptionTree[i+1][j])
			if o.Style == OptionStyleAmerican {
				if exercise := o.intrinsicAt(tree.AssetTree[i][j]); exercise > continuation {
					continuation = exercise
				}
			}
			tree.OptionTree[i][j] = continuation
		}
	}
	return tree, nil
}
