package domain

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/optionpricing/pkg/positive"
	"github.com/wyfcoding/pkg/xerrors"
)

// 隐含波动率二分法的搜索区间与收敛参数.
const (
	ivLowerBound    = 0.0
	ivUpperBound    = 5.0
	ivTolerance     = 1e-8
	ivMinWidth      = 1e-9
	ivMaxIterations = 500
)

// CalibrateImpliedVolatility 由市场价反推隐含波动率.
// 在 [0, 5] 区间上对 Black-Scholes 价格做二分搜索,
// 空头合约先将目标价取负转换为多头口径.
// 区间收敛到 1e-9 以内或价差小于 1e-8 即成功, 500 次迭代未收敛返回
// ErrMathConvergence.
func CalibrateImpliedVolatility(o *Option, marketPrice decimal.Decimal) (positive.Positive, error) {
	if err := o.Validate(); err != nil {
		return positive.Zero, err
	}
	if o.IsExpired() {
		return positive.Zero, xerrors.InvalidArg("cannot calibrate an expired option")
	}

	target := marketPrice.InexactFloat64()
	if o.Side == SideShort {
		target = -target
	}
	if target < 0 {
		return positive.Zero, xerrors.InvalidArg("market price sign inconsistent with side").
			WithDetail("side %s, market price %s", o.Side, marketPrice.String())
	}

	trial := *o
	trial.Side = SideLong

	lo, hi := ivLowerBound, ivUpperBound
	for i := 0; i < ivMaxIterations; i++ {
		mid := (lo + hi) / 2
		vol, err := positive.FromFloat(mid)
		if err != nil {
			return positive.Zero, err
		}
		trial.ImpliedVolatility = vol

		price := blackScholesUnitPrice(&trial) * trial.Quantity.Float64()
		diff := price - target
		if math.Abs(diff) < ivTolerance || hi-lo < ivMinWidth {
			return vol, nil
		}
		if diff > 0 {
			hi = mid
		} else {
			lo = mid
		}
	}
	return positive.Zero, xerrors.ErrMathConvergence
}
