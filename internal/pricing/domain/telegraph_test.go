package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/optionpricing/pkg/datetime"
	"github.com/wyfcoding/optionpricing/pkg/positive"
)

func TestTelegraphProcessAdvance(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	p, err := NewTelegraphProcess(100, 100, rng)
	require.NoError(t, err)
	assert.Equal(t, 1, p.State())

	flipped := false
	for i := 0; i < 1000; i++ {
		state := p.Advance(tradingDayDt)
		assert.Contains(t, []int{-1, 1}, state)
		if state == -1 {
			flipped = true
		}
	}
	// λ=100, dt=1/252: 千步内几乎必然发生切换
	assert.True(t, flipped)
}

func TestTelegraphProcessSymmetricRates(t *testing.T) {
	// 对称强度下, 长期运行后终态在 ±1 间近似均匀分布.
	rng := rand.New(rand.NewSource(7))

	var sum int
	const trials = 2000
	for i := 0; i < trials; i++ {
		p, err := NewTelegraphProcess(50, 50, rng)
		require.NoError(t, err)
		var state int
		for j := 0; j < 200; j++ {
			state = p.Advance(tradingDayDt)
		}
		sum += state
	}
	assert.InDelta(t, 0, float64(sum)/trials, 0.1)
}

func TestNewTelegraphProcessValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := NewTelegraphProcess(0, 10, rng)
	assert.Error(t, err)
	_, err = NewTelegraphProcess(10, -1, rng)
	assert.Error(t, err)
	_, err = NewTelegraphProcess(10, 10, nil)
	assert.Error(t, err)
}

func TestSimulateReturns(t *testing.T) {
	o := newTestOption()
	rng := rand.New(rand.NewSource(3))

	returns, err := SimulateReturns(o, 252, rng)
	require.NoError(t, err)
	require.Len(t, returns, 252)

	// 日频对数收益量级: σ√dt ≈ 0.0126
	for _, r := range returns {
		assert.Less(t, r, 0.1)
		assert.Greater(t, r, -0.1)
	}

	_, err = SimulateReturns(o, 0, rng)
	assert.ErrorIs(t, err, ErrInvalidSimulation)
}

func TestEstimateTelegraphRates(t *testing.T) {
	// 构造 +,+,-,-,+,+,-,- 模式: 每个状态平均驻留 2 天
	returns := []float64{1, 1, -1, -1, 1, 1, -1, -1}
	up, down, err := EstimateTelegraphRates(returns, tradingDayDt)
	require.NoError(t, err)

	// 每 2·dt 切换一次 → 强度约 252/2
	assert.InDelta(t, 126, down, 45)
	assert.InDelta(t, 126, up, 130)
	assert.Greater(t, up, 0.0)
	assert.Greater(t, down, 0.0)
}

func TestEstimateTelegraphRatesEdgeCases(t *testing.T) {
	_, _, err := EstimateTelegraphRates(nil, tradingDayDt)
	assert.Error(t, err)

	_, _, err = EstimateTelegraphRates([]float64{0.1}, 0)
	assert.Error(t, err)

	// 全正收益: 无切换, 退化为 1/dt
	up, down, err := EstimateTelegraphRates([]float64{1, 1, 1}, tradingDayDt)
	require.NoError(t, err)
	assert.InDelta(t, 252, up, 1e-9)
	assert.InDelta(t, 252, down, 1e-9)
}

func TestPriceTelegraphWithExplicitRates(t *testing.T) {
	o := newTestOption()
	up, down := 50.0, 50.0
	rng := rand.New(rand.NewSource(21))

	price, err := PriceTelegraphWithRand(o, 50, &up, &down, rng)
	require.NoError(t, err)
	// 平值看涨在正波动下有正的时间价值
	assert.Greater(t, price.InexactFloat64(), 0.0)
}

func TestPriceTelegraphEstimatesRatesWhenNil(t *testing.T) {
	o := newTestOption()
	rng := rand.New(rand.NewSource(8))

	price, err := PriceTelegraphWithRand(o, 50, nil, nil, rng)
	require.NoError(t, err)
	assert.Greater(t, price.InexactFloat64(), 0.0)
}

func TestPriceTelegraphExpired(t *testing.T) {
	o := newTestOption()
	o.UnderlyingPrice = positive.MustFromFloat(107)
	o.Expiration = datetime.MustExpirationDays(0)

	price, err := PriceTelegraphWithRand(o, 50, nil, nil, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.InDelta(t, 7, price.InexactFloat64(), 1e-9)
}

func TestPriceTelegraphInvalidSteps(t *testing.T) {
	_, err := PriceTelegraphWithRand(newTestOption(), 0, nil, nil, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrInvalidSimulation)
}
