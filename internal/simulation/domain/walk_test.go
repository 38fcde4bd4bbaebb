package domain

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/optionpricing/pkg/datetime"
	"github.com/wyfcoding/optionpricing/pkg/positive"
)

func newPriceWalkParams(t *testing.T, size int, days float64, walker Walker[float64, positive.Positive]) PriceWalkParams {
	t.Helper()
	x, err := NewXstep(1.0, datetime.TimeFrameDay, datetime.MustExpirationDays(days))
	require.NoError(t, err)
	return PriceWalkParams{
		Size:     size,
		InitStep: NewStep(x, positive.MustFromFloat(100)),
		WalkType: WalkTypeGeometricBrownian,
		Walker:   walker,
	}
}

func mustGaussianWalker(t *testing.T, r, q, vol float64, seed int64) *GaussianWalker {
	t.Helper()
	w, err := NewGaussianWalker(r, q, vol, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return w
}

func TestWalkParamsValidate(t *testing.T) {
	params := newPriceWalkParams(t, 10, 30, mustGaussianWalker(t, 0.05, 0, 0.2, 1))
	assert.NoError(t, params.Validate())

	params.Size = 0
	assert.Error(t, params.Validate())

	params.Size = 10
	params.Walker = nil
	assert.ErrorIs(t, params.Validate(), ErrNilWalker)
}

func TestRandomWalkGeneratesRequestedSteps(t *testing.T) {
	params := newPriceWalkParams(t, 20, 30, mustGaussianWalker(t, 0.05, 0, 0.2, 42))

	walk, err := NewRandomWalk("gbm", params, nil)
	require.NoError(t, err)
	assert.Equal(t, "gbm", walk.Title())
	assert.Equal(t, 21, walk.Len())
	assert.Equal(t, 0, walk.First().X.Index())
	assert.Equal(t, 20, walk.Last().X.Index())
	assert.Len(t, walk.Values(), 21)
}

func TestRandomWalkStopsAtTimeExhaustion(t *testing.T) {
	// 只剩 5 天, 请求 20 步: 路径在时间耗尽处截断.
	params := newPriceWalkParams(t, 20, 5, mustGaussianWalker(t, 0.05, 0, 0.2, 7))

	walk, err := NewRandomWalk("short", params, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, walk.Len())
	assert.True(t, walk.Last().X.Expiry().IsExpired())
}

func TestRandomWalkGetStepPanicsOutOfRange(t *testing.T) {
	params := newPriceWalkParams(t, 5, 30, mustGaussianWalker(t, 0.05, 0, 0.2, 3))
	walk, err := NewRandomWalk("p", params, nil)
	require.NoError(t, err)

	assert.Panics(t, func() { walk.GetStep(walk.Len()) })
	assert.Panics(t, func() { walk.GetStep(-1) })
	assert.NotPanics(t, func() { walk.GetStep(walk.Len() - 1) })
}

func TestRandomWalkSetStep(t *testing.T) {
	params := newPriceWalkParams(t, 5, 30, mustGaussianWalker(t, 0.05, 0, 0.2, 3))
	walk, err := NewRandomWalk("p", params, nil)
	require.NoError(t, err)

	replacement := walk.GetStep(1)
	replacement.Y = replacement.Y.Next(positive.MustFromFloat(500))
	require.NoError(t, walk.SetStep(1, replacement))
	assert.InDelta(t, 500, walk.GetStep(1).Y.Value().Float64(), 1e-12)

	assert.Error(t, walk.SetStep(walk.Len(), replacement))
}

func TestRandomWalkCustomGenerator(t *testing.T) {
	params := newPriceWalkParams(t, 5, 30, mustGaussianWalker(t, 0, 0, 0.2, 3))

	constant := func(p *PriceWalkParams) ([]PriceStep, error) {
		return []PriceStep{p.InitStep}, nil
	}
	walk, err := NewRandomWalk("flat", params, constant)
	require.NoError(t, err)
	assert.Equal(t, 1, walk.Len())
}

func TestGaussianWalkerZeroVolIsDeterministic(t *testing.T) {
	// 零波动零利率: 价格应保持不变.
	params := newPriceWalkParams(t, 10, 30, mustGaussianWalker(t, 0, 0, 0, 9))

	walk, err := NewRandomWalk("flat", params, nil)
	require.NoError(t, err)
	for _, v := range walk.Values() {
		assert.InDelta(t, 100, v.Float64(), 1e-9)
	}
}

func TestGaussianWalkerDriftOnly(t *testing.T) {
	// 零波动正利率: 每步增长 exp(r·dt).
	r := 0.05
	params := newPriceWalkParams(t, 10, 30, mustGaussianWalker(t, r, 0, 0, 9))

	walk, err := NewRandomWalk("drift", params, nil)
	require.NoError(t, err)

	dt := 1.0 / 365.0
	want := 100 * math.Exp(r*dt*10)
	assert.InDelta(t, want, walk.Last().Y.Value().Float64(), 1e-6)
}

func TestTelegraphWalkerStateStaysBinary(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	w, err := NewTelegraphWalker(50, 50, 0.3, rng)
	require.NoError(t, err)

	params := newPriceWalkParams(t, 200, 365, w)
	walk, genErr := NewRandomWalk("telegraph", params, nil)
	require.NoError(t, genErr)

	assert.Contains(t, []int{-1, 1}, w.State())
	for _, v := range walk.Values() {
		assert.GreaterOrEqual(t, v.Float64(), 0.0)
	}
}

func TestTelegraphWalkerValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := NewTelegraphWalker(0, 50, 0.3, rng)
	assert.Error(t, err)
	_, err = NewTelegraphWalker(50, -1, 0.3, rng)
	assert.Error(t, err)
	_, err = NewTelegraphWalker(50, 50, -0.1, rng)
	assert.Error(t, err)
	_, err = NewTelegraphWalker(50, 50, 0.3, nil)
	assert.Error(t, err)
}
