package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/optionpricing/pkg/positive"
)

func TestPricingModelTypeValid(t *testing.T) {
	assert.True(t, ModelBlackScholes.Valid())
	assert.True(t, ModelBinomial.Valid())
	assert.True(t, ModelMonteCarlo.Valid())
	assert.True(t, ModelTelegraph.Valid())
	assert.True(t, ModelLongstaffSchwartz.Valid())
	assert.False(t, PricingModelType("heston").Valid())
}

func TestEngineDispatch(t *testing.T) {
	engine := NewPricingEngine()
	engine.Simulations = 2000
	engine.MonteCarloSteps = 20
	engine.TelegraphSteps = 20
	engine.BinomialSteps = 200

	o := newTestOption()
	bs, err := engine.Price(o, ModelBlackScholes)
	require.NoError(t, err)

	for _, model := range []PricingModelType{ModelBinomial, ModelMonteCarlo, ModelTelegraph} {
		price, err := engine.Price(o, model)
		require.NoError(t, err, "model %s", model)
		// 各数值模型与解析解同数量级
		assert.InDelta(t, bs.InexactFloat64(), price.InexactFloat64(), 5.0, "model %s", model)
	}
}

func TestEngineLongstaffSchwartz(t *testing.T) {
	engine := NewPricingEngine()
	engine.Simulations = 2000
	engine.MonteCarloSteps = 20

	o := newTestOption()
	o.Type = OptionTypePut
	o.Style = OptionStyleAmerican

	price, err := engine.Price(o, ModelLongstaffSchwartz)
	require.NoError(t, err)
	assert.Greater(t, price.InexactFloat64(), 0.0)
}

func TestEngineUnsupportedModel(t *testing.T) {
	engine := NewPricingEngine()
	_, err := engine.Price(newTestOption(), PricingModelType("heston"))
	assert.ErrorIs(t, err, ErrUnsupportedModel)
}

func TestEngineGreeksAndImpliedVolatility(t *testing.T) {
	engine := NewPricingEngine()
	o := newTestOption()

	g, err := engine.Greeks(o)
	require.NoError(t, err)
	assert.False(t, g.Delta.IsZero())

	market, err := PriceBlackScholes(o)
	require.NoError(t, err)
	vol, err := engine.ImpliedVolatility(o, market)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, vol.InexactFloat64(), 1e-4)

	bad := newTestOption()
	bad.Quantity = positive.Zero
	_, err = engine.ImpliedVolatility(bad, decimal.NewFromFloat(5))
	assert.Error(t, err)
}
