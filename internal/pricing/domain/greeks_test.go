package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/optionpricing/pkg/datetime"
	"github.com/wyfcoding/optionpricing/pkg/positive"
)

func TestGreeksKnownValues(t *testing.T) {
	g, err := CalculateGreeks(newTestOption())
	require.NoError(t, err)

	// S=K=100, r=0.05, σ=0.2, T=1 的标准值
	assert.InDelta(t, 0.6368, g.Delta.InexactFloat64(), 1e-3)
	assert.InDelta(t, 0.01876, g.Gamma.InexactFloat64(), 1e-4)
	assert.InDelta(t, 37.524, g.Vega.InexactFloat64(), 1e-2)
	assert.InDelta(t, -6.414, g.Theta.InexactFloat64(), 1e-2)
	assert.InDelta(t, 53.232, g.Rho.InexactFloat64(), 1e-2)
}

func TestGreeksDeltaBounds(t *testing.T) {
	call := newTestOption()
	g, err := CalculateGreeks(call)
	require.NoError(t, err)
	delta := g.Delta.InexactFloat64()
	assert.Greater(t, delta, 0.0)
	assert.Less(t, delta, 1.0)

	put := newTestOption()
	put.Type = OptionTypePut
	g, err = CalculateGreeks(put)
	require.NoError(t, err)
	delta = g.Delta.InexactFloat64()
	assert.Greater(t, delta, -1.0)
	assert.Less(t, delta, 0.0)
}

func TestGreeksGammaVegaSharedByCallAndPut(t *testing.T) {
	call := newTestOption()
	put := newTestOption()
	put.Type = OptionTypePut

	gc, err := CalculateGreeks(call)
	require.NoError(t, err)
	gp, err := CalculateGreeks(put)
	require.NoError(t, err)

	assert.InDelta(t, gc.Gamma.InexactFloat64(), gp.Gamma.InexactFloat64(), 1e-12)
	assert.InDelta(t, gc.Vega.InexactFloat64(), gp.Vega.InexactFloat64(), 1e-12)
	assert.Greater(t, gc.Gamma.InexactFloat64(), 0.0)
	assert.Greater(t, gc.Vega.InexactFloat64(), 0.0)
}

func TestGreeksShortFlipsSign(t *testing.T) {
	long, err := CalculateGreeks(newTestOption())
	require.NoError(t, err)

	shortOpt := newTestOption()
	shortOpt.Side = SideShort
	short, err := CalculateGreeks(shortOpt)
	require.NoError(t, err)

	assert.InDelta(t, -long.Delta.InexactFloat64(), short.Delta.InexactFloat64(), 1e-12)
	assert.InDelta(t, -long.Gamma.InexactFloat64(), short.Gamma.InexactFloat64(), 1e-12)
	assert.InDelta(t, -long.Vega.InexactFloat64(), short.Vega.InexactFloat64(), 1e-12)
	assert.InDelta(t, -long.Rho.InexactFloat64(), short.Rho.InexactFloat64(), 1e-12)
}

func TestGreeksQuantityScales(t *testing.T) {
	unit, err := CalculateGreeks(newTestOption())
	require.NoError(t, err)

	sized := newTestOption()
	sized.Quantity = positive.MustFromFloat(5)
	scaled, err := CalculateGreeks(sized)
	require.NoError(t, err)

	assert.InDelta(t, 5*unit.Delta.InexactFloat64(), scaled.Delta.InexactFloat64(), 1e-9)
	assert.InDelta(t, 5*unit.Theta.InexactFloat64(), scaled.Theta.InexactFloat64(), 1e-9)
}

func TestGreeksRhoD(t *testing.T) {
	o := newTestOption()
	o.DividendYield = positive.MustFromFloat(0.02)
	g, err := CalculateGreeks(o)
	require.NoError(t, err)

	// 看涨期权对股息率的敏感度为负
	assert.Less(t, g.RhoD.InexactFloat64(), 0.0)

	put := newTestOption()
	put.Type = OptionTypePut
	put.DividendYield = positive.MustFromFloat(0.02)
	g, err = CalculateGreeks(put)
	require.NoError(t, err)
	assert.Greater(t, g.RhoD.InexactFloat64(), 0.0)
}

func TestGreeksAlphaPositive(t *testing.T) {
	g, err := CalculateGreeks(newTestOption())
	require.NoError(t, err)
	assert.Greater(t, g.Alpha.InexactFloat64(), 0.0)
}

func TestGreeksDegenerateAreZero(t *testing.T) {
	expired := newTestOption()
	expired.Expiration = datetime.MustExpirationDays(0)
	g, err := CalculateGreeks(expired)
	require.NoError(t, err)
	assert.True(t, g.Delta.IsZero())
	assert.True(t, g.Gamma.IsZero())
	assert.True(t, g.Vega.IsZero())

	flat := newTestOption()
	flat.ImpliedVolatility = positive.Zero
	g, err = CalculateGreeks(flat)
	require.NoError(t, err)
	assert.True(t, g.Theta.IsZero())
	assert.True(t, g.Rho.IsZero())
}

func TestIndividualGreeksMatchBatch(t *testing.T) {
	o := newTestOption()
	batch, err := CalculateGreeks(o)
	require.NoError(t, err)

	delta, err := Delta(o)
	require.NoError(t, err)
	assert.True(t, delta.Equal(batch.Delta))

	vega, err := Vega(o)
	require.NoError(t, err)
	assert.True(t, vega.Equal(batch.Vega))

	rho, err := Rho(o)
	require.NoError(t, err)
	assert.True(t, rho.Equal(batch.Rho))
}
