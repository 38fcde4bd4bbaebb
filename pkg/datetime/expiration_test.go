package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpirationDays(t *testing.T) {
	e, err := NewExpirationDays(365)
	require.NoError(t, err)
	assert.InDelta(t, 365, e.Days(), 1e-12)
	assert.InDelta(t, 1.0, e.Years(), 1e-12)
	assert.False(t, e.IsExpired())

	_, err = NewExpirationDays(-1)
	assert.Error(t, err)
}

func TestExpirationZeroDaysIsExpired(t *testing.T) {
	e := MustExpirationDays(0)
	assert.True(t, e.IsExpired())
	assert.Zero(t, e.Years())
}

func TestExpirationDateTime(t *testing.T) {
	future := NewExpirationDateTime(time.Now().Add(48 * time.Hour))
	assert.InDelta(t, 2, future.Days(), 0.01)

	past := NewExpirationDateTime(time.Now().Add(-time.Hour))
	assert.Zero(t, past.Days())
	assert.True(t, past.IsExpired())
}

func TestExpirationSubClampsAtZero(t *testing.T) {
	e := MustExpirationDays(5)
	assert.InDelta(t, 3, e.Sub(2).Days(), 1e-12)
	assert.Zero(t, e.Sub(10).Days())
}

func TestTimeFrame(t *testing.T) {
	cases := map[TimeFrame]float64{
		TimeFrameDay:   1,
		TimeFrameWeek:  7,
		TimeFrameMonth: DaysInYear / 12,
		TimeFrameYear:  DaysInYear,
	}
	for tf, want := range cases {
		days, err := tf.DaysPerUnit()
		require.NoError(t, err)
		assert.InDelta(t, want, days, 1e-12)
		assert.True(t, tf.Valid())
	}

	_, err := TimeFrame("hour").DaysPerUnit()
	assert.Error(t, err)
	assert.False(t, TimeFrame("hour").Valid())

	periods, err := TimeFrameDay.PeriodsPerYear()
	require.NoError(t, err)
	assert.InDelta(t, 365, periods, 1e-12)
}
