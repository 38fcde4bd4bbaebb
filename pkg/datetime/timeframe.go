package datetime

import "github.com/wyfcoding/pkg/xerrors"

// TimeFrame 时间序列的采样频率.
type TimeFrame string

const (
	// TimeFrameDay 日频.
	TimeFrameDay TimeFrame = "day"
	// TimeFrameWeek 周频.
	TimeFrameWeek TimeFrame = "week"
	// TimeFrameMonth 月频, 按 365/12 天折算.
	TimeFrameMonth TimeFrame = "month"
	// TimeFrameYear 年频.
	TimeFrameYear TimeFrame = "year"
)

// DaysPerUnit 返回该频率单个周期对应的天数.
func (t TimeFrame) DaysPerUnit() (float64, error) {
	switch t {
	case TimeFrameDay:
		return 1, nil
	case TimeFrameWeek:
		return 7, nil
	case TimeFrameMonth:
		return DaysInYear / 12, nil
	case TimeFrameYear:
		return DaysInYear, nil
	default:
		return 0, xerrors.InvalidArg("unknown time frame").WithDetail("got %q", string(t))
	}
}

// PeriodsPerYear 返回一年包含的周期数.
func (t TimeFrame) PeriodsPerYear() (float64, error) {
	days, err := t.DaysPerUnit()
	if err != nil {
		return 0, err
	}
	return DaysInYear / days, nil
}

// Valid 判断是否为受支持的频率.
func (t TimeFrame) Valid() bool {
	_, err := t.DaysPerUnit()
	return err == nil
}
