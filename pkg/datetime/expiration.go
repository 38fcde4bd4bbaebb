// Package datetime 提供定价与模拟共用的时间类型:
// 到期日 ExpirationDate 与采样频率 TimeFrame.
package datetime

import (
	"time"

	"github.com/wyfcoding/pkg/xerrors"
)

// DaysInYear 年化基准天数.
const DaysInYear = 365.0

// ExpirationDate 期权到期日, 支持两种表达:
// 剩余天数 (Days) 或绝对时间点 (DateTime).
// 零值表示 0 天, 即已到期.
type ExpirationDate struct {
	days     float64
	datetime time.Time
	absolute bool
}

// NewExpirationDays 以剩余天数构造到期日, 负数返回错误.
func NewExpirationDays(days float64) (ExpirationDate, error) {
	if days < 0 {
		return ExpirationDate{}, xerrors.InvalidArg("expiration days must be non-negative").
			WithDetail("got %v", days)
	}
	return ExpirationDate{days: days}, nil
}

// MustExpirationDays 以剩余天数构造到期日, 负数直接 panic.
func MustExpirationDays(days float64) ExpirationDate {
	e, err := NewExpirationDays(days)
	if err != nil {
		panic(err)
	}
	return e
}

// NewExpirationDateTime 以绝对时间点构造到期日.
// 剩余时间按当前时刻计算, 已过期的时间点视为 0 天.
func NewExpirationDateTime(t time.Time) ExpirationDate {
	return ExpirationDate{datetime: t, absolute: true}
}

// Days 返回距离到期的剩余天数, 最小为 0.
func (e ExpirationDate) Days() float64 {
	if !e.absolute {
		return e.days
	}
	remaining := time.Until(e.datetime).Hours() / 24
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Years 返回年化剩余期限, 基准为 365 天.
func (e ExpirationDate) Years() float64 {
	return e.Days() / DaysInYear
}

// IsExpired 判断是否已到期.
func (e ExpirationDate) IsExpired() bool {
	return e.Days() == 0
}

// Sub 返回剩余天数减去 days 后的新到期日, 不足时截断为 0.
func (e ExpirationDate) Sub(days float64) ExpirationDate {
	remaining := e.Days() - days
	if remaining < 0 {
		remaining = 0
	}
	return ExpirationDate{days: remaining}
}

// Add 返回剩余天数增加 days 后的新到期日.
func (e ExpirationDate) Add(days float64) ExpirationDate {
	return ExpirationDate{days: e.Days() + days}
}
