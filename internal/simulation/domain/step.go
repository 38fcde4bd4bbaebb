// Package domain 实现通用的随机游走引擎:
// 时间步 Xstep, 取值步 Ystep, 以及由步进策略驱动的 RandomWalk.
package domain

import (
	"fmt"

	"github.com/wyfcoding/optionpricing/pkg/datetime"
	"github.com/wyfcoding/pkg/xerrors"
)

// XValue 时间轴步长的取值约束.
type XValue interface {
	~int | ~int64 | ~float64
}

// YValue 取值轴的约束, 要求可打印, 价格类通常使用 positive.Positive.
type YValue interface {
	fmt.Stringer
}

// Xstep 时间轴上的一步: 序号, 步长, 采样频率与剩余到期时间.
// 值语义, Next 返回新步而不修改原步.
type Xstep[X XValue] struct {
	index     int
	stepSize  X
	timeFrame datetime.TimeFrame
	expiry    datetime.ExpirationDate
}

// NewXstep 构造时间轴起始步. 步长必须为正, 频率必须有效.
func NewXstep[X XValue](stepSize X, timeFrame datetime.TimeFrame, expiry datetime.ExpirationDate) (Xstep[X], error) {
	if float64(stepSize) <= 0 {
		return Xstep[X]{}, xerrors.InvalidArg("step size must be positive").WithDetail("got %v", stepSize)
	}
	if !timeFrame.Valid() {
		return Xstep[X]{}, xerrors.InvalidArg("unknown time frame").WithDetail("got %q", string(timeFrame))
	}
	return Xstep[X]{stepSize: stepSize, timeFrame: timeFrame, expiry: expiry}, nil
}

// Index 当前步序号, 起始为 0.
func (s Xstep[X]) Index() int { return s.index }

// StepSize 单步跨越的频率单位数.
func (s Xstep[X]) StepSize() X { return s.stepSize }

// TimeFrame 采样频率.
func (s Xstep[X]) TimeFrame() datetime.TimeFrame { return s.timeFrame }

// Expiry 当前步对应的剩余到期时间.
func (s Xstep[X]) Expiry() datetime.ExpirationDate { return s.expiry }

// DaysPerStep 单步对应的天数.
func (s Xstep[X]) DaysPerStep() float64 {
	days, err := s.timeFrame.DaysPerUnit()
	if err != nil {
		return 0
	}
	return float64(s.stepSize) * days
}

// YearsPerStep 单步对应的年化时长.
func (s Xstep[X]) YearsPerStep() float64 {
	return s.DaysPerStep() / datetime.DaysInYear
}

// Next 推进一步: 序号加一, 剩余天数按步长扣减并在 0 处截断.
// 剩余时间已经为 0 时返回 ErrTimeExhausted.
func (s Xstep[X]) Next() (Xstep[X], error) {
	if s.expiry.IsExpired() {
		return Xstep[X]{}, ErrTimeExhausted
	}
	return Xstep[X]{
		index:     s.index + 1,
		stepSize:  s.stepSize,
		timeFrame: s.timeFrame,
		expiry:    s.expiry.Sub(s.DaysPerStep()),
	}, nil
}

// Previous 回退一步: 序号减一, 剩余天数按步长恢复.
// 已处于起始步时返回错误.
func (s Xstep[X]) Previous() (Xstep[X], error) {
	if s.index == 0 {
		return Xstep[X]{}, xerrors.InvalidArg("already at the first step")
	}
	return Xstep[X]{
		index:     s.index - 1,
		stepSize:  s.stepSize,
		timeFrame: s.timeFrame,
		expiry:    s.expiry.Add(s.DaysPerStep()),
	}, nil
}

// Ystep 取值轴上的一步, 不可变, Next 返回携带新值的下一步.
type Ystep[Y YValue] struct {
	index int
	value Y
}

// NewYstep 构造取值轴起始步.
func NewYstep[Y YValue](value Y) Ystep[Y] {
	return Ystep[Y]{value: value}
}

// Index 当前步序号.
func (s Ystep[Y]) Index() int { return s.index }

// Value 当前取值.
func (s Ystep[Y]) Value() Y { return s.value }

// Next 返回序号加一且取值为 value 的新步, 原步保持不变.
func (s Ystep[Y]) Next(value Y) Ystep[Y] {
	return Ystep[Y]{index: s.index + 1, value: value}
}

// Step 随机游走中的一个完整节点, 绑定同一时刻的时间步与取值步.
type Step[X XValue, Y YValue] struct {
	X Xstep[X]
	Y Ystep[Y]
}

// NewStep 构造游走起始节点.
func NewStep[X XValue, Y YValue](x Xstep[X], value Y) Step[X, Y] {
	return Step[X, Y]{X: x, Y: NewYstep(value)}
}

// Next 由新取值推进到下一节点, 时间耗尽时报错.
func (s Step[X, Y]) Next(value Y) (Step[X, Y], error) {
	nextX, err := s.X.Next()
	if err != nil {
		return Step[X, Y]{}, err
	}
	return Step[X, Y]{X: nextX, Y: s.Y.Next(value)}, nil
}

// String 实现 fmt.Stringer, 便于日志输出.
func (s Step[X, Y]) String() string {
	return fmt.Sprintf("step{i=%d, days=%v, value=%s}", s.X.index, s.X.expiry.Days(), s.Y.value.String())
}
