// Package positive 提供了基于 shopspring/decimal 的非负数值包装.
// 行权价、波动率、期限、价格等定价输入在构造时即保证 >= 0,
// 使得负值在进入数值求解器之前就被拒绝.
package positive

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/pkg/xerrors"
)

// Positive 封装了保证非负的高精度数值.
// 零值可用, 等价于 Zero.
type Positive struct {
	value decimal.Decimal
}

var (
	// Zero 非负零值.
	Zero = Positive{value: decimal.Zero}
	// One 非负单位值.
	One = Positive{value: decimal.NewFromInt(1)}
	// Hundred 常用基准值.
	Hundred = Positive{value: decimal.NewFromInt(100)}
)

// New 从 decimal 创建 Positive, 负值返回 InvalidArg 错误.
func New(d decimal.Decimal) (Positive, error) {
	if d.IsNegative() {
		return Positive{}, xerrors.InvalidArg("value must be non-negative").
			WithDetail("got %s", d.String())
	}
	return Positive{value: d}, nil
}

// MustNew 从 decimal 创建 Positive, 负值直接 panic.
// 仅用于字面量与测试场景.
func MustNew(d decimal.Decimal) Positive {
	p, err := New(d)
	if err != nil {
		panic(fmt.Sprintf("positive: %v", err))
	}
	return p
}

// FromFloat 从 float64 创建 Positive.
func FromFloat(val float64) (Positive, error) {
	return New(decimal.NewFromFloat(val))
}

// MustFromFloat 从 float64 创建 Positive, 负值直接 panic.
func MustFromFloat(val float64) Positive {
	return MustNew(decimal.NewFromFloat(val))
}

// FromInt 从 int64 创建 Positive.
func FromInt(val int64) (Positive, error) {
	return New(decimal.NewFromInt(val))
}

// FromString 从字符串解析 Positive.
func FromString(val string) (Positive, error) {
	d, err := decimal.NewFromString(val)
	if err != nil {
		return Positive{}, xerrors.Wrap(err, xerrors.ErrInvalidArg, "invalid decimal literal")
	}
	return New(d)
}

// Dec 返回底层 decimal 值.
func (p Positive) Dec() decimal.Decimal {
	return p.value
}

// Float64 返回底层值的 float64 近似.
func (p Positive) Float64() float64 {
	return p.value.InexactFloat64()
}

// String 实现 fmt.Stringer.
func (p Positive) String() string {
	return p.value.String()
}

// IsZero 判断是否为零.
func (p Positive) IsZero() bool {
	return p.value.IsZero()
}

// Add 加法, 非负封闭.
func (p Positive) Add(other Positive) Positive {
	return Positive{value: p.value.Add(other.value)}
}

// Mul 乘法, 非负封闭.
func (p Positive) Mul(other Positive) Positive {
	return Positive{value: p.value.Mul(other.value)}
}

// MulDecimal 与带符号 decimal 相乘, 结果可能为负, 因此返回 decimal.
func (p Positive) MulDecimal(d decimal.Decimal) decimal.Decimal {
	return p.value.Mul(d)
}

// Div 除法, 除数为零返回 InvalidArg 错误.
func (p Positive) Div(other Positive) (Positive, error) {
	if other.value.IsZero() {
		return Positive{}, xerrors.InvalidArg("division by zero")
	}
	return Positive{value: p.value.Div(other.value)}, nil
}

// Sub 减法, 结果为负时返回错误而非静默截断.
func (p Positive) Sub(other Positive) (Positive, error) {
	result := p.value.Sub(other.value)
	return New(result)
}

// AddDecimal 与带符号 decimal 相加, 结果为负时返回错误.
// 用于模拟过程中把随机增量并入价格而不破坏非负约束.
func (p Positive) AddDecimal(d decimal.Decimal) (Positive, error) {
	return New(p.value.Add(d))
}

// Cmp 比较两个值, 语义同 decimal.Cmp.
func (p Positive) Cmp(other Positive) int {
	return p.value.Cmp(other.value)
}

// LessThan 判断 p < other.
func (p Positive) LessThan(other Positive) bool {
	return p.value.LessThan(other.value)
}

// GreaterThan 判断 p > other.
func (p Positive) GreaterThan(other Positive) bool {
	return p.value.GreaterThan(other.value)
}

// Equal 判断数值相等.
func (p Positive) Equal(other Positive) bool {
	return p.value.Equal(other.value)
}

// Max 返回两者较大值.
func (p Positive) Max(other Positive) Positive {
	if p.value.GreaterThanOrEqual(other.value) {
		return p
	}
	return other
}

// Min 返回两者较小值.
func (p Positive) Min(other Positive) Positive {
	if p.value.LessThanOrEqual(other.value) {
		return p
	}
	return other
}

// MarshalJSON 实现 json.Marshaler.
func (p Positive) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}

// UnmarshalJSON 实现 json.Unmarshaler, 负值解析失败.
func (p *Positive) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	parsed, err := New(d)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
