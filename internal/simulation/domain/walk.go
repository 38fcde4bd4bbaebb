package domain

import (
	"errors"
	"fmt"

	"github.com/wyfcoding/pkg/xerrors"
)

// WalkType 随机游走的类别.
type WalkType string

const (
	// WalkTypeBrownian 算术布朗运动.
	WalkTypeBrownian WalkType = "brownian"
	// WalkTypeGeometricBrownian 几何布朗运动.
	WalkTypeGeometricBrownian WalkType = "geometric_brownian"
	// WalkTypeTelegraph 两态电报过程.
	WalkTypeTelegraph WalkType = "telegraph"
)

// Walker 步进策略: 由游走参数与上一节点给出下一取值.
type Walker[X XValue, Y YValue] interface {
	Next(params *WalkParams[X, Y], prev Step[X, Y]) (Y, error)
}

// WalkParams 一次随机游走的完整配置.
type WalkParams[X XValue, Y YValue] struct {
	// Size 目标步数, 不含起始节点.
	Size int
	// InitStep 起始节点.
	InitStep Step[X, Y]
	// WalkType 游走类别.
	WalkType WalkType
	// Walker 步进策略.
	Walker Walker[X, Y]
}

// Validate 校验游走参数.
func (p *WalkParams[X, Y]) Validate() error {
	if p.Size <= 0 {
		return ErrInvalidWalkSize
	}
	if p.Walker == nil {
		return ErrNilWalker
	}
	return nil
}

// Generator 由游走参数生成节点序列的函数.
type Generator[X XValue, Y YValue] func(params *WalkParams[X, Y]) ([]Step[X, Y], error)

// DefaultGenerator 标准生成器: 从起始节点出发, 重复调用步进策略,
// 直到达到目标步数或时间轴耗尽.
func DefaultGenerator[X XValue, Y YValue](params *WalkParams[X, Y]) ([]Step[X, Y], error) {
	steps := make([]Step[X, Y], 0, params.Size+1)
	steps = append(steps, params.InitStep)

	current := params.InitStep
	for i := 0; i < params.Size; i++ {
		value, err := params.Walker.Next(params, current)
		if err != nil {
			return nil, err
		}
		next, err := current.Next(value)
		if errors.Is(err, ErrTimeExhausted) {
			break
		}
		if err != nil {
			return nil, err
		}
		steps = append(steps, next)
		current = next
	}
	return steps, nil
}

// RandomWalk 一条已生成的随机游走路径.
type RandomWalk[X XValue, Y YValue] struct {
	title  string
	params WalkParams[X, Y]
	steps  []Step[X, Y]
}

// NewRandomWalk 生成一条随机游走. generator 为空时使用 DefaultGenerator.
func NewRandomWalk[X XValue, Y YValue](title string, params WalkParams[X, Y], generator Generator[X, Y]) (*RandomWalk[X, Y], error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if generator == nil {
		generator = DefaultGenerator[X, Y]
	}
	steps, err := generator(&params)
	if err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return nil, ErrEmptyWalk
	}
	return &RandomWalk[X, Y]{title: title, params: params, steps: steps}, nil
}

// Title 路径标题.
func (w *RandomWalk[X, Y]) Title() string { return w.title }

// SetTitle 更新路径标题.
func (w *RandomWalk[X, Y]) SetTitle(title string) { w.title = title }

// Len 节点数量, 含起始节点.
func (w *RandomWalk[X, Y]) Len() int { return len(w.steps) }

// Steps 返回全部节点的副本.
func (w *RandomWalk[X, Y]) Steps() []Step[X, Y] {
	out := make([]Step[X, Y], len(w.steps))
	copy(out, w.steps)
	return out
}

// GetStep 返回第 i 个节点, 越界直接 panic.
func (w *RandomWalk[X, Y]) GetStep(i int) Step[X, Y] {
	if i < 0 || i >= len(w.steps) {
		panic(fmt.Sprintf("random walk: step index %d out of range [0, %d)", i, len(w.steps)))
	}
	return w.steps[i]
}

// SetStep 覆盖第 i 个节点, 越界返回错误.
func (w *RandomWalk[X, Y]) SetStep(i int, step Step[X, Y]) error {
	if i < 0 || i >= len(w.steps) {
		return xerrors.InvalidArg("step index out of range").
			WithDetail("index %d, len %d", i, len(w.steps))
	}
	w.steps[i] = step
	return nil
}

// First 起始节点.
func (w *RandomWalk[X, Y]) First() Step[X, Y] {
	return w.steps[0]
}

// Last 末端节点.
func (w *RandomWalk[X, Y]) Last() Step[X, Y] {
	return w.steps[len(w.steps)-1]
}

// Values 按顺序返回每个节点的取值.
func (w *RandomWalk[X, Y]) Values() []Y {
	out := make([]Y, len(w.steps))
	for i, s := range w.steps {
		out[i] = s.Y.Value()
	}
	return out
}
