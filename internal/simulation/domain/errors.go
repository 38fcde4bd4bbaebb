package domain

import "github.com/wyfcoding/pkg/xerrors"

var (
	// ErrTimeExhausted 时间轴已走到 0 天, 无法继续推进.
	ErrTimeExhausted = xerrors.New(xerrors.ErrInvalidArg, 400101, "time exhausted", "no remaining days to advance the step", nil)
	// ErrEmptyWalk 随机游走不含任何步.
	ErrEmptyWalk = xerrors.New(xerrors.ErrInvalidArg, 400102, "empty walk", "walk must contain at least one step", nil)
	// ErrInvalidWalkSize 游走步数必须为正.
	ErrInvalidWalkSize = xerrors.New(xerrors.ErrInvalidArg, 400103, "invalid walk size", "size must be positive", nil)
	// ErrNilWalker 未提供步进策略.
	ErrNilWalker = xerrors.New(xerrors.ErrInvalidArg, 400104, "nil walker", "walk params must carry a walker strategy", nil)
)
