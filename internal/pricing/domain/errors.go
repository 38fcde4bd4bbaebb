package domain

import "github.com/wyfcoding/pkg/xerrors"

var (
	// ErrInvalidStrike 行权价必须为正.
	ErrInvalidStrike = xerrors.New(xerrors.ErrInvalidArg, 400201, "invalid strike", "strike price must be positive", nil)
	// ErrInvalidUnderlying 标的价格必须为正.
	ErrInvalidUnderlying = xerrors.New(xerrors.ErrInvalidArg, 400202, "invalid underlying price", "underlying price must be positive", nil)
	// ErrInvalidQuantity 数量必须为正.
	ErrInvalidQuantity = xerrors.New(xerrors.ErrInvalidArg, 400203, "invalid quantity", "quantity must be positive", nil)
	// ErrInvalidOptionStyle 无效的行权方式.
	ErrInvalidOptionStyle = xerrors.New(xerrors.ErrInvalidArg, 400204, "invalid option style", "supported styles: european, american", nil)
	// ErrInvalidSide 无效的持仓方向.
	ErrInvalidSide = xerrors.New(xerrors.ErrInvalidArg, 400205, "invalid side", "supported sides: long, short", nil)
	// ErrUnsupportedModel 请求了不受支持的定价模型.
	ErrUnsupportedModel = xerrors.New(xerrors.ErrInvalidArg, 400206, "unsupported pricing model", "supported models: black_scholes, binomial, monte_carlo, telegraph", nil)
	// ErrInvalidSimulation 模拟参数必须为正.
	ErrInvalidSimulation = xerrors.New(xerrors.ErrInvalidArg, 400207, "invalid simulation parameters", "simulation and step counts must be positive", nil)
	// ErrEmptyPricePath 价格路径为空.
	ErrEmptyPricePath = xerrors.New(xerrors.ErrInvalidArg, 400208, "empty price path", "price path must contain at least one sample", nil)
)
