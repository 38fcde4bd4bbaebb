package application

import (
	"context"
	"math/rand"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/optionpricing/internal/pricing/domain"
	simdomain "github.com/wyfcoding/optionpricing/internal/simulation/domain"
	"github.com/wyfcoding/optionpricing/pkg/datetime"
	"github.com/wyfcoding/optionpricing/pkg/positive"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/xerrors"
)

// PricingService 定价应用服务: 编排领域求解器, 发布领域事件.
type PricingService struct {
	engine    *domain.PricingEngine
	publisher domain.EventPublisher
}

// NewPricingService 构造定价应用服务. publisher 可为 nil, 此时不发布事件.
func NewPricingService(publisher domain.EventPublisher) *PricingService {
	return &PricingService{
		engine:    domain.NewPricingEngine(),
		publisher: publisher,
	}
}

// PriceOption 按指定模型为期权定价. 模型省略时使用 Black-Scholes.
func (s *PricingService) PriceOption(ctx context.Context, cmd PriceOptionCommand) (*PriceResultDTO, error) {
	o, err := cmd.Option.ToDomain()
	if err != nil {
		return nil, err
	}

	model := domain.PricingModelType(cmd.Model)
	if cmd.Model == "" {
		model = domain.ModelBlackScholes
	}

	price, err := s.engine.Price(o, model)
	if err != nil {
		s.publishError(o, err)
		return nil, err
	}

	logging.Info(ctx, "option priced",
		"symbol", o.Symbol, "model", string(model), "price", price.String())
	s.publishPriced(o, model, price)

	now := time.Now()
	return &PriceResultDTO{
		Symbol:         o.Symbol,
		Price:          price.InexactFloat64(),
		IntrinsicValue: o.IntrinsicValue().InexactFloat64(),
		TimeValue:      o.TimeValue(price).InexactFloat64(),
		Model:          string(model),
		CalculatedAt:   now,
	}, nil
}

// CalculateGreeks 计算期权的希腊字母.
func (s *PricingService) CalculateGreeks(ctx context.Context, req OptionRequest) (*GreeksDTO, error) {
	o, err := req.ToDomain()
	if err != nil {
		return nil, err
	}

	greeks, err := s.engine.Greeks(o)
	if err != nil {
		s.publishError(o, err)
		return nil, err
	}

	logging.Info(ctx, "greeks calculated", "symbol", o.Symbol)
	s.publishGreeks(o, greeks)

	return &GreeksDTO{
		Symbol:       o.Symbol,
		Delta:        greeks.Delta.InexactFloat64(),
		Gamma:        greeks.Gamma.InexactFloat64(),
		Theta:        greeks.Theta.InexactFloat64(),
		Vega:         greeks.Vega.InexactFloat64(),
		Rho:          greeks.Rho.InexactFloat64(),
		RhoD:         greeks.RhoD.InexactFloat64(),
		Alpha:        greeks.Alpha.InexactFloat64(),
		CalculatedAt: time.Now(),
	}, nil
}

// CalibrateImpliedVolatility 由市场价反推隐含波动率.
func (s *PricingService) CalibrateImpliedVolatility(ctx context.Context, cmd CalibrateVolatilityCommand) (*VolatilityDTO, error) {
	o, err := cmd.Option.ToDomain()
	if err != nil {
		return nil, err
	}

	vol, err := s.engine.ImpliedVolatility(o, decimal.NewFromFloat(cmd.MarketPrice))
	if err != nil {
		s.publishError(o, err)
		return nil, err
	}

	logging.Info(ctx, "implied volatility calibrated",
		"symbol", o.Symbol, "volatility", vol.String())
	if s.publisher != nil {
		_ = s.publisher.PublishImpliedVolatilityCalibrated(domain.ImpliedVolatilityCalibratedEvent{
			Symbol:            o.Symbol,
			OptionType:        o.Type,
			StrikePrice:       o.StrikePrice.Float64(),
			ExpiryDays:        o.Expiration.Days(),
			MarketPrice:       cmd.MarketPrice,
			ImpliedVolatility: vol.InexactFloat64(),
			CalibratedAt:      time.Now().UnixMilli(),
			OccurredOn:        time.Now(),
		})
	}

	return &VolatilityDTO{
		Symbol:            o.Symbol,
		MarketPrice:       cmd.MarketPrice,
		ImpliedVolatility: vol.InexactFloat64(),
		CalibratedAt:      time.Now(),
	}, nil
}

// SimulateWalk 生成一条价格随机游走路径.
func (s *PricingService) SimulateWalk(ctx context.Context, cmd SimulateWalkCommand) (*WalkDTO, error) {
	if cmd.Steps <= 0 || cmd.Days <= 0 {
		return nil, xerrors.InvalidArg("steps and days must be positive")
	}

	initial, err := positive.FromFloat(cmd.InitialPrice)
	if err != nil {
		return nil, err
	}
	if initial.IsZero() {
		return nil, xerrors.InvalidArg("initial price must be positive")
	}
	expiry, err := datetime.NewExpirationDays(cmd.Days)
	if err != nil {
		return nil, err
	}

	seed := time.Now().UnixNano()
	if cmd.Seed != nil {
		seed = *cmd.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	var walker simdomain.Walker[float64, positive.Positive]
	walkType := simdomain.WalkType(cmd.WalkType)
	switch walkType {
	case simdomain.WalkTypeGeometricBrownian, "":
		walkType = simdomain.WalkTypeGeometricBrownian
		walker, err = simdomain.NewGaussianWalker(cmd.RiskFreeRate, cmd.DividendYield, cmd.Volatility, rng)
	case simdomain.WalkTypeTelegraph:
		if cmd.LambdaUp == nil || cmd.LambdaDown == nil {
			return nil, xerrors.InvalidArg("telegraph walk requires lambda_up and lambda_down")
		}
		walker, err = simdomain.NewTelegraphWalker(*cmd.LambdaUp, *cmd.LambdaDown, cmd.Volatility, rng)
	default:
		return nil, xerrors.InvalidArg("unsupported walk type").WithDetail("got %q", cmd.WalkType)
	}
	if err != nil {
		return nil, err
	}

	x, err := simdomain.NewXstep(cmd.Days/float64(cmd.Steps), datetime.TimeFrameDay, expiry)
	if err != nil {
		return nil, err
	}
	params := simdomain.PriceWalkParams{
		Size:     cmd.Steps,
		InitStep: simdomain.NewStep(x, initial),
		WalkType: walkType,
		Walker:   walker,
	}

	walk, err := simdomain.NewRandomWalk(string(walkType)+"-"+strconv.FormatInt(seed, 10), params, nil)
	if err != nil {
		return nil, err
	}

	logging.Info(ctx, "walk simulated", "walk_type", string(walkType), "steps", walk.Len())

	dto := &WalkDTO{
		Title:    walk.Title(),
		WalkType: string(walkType),
		Values:   make([]float64, 0, walk.Len()),
		Days:     make([]float64, 0, walk.Len()),
	}
	for _, step := range walk.Steps() {
		dto.Values = append(dto.Values, step.Y.Value().Float64())
		dto.Days = append(dto.Days, step.X.Expiry().Days())
	}
	return dto, nil
}

func (s *PricingService) publishPriced(o *domain.Option, model domain.PricingModelType, price decimal.Decimal) {
	if s.publisher == nil {
		return
	}
	now := time.Now()
	_ = s.publisher.PublishOptionPriced(domain.OptionPricedEvent{
		Symbol:          o.Symbol,
		OptionType:      o.Type,
		OptionStyle:     o.Style,
		Side:            o.Side,
		StrikePrice:     o.StrikePrice.Float64(),
		ExpiryDays:      o.Expiration.Days(),
		OptionPrice:     price.InexactFloat64(),
		UnderlyingPrice: o.UnderlyingPrice.Float64(),
		Volatility:      o.ImpliedVolatility.Float64(),
		RiskFreeRate:    o.RiskFreeRate,
		DividendYield:   o.DividendYield.Float64(),
		PricingModel:    model,
		CalculatedAt:    now.UnixMilli(),
		OccurredOn:      now,
	})
}

func (s *PricingService) publishGreeks(o *domain.Option, greeks *domain.Greeks) {
	if s.publisher == nil {
		return
	}
	now := time.Now()
	_ = s.publisher.PublishGreeksCalculated(domain.GreeksCalculatedEvent{
		Symbol:          o.Symbol,
		OptionType:      o.Type,
		StrikePrice:     o.StrikePrice.Float64(),
		ExpiryDays:      o.Expiration.Days(),
		UnderlyingPrice: o.UnderlyingPrice.Float64(),
		Delta:           greeks.Delta.InexactFloat64(),
		Gamma:           greeks.Gamma.InexactFloat64(),
		Theta:           greeks.Theta.InexactFloat64(),
		Vega:            greeks.Vega.InexactFloat64(),
		Rho:             greeks.Rho.InexactFloat64(),
		RhoD:            greeks.RhoD.InexactFloat64(),
		CalculatedAt:    now.UnixMilli(),
		OccurredOn:      now,
	})
}

func (s *PricingService) publishError(o *domain.Option, cause error) {
	if s.publisher == nil {
		return
	}
	code := ""
	if e, ok := xerrors.FromError(cause); ok {
		code = strconv.Itoa(e.Code)
	}
	now := time.Now()
	_ = s.publisher.PublishPricingError(domain.PricingErrorEvent{
		Symbol:      o.Symbol,
		OptionType:  o.Type,
		StrikePrice: o.StrikePrice.Float64(),
		ExpiryDays:  o.Expiration.Days(),
		Error:       cause.Error(),
		ErrorCode:   code,
		OccurredAt:  now.UnixMilli(),
		OccurredOn:  now,
	})
}
